package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/metrics"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/payment"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/pricing"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/repository"
)

const maxReferenceAttempts = 5

var (
	returnTypes = map[ReturnType]bool{
		ReturnRefund: true, ReturnExchange: true, ReturnRepair: true,
	}
	returnReasons = map[ReturnReason]bool{
		ReasonDefective: true, ReasonNotAsDescribed: true, ReasonDamaged: true, ReasonWrongOrder: true, ReasonOther: true,
	}
)

// EstimateReturnCost prices a return without touching storage.
func (s *Storage) EstimateReturnCost(weightKg decimal.Decimal, dims pricing.Dimensions, urgency string) (decimal.Decimal, error) {
	level, ok := pricing.ParseUrgency(urgency)
	if !ok {
		return decimal.Zero, validationf("unknown urgency %q", urgency)
	}

	cost, err := pricing.ReturnCost(pricing.ReturnCostInput{
		WeightKg:   weightKg,
		Dimensions: dims,
		Urgency:    level,
	}, s.policy.Returns)
	if err != nil {
		if errors.Is(err, pricing.ErrNegativeInput) {
			return decimal.Zero, validationf("weight and dimensions must not be negative")
		}
		return decimal.Zero, err
	}
	return cost, nil
}

// CreateReturnRequest files a return for a package that is at the
// warehouse. The cost is always recomputed here. A paid return waits in
// pending-payment until the provider confirms; a free one starts pending.
// When the payment session cannot be opened the saved request is returned
// along with an ErrExternalService error.
func (s *Storage) CreateReturnRequest(ctx context.Context, ownerID string, in ReturnInput) (*ReturnRequest, error) {
	kind := ReturnType(strings.ToLower(strings.TrimSpace(in.Type)))
	if !returnTypes[kind] {
		return nil, validationf("unknown return type %q", in.Type)
	}
	reason := ReturnReason(strings.ToLower(strings.TrimSpace(in.Reason)))
	if !returnReasons[reason] {
		return nil, validationf("unknown return reason %q", in.Reason)
	}
	cost, err := s.EstimateReturnCost(in.WeightKg, in.Dimensions, in.Urgency)
	if err != nil {
		return nil, err
	}
	urgency, _ := pricing.ParseUrgency(in.Urgency)

	pkg, err := s.packageRepo.GetByOwner(ctx, ownerID, in.PackageID)
	if err != nil {
		return nil, lookupErr("package", err)
	}
	if !Status(pkg.Status).Returnable() {
		return nil, conflictf("package %s is %s and cannot be returned", pkg.ID, pkg.Status)
	}

	status := ReturnPending
	if cost.IsPositive() {
		status = ReturnPendingPayment
	}

	now := s.now()
	ret := &repository.ReturnRequest{
		ID:           s.newID(),
		PackageID:    pkg.ID,
		OwnerID:      ownerID,
		Type:         string(kind),
		Reason:       string(reason),
		Urgency:      string(urgency),
		Description:  strings.TrimSpace(in.Description),
		WeightKg:     in.WeightKg,
		LengthCm:     nullDecimal(in.Dimensions.LengthCm),
		WidthCm:      nullDecimal(in.Dimensions.WidthCm),
		HeightCm:     nullDecimal(in.Dimensions.HeightCm),
		ShippingCost: cost,
		Status:       string(status),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	for attempt := 0; attempt < maxReferenceAttempts; attempt++ {
		ret.Reference = s.returnReference(attempt)
		err = s.inTx(ctx, func(tx db.Tx) error {
			if err := s.returnRepo.CreateTx(ctx, tx, ret); err != nil {
				return fmt.Errorf("failed to add return request: %w", err)
			}
			return s.notify(ctx, tx, repository.NotificationJob{
				UserID:  ownerID,
				Type:    "return_created",
				Title:   "Demande de retour enregistrée",
				Message: fmt.Sprintf("Votre demande %s a été enregistrée.", ret.Reference),
				Link:    "/returns/" + ret.ID,
			})
		})
		if !errors.Is(err, repository.ErrDuplicate) {
			break
		}
		s.logger.Warn("return reference collision, retrying", zap.String("reference", ret.Reference), zap.Int("attempt", attempt+1))
	}
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("create_return").Inc()
		return nil, err
	}
	metrics.ReturnsCreatedTotal.WithLabelValues(string(status)).Inc()

	out := toReturnRequest(ret)
	if status == ReturnPendingPayment {
		link, err := s.openReturnSession(ctx, ret)
		if err != nil {
			// The request is saved; the caller needs its id to retry the
			// payment through StartReturnPayment.
			return out, err
		}
		out.Payment = link
	}
	return out, nil
}

// returnReference is RET-<unix millis>; retries append a random suffix.
func (s *Storage) returnReference(attempt int) string {
	ref := fmt.Sprintf("RET-%d", s.now().UnixMilli())
	if attempt == 0 {
		return ref
	}
	token := strings.ToUpper(strings.ReplaceAll(s.newID(), "-", ""))
	if len(token) > 4 {
		token = token[:4]
	}
	return ref + "-" + token
}

// StartReturnPayment opens a new session for a return still waiting on its
// payment, e.g. after the first attempt failed.
func (s *Storage) StartReturnPayment(ctx context.Context, ownerID, id string) (*PaymentLink, error) {
	ret, err := s.returnRepo.GetByOwner(ctx, ownerID, id)
	if err != nil {
		return nil, lookupErr("return request", err)
	}
	if ReturnStatus(ret.Status) != ReturnPendingPayment {
		return nil, conflictf("return request %s is %s", ret.Reference, ret.Status)
	}
	return s.openReturnSession(ctx, ret)
}

func (s *Storage) openReturnSession(ctx context.Context, ret *repository.ReturnRequest) (*PaymentLink, error) {
	if s.checkout == nil {
		return nil, fmt.Errorf("%w: payment provider is not configured, return %s awaits payment", ErrExternalService, ret.Reference)
	}

	session, err := s.checkout.CreateSession(ctx, payment.SessionRequest{
		Kind:        payment.KindReturn,
		ReferenceID: ret.ID,
		OwnerID:     ret.OwnerID,
		Description: "Retour " + ret.Reference,
		Amount:      ret.ShippingCost,
		Currency:    s.policy.Currency,
	})
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("return_payment_session").Inc()
		return nil, fmt.Errorf("%w: payment session for return %s: %v", ErrExternalService, ret.Reference, err)
	}

	if err := s.returnRepo.SetPaymentSession(ctx, ret.ID, session.ID, s.now()); err != nil {
		return nil, fmt.Errorf("failed to save payment session: %w", err)
	}
	return &PaymentLink{SessionID: session.ID, URL: session.URL}, nil
}

func (s *Storage) ListReturnRequests(ctx context.Context, ownerID string) ([]*ReturnRequest, error) {
	rows, err := s.returnRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list return requests: %w", err)
	}
	return toReturnRequests(rows), nil
}

func (s *Storage) ListAllReturns(ctx context.Context, page, limit int) ([]*ReturnRequest, error) {
	if limit <= 0 || limit > maxListLimit {
		limit = maxListLimit
	}
	rows, err := s.returnRepo.GetPaginated(ctx, page, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get returns: %w", err)
	}
	return toReturnRequests(rows), nil
}

func toReturnRequests(rows []*repository.ReturnRequest) []*ReturnRequest {
	out := make([]*ReturnRequest, 0, len(rows))
	for _, row := range rows {
		out = append(out, toReturnRequest(row))
	}
	return out
}
