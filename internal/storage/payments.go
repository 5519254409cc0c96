package storage

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/metrics"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/payment"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/pricing"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/repository"
)

const paymentActor = "payment"

// SettlePayment applies a confirmed payment exactly once per provider event
// id. It reports whether this call changed anything; replays, stale
// sessions, wrong amounts and unknown references return false with a nil
// error. Stale sessions and wrong amounts are audited for refund.
func (s *Storage) SettlePayment(ctx context.Context, ev PaymentEvent) (bool, error) {
	if ev.ID == "" || ev.ReferenceID == "" {
		return false, validationf("payment event id and reference are required")
	}
	if ev.Kind != payment.KindQuote && ev.Kind != payment.KindReturn {
		return false, validationf("unknown payment kind %q", ev.Kind)
	}

	logger := s.logger.With(
		zap.String("event_id", ev.ID),
		zap.String("kind", ev.Kind),
		zap.String("reference_id", ev.ReferenceID),
	)

	applied := false
	err := s.inTx(ctx, func(tx db.Tx) error {
		fresh, err := s.paymentRepo.MarkProcessedTx(ctx, tx, &repository.PaymentEvent{
			EventID:     ev.ID,
			Kind:        ev.Kind,
			ReferenceID: ev.ReferenceID,
			ProcessedAt: s.now(),
		})
		if err != nil {
			return fmt.Errorf("failed to record payment event: %w", err)
		}
		if !fresh {
			logger.Info("payment event already processed")
			return nil
		}

		if ev.Kind == payment.KindQuote {
			applied, err = s.settleQuote(ctx, tx, ev, logger)
		} else {
			applied, err = s.settleReturn(ctx, tx, ev, logger)
		}
		return err
	})
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("settle_payment").Inc()
		return false, err
	}

	if applied {
		metrics.PaymentsSettledTotal.WithLabelValues(ev.Kind).Inc()
		logger.Info("payment settled")
	}
	return applied, nil
}

func (s *Storage) settleQuote(ctx context.Context, tx db.Tx, ev PaymentEvent, logger *zap.Logger) (bool, error) {
	q, err := s.quoteRepo.GetByIDTx(ctx, tx, ev.ReferenceID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			logger.Warn("payment for unknown quote")
			return false, nil
		}
		return false, lookupErr("quote", err)
	}

	// Only the quote's current session settles it. Any other paid session
	// was priced for an older carrier or was replaced by a newer checkout.
	current := q.PaymentSessionID != nil && ev.SessionID != "" && *q.PaymentSessionID == ev.SessionID
	if PaymentStatus(q.PaymentStatus) == PaymentPaid {
		if current {
			return false, nil
		}
		return false, s.rejectPayment(ctx, tx, ev, quoteRejection(q, "quote already paid"), logger)
	}
	if !current {
		return false, s.rejectPayment(ctx, tx, ev, quoteRejection(q, "superseded session"), logger)
	}
	if ev.AmountCents != pricing.Cents(q.AmountTTC) {
		return false, s.rejectPayment(ctx, tx, ev, quoteRejection(q, "amount mismatch"), logger)
	}

	q.PaymentStatus = string(PaymentPaid)
	q.UpdatedAt = s.now()
	if err := s.quoteRepo.UpdateTx(ctx, tx, q); err != nil {
		return false, fmt.Errorf("failed to update quote: %w", err)
	}

	pkg, err := s.packageRepo.GetByIDTx(ctx, tx, q.PackageID)
	if err != nil {
		return false, lookupErr("package", err)
	}
	if CanTransition(Status(pkg.Status), StatusPaid) {
		if err := s.changeStatus(ctx, tx, pkg, StatusPaid, paymentActor, "quote "+q.QuoteNumber+" paid"); err != nil {
			return false, err
		}
	} else {
		logger.Warn("paid quote for a package that is not stored", zap.String("package_status", pkg.Status))
	}

	if err := s.notify(ctx, tx, repository.NotificationJob{
		UserID:  q.OwnerID,
		Type:    "quote_paid",
		Title:   "Paiement reçu",
		Message: fmt.Sprintf("Le paiement du devis %s a été reçu.", q.QuoteNumber),
		Link:    "/packages/" + q.PackageID,
	}); err != nil {
		return false, err
	}
	return true, s.audit(ctx, tx, paymentActor, "quote.paid", "quote", q.ID, map[string]string{
		"event_id":   ev.ID,
		"amount_ttc": q.AmountTTC.StringFixed(2),
	})
}

func (s *Storage) settleReturn(ctx context.Context, tx db.Tx, ev PaymentEvent, logger *zap.Logger) (bool, error) {
	ret, err := s.returnRepo.GetByIDTx(ctx, tx, ev.ReferenceID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			logger.Warn("payment for unknown return request")
			return false, nil
		}
		return false, lookupErr("return request", err)
	}

	// Checkout sends one completion per session, so a fresh event for a
	// request that is no longer awaiting payment is a second charge.
	reason := ""
	switch {
	case ReturnStatus(ret.Status) != ReturnPendingPayment:
		reason = "return not awaiting payment"
	case ev.AmountCents != pricing.Cents(ret.ShippingCost):
		reason = "amount mismatch"
	}
	if reason != "" {
		return false, s.rejectPayment(ctx, tx, ev, paymentRejection{
			ownerID:      ret.OwnerID,
			resourceType: "return_request",
			resourceID:   ret.ID,
			link:         "/returns/" + ret.ID,
			reason:       reason,
		}, logger)
	}

	if err := s.returnRepo.UpdateStatusTx(ctx, tx, ret.ID, string(ReturnPending), s.now()); err != nil {
		return false, fmt.Errorf("failed to update return request: %w", err)
	}
	if err := s.notify(ctx, tx, repository.NotificationJob{
		UserID:  ret.OwnerID,
		Type:    "return_paid",
		Title:   "Paiement du retour reçu",
		Message: fmt.Sprintf("Votre demande %s est en cours de traitement.", ret.Reference),
		Link:    "/returns/" + ret.ID,
	}); err != nil {
		return false, err
	}
	return true, s.audit(ctx, tx, paymentActor, "return.paid", "return_request", ret.ID, map[string]string{
		"event_id":      ev.ID,
		"shipping_cost": ret.ShippingCost.StringFixed(2),
	})
}

type paymentRejection struct {
	ownerID      string
	resourceType string
	resourceID   string
	link         string
	reason       string
}

func quoteRejection(q *repository.Quote, reason string) paymentRejection {
	return paymentRejection{
		ownerID:      q.OwnerID,
		resourceType: "quote",
		resourceID:   q.ID,
		link:         "/packages/" + q.PackageID,
		reason:       reason,
	}
}

// rejectPayment leaves the reference untouched but keeps a trace of money
// the provider collected, so it can be refunded.
func (s *Storage) rejectPayment(ctx context.Context, tx db.Tx, ev PaymentEvent, r paymentRejection, logger *zap.Logger) error {
	logger.Warn("payment not applied",
		zap.String("reason", r.reason),
		zap.String("session_id", ev.SessionID),
		zap.Int64("amount_cents", ev.AmountCents),
	)
	metrics.PaymentsRejectedTotal.WithLabelValues(ev.Kind).Inc()

	if err := s.notify(ctx, tx, repository.NotificationJob{
		UserID:  r.ownerID,
		Type:    "payment_rejected",
		Title:   "Paiement non appliqué",
		Message: "Ce paiement ne correspond plus à votre demande. Il vous sera remboursé.",
		Link:    r.link,
	}); err != nil {
		return err
	}
	return s.audit(ctx, tx, paymentActor, "payment.rejected", r.resourceType, r.resourceID, map[string]string{
		"event_id":     ev.ID,
		"session_id":   ev.SessionID,
		"amount_cents": strconv.FormatInt(ev.AmountCents, 10),
		"reason":       r.reason,
	})
}
