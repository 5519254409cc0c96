package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/carrier"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/metrics"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/payment"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/pricing"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/repository"
)

const maxQuoteNumberAttempts = 3

// GetOrCreateQuote returns the package's quote, creating it on first use.
// Concurrent callers all end up with the same row.
func (s *Storage) GetOrCreateQuote(ctx context.Context, ownerID, packageID string) (*Quote, error) {
	pkg, err := s.packageRepo.GetByOwner(ctx, ownerID, packageID)
	if err != nil {
		return nil, lookupErr("package", err)
	}
	return s.getOrCreateQuote(ctx, pkg)
}

func (s *Storage) GetQuoteByTracking(ctx context.Context, ownerID, trackingNumber string) (*Quote, error) {
	trackingNumber = strings.TrimSpace(trackingNumber)
	if trackingNumber == "" {
		return nil, validationf("tracking number is required")
	}

	pkg, err := s.packageRepo.GetByTracking(ctx, ownerID, trackingNumber)
	if err != nil {
		return nil, lookupErr("package", err)
	}
	return s.getOrCreateQuote(ctx, pkg)
}

func (s *Storage) getOrCreateQuote(ctx context.Context, pkg *repository.Package) (*Quote, error) {
	var (
		quote   *repository.Quote
		created bool
		err     error
	)

	// A quote number collision aborts the transaction, so each attempt
	// starts a new one.
	for attempt := 0; attempt < maxQuoteNumberAttempts; attempt++ {
		err = s.inTx(ctx, func(tx db.Tx) error {
			candidate := s.newQuote(pkg)
			ok, err := s.quoteRepo.CreateIfAbsentTx(ctx, tx, candidate)
			if err != nil {
				return fmt.Errorf("failed to create quote: %w", err)
			}
			if ok {
				item := &repository.QuoteItem{
					QuoteID:   candidate.ID,
					Kind:      ItemHandling,
					Label:     "Frais de traitement",
					Amount:    candidate.BaseAmount,
					CreatedAt: candidate.CreatedAt,
				}
				if err := s.quoteRepo.AddItemTx(ctx, tx, item); err != nil {
					return fmt.Errorf("failed to add quote item: %w", err)
				}
				quote, created = candidate, true
				return nil
			}

			existing, err := s.quoteRepo.GetByPackageIDTx(ctx, tx, pkg.ID)
			if err != nil {
				return lookupErr("quote", err)
			}
			quote, created = existing, false
			return nil
		})
		if !errors.Is(err, repository.ErrDuplicate) {
			break
		}
		s.logger.Warn("quote number collision, retrying", zap.String("package_id", pkg.ID), zap.Int("attempt", attempt+1))
	}
	if err != nil {
		return nil, err
	}

	if created {
		metrics.QuotesCreatedTotal.Inc()
		s.logger.Info("quote created", zap.String("quote_number", quote.QuoteNumber), zap.String("package_id", pkg.ID))
	}
	return s.loadQuote(ctx, quote)
}

func (s *Storage) newQuote(pkg *repository.Package) *repository.Quote {
	now := s.now()
	base := s.policy.Handling.For(pkg.WeightKg.Decimal)
	totals := pricing.ComputeTotals(base, decimal.Zero, s.policy.TaxRate)
	return &repository.Quote{
		ID:            s.newID(),
		QuoteNumber:   s.quoteNumber(),
		PackageID:     pkg.ID,
		OwnerID:       pkg.OwnerID,
		BaseAmount:    base,
		AmountHT:      totals.AmountHT,
		TaxRate:       totals.TaxRate,
		TaxAmount:     totals.TaxAmount,
		AmountTTC:     totals.AmountTTC,
		PaymentStatus: string(PaymentUnpaid),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// quoteNumber is DEV-YYYYMMDD-XXXXXX.
func (s *Storage) quoteNumber() string {
	token := strings.ToUpper(strings.ReplaceAll(s.newID(), "-", ""))
	if len(token) > 6 {
		token = token[:6]
	}
	return "DEV-" + s.now().Format("20060102") + "-" + token
}

func (s *Storage) loadQuote(ctx context.Context, q *repository.Quote) (*Quote, error) {
	items, err := s.quoteRepo.ListItems(ctx, q.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get quote items: %w", err)
	}
	return toQuote(q, items), nil
}

// SelectCarrier copies the carrier's current terms onto the quote. Later
// catalog changes do not touch the copy.
func (s *Storage) SelectCarrier(ctx context.Context, ownerID, quoteID, carrierID string) (*Quote, error) {
	opt, err := s.carriers.Get(carrierID)
	if err != nil {
		if errors.Is(err, carrier.ErrUnknownCarrier) {
			return nil, fmt.Errorf("%w: carrier %s", ErrNotFound, carrierID)
		}
		return nil, fmt.Errorf("failed to get carrier: %w", err)
	}

	var updated *repository.Quote
	err = s.inTx(ctx, func(tx db.Tx) error {
		q, err := s.quoteRepo.GetByOwnerTx(ctx, tx, ownerID, quoteID)
		if err != nil {
			return lookupErr("quote", err)
		}
		if PaymentStatus(q.PaymentStatus) == PaymentPaid {
			return conflictf("quote %s is already paid", q.QuoteNumber)
		}

		totals := pricing.ComputeTotals(q.BaseAmount, opt.Price, q.TaxRate)
		q.CarrierID = &opt.ID
		q.CarrierName = &opt.Name
		q.CarrierPrice = decimal.NullDecimal{Decimal: opt.Price, Valid: true}
		q.CarrierDeliveryTime = &opt.DeliveryTime
		q.AmountHT = totals.AmountHT
		q.TaxAmount = totals.TaxAmount
		q.AmountTTC = totals.AmountTTC
		// A pending session was priced for the previous carrier.
		q.PaymentStatus = string(PaymentUnpaid)
		q.PaymentSessionID = nil
		q.UpdatedAt = s.now()

		if err := s.quoteRepo.UpdateTx(ctx, tx, q); err != nil {
			return fmt.Errorf("failed to update quote: %w", err)
		}
		if err := s.quoteRepo.DeleteItemsTx(ctx, tx, q.ID, ItemCarrier); err != nil {
			return fmt.Errorf("failed to delete quote items: %w", err)
		}
		item := &repository.QuoteItem{
			QuoteID:   q.ID,
			Kind:      ItemCarrier,
			Label:     opt.Name,
			Amount:    opt.Price,
			CreatedAt: q.UpdatedAt,
		}
		if err := s.quoteRepo.AddItemTx(ctx, tx, item); err != nil {
			return fmt.Errorf("failed to add quote item: %w", err)
		}
		updated = q
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.loadQuote(ctx, updated)
}

// StartQuotePayment opens a checkout session for the quote's TTC amount.
// Without a session the quote cannot be paid, so provider errors are
// returned as ErrExternalService.
func (s *Storage) StartQuotePayment(ctx context.Context, ownerID, quoteID string) (*PaymentLink, error) {
	if s.checkout == nil {
		return nil, fmt.Errorf("%w: payment provider is not configured", ErrExternalService)
	}

	var q *repository.Quote
	err := s.inTx(ctx, func(tx db.Tx) error {
		var err error
		q, err = s.quoteRepo.GetByOwnerTx(ctx, tx, ownerID, quoteID)
		if err != nil {
			return lookupErr("quote", err)
		}
		return payableQuote(q)
	})
	if err != nil {
		return nil, err
	}

	session, err := s.checkout.CreateSession(ctx, payment.SessionRequest{
		Kind:        payment.KindQuote,
		ReferenceID: q.ID,
		OwnerID:     ownerID,
		Description: "Devis " + q.QuoteNumber,
		Amount:      q.AmountTTC,
		Currency:    s.policy.Currency,
	})
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("quote_payment_session").Inc()
		return nil, fmt.Errorf("%w: payment session for quote %s: %v", ErrExternalService, q.QuoteNumber, err)
	}

	err = s.inTx(ctx, func(tx db.Tx) error {
		current, err := s.quoteRepo.GetByOwnerTx(ctx, tx, ownerID, quoteID)
		if err != nil {
			return lookupErr("quote", err)
		}
		if err := payableQuote(current); err != nil {
			return err
		}
		if !current.AmountTTC.Equal(q.AmountTTC) {
			return conflictf("quote %s changed while opening the payment", current.QuoteNumber)
		}

		current.PaymentStatus = string(PaymentPending)
		current.PaymentSessionID = &session.ID
		current.UpdatedAt = s.now()
		if err := s.quoteRepo.UpdateTx(ctx, tx, current); err != nil {
			return fmt.Errorf("failed to update quote: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &PaymentLink{SessionID: session.ID, URL: session.URL}, nil
}

func payableQuote(q *repository.Quote) error {
	if PaymentStatus(q.PaymentStatus) == PaymentPaid {
		return conflictf("quote %s is already paid", q.QuoteNumber)
	}
	if q.CarrierID == nil {
		return conflictf("quote %s has no carrier selected", q.QuoteNumber)
	}
	return nil
}

func (s *Storage) ListCarriers() []carrier.Option {
	return s.carriers.List()
}

func (s *Storage) ListQuotes(ctx context.Context, ownerID string) ([]*Quote, error) {
	rows, err := s.quoteRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list quotes: %w", err)
	}

	out := make([]*Quote, 0, len(rows))
	for _, row := range rows {
		out = append(out, toQuote(row, nil))
	}
	return out, nil
}

// DeleteQuote is the only hard delete of a quote; its items cascade.
func (s *Storage) DeleteQuote(ctx context.Context, actor, id string) error {
	return s.inTx(ctx, func(tx db.Tx) error {
		q, err := s.quoteRepo.GetByIDTx(ctx, tx, id)
		if err != nil {
			return lookupErr("quote", err)
		}
		if err := s.quoteRepo.DeleteTx(ctx, tx, q.ID); err != nil {
			return fmt.Errorf("failed to delete quote: %w", err)
		}
		return s.audit(ctx, tx, actor, "quote.delete", "quote", q.ID, map[string]string{
			"quote_number":   q.QuoteNumber,
			"package_id":     q.PackageID,
			"payment_status": q.PaymentStatus,
		})
	})
}
