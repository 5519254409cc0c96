package storage

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/payment"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/repository"
)

func pendingQuote() *repository.Quote {
	session := "cs_1"
	return &repository.Quote{
		ID:               quoteID,
		QuoteNumber:      "DEV-20250301-A1B2C3",
		PackageID:        packageID,
		OwnerID:          ownerID,
		AmountTTC:        decimal.RequireFromString("37.20"),
		PaymentStatus:    string(PaymentPending),
		PaymentSessionID: &session,
	}
}

func quotePaid() PaymentEvent {
	return PaymentEvent{ID: "evt_1", Kind: payment.KindQuote, ReferenceID: quoteID, SessionID: "cs_1", AmountCents: 3720}
}

func pendingPaymentReturn() *repository.ReturnRequest {
	return &repository.ReturnRequest{
		ID: "ret-1", Reference: "RET-1", OwnerID: ownerID,
		ShippingCost: decimal.RequireFromString("24.05"), Status: string(ReturnPendingPayment),
	}
}

func returnPaid() PaymentEvent {
	return PaymentEvent{ID: "evt_2", Kind: payment.KindReturn, ReferenceID: "ret-1", SessionID: "cs_r1", AmountCents: 2405}
}

// expectRejection collects the audit records written to the outbox and
// checks that the owner was notified.
func (f *fixture) expectRejection(t *testing.T) *[]repository.AuditRecord {
	var audits []repository.AuditRecord
	var notified bool
	f.outbox.EXPECT().CreateTx(f.ctx, f.tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ db.Tx, task *repository.OutboxTask) error {
			switch task.Topic {
			case repository.TopicAuditLogs:
				var rec repository.AuditRecord
				require.NoError(t, json.Unmarshal(task.Payload, &rec))
				audits = append(audits, rec)
			case repository.TopicNotifications:
				var job repository.NotificationJob
				require.NoError(t, json.Unmarshal(task.Payload, &job))
				assert.Equal(t, "payment_rejected", job.Type)
				assert.Equal(t, ownerID, job.UserID)
				notified = true
			}
			return nil
		}).Times(2)
	t.Cleanup(func() { assert.True(t, notified, "owner is told about the refund") })
	return &audits
}

func TestStorage_SettlePayment_Quote(t *testing.T) {
	t.Run("paid quote moves the package to paid", func(t *testing.T) {
		f := newFixture(t)
		var topics []string

		f.expectCommit()
		f.payments.EXPECT().MarkProcessedTx(f.ctx, f.tx, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ db.Tx, e *repository.PaymentEvent) (bool, error) {
				assert.Equal(t, "evt_1", e.EventID)
				assert.Equal(t, fixedTime, e.ProcessedAt)
				return true, nil
			})
		f.quotes.EXPECT().GetByIDTx(f.ctx, f.tx, quoteID).Return(pendingQuote(), nil)
		f.quotes.EXPECT().UpdateTx(f.ctx, f.tx, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ db.Tx, q *repository.Quote) error {
				assert.Equal(t, string(PaymentPaid), q.PaymentStatus)
				return nil
			})
		f.packages.EXPECT().GetByIDTx(f.ctx, f.tx, packageID).Return(storedPackage(StatusStored), nil)
		f.packages.EXPECT().UpdateTx(f.ctx, f.tx, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ db.Tx, p *repository.Package) error {
				assert.Equal(t, StatusPaid.String(), p.Status)
				return nil
			})
		f.history.EXPECT().CreateTx(f.ctx, f.tx, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ db.Tx, h *repository.HistoryEntry) error {
				assert.Equal(t, paymentActor, h.ChangedBy)
				return nil
			})
		f.expectOutbox(&topics)

		applied, err := f.storage.SettlePayment(f.ctx, quotePaid())

		require.NoError(t, err)
		assert.True(t, applied)
		assert.Equal(t, []string{repository.TopicNotifications, repository.TopicAuditLogs}, topics)
	})

	t.Run("replayed event changes nothing", func(t *testing.T) {
		f := newFixture(t)

		f.expectCommit()
		f.payments.EXPECT().MarkProcessedTx(f.ctx, f.tx, gomock.Any()).Return(false, nil)

		applied, err := f.storage.SettlePayment(f.ctx, quotePaid())

		require.NoError(t, err)
		assert.False(t, applied)
	})

	t.Run("unknown quote is acknowledged", func(t *testing.T) {
		f := newFixture(t)

		f.expectCommit()
		f.payments.EXPECT().MarkProcessedTx(f.ctx, f.tx, gomock.Any()).Return(true, nil)
		f.quotes.EXPECT().GetByIDTx(f.ctx, f.tx, quoteID).Return(nil, repository.ErrObjectNotFound)

		applied, err := f.storage.SettlePayment(f.ctx, quotePaid())

		require.NoError(t, err)
		assert.False(t, applied)
	})

	t.Run("superseded session is not applied", func(t *testing.T) {
		f := newFixture(t)
		ev := quotePaid()
		ev.SessionID = "cs_old"

		f.expectCommit()
		f.payments.EXPECT().MarkProcessedTx(f.ctx, f.tx, gomock.Any()).Return(true, nil)
		f.quotes.EXPECT().GetByIDTx(f.ctx, f.tx, quoteID).Return(pendingQuote(), nil)
		audits := f.expectRejection(t)

		applied, err := f.storage.SettlePayment(f.ctx, ev)

		require.NoError(t, err)
		assert.False(t, applied)
		require.Len(t, *audits, 1)
		assert.Equal(t, "payment.rejected", (*audits)[0].Action)
		assert.Equal(t, "superseded session", (*audits)[0].Metadata["reason"])
		assert.Equal(t, "cs_old", (*audits)[0].Metadata["session_id"])
	})

	t.Run("old session after a carrier change is not applied", func(t *testing.T) {
		f := newFixture(t)
		// SelectCarrier repriced the quote and dropped the session.
		q := pendingQuote()
		q.PaymentStatus = string(PaymentUnpaid)
		q.PaymentSessionID = nil
		q.AmountTTC = decimal.RequireFromString("60.00")
		ev := quotePaid()
		ev.SessionID = "cs_old"

		f.expectCommit()
		f.payments.EXPECT().MarkProcessedTx(f.ctx, f.tx, gomock.Any()).Return(true, nil)
		f.quotes.EXPECT().GetByIDTx(f.ctx, f.tx, quoteID).Return(q, nil)
		audits := f.expectRejection(t)

		applied, err := f.storage.SettlePayment(f.ctx, ev)

		require.NoError(t, err)
		assert.False(t, applied)
		require.Len(t, *audits, 1)
		assert.Equal(t, "superseded session", (*audits)[0].Metadata["reason"])
		assert.Equal(t, "3720", (*audits)[0].Metadata["amount_cents"])
	})

	t.Run("event without a session is not applied", func(t *testing.T) {
		f := newFixture(t)
		ev := quotePaid()
		ev.SessionID = ""

		f.expectCommit()
		f.payments.EXPECT().MarkProcessedTx(f.ctx, f.tx, gomock.Any()).Return(true, nil)
		f.quotes.EXPECT().GetByIDTx(f.ctx, f.tx, quoteID).Return(pendingQuote(), nil)
		f.expectRejection(t)

		applied, err := f.storage.SettlePayment(f.ctx, ev)

		require.NoError(t, err)
		assert.False(t, applied)
	})

	t.Run("charged amount differs from the quote", func(t *testing.T) {
		f := newFixture(t)
		ev := quotePaid()
		ev.AmountCents = 2500

		f.expectCommit()
		f.payments.EXPECT().MarkProcessedTx(f.ctx, f.tx, gomock.Any()).Return(true, nil)
		f.quotes.EXPECT().GetByIDTx(f.ctx, f.tx, quoteID).Return(pendingQuote(), nil)
		audits := f.expectRejection(t)

		applied, err := f.storage.SettlePayment(f.ctx, ev)

		require.NoError(t, err)
		assert.False(t, applied)
		require.Len(t, *audits, 1)
		assert.Equal(t, "amount mismatch", (*audits)[0].Metadata["reason"])
	})

	t.Run("already paid quote ignores its own session", func(t *testing.T) {
		f := newFixture(t)
		q := pendingQuote()
		q.PaymentStatus = string(PaymentPaid)

		f.expectCommit()
		f.payments.EXPECT().MarkProcessedTx(f.ctx, f.tx, gomock.Any()).Return(true, nil)
		f.quotes.EXPECT().GetByIDTx(f.ctx, f.tx, quoteID).Return(q, nil)

		applied, err := f.storage.SettlePayment(f.ctx, quotePaid())

		require.NoError(t, err)
		assert.False(t, applied)
	})

	t.Run("already paid quote rejects another session", func(t *testing.T) {
		f := newFixture(t)
		q := pendingQuote()
		q.PaymentStatus = string(PaymentPaid)
		ev := quotePaid()
		ev.SessionID = "cs_2"

		f.expectCommit()
		f.payments.EXPECT().MarkProcessedTx(f.ctx, f.tx, gomock.Any()).Return(true, nil)
		f.quotes.EXPECT().GetByIDTx(f.ctx, f.tx, quoteID).Return(q, nil)
		audits := f.expectRejection(t)

		applied, err := f.storage.SettlePayment(f.ctx, ev)

		require.NoError(t, err)
		assert.False(t, applied)
		require.Len(t, *audits, 1)
		assert.Equal(t, "quote already paid", (*audits)[0].Metadata["reason"])
	})
}

func TestStorage_SettlePayment_Return(t *testing.T) {
	t.Run("pending payment becomes pending", func(t *testing.T) {
		f := newFixture(t)
		var topics []string

		f.expectCommit()
		f.payments.EXPECT().MarkProcessedTx(f.ctx, f.tx, gomock.Any()).Return(true, nil)
		f.returns.EXPECT().GetByIDTx(f.ctx, f.tx, "ret-1").Return(pendingPaymentReturn(), nil)
		f.returns.EXPECT().UpdateStatusTx(f.ctx, f.tx, "ret-1", string(ReturnPending), fixedTime).Return(nil)
		f.expectOutbox(&topics)

		applied, err := f.storage.SettlePayment(f.ctx, returnPaid())

		require.NoError(t, err)
		assert.True(t, applied)
		assert.Equal(t, []string{repository.TopicNotifications, repository.TopicAuditLogs}, topics)
	})

	t.Run("second charge for a settled return", func(t *testing.T) {
		f := newFixture(t)
		ret := pendingPaymentReturn()
		ret.Status = string(ReturnApproved)

		f.expectCommit()
		f.payments.EXPECT().MarkProcessedTx(f.ctx, f.tx, gomock.Any()).Return(true, nil)
		f.returns.EXPECT().GetByIDTx(f.ctx, f.tx, "ret-1").Return(ret, nil)
		audits := f.expectRejection(t)

		applied, err := f.storage.SettlePayment(f.ctx, returnPaid())

		require.NoError(t, err)
		assert.False(t, applied)
		require.Len(t, *audits, 1)
		assert.Equal(t, "return not awaiting payment", (*audits)[0].Metadata["reason"])
		assert.Equal(t, "return_request", (*audits)[0].ResourceType)
	})

	t.Run("charged amount differs from the shipping cost", func(t *testing.T) {
		f := newFixture(t)
		ev := returnPaid()
		ev.AmountCents = 1000

		f.expectCommit()
		f.payments.EXPECT().MarkProcessedTx(f.ctx, f.tx, gomock.Any()).Return(true, nil)
		f.returns.EXPECT().GetByIDTx(f.ctx, f.tx, "ret-1").Return(pendingPaymentReturn(), nil)
		audits := f.expectRejection(t)

		applied, err := f.storage.SettlePayment(f.ctx, ev)

		require.NoError(t, err)
		assert.False(t, applied)
		require.Len(t, *audits, 1)
		assert.Equal(t, "amount mismatch", (*audits)[0].Metadata["reason"])
	})
}

func TestStorage_SettlePayment_Validation(t *testing.T) {
	f := newFixture(t)

	_, err := f.storage.SettlePayment(f.ctx, PaymentEvent{Kind: payment.KindQuote, ReferenceID: quoteID})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = f.storage.SettlePayment(f.ctx, PaymentEvent{ID: "evt_3", Kind: "subscription", ReferenceID: quoteID})
	assert.ErrorIs(t, err, ErrValidation)
}
