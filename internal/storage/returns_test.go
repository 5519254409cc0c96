package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/payment"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/pricing"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/repository"
)

func urgentReturn() ReturnInput {
	return ReturnInput{
		PackageID:   packageID,
		Type:        "remboursement",
		Reason:      "defectueux",
		Urgency:     "urgent",
		Description: "Semelle décollée",
		WeightKg:    decimal.NewFromInt(6),
		Dimensions:  pricing.NewDimensions(40, 30, 20),
	}
}

func TestStorage_EstimateReturnCost(t *testing.T) {
	f := newFixture(t)

	cost, err := f.storage.EstimateReturnCost(decimal.NewFromInt(6), pricing.NewDimensions(40, 30, 20), "urgent")
	require.NoError(t, err)
	assert.Equal(t, "24.05", cost.StringFixed(2))

	_, err = f.storage.EstimateReturnCost(decimal.NewFromInt(-2), pricing.Dimensions{}, "normal")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = f.storage.EstimateReturnCost(decimal.NewFromInt(1), pricing.Dimensions{}, "yesterday")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestStorage_CreateReturnRequest(t *testing.T) {
	t.Run("paid return waits for payment", func(t *testing.T) {
		f := newFixture(t)
		var topics []string

		f.packages.EXPECT().GetByOwner(f.ctx, ownerID, packageID).Return(storedPackage(StatusStored), nil)
		f.expectCommit()
		f.returns.EXPECT().CreateTx(f.ctx, f.tx, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ db.Tx, r *repository.ReturnRequest) error {
				assert.Equal(t, "RET-1740823200000", r.Reference)
				assert.Equal(t, "24.05", r.ShippingCost.StringFixed(2))
				assert.Equal(t, string(ReturnPendingPayment), r.Status)
				assert.Equal(t, "40", r.LengthCm.Decimal.String())
				return nil
			})
		f.expectOutbox(&topics)
		f.checkout.EXPECT().CreateSession(f.ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, req payment.SessionRequest) (payment.Session, error) {
				assert.Equal(t, payment.KindReturn, req.Kind)
				assert.Equal(t, "24.05", req.Amount.StringFixed(2))
				return payment.Session{ID: "cs_ret", URL: "https://pay/cs_ret"}, nil
			})
		f.returns.EXPECT().SetPaymentSession(f.ctx, fixedUUID, "cs_ret", fixedTime).Return(nil)

		ret, err := f.storage.CreateReturnRequest(f.ctx, ownerID, urgentReturn())

		require.NoError(t, err)
		assert.Equal(t, ReturnPendingPayment, ret.Status)
		assert.Equal(t, pricing.UrgencyUrgent, ret.Urgency)
		require.NotNil(t, ret.Payment)
		assert.Equal(t, "https://pay/cs_ret", ret.Payment.URL)
		assert.Equal(t, []string{repository.TopicNotifications}, topics)
	})

	t.Run("free return is pending without a payment step", func(t *testing.T) {
		f := newFixture(t)
		var topics []string
		in := urgentReturn()
		in.WeightKg = decimal.Zero
		in.Dimensions = pricing.Dimensions{}

		f.packages.EXPECT().GetByOwner(f.ctx, ownerID, packageID).Return(storedPackage(StatusReceived), nil)
		f.expectCommit()
		f.returns.EXPECT().CreateTx(f.ctx, f.tx, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ db.Tx, r *repository.ReturnRequest) error {
				assert.True(t, r.ShippingCost.IsZero())
				assert.Equal(t, string(ReturnPending), r.Status)
				assert.False(t, r.LengthCm.Valid)
				return nil
			})
		f.expectOutbox(&topics)

		ret, err := f.storage.CreateReturnRequest(f.ctx, ownerID, in)

		require.NoError(t, err)
		assert.Equal(t, ReturnPending, ret.Status)
		assert.Nil(t, ret.Payment)
	})

	t.Run("reference collision retries with a suffix", func(t *testing.T) {
		f := newFixture(t)
		var topics []string
		in := urgentReturn()
		in.WeightKg = decimal.Zero
		in.Dimensions = pricing.Dimensions{}
		var refs []string

		f.packages.EXPECT().GetByOwner(f.ctx, ownerID, packageID).Return(storedPackage(StatusStored), nil)
		f.db.EXPECT().BeginTx(f.ctx).Return(f.tx, nil).Times(2)
		f.tx.EXPECT().Rollback(f.ctx).Return(nil)
		f.tx.EXPECT().Commit(f.ctx).Return(nil)
		f.returns.EXPECT().CreateTx(f.ctx, f.tx, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ db.Tx, r *repository.ReturnRequest) error {
				refs = append(refs, r.Reference)
				if len(refs) == 1 {
					return repository.ErrDuplicate
				}
				return nil
			}).Times(2)
		f.expectOutbox(&topics)

		ret, err := f.storage.CreateReturnRequest(f.ctx, ownerID, in)

		require.NoError(t, err)
		assert.Equal(t, []string{"RET-1740823200000", "RET-1740823200000-A1B2"}, refs)
		assert.Equal(t, "RET-1740823200000-A1B2", ret.Reference)
	})

	t.Run("payment provider failure names the reference", func(t *testing.T) {
		f := newFixture(t)
		var topics []string

		f.packages.EXPECT().GetByOwner(f.ctx, ownerID, packageID).Return(storedPackage(StatusStored), nil)
		f.expectCommit()
		f.returns.EXPECT().CreateTx(f.ctx, f.tx, gomock.Any()).Return(nil)
		f.expectOutbox(&topics)
		f.checkout.EXPECT().CreateSession(f.ctx, gomock.Any()).Return(payment.Session{}, errors.New("stripe down"))

		ret, err := f.storage.CreateReturnRequest(f.ctx, ownerID, urgentReturn())

		require.ErrorIs(t, err, ErrExternalService)
		assert.Contains(t, err.Error(), "RET-1740823200000")
		require.NotNil(t, ret, "the saved request is handed back for a retry")
		assert.Equal(t, fixedUUID, ret.ID)
		assert.Equal(t, ReturnPendingPayment, ret.Status)
		assert.Nil(t, ret.Payment)
	})

	for _, status := range []Status{StatusAnnounced, StatusPaid, StatusShipped, StatusDelivered} {
		t.Run("package "+status.String()+" cannot be returned", func(t *testing.T) {
			f := newFixture(t)
			f.packages.EXPECT().GetByOwner(f.ctx, ownerID, packageID).Return(storedPackage(status), nil)

			_, err := f.storage.CreateReturnRequest(f.ctx, ownerID, urgentReturn())

			assert.ErrorIs(t, err, ErrConflict)
		})
	}

	t.Run("unknown enums are rejected before any lookup", func(t *testing.T) {
		f := newFixture(t)

		bad := urgentReturn()
		bad.Type = "cadeau"
		_, err := f.storage.CreateReturnRequest(f.ctx, ownerID, bad)
		assert.ErrorIs(t, err, ErrValidation)

		bad = urgentReturn()
		bad.Reason = "changed my mind"
		_, err = f.storage.CreateReturnRequest(f.ctx, ownerID, bad)
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestStorage_StartReturnPayment(t *testing.T) {
	t.Run("retries the session", func(t *testing.T) {
		f := newFixture(t)
		ret := &repository.ReturnRequest{
			ID: "ret-1", Reference: "RET-1", OwnerID: ownerID,
			ShippingCost: decimal.RequireFromString("8.50"), Status: string(ReturnPendingPayment),
		}

		f.returns.EXPECT().GetByOwner(f.ctx, ownerID, "ret-1").Return(ret, nil)
		f.checkout.EXPECT().CreateSession(f.ctx, gomock.Any()).Return(payment.Session{ID: "cs_2", URL: "https://pay/cs_2"}, nil)
		f.returns.EXPECT().SetPaymentSession(f.ctx, "ret-1", "cs_2", fixedTime).Return(nil)

		link, err := f.storage.StartReturnPayment(f.ctx, ownerID, "ret-1")

		require.NoError(t, err)
		assert.Equal(t, "cs_2", link.SessionID)
	})

	t.Run("already paid is a conflict", func(t *testing.T) {
		f := newFixture(t)
		f.returns.EXPECT().GetByOwner(f.ctx, ownerID, "ret-1").Return(&repository.ReturnRequest{
			ID: "ret-1", Status: string(ReturnPending),
		}, nil)

		_, err := f.storage.StartReturnPayment(f.ctx, ownerID, "ret-1")

		assert.ErrorIs(t, err, ErrConflict)
	})
}

func TestStorage_ListAllReturns(t *testing.T) {
	f := newFixture(t)
	f.returns.EXPECT().GetPaginated(f.ctx, 2, maxListLimit).Return([]*repository.ReturnRequest{{ID: "ret-1"}}, nil)

	got, err := f.storage.ListAllReturns(f.ctx, 2, 0)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "ret-1", got[0].ID)
}
