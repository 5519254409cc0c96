package storage

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/repository"
)

func TestStorage_AdvanceStatus(t *testing.T) {
	t.Run("announced to received sets the reception date", func(t *testing.T) {
		f := newFixture(t)
		var topics []string
		row := storedPackage(StatusAnnounced)
		row.ReceivedAt = nil

		f.expectCommit()
		f.packages.EXPECT().GetByIDTx(f.ctx, f.tx, packageID).Return(row, nil)
		f.packages.EXPECT().UpdateTx(f.ctx, f.tx, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ db.Tx, p *repository.Package) error {
				assert.Equal(t, StatusReceived.String(), p.Status)
				require.NotNil(t, p.ReceivedAt)
				assert.Equal(t, fixedTime, *p.ReceivedAt)
				return nil
			})
		f.history.EXPECT().CreateTx(f.ctx, f.tx, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ db.Tx, h *repository.HistoryEntry) error {
				assert.Equal(t, "warehouse", h.ChangedBy)
				assert.Equal(t, StatusReceived.String(), h.Status)
				return nil
			})
		f.expectOutbox(&topics)

		pkg, err := f.storage.AdvanceStatus(f.ctx, "warehouse", packageID, "received")

		require.NoError(t, err)
		assert.Equal(t, StatusReceived, pkg.Status)
		assert.Equal(t, []string{repository.TopicNotifications, repository.TopicAuditLogs}, topics)
	})

	t.Run("backward move is a conflict", func(t *testing.T) {
		f := newFixture(t)

		f.expectRollback()
		f.packages.EXPECT().GetByIDTx(f.ctx, f.tx, packageID).Return(storedPackage(StatusStored), nil)

		_, err := f.storage.AdvanceStatus(f.ctx, "warehouse", packageID, "RECEIVED")

		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("skipping payment is a conflict", func(t *testing.T) {
		f := newFixture(t)

		f.expectRollback()
		f.packages.EXPECT().GetByIDTx(f.ctx, f.tx, packageID).Return(storedPackage(StatusStored), nil)

		_, err := f.storage.AdvanceStatus(f.ctx, "warehouse", packageID, "SHIPPED")

		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("unknown status is a validation error", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.storage.AdvanceStatus(f.ctx, "warehouse", packageID, "LOST")

		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestStorage_WeighIn(t *testing.T) {
	t.Run("announced package becomes stored", func(t *testing.T) {
		f := newFixture(t)
		var topics []string
		row := storedPackage(StatusAnnounced)
		row.ReceivedAt = nil

		f.expectCommit()
		f.packages.EXPECT().GetByIDTx(f.ctx, f.tx, packageID).Return(row, nil)
		f.packages.EXPECT().UpdateTx(f.ctx, f.tx, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ db.Tx, p *repository.Package) error {
				assert.Equal(t, StatusStored.String(), p.Status)
				assert.Equal(t, "2.4", p.WeightKg.Decimal.String())
				assert.Equal(t, "30x20x10", p.Dimensions)
				assert.NotNil(t, p.ReceivedAt)
				return nil
			})
		f.history.EXPECT().CreateTx(f.ctx, f.tx, gomock.Any()).Return(nil)
		f.expectOutbox(&topics)

		pkg, err := f.storage.WeighIn(f.ctx, "warehouse", packageID, decimal.RequireFromString("2.4"), "30x20x10")

		require.NoError(t, err)
		assert.Equal(t, StatusStored, pkg.Status)
		// Just received, still inside the free days.
		assert.True(t, pkg.StorageFee.IsZero())
	})

	t.Run("stored package only gets new measurements", func(t *testing.T) {
		f := newFixture(t)
		var topics []string

		f.expectCommit()
		f.packages.EXPECT().GetByIDTx(f.ctx, f.tx, packageID).Return(storedPackage(StatusStored), nil)
		f.packages.EXPECT().UpdateTx(f.ctx, f.tx, gomock.Any()).Return(nil)
		f.expectOutbox(&topics)

		_, err := f.storage.WeighIn(f.ctx, "warehouse", packageID, decimal.NewFromInt(3), "")

		require.NoError(t, err)
		assert.Equal(t, []string{repository.TopicAuditLogs}, topics)
	})

	t.Run("shipped package cannot be weighed", func(t *testing.T) {
		f := newFixture(t)

		f.expectRollback()
		f.packages.EXPECT().GetByIDTx(f.ctx, f.tx, packageID).Return(storedPackage(StatusShipped), nil)

		_, err := f.storage.WeighIn(f.ctx, "warehouse", packageID, decimal.NewFromInt(3), "")

		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("zero weight is rejected", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.storage.WeighIn(f.ctx, "warehouse", packageID, decimal.Zero, "")

		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestStorage_OverrideStatus(t *testing.T) {
	t.Run("regression is recorded with its reason", func(t *testing.T) {
		f := newFixture(t)
		var topics []string

		f.expectCommit()
		f.packages.EXPECT().GetByIDTx(f.ctx, f.tx, packageID).Return(storedPackage(StatusStored), nil)
		f.packages.EXPECT().UpdateTx(f.ctx, f.tx, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ db.Tx, p *repository.Package) error {
				assert.Equal(t, StatusAnnounced.String(), p.Status)
				assert.Nil(t, p.ReceivedAt)
				return nil
			})
		f.history.EXPECT().CreateTx(f.ctx, f.tx, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ db.Tx, h *repository.HistoryEntry) error {
				assert.Equal(t, "override: wrong parcel scanned", h.Note)
				return nil
			})
		f.expectOutbox(&topics)

		pkg, err := f.storage.OverrideStatus(f.ctx, "admin", packageID, "announced", "wrong parcel scanned")

		require.NoError(t, err)
		assert.Equal(t, StatusAnnounced, pkg.Status)
		assert.Nil(t, pkg.ReceivedAt)
		assert.Equal(t, []string{repository.TopicAuditLogs}, topics)
	})

	t.Run("reason is required", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.storage.OverrideStatus(f.ctx, "admin", packageID, "STORED", " ")

		assert.ErrorIs(t, err, ErrValidation)
	})
}
