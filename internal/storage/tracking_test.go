package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/tracking"
)

func trackedPackage(status Status) *repository.Package {
	p := storedPackage(status)
	number := "LP00123456789FR"
	p.TrackingNumber = &number
	return p
}

func carrierEvents() []tracking.Event {
	t0 := time.Date(2025, 2, 27, 8, 0, 0, 0, time.UTC)
	return []tracking.Event{
		{ID: "e1", Stage: tracking.StageInfoReceived, Description: "Prise en charge annoncée", OccurredAt: t0},
		{ID: "e2", Stage: "InTransit", Description: "En transit vers Pointe-à-Pitre", Location: "Roissy", OccurredAt: t0.Add(20 * time.Hour)},
	}
}

func TestStorage_RefreshTracking(t *testing.T) {
	t.Run("stores only new events and ships a paid package", func(t *testing.T) {
		f := newFixture(t)
		var topics []string

		f.packages.EXPECT().GetByID(f.ctx, packageID).Return(trackedPackage(StatusPaid), nil)
		f.tracker.EXPECT().FetchEvents(f.ctx, "LP00123456789FR").Return(tracking.Result{Success: true, Events: carrierEvents()})
		f.expectCommit()
		f.packages.EXPECT().GetByIDTx(f.ctx, f.tx, packageID).Return(trackedPackage(StatusPaid), nil)
		f.events.EXPECT().InsertTx(f.ctx, f.tx, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ db.Tx, e *repository.TrackingEvent) (bool, error) {
				// e1 was stored by an earlier refresh.
				return e.ExternalID != "e1", nil
			}).Times(2)
		f.packages.EXPECT().UpdateTx(f.ctx, f.tx, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ db.Tx, p *repository.Package) error {
				assert.Equal(t, StatusShipped.String(), p.Status)
				return nil
			})
		f.history.EXPECT().CreateTx(f.ctx, f.tx, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ db.Tx, h *repository.HistoryEntry) error {
				assert.Equal(t, trackingActor, h.ChangedBy)
				assert.Equal(t, "carrier: En transit vers Pointe-à-Pitre", h.Note)
				return nil
			})
		f.expectOutbox(&topics)
		f.cache.EXPECT().Set(gomock.Any()).Do(func(e *repository.TrackingEvent) {
			assert.Equal(t, "e2", e.ExternalID)
		})

		res, err := f.storage.RefreshTracking(f.ctx, packageID)

		require.NoError(t, err)
		assert.True(t, res.Success)
		assert.Equal(t, 1, res.NewEvents)
		assert.Equal(t, StatusShipped, res.Status)
		assert.Equal(t, []string{repository.TopicNotifications}, topics)
	})

	t.Run("provider failure is reported, not raised", func(t *testing.T) {
		f := newFixture(t)

		f.packages.EXPECT().GetByID(f.ctx, packageID).Return(trackedPackage(StatusShipped), nil)
		f.tracker.EXPECT().FetchEvents(f.ctx, "LP00123456789FR").Return(tracking.Result{Error: "context deadline exceeded"})

		res, err := f.storage.RefreshTracking(f.ctx, packageID)

		require.NoError(t, err)
		assert.False(t, res.Success)
		assert.Equal(t, "context deadline exceeded", res.Error)
		assert.Equal(t, StatusShipped, res.Status)
	})

	t.Run("package without tracking number", func(t *testing.T) {
		f := newFixture(t)
		f.packages.EXPECT().GetByID(f.ctx, packageID).Return(storedPackage(StatusPaid), nil)

		_, err := f.storage.RefreshTracking(f.ctx, packageID)

		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestStorage_RefreshOwnedTracking_Degrades(t *testing.T) {
	f := newFixture(t)
	last := &repository.TrackingEvent{PackageID: packageID, ExternalID: "e2", Description: "En transit", OccurredAt: fixedTime}

	f.packages.EXPECT().GetByOwner(f.ctx, ownerID, packageID).Return(trackedPackage(StatusShipped), nil)
	f.tracker.EXPECT().FetchEvents(f.ctx, gomock.Any()).Return(tracking.Result{Error: "tracking API returned 503"})
	f.events.EXPECT().ListByPackage(f.ctx, packageID).Return([]*repository.TrackingEvent{last}, nil)

	view, err := f.storage.RefreshOwnedTracking(f.ctx, ownerID, packageID)

	require.NoError(t, err)
	assert.Equal(t, "tracking API returned 503", view.RefreshError)
	require.NotNil(t, view.LastEvent)
	assert.Equal(t, "En transit", view.LastEvent.Description)
	assert.Equal(t, StatusShipped, view.Status)
}

func TestStorage_TrackingStatus(t *testing.T) {
	t.Run("served from cache", func(t *testing.T) {
		f := newFixture(t)

		f.packages.EXPECT().GetByOwner(f.ctx, ownerID, packageID).Return(trackedPackage(StatusShipped), nil)
		f.cache.EXPECT().Get(packageID).Return(&repository.TrackingEvent{Description: "Livré"}, true)

		view, err := f.storage.TrackingStatus(f.ctx, ownerID, packageID)

		require.NoError(t, err)
		assert.Equal(t, "Livré", view.LastEvent.Description)
		assert.Equal(t, "LP00123456789FR", view.TrackingNumber)
	})

	t.Run("cache miss reads the ledger and warms the cache", func(t *testing.T) {
		f := newFixture(t)
		newest := &repository.TrackingEvent{PackageID: packageID, Description: "En transit"}

		f.packages.EXPECT().GetByOwner(f.ctx, ownerID, packageID).Return(trackedPackage(StatusShipped), nil)
		f.cache.EXPECT().Get(packageID).Return(nil, false)
		f.events.EXPECT().ListByPackage(f.ctx, packageID).Return([]*repository.TrackingEvent{newest}, nil)
		f.cache.EXPECT().Set(newest)

		view, err := f.storage.TrackingStatus(f.ctx, ownerID, packageID)

		require.NoError(t, err)
		assert.Equal(t, "En transit", view.LastEvent.Description)
	})
}

func TestInferStatus(t *testing.T) {
	moving := []tracking.Event{{Stage: "InTransit"}}
	delivered := []tracking.Event{{Stage: "InTransit"}, {Stage: tracking.StageDelivered}}
	announced := []tracking.Event{{Stage: tracking.StageInfoReceived}}

	tests := []struct {
		name    string
		current Status
		events  []tracking.Event
		want    []Status
	}{
		{name: "paid and moving", current: StatusPaid, events: moving, want: []Status{StatusShipped}},
		{name: "paid and delivered", current: StatusPaid, events: delivered, want: []Status{StatusShipped, StatusDelivered}},
		{name: "shipped and delivered", current: StatusShipped, events: delivered, want: []Status{StatusDelivered}},
		{name: "shipped and moving", current: StatusShipped, events: moving},
		{name: "stored packages are left to the warehouse", current: StatusStored, events: delivered},
		{name: "label only", current: StatusPaid, events: announced},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, inferStatus(tc.current, tc.events))
		})
	}
}
