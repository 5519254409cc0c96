package storage

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/metrics"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/tracking"
)

const trackingActor = "tracking"

// RefreshTracking pulls the carrier's events for a package. A provider
// failure comes back as an unsuccessful TrackingRefresh, never as an error;
// errors are reserved for lookups and the database.
func (s *Storage) RefreshTracking(ctx context.Context, packageID string) (*TrackingRefresh, error) {
	pkg, err := s.packageRepo.GetByID(ctx, packageID)
	if err != nil {
		return nil, lookupErr("package", err)
	}
	return s.refresh(ctx, pkg)
}

// RefreshOwnedTracking refreshes on the owner's request and returns the
// tracking page. A provider failure degrades to the last known state.
func (s *Storage) RefreshOwnedTracking(ctx context.Context, ownerID, packageID string) (*TrackingView, error) {
	pkg, err := s.packageRepo.GetByOwner(ctx, ownerID, packageID)
	if err != nil {
		return nil, lookupErr("package", err)
	}

	res, err := s.refresh(ctx, pkg)
	if err != nil {
		return nil, err
	}

	view, err := s.trackingView(ctx, pkg)
	if err != nil {
		return nil, err
	}
	view.Status = res.Status
	view.RefreshError = res.Error
	return view, nil
}

func (s *Storage) refresh(ctx context.Context, pkg *repository.Package) (*TrackingRefresh, error) {
	if pkg.TrackingNumber == nil {
		return nil, validationf("package %s has no tracking number", pkg.ID)
	}
	logger := s.logger.With(zap.String("package_id", pkg.ID), zap.String("tracking_number", *pkg.TrackingNumber))

	if s.tracker == nil {
		return &TrackingRefresh{Error: "tracking provider is not configured", Status: Status(pkg.Status)}, nil
	}

	result := s.tracker.FetchEvents(ctx, *pkg.TrackingNumber)
	if !result.Success {
		metrics.TrackingRefreshesTotal.WithLabelValues("failed").Inc()
		logger.Warn("tracking refresh failed", zap.String("error", result.Error))
		return &TrackingRefresh{Error: result.Error, Status: Status(pkg.Status)}, nil
	}

	var (
		inserted int
		newest   *repository.TrackingEvent
		status   Status
	)
	err := s.inTx(ctx, func(tx db.Tx) error {
		locked, err := s.packageRepo.GetByIDTx(ctx, tx, pkg.ID)
		if err != nil {
			return lookupErr("package", err)
		}

		now := s.now()
		for _, e := range result.Events {
			row := &repository.TrackingEvent{
				PackageID:   pkg.ID,
				ExternalID:  e.ExternalID(),
				EventType:   e.Stage,
				Description: e.Description,
				Location:    stringPtr(e.Location),
				OccurredAt:  e.OccurredAt.UTC(),
				RawPayload:  e.Raw,
				CreatedAt:   now,
			}
			fresh, err := s.eventRepo.InsertTx(ctx, tx, row)
			if err != nil {
				return fmt.Errorf("failed to add tracking event: %w", err)
			}
			if fresh {
				inserted++
			}
			if newest == nil || row.OccurredAt.After(newest.OccurredAt) {
				newest = row
			}
		}

		for _, next := range inferStatus(Status(locked.Status), result.Events) {
			note := "carrier update"
			if newest != nil {
				note = "carrier: " + newest.Description
			}
			if err := s.changeStatus(ctx, tx, locked, next, trackingActor, note); err != nil {
				return err
			}
			if err := s.notifyStatus(ctx, tx, locked); err != nil {
				return err
			}
		}
		status = Status(locked.Status)
		return nil
	})
	if err != nil {
		metrics.TrackingRefreshesTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	if newest != nil && s.cache != nil {
		s.cache.Set(newest)
	}
	metrics.TrackingRefreshesTotal.WithLabelValues("ok").Inc()
	metrics.TrackingEventsStoredTotal.Add(float64(inserted))
	logger.Info("tracking refreshed", zap.Int("events", len(result.Events)), zap.Int("new", inserted), zap.String("status", status.String()))

	return &TrackingRefresh{Success: true, NewEvents: inserted, Status: status}, nil
}

// inferStatus returns the forward steps the carrier events justify. Only a
// paid or shipped package moves; anything earlier is the warehouse's call.
func inferStatus(current Status, events []tracking.Event) []Status {
	var moved, delivered bool
	for _, e := range events {
		if e.IsDelivered() {
			delivered = true
		}
		if e.IsMovement() {
			moved = true
		}
	}

	switch current {
	case StatusPaid:
		if delivered {
			return []Status{StatusShipped, StatusDelivered}
		}
		if moved {
			return []Status{StatusShipped}
		}
	case StatusShipped:
		if delivered {
			return []Status{StatusDelivered}
		}
	}
	return nil
}

func (s *Storage) ListTrackingEvents(ctx context.Context, ownerID, packageID string) ([]TrackingEvent, error) {
	if _, err := s.packageRepo.GetByOwner(ctx, ownerID, packageID); err != nil {
		return nil, lookupErr("package", err)
	}
	rows, err := s.eventRepo.ListByPackage(ctx, packageID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tracking events: %w", err)
	}
	return toTrackingEvents(rows), nil
}

// GetTracking returns the package's tracking page from stored events only.
func (s *Storage) GetTracking(ctx context.Context, ownerID, packageID string) (*TrackingView, error) {
	pkg, err := s.packageRepo.GetByOwner(ctx, ownerID, packageID)
	if err != nil {
		return nil, lookupErr("package", err)
	}
	return s.trackingView(ctx, pkg)
}

// TrackingStatus answers from the last-known cache and only reads the
// ledger on a miss.
func (s *Storage) TrackingStatus(ctx context.Context, ownerID, packageID string) (*TrackingView, error) {
	pkg, err := s.packageRepo.GetByOwner(ctx, ownerID, packageID)
	if err != nil {
		return nil, lookupErr("package", err)
	}

	view := newTrackingView(pkg)
	if s.cache != nil {
		if cached, ok := s.cache.Get(pkg.ID); ok {
			last := toTrackingEvent(cached)
			view.LastEvent = &last
			return view, nil
		}
	}

	rows, err := s.eventRepo.ListByPackage(ctx, pkg.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tracking events: %w", err)
	}
	if len(rows) > 0 {
		last := toTrackingEvent(rows[0])
		view.LastEvent = &last
		if s.cache != nil {
			s.cache.Set(rows[0])
		}
	}
	return view, nil
}

func (s *Storage) trackingView(ctx context.Context, pkg *repository.Package) (*TrackingView, error) {
	rows, err := s.eventRepo.ListByPackage(ctx, pkg.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tracking events: %w", err)
	}

	view := newTrackingView(pkg)
	view.Events = toTrackingEvents(rows)
	if len(view.Events) > 0 {
		last := view.Events[0]
		view.LastEvent = &last
	}
	return view, nil
}

func newTrackingView(pkg *repository.Package) *TrackingView {
	view := &TrackingView{PackageID: pkg.ID, Status: Status(pkg.Status)}
	if pkg.TrackingNumber != nil {
		view.TrackingNumber = *pkg.TrackingNumber
	}
	return view
}

func toTrackingEvents(rows []*repository.TrackingEvent) []TrackingEvent {
	out := make([]TrackingEvent, 0, len(rows))
	for _, row := range rows {
		out = append(out, toTrackingEvent(row))
	}
	return out
}
