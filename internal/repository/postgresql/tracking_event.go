package postgresql

import (
	"context"

	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/storage"
)

const trackingColumns = `id, package_id, external_id, event_type, description, location, occurred_at, raw_payload, created_at`

type TrackingEventRepo struct {
	db db.DB
}

func NewTrackingEventRepo(db db.DB) storage.TrackingEventRepository {
	return &TrackingEventRepo{db: db}
}

// InsertTx appends an event. It reports false when (package_id, external_id)
// is already recorded, which makes a refresh safe to repeat.
func (r *TrackingEventRepo) InsertTx(ctx context.Context, tx db.Tx, e *repository.TrackingEvent) (bool, error) {
	payload := e.RawPayload
	if len(payload) == 0 {
		payload = []byte("{}")
	}
	tag, err := tx.Exec(ctx, `
        INSERT INTO tracking_events (
            package_id, external_id, event_type, description, location, occurred_at, raw_payload, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        ON CONFLICT (package_id, external_id) DO NOTHING
    `, e.PackageID, e.ExternalID, e.EventType, e.Description, e.Location, e.OccurredAt, payload, e.CreatedAt)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *TrackingEventRepo) ListByPackage(ctx context.Context, packageID string) ([]*repository.TrackingEvent, error) {
	var events []*repository.TrackingEvent
	err := r.db.Select(ctx, &events, `
        SELECT `+trackingColumns+` FROM tracking_events
        WHERE package_id = $1
        ORDER BY occurred_at DESC, id DESC
    `, packageID)
	return events, err
}

// Latest returns the most recent event of every package, used to warm the
// last-known-status cache on startup.
func (r *TrackingEventRepo) Latest(ctx context.Context) ([]*repository.TrackingEvent, error) {
	var events []*repository.TrackingEvent
	err := r.db.Select(ctx, &events, `
        SELECT DISTINCT ON (package_id) `+trackingColumns+` FROM tracking_events
        ORDER BY package_id, occurred_at DESC, id DESC
    `)
	return events, err
}
