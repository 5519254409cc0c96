package postgresql

import (
	"context"

	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/storage"
)

type PaymentEventRepo struct{}

func NewPaymentEventRepo() storage.PaymentEventRepository {
	return &PaymentEventRepo{}
}

// MarkProcessedTx records a provider event id. It returns false if the id was
// already recorded, in which case the caller must skip settlement.
func (r *PaymentEventRepo) MarkProcessedTx(ctx context.Context, tx db.Tx, e *repository.PaymentEvent) (bool, error) {
	tag, err := tx.Exec(ctx, `
        INSERT INTO payment_events (event_id, kind, reference_id, processed_at)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (event_id) DO NOTHING
    `, e.EventID, e.Kind, e.ReferenceID, e.ProcessedAt)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
