package postgresql

import (
	"context"

	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/storage"
)

type HistoryRepo struct {
	db db.DB
}

func NewHistoryRepo(db db.DB) storage.HistoryRepository {
	return &HistoryRepo{db: db}
}

func (r *HistoryRepo) CreateTx(ctx context.Context, tx db.Tx, entry *repository.HistoryEntry) error {
	_, err := tx.Exec(ctx, `
        INSERT INTO package_history (
            package_id, status, note, changed_by, changed_at
        ) VALUES ($1, $2, $3, $4, $5)
    `, entry.PackageID, entry.Status, entry.Note, entry.ChangedBy, entry.ChangedAt)
	return err
}

func (r *HistoryRepo) GetByPackageID(ctx context.Context, packageID string) ([]*repository.HistoryEntry, error) {
	var entries []*repository.HistoryEntry
	err := r.db.Select(ctx, &entries, `
        SELECT id, package_id, status, note, changed_by, changed_at FROM package_history
        WHERE package_id = $1
        ORDER BY changed_at ASC, id ASC
    `, packageID)
	return entries, err
}
