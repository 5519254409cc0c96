package postgresql

import (
	"context"
	"time"

	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/storage"
)

const returnColumns = `id, reference, package_id, owner_id, type, reason, urgency, description, weight_kg,
    length_cm, width_cm, height_cm, shipping_cost, status, payment_session_id, created_at, updated_at`

type ReturnRepo struct {
	db db.DB
}

func NewReturnRepo(db db.DB) storage.ReturnRepository {
	return &ReturnRepo{db: db}
}

// CreateTx returns repository.ErrDuplicate when the reference is taken.
func (r *ReturnRepo) CreateTx(ctx context.Context, tx db.Tx, ret *repository.ReturnRequest) error {
	_, err := tx.Exec(ctx, `
        INSERT INTO return_requests (`+returnColumns+`)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
    `, ret.ID, ret.Reference, ret.PackageID, ret.OwnerID, ret.Type, ret.Reason, ret.Urgency, ret.Description,
		ret.WeightKg, ret.LengthCm, ret.WidthCm, ret.HeightCm, ret.ShippingCost, ret.Status, ret.PaymentSessionID,
		ret.CreatedAt, ret.UpdatedAt)
	return translate(err)
}

func (r *ReturnRepo) GetByOwner(ctx context.Context, ownerID, id string) (*repository.ReturnRequest, error) {
	var ret repository.ReturnRequest
	err := r.db.Get(ctx, &ret, "SELECT "+returnColumns+" FROM return_requests WHERE id = $1 AND owner_id = $2", id, ownerID)
	if err != nil {
		return nil, translate(err)
	}
	return &ret, nil
}

func (r *ReturnRepo) GetByIDTx(ctx context.Context, tx db.Tx, id string) (*repository.ReturnRequest, error) {
	var ret repository.ReturnRequest
	err := tx.Get(ctx, &ret, "SELECT "+returnColumns+" FROM return_requests WHERE id = $1 FOR UPDATE", id)
	if err != nil {
		return nil, translate(err)
	}
	return &ret, nil
}

func (r *ReturnRepo) UpdateStatusTx(ctx context.Context, tx db.Tx, id, status string, updatedAt time.Time) error {
	tag, err := tx.Exec(ctx, `
        UPDATE return_requests SET status = $1, updated_at = $2 WHERE id = $3
    `, status, updatedAt, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *ReturnRepo) SetPaymentSession(ctx context.Context, id, sessionID string, updatedAt time.Time) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE return_requests SET payment_session_id = $1, updated_at = $2 WHERE id = $3
    `, sessionID, updatedAt, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *ReturnRepo) ListByOwner(ctx context.Context, ownerID string) ([]*repository.ReturnRequest, error) {
	var returns []*repository.ReturnRequest
	err := r.db.Select(ctx, &returns, `
        SELECT `+returnColumns+` FROM return_requests
        WHERE owner_id = $1
        ORDER BY created_at DESC
    `, ownerID)
	return returns, err
}

func (r *ReturnRepo) GetPaginated(ctx context.Context, page, limit int) ([]*repository.ReturnRequest, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit

	var returns []*repository.ReturnRequest
	err := r.db.Select(ctx, &returns, `
        SELECT `+returnColumns+` FROM return_requests
        ORDER BY created_at DESC
        LIMIT $1 OFFSET $2
    `, limit, offset)
	return returns, err
}
