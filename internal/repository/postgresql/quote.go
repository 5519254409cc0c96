package postgresql

import (
	"context"

	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/storage"
)

const quoteColumns = `id, quote_number, package_id, owner_id, amount_ht, tax_rate, tax_amount, amount_ttc,
    base_amount, payment_status, carrier_id, carrier_name, carrier_price, carrier_delivery_time,
    payment_session_id, created_at, updated_at`

type QuoteRepo struct {
	db db.DB
}

func NewQuoteRepo(db db.DB) storage.QuoteRepository {
	return &QuoteRepo{db: db}
}

// CreateIfAbsentTx inserts the quote unless the package already has one.
// The UNIQUE constraint on package_id arbitrates concurrent callers; the
// loser gets false and reads the winner's row.
func (r *QuoteRepo) CreateIfAbsentTx(ctx context.Context, tx db.Tx, q *repository.Quote) (bool, error) {
	tag, err := tx.Exec(ctx, `
        INSERT INTO quotes (`+quoteColumns+`)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
        ON CONFLICT (package_id) DO NOTHING
    `, q.ID, q.QuoteNumber, q.PackageID, q.OwnerID, q.AmountHT, q.TaxRate, q.TaxAmount, q.AmountTTC,
		q.BaseAmount, q.PaymentStatus, q.CarrierID, q.CarrierName, q.CarrierPrice, q.CarrierDeliveryTime,
		q.PaymentSessionID, q.CreatedAt, q.UpdatedAt)
	if err != nil {
		return false, translate(err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *QuoteRepo) GetByPackageIDTx(ctx context.Context, tx db.Tx, packageID string) (*repository.Quote, error) {
	var q repository.Quote
	err := tx.Get(ctx, &q, "SELECT "+quoteColumns+" FROM quotes WHERE package_id = $1", packageID)
	if err != nil {
		return nil, translate(err)
	}
	return &q, nil
}

func (r *QuoteRepo) GetByIDTx(ctx context.Context, tx db.Tx, id string) (*repository.Quote, error) {
	var q repository.Quote
	err := tx.Get(ctx, &q, "SELECT "+quoteColumns+" FROM quotes WHERE id = $1 FOR UPDATE", id)
	if err != nil {
		return nil, translate(err)
	}
	return &q, nil
}

func (r *QuoteRepo) GetByOwnerTx(ctx context.Context, tx db.Tx, ownerID, id string) (*repository.Quote, error) {
	var q repository.Quote
	err := tx.Get(ctx, &q, "SELECT "+quoteColumns+" FROM quotes WHERE id = $1 AND owner_id = $2 FOR UPDATE", id, ownerID)
	if err != nil {
		return nil, translate(err)
	}
	return &q, nil
}

func (r *QuoteRepo) ListByOwner(ctx context.Context, ownerID string) ([]*repository.Quote, error) {
	var quotes []*repository.Quote
	err := r.db.Select(ctx, &quotes, `
        SELECT `+quoteColumns+` FROM quotes
        WHERE owner_id = $1
        ORDER BY created_at DESC
    `, ownerID)
	return quotes, err
}

func (r *QuoteRepo) UpdateTx(ctx context.Context, tx db.Tx, q *repository.Quote) error {
	tag, err := tx.Exec(ctx, `
        UPDATE quotes
        SET
            amount_ht = $1,
            tax_rate = $2,
            tax_amount = $3,
            amount_ttc = $4,
            payment_status = $5,
            carrier_id = $6,
            carrier_name = $7,
            carrier_price = $8,
            carrier_delivery_time = $9,
            payment_session_id = $10,
            updated_at = $11
        WHERE id = $12
    `, q.AmountHT, q.TaxRate, q.TaxAmount, q.AmountTTC, q.PaymentStatus, q.CarrierID, q.CarrierName,
		q.CarrierPrice, q.CarrierDeliveryTime, q.PaymentSessionID, q.UpdatedAt, q.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

// DeleteTx removes the quote; its items go with it through ON DELETE CASCADE.
func (r *QuoteRepo) DeleteTx(ctx context.Context, tx db.Tx, id string) error {
	tag, err := tx.Exec(ctx, "DELETE FROM quotes WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *QuoteRepo) AddItemTx(ctx context.Context, tx db.Tx, item *repository.QuoteItem) error {
	_, err := tx.Exec(ctx, `
        INSERT INTO quote_items (quote_id, kind, label, amount, created_at)
        VALUES ($1, $2, $3, $4, $5)
    `, item.QuoteID, item.Kind, item.Label, item.Amount, item.CreatedAt)
	return err
}

func (r *QuoteRepo) DeleteItemsTx(ctx context.Context, tx db.Tx, quoteID, kind string) error {
	_, err := tx.Exec(ctx, "DELETE FROM quote_items WHERE quote_id = $1 AND kind = $2", quoteID, kind)
	return err
}

func (r *QuoteRepo) ListItems(ctx context.Context, quoteID string) ([]*repository.QuoteItem, error) {
	var items []*repository.QuoteItem
	err := r.db.Select(ctx, &items, `
        SELECT id, quote_id, kind, label, amount, created_at FROM quote_items
        WHERE quote_id = $1
        ORDER BY id ASC
    `, quoteID)
	return items, err
}
