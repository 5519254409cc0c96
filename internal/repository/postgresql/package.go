package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/storage"
)

const packageColumns = `id, owner_id, tracking_number, description, weight_kg, dimensions, declared_value,
    photos, status, received_at, storage_fee, created_at, updated_at`

type PackageRepo struct {
	db db.DB
}

func NewPackageRepo(db db.DB) storage.PackageRepository {
	return &PackageRepo{db: db}
}

func (r *PackageRepo) CreateTx(ctx context.Context, tx db.Tx, pkg *repository.Package) error {
	_, err := tx.Exec(ctx, `
        INSERT INTO packages (`+packageColumns+`)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
    `, pkg.ID, pkg.OwnerID, pkg.TrackingNumber, pkg.Description, pkg.WeightKg, pkg.Dimensions, pkg.DeclaredValue,
		photosOrEmpty(pkg.Photos), pkg.Status, pkg.ReceivedAt, pkg.StorageFee, pkg.CreatedAt, pkg.UpdatedAt)
	return translate(err)
}

func (r *PackageRepo) GetByID(ctx context.Context, id string) (*repository.Package, error) {
	var pkg repository.Package
	err := r.db.Get(ctx, &pkg, "SELECT "+packageColumns+" FROM packages WHERE id = $1", id)
	if err != nil {
		return nil, translate(err)
	}
	return &pkg, nil
}

func (r *PackageRepo) GetByIDTx(ctx context.Context, tx db.Tx, id string) (*repository.Package, error) {
	var pkg repository.Package
	err := tx.Get(ctx, &pkg, "SELECT "+packageColumns+" FROM packages WHERE id = $1 FOR UPDATE", id)
	if err != nil {
		return nil, translate(err)
	}
	return &pkg, nil
}

func (r *PackageRepo) GetByOwner(ctx context.Context, ownerID, id string) (*repository.Package, error) {
	var pkg repository.Package
	err := r.db.Get(ctx, &pkg, "SELECT "+packageColumns+" FROM packages WHERE id = $1 AND owner_id = $2", id, ownerID)
	if err != nil {
		return nil, translate(err)
	}
	return &pkg, nil
}

func (r *PackageRepo) GetByOwnerTx(ctx context.Context, tx db.Tx, ownerID, id string) (*repository.Package, error) {
	var pkg repository.Package
	err := tx.Get(ctx, &pkg, "SELECT "+packageColumns+" FROM packages WHERE id = $1 AND owner_id = $2 FOR UPDATE", id, ownerID)
	if err != nil {
		return nil, translate(err)
	}
	return &pkg, nil
}

func (r *PackageRepo) GetByTracking(ctx context.Context, ownerID, trackingNumber string) (*repository.Package, error) {
	var pkg repository.Package
	err := r.db.Get(ctx, &pkg, `
        SELECT `+packageColumns+` FROM packages
        WHERE owner_id = $1 AND tracking_number = $2
        ORDER BY created_at DESC
        LIMIT 1
    `, ownerID, trackingNumber)
	if err != nil {
		return nil, translate(err)
	}
	return &pkg, nil
}

// List builds its WHERE clause only from the typed filter; free text never
// reaches the query string.
func (r *PackageRepo) List(ctx context.Context, filter repository.PackageFilter) ([]*repository.Package, error) {
	query, args := buildPackageQuery(filter)

	var pkgs []*repository.Package
	err := r.db.Select(ctx, &pkgs, query, args...)
	return pkgs, err
}

func buildPackageQuery(filter repository.PackageFilter) (string, []interface{}) {
	var (
		conds []string
		args  []interface{}
	)
	next := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.OwnerID != "" {
		conds = append(conds, "owner_id = "+next(filter.OwnerID))
	}
	if len(filter.Statuses) > 0 {
		conds = append(conds, "status = ANY("+next(filter.Statuses)+")")
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		p := next("%" + escapeLike(s) + "%")
		conds = append(conds, "(description ILIKE "+p+" OR tracking_number ILIKE "+p+")")
	}

	query := "SELECT " + packageColumns + " FROM packages"
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC"

	if filter.Limit > 0 {
		query += " LIMIT " + next(filter.Limit)
	}
	if filter.Offset > 0 {
		query += " OFFSET " + next(filter.Offset)
	}
	return query, args
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func (r *PackageRepo) UpdateTx(ctx context.Context, tx db.Tx, pkg *repository.Package) error {
	tag, err := tx.Exec(ctx, `
        UPDATE packages
        SET
            tracking_number = $1,
            description = $2,
            weight_kg = $3,
            dimensions = $4,
            declared_value = $5,
            photos = $6,
            status = $7,
            received_at = $8,
            updated_at = $9
        WHERE id = $10
    `, pkg.TrackingNumber, pkg.Description, pkg.WeightKg, pkg.Dimensions, pkg.DeclaredValue,
		photosOrEmpty(pkg.Photos), pkg.Status, pkg.ReceivedAt, pkg.UpdatedAt, pkg.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

// SetStorageFee is the only statement that writes storage_fee.
func (r *PackageRepo) SetStorageFee(ctx context.Context, id string, fee decimal.Decimal, updatedAt time.Time) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE packages SET storage_fee = $1, updated_at = $2 WHERE id = $3
    `, fee, updatedAt, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *PackageRepo) DeleteTx(ctx context.Context, tx db.Tx, id string) error {
	tag, err := tx.Exec(ctx, "DELETE FROM packages WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func photosOrEmpty(photos []byte) []byte {
	if len(photos) == 0 {
		return []byte("[]")
	}
	return photos
}
