//go:generate mockgen -source ./repositories.go -destination=./mocks/repositories.go -package=mock_storage
package storage

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/repository"
)

type PackageRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, pkg *repository.Package) error
	GetByID(ctx context.Context, id string) (*repository.Package, error)
	GetByIDTx(ctx context.Context, tx db.Tx, id string) (*repository.Package, error)
	GetByOwner(ctx context.Context, ownerID, id string) (*repository.Package, error)
	GetByOwnerTx(ctx context.Context, tx db.Tx, ownerID, id string) (*repository.Package, error)
	GetByTracking(ctx context.Context, ownerID, trackingNumber string) (*repository.Package, error)
	List(ctx context.Context, filter repository.PackageFilter) ([]*repository.Package, error)
	UpdateTx(ctx context.Context, tx db.Tx, pkg *repository.Package) error
	SetStorageFee(ctx context.Context, id string, fee decimal.Decimal, updatedAt time.Time) error
	DeleteTx(ctx context.Context, tx db.Tx, id string) error
}

type QuoteRepository interface {
	CreateIfAbsentTx(ctx context.Context, tx db.Tx, quote *repository.Quote) (bool, error)
	GetByPackageIDTx(ctx context.Context, tx db.Tx, packageID string) (*repository.Quote, error)
	GetByIDTx(ctx context.Context, tx db.Tx, id string) (*repository.Quote, error)
	GetByOwnerTx(ctx context.Context, tx db.Tx, ownerID, id string) (*repository.Quote, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*repository.Quote, error)
	UpdateTx(ctx context.Context, tx db.Tx, quote *repository.Quote) error
	DeleteTx(ctx context.Context, tx db.Tx, id string) error
	AddItemTx(ctx context.Context, tx db.Tx, item *repository.QuoteItem) error
	DeleteItemsTx(ctx context.Context, tx db.Tx, quoteID, kind string) error
	ListItems(ctx context.Context, quoteID string) ([]*repository.QuoteItem, error)
}

type ReturnRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, req *repository.ReturnRequest) error
	GetByOwner(ctx context.Context, ownerID, id string) (*repository.ReturnRequest, error)
	GetByIDTx(ctx context.Context, tx db.Tx, id string) (*repository.ReturnRequest, error)
	UpdateStatusTx(ctx context.Context, tx db.Tx, id, status string, updatedAt time.Time) error
	SetPaymentSession(ctx context.Context, id, sessionID string, updatedAt time.Time) error
	ListByOwner(ctx context.Context, ownerID string) ([]*repository.ReturnRequest, error)
	GetPaginated(ctx context.Context, page, limit int) ([]*repository.ReturnRequest, error)
}

type TrackingEventRepository interface {
	InsertTx(ctx context.Context, tx db.Tx, event *repository.TrackingEvent) (bool, error)
	ListByPackage(ctx context.Context, packageID string) ([]*repository.TrackingEvent, error)
	Latest(ctx context.Context) ([]*repository.TrackingEvent, error)
}

type HistoryRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, entry *repository.HistoryEntry) error
	GetByPackageID(ctx context.Context, packageID string) ([]*repository.HistoryEntry, error)
}

type PaymentEventRepository interface {
	MarkProcessedTx(ctx context.Context, tx db.Tx, event *repository.PaymentEvent) (bool, error)
}

type OutboxTaskRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, task *repository.OutboxTask) error
	GetProcessableTasks(ctx context.Context, q db.Querier, limit, maxAttempts int) ([]*repository.OutboxTask, error)
	UpdateTaskStatus(ctx context.Context, q db.Querier, id uuid.UUID, status repository.TaskStatus, attempts int, lastError *string, completedAt *time.Time) error
}

type UserRepository interface {
	CreateUser(ctx context.Context, username, password string) error
	ValidateUser(ctx context.Context, username, password string) (bool, error)
	EnsureAdmin(ctx context.Context, username, password string) error
}
