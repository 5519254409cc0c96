package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/metrics"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/pricing"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/repository"
)

type Repositories struct {
	Packages PackageRepository
	Quotes   QuoteRepository
	Returns  ReturnRepository
	Events   TrackingEventRepository
	History  HistoryRepository
	Payments PaymentEventRepository
	Outbox   OutboxTaskRepository
}

type Collaborators struct {
	Objects  ObjectStore
	Tracker  TrackingProvider
	Checkout PaymentProvider
	Carriers CarrierCatalog
	Cache    TrackingCache
}

// Policy groups the tunable money rules. The return tariff and the quote
// handling fee are separate tables.
type Policy struct {
	Storage  pricing.StoragePolicy
	Handling pricing.HandlingFee
	Returns  pricing.ReturnTariff
	TaxRate  decimal.Decimal
	Currency string
}

func DefaultPolicy() Policy {
	return Policy{
		Storage:  pricing.DefaultStoragePolicy(),
		Handling: pricing.DefaultHandlingFee(),
		Returns:  pricing.DefaultReturnTariff(),
		TaxRate:  pricing.DefaultTaxRate,
		Currency: "eur",
	}
}

type Storage struct {
	db          db.DB
	packageRepo PackageRepository
	quoteRepo   QuoteRepository
	returnRepo  ReturnRepository
	eventRepo   TrackingEventRepository
	historyRepo HistoryRepository
	paymentRepo PaymentEventRepository
	outboxRepo  OutboxTaskRepository

	objects  ObjectStore
	tracker  TrackingProvider
	checkout PaymentProvider
	carriers CarrierCatalog
	cache    TrackingCache

	policy  Policy
	logger  *zap.Logger
	timeNow func() time.Time
	newID   func() string
}

func NewStorage(db db.DB, repos Repositories, deps Collaborators, policy Policy, logger *zap.Logger) *Storage {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Storage{
		db:          db,
		packageRepo: repos.Packages,
		quoteRepo:   repos.Quotes,
		returnRepo:  repos.Returns,
		eventRepo:   repos.Events,
		historyRepo: repos.History,
		paymentRepo: repos.Payments,
		outboxRepo:  repos.Outbox,
		objects:     deps.Objects,
		tracker:     deps.Tracker,
		checkout:    deps.Checkout,
		carriers:    deps.Carriers,
		cache:       deps.Cache,
		policy:      policy,
		logger:      logger,
		timeNow:     time.Now,
		newID:       uuid.NewString,
	}
}

func (s *Storage) now() time.Time {
	return s.timeNow().UTC()
}

func (s *Storage) inTx(ctx context.Context, fn func(tx db.Tx) error) error {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			s.logger.Error("failed to rollback transaction", zap.Error(rbErr))
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// enqueue writes an outbox row in the caller's transaction; the publisher
// ships it to Kafka after commit.
func (s *Storage) enqueue(ctx context.Context, tx db.Tx, topic, key string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", topic, err)
	}

	now := s.now()
	task := &repository.OutboxTask{
		ID:        uuid.New(),
		Status:    repository.TaskStatusCreated,
		Payload:   data,
		Topic:     topic,
		Key:       key,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.outboxRepo.CreateTx(ctx, tx, task); err != nil {
		return fmt.Errorf("failed to create outbox task: %w", err)
	}
	return nil
}

func (s *Storage) scheduleTracking(ctx context.Context, tx db.Tx, packageID, number string) error {
	return s.enqueue(ctx, tx, repository.TopicTrackingUpdates, packageID, repository.TrackingUpdateJob{
		PackageID:      packageID,
		TrackingNumber: number,
	})
}

func (s *Storage) notify(ctx context.Context, tx db.Tx, job repository.NotificationJob) error {
	return s.enqueue(ctx, tx, repository.TopicNotifications, job.UserID, job)
}

func (s *Storage) audit(ctx context.Context, tx db.Tx, actor, action, resourceType, resourceID string, metadata map[string]string) error {
	return s.enqueue(ctx, tx, repository.TopicAuditLogs, resourceID, repository.AuditRecord{
		Timestamp:    s.now(),
		UserID:       actor,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Metadata:     metadata,
	})
}

// changeStatus moves pkg to the given status and records a history row.
// The caller has already decided the transition is allowed.
func (s *Storage) changeStatus(ctx context.Context, tx db.Tx, pkg *repository.Package, to Status, changedBy, note string) error {
	from := Status(pkg.Status)
	now := s.now()

	switch {
	case to == StatusAnnounced:
		pkg.ReceivedAt = nil
	case from == StatusAnnounced && (to == StatusReceived || to == StatusStored) && pkg.ReceivedAt == nil:
		pkg.ReceivedAt = &now
	}
	pkg.Status = string(to)
	pkg.UpdatedAt = now

	if err := s.packageRepo.UpdateTx(ctx, tx, pkg); err != nil {
		return fmt.Errorf("failed to update package status: %w", err)
	}

	entry := &repository.HistoryEntry{
		PackageID: pkg.ID,
		Status:    string(to),
		Note:      note,
		ChangedBy: changedBy,
		ChangedAt: now,
	}
	if err := s.historyRepo.CreateTx(ctx, tx, entry); err != nil {
		return fmt.Errorf("failed to add package history entry: %w", err)
	}

	metrics.StatusTransitionsTotal.WithLabelValues(from.String(), to.String()).Inc()
	return nil
}

// withFee fills the storage fee accrued as of now. It never writes.
func (s *Storage) withFee(p *repository.Package) *Package {
	pkg := toPackage(p)
	pkg.StorageFee = s.policy.Storage.Fee(p.ReceivedAt, pkg.Status == StatusStored, s.now())
	return pkg
}
