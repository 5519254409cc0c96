package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	mock_db "gitlab.ozon.dev/pupkingeorgij/forwarder/internal/db/mocks"
	mock_kafka "gitlab.ozon.dev/pupkingeorgij/forwarder/internal/kafka/mocks"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/repository"
	mock_storage "gitlab.ozon.dev/pupkingeorgij/forwarder/internal/storage/mocks"
)

var publishedAt = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

type publisherFixture struct {
	ctx       context.Context
	db        *mock_db.MockDB
	tx        *mock_db.MockTx
	repo      *mock_storage.MockOutboxTaskRepository
	producer  *mock_kafka.MockProducer
	publisher *Publisher
}

func newPublisherFixture(t *testing.T) *publisherFixture {
	ctrl := gomock.NewController(t)
	f := &publisherFixture{
		ctx:      context.Background(),
		db:       mock_db.NewMockDB(ctrl),
		tx:       mock_db.NewMockTx(ctrl),
		repo:     mock_storage.NewMockOutboxTaskRepository(ctrl),
		producer: mock_kafka.NewMockProducer(ctrl),
	}
	f.publisher = NewPublisher(f.db, f.repo, f.producer, PublisherConfig{BatchSize: 10, MaxAttempts: 3}, zap.NewNop())
	f.publisher.timeNow = func() time.Time { return publishedAt }
	return f
}

func trackingTask(attempts int) *repository.OutboxTask {
	payload, _ := json.Marshal(repository.TrackingUpdateJob{PackageID: "pkg-1", TrackingNumber: "LP00123456789FR"})
	return &repository.OutboxTask{
		ID:       uuid.MustParse("a1b2c3d4-e5f6-7890-abcd-ef0123456789"),
		Status:   repository.TaskStatusCreated,
		Topic:    repository.TopicTrackingUpdates,
		Key:      "pkg-1",
		Payload:  payload,
		Attempts: attempts,
	}
}

func TestPublisher_processBatch(t *testing.T) {
	t.Run("sends claimed tasks keyed by package", func(t *testing.T) {
		f := newPublisherFixture(t)
		task := trackingTask(0)

		gomock.InOrder(
			f.db.EXPECT().BeginTx(f.ctx).Return(f.tx, nil),
			f.repo.EXPECT().GetProcessableTasks(f.ctx, f.tx, 10, 3).Return([]*repository.OutboxTask{task}, nil),
			f.repo.EXPECT().UpdateTaskStatus(f.ctx, f.tx, task.ID, repository.TaskStatusProcessing, 0, nil, nil).Return(nil),
			f.tx.EXPECT().Commit(f.ctx).Return(nil),
			f.producer.EXPECT().SendMessage(f.ctx, repository.TopicTrackingUpdates, []byte("pkg-1"), []byte(task.Payload)).Return(nil),
			f.repo.EXPECT().UpdateTaskStatus(f.ctx, f.db, task.ID, repository.TaskStatusDone, 0, nil, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ interface{}, _ uuid.UUID, _ repository.TaskStatus, _ int, _ *string, completedAt *time.Time) error {
					require.NotNil(t, completedAt)
					assert.Equal(t, publishedAt, *completedAt)
					return nil
				}),
		)

		require.NoError(t, f.publisher.processBatch(f.ctx))
	})

	t.Run("send failure counts an attempt", func(t *testing.T) {
		f := newPublisherFixture(t)
		task := trackingTask(1)

		f.db.EXPECT().BeginTx(f.ctx).Return(f.tx, nil)
		f.repo.EXPECT().GetProcessableTasks(f.ctx, f.tx, 10, 3).Return([]*repository.OutboxTask{task}, nil)
		f.repo.EXPECT().UpdateTaskStatus(f.ctx, f.tx, task.ID, repository.TaskStatusProcessing, 1, nil, nil).Return(nil)
		f.tx.EXPECT().Commit(f.ctx).Return(nil)
		f.producer.EXPECT().SendMessage(f.ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("broker unavailable"))
		f.repo.EXPECT().UpdateTaskStatus(f.ctx, f.db, task.ID, repository.TaskStatusFailed, 2, gomock.Any(), nil).DoAndReturn(
			func(_ context.Context, _ interface{}, _ uuid.UUID, _ repository.TaskStatus, _ int, lastError *string, _ *time.Time) error {
				require.NotNil(t, lastError)
				assert.Equal(t, "broker unavailable", *lastError)
				return nil
			})

		require.NoError(t, f.publisher.processBatch(f.ctx))
	})

	t.Run("empty outbox only commits", func(t *testing.T) {
		f := newPublisherFixture(t)

		f.db.EXPECT().BeginTx(f.ctx).Return(f.tx, nil)
		f.repo.EXPECT().GetProcessableTasks(f.ctx, f.tx, 10, 3).Return(nil, nil)
		f.tx.EXPECT().Commit(f.ctx).Return(nil)

		require.NoError(t, f.publisher.processBatch(f.ctx))
	})

	t.Run("claim failure rolls back", func(t *testing.T) {
		f := newPublisherFixture(t)

		f.db.EXPECT().BeginTx(f.ctx).Return(f.tx, nil)
		f.repo.EXPECT().GetProcessableTasks(f.ctx, f.tx, 10, 3).Return(nil, errors.New("db error"))
		f.tx.EXPECT().Rollback(gomock.Any()).Return(nil)

		err := f.publisher.processBatch(f.ctx)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get processable tasks")
	})
}

func TestPublisher_Shutdown(t *testing.T) {
	f := newPublisherFixture(t)
	f.producer.EXPECT().Close().Return(nil).Times(1)

	f.publisher.Shutdown()
	f.publisher.Shutdown()
}

func TestNewPublisher_Defaults(t *testing.T) {
	p := NewPublisher(nil, nil, nil, PublisherConfig{}, zap.NewNop())

	assert.Equal(t, time.Second, p.config.PollInterval)
	assert.Equal(t, 50, p.config.BatchSize)
	assert.Equal(t, 5, p.config.MaxAttempts)
}
