package main

import (
	"context"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/cache"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/carrier"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/config"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/kafka"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/logger"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/repository/postgresql"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/storage"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/tracking"
)

// The worker polls carriers for the packages the API enqueued and tails
// the notification and audit topics into the log.
func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		logger.New("error").Fatal("Config error", zap.Error(err))
	}

	log := logger.New(cfg.LogLevel).Named("worker")
	defer log.Sync()

	if len(cfg.KafkaBrokers) == 0 {
		log.Fatal("KAFKA_BROKERS is required for the worker")
	}

	dbPool, err := db.NewDb(ctx, cfg.DB)
	if err != nil {
		log.Fatal("Database init error", zap.Error(err))
	}
	defer dbPool.Close()

	repos := storage.Repositories{
		Packages: postgresql.NewPackageRepo(dbPool),
		Quotes:   postgresql.NewQuoteRepo(dbPool),
		Returns:  postgresql.NewReturnRepo(dbPool),
		Events:   postgresql.NewTrackingEventRepo(dbPool),
		History:  postgresql.NewHistoryRepo(dbPool),
		Payments: postgresql.NewPaymentEventRepo(),
		Outbox:   postgresql.NewOutboxTaskRepo(),
	}

	carriers, err := carrier.Load(cfg.CarriersFile)
	if err != nil {
		log.Fatal("Carrier catalog error", zap.Error(err))
	}

	stg := storage.NewStorage(dbPool, repos, storage.Collaborators{
		Tracker:  tracking.NewClient(cfg.Tracking.BaseURL, cfg.Tracking.APIKey, cfg.Tracking.Timeout),
		Carriers: carriers,
		Cache:    cache.NewTrackingCache(repos.Events, log),
	}, cfg.Policy, log)

	consumers := []*kafka.Consumer{
		kafka.NewConsumer(kafka.ConsumerConfig{
			Brokers: cfg.KafkaBrokers,
			GroupID: cfg.ConsumerGroup,
			Topic:   repository.TopicTrackingUpdates,
		}, kafka.TrackingUpdateHandler(stg, log), log),
		kafka.NewConsumer(kafka.ConsumerConfig{
			Brokers: cfg.KafkaBrokers,
			GroupID: cfg.ConsumerGroup,
			Topic:   repository.TopicNotifications,
		}, kafka.LogHandler(log.Named("notifications")), log),
		kafka.NewConsumer(kafka.ConsumerConfig{
			Brokers: cfg.KafkaBrokers,
			GroupID: cfg.ConsumerGroup,
			Topic:   repository.TopicAuditLogs,
		}, kafka.LogHandler(log.Named("audit")), log),
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, c := range consumers {
		c := c
		g.Go(func() error {
			return c.Run(gctx)
		})
	}

	log.Info("Worker started", zap.Strings("brokers", cfg.KafkaBrokers))
	if err := g.Wait(); err != nil {
		log.Error("Worker stopped with error", zap.Error(err))
		return
	}
	log.Info("Worker stopped")
}
