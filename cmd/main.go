package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/cache"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/carrier"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/config"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/grpcserver"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/kafka"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/logger"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/objectstore"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/payment"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/repository/postgresql"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/server"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/storage"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/tracking"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		logger.New("error").Fatal("Config error", zap.Error(err))
	}

	log := logger.New(cfg.LogLevel)
	defer log.Sync()

	dbPool, err := db.NewDb(ctx, cfg.DB)
	if err != nil {
		log.Fatal("Database init error", zap.Error(err))
	}
	defer dbPool.Close()

	userRepo := postgresql.NewUserRepo(dbPool)
	if cfg.AdminUsername != "" && cfg.AdminPassword != "" {
		if err := userRepo.EnsureAdmin(ctx, cfg.AdminUsername, cfg.AdminPassword); err != nil {
			log.Fatal("Admin bootstrap failed", zap.Error(err))
		}
	}

	repos := storage.Repositories{
		Packages: postgresql.NewPackageRepo(dbPool),
		Quotes:   postgresql.NewQuoteRepo(dbPool),
		Returns:  postgresql.NewReturnRepo(dbPool),
		Events:   postgresql.NewTrackingEventRepo(dbPool),
		History:  postgresql.NewHistoryRepo(dbPool),
		Payments: postgresql.NewPaymentEventRepo(),
		Outbox:   postgresql.NewOutboxTaskRepo(),
	}

	trackingCache := cache.NewTrackingCache(repos.Events, log)
	if err := trackingCache.LoadInitialData(ctx); err != nil {
		log.Warn("Tracking cache warm-up failed, starting cold", zap.Error(err))
	}

	carriers, err := carrier.Load(cfg.CarriersFile)
	if err != nil {
		log.Fatal("Carrier catalog error", zap.Error(err))
	}

	deps := storage.Collaborators{
		Tracker:  tracking.NewClient(cfg.Tracking.BaseURL, cfg.Tracking.APIKey, cfg.Tracking.Timeout),
		Checkout: payment.NewClient(cfg.Payment),
		Carriers: carriers,
		Cache:    trackingCache,
	}
	if cfg.Supabase.URL != "" {
		objects, err := objectstore.NewSupabaseStore(cfg.Supabase.URL, cfg.Supabase.ServiceRoleKey, cfg.Supabase.Bucket)
		if err != nil {
			log.Fatal("Object store init error", zap.Error(err))
		}
		deps.Objects = objects
	} else {
		log.Warn("Object storage is not configured, photo uploads are disabled")
	}

	stg := storage.NewStorage(dbPool, repos, deps, cfg.Policy, log)

	producer := kafka.NewProducer(cfg.KafkaBrokers, log)
	publisher := kafka.NewPublisher(dbPool, repos.Outbox, producer, cfg.Outbox, log)

	// The audit trail goes straight to the broker; losing it is logged, not retried.
	auditProducer := kafka.NewProducer(cfg.KafkaBrokers, log)
	defer auditProducer.Close()

	srv := server.New(stg, userRepo, server.NewProducerAuditSink(auditProducer), server.Config{
		JWTSecret:     cfg.Supabase.JWTSecret,
		WebhookSecret: cfg.WebhookSecret,
	}, log)
	health := grpcserver.NewServer(dbPool, 0, log)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(gctx, cfg.HTTPPort)
	})
	g.Go(func() error {
		return health.Run(gctx, cfg.GRPCPort)
	})
	g.Go(func() error {
		publisher.Run(gctx)
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		publisher.Shutdown()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("Service stopped with error", zap.Error(err))
		return
	}
	log.Info("Service gracefully stopped")
}
