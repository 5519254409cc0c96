package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/carrier"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/config"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/handler"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/logger"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/repository/postgresql"
	"gitlab.ozon.dev/pupkingeorgij/forwarder/internal/storage"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(cfg.LogLevel)
	defer log.Sync()

	dbPool, err := db.NewDb(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("database init: %w", err)
	}
	defer dbPool.Close()

	carriers, err := carrier.Load(cfg.CarriersFile)
	if err != nil {
		return err
	}

	stg := storage.NewStorage(dbPool, storage.Repositories{
		Packages: postgresql.NewPackageRepo(dbPool),
		Quotes:   postgresql.NewQuoteRepo(dbPool),
		Returns:  postgresql.NewReturnRepo(dbPool),
		Events:   postgresql.NewTrackingEventRepo(dbPool),
		History:  postgresql.NewHistoryRepo(dbPool),
		Payments: postgresql.NewPaymentEventRepo(),
		Outbox:   postgresql.NewOutboxTaskRepo(),
	}, storage.Collaborators{Carriers: carriers}, cfg.Policy, log)

	actor := os.Getenv("USER")
	if actor == "" {
		actor = "forwarderctl"
	}

	root := &cobra.Command{
		Use:           "forwarderctl",
		Short:         "Operator console for the forwarding warehouse",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(handler.New(stg, actor).Commands()...)

	log.Debug("Running command", zap.Strings("args", os.Args[1:]), zap.String("actor", actor))
	return root.ExecuteContext(ctx)
}
