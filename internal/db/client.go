package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"
)

type Options struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	MaxConns int32
}

func NewDb(ctx context.Context, opts Options) (*Database, error) {
	cfg, err := pgxpool.ParseConfig(generateDsn(opts))
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	if opts.MaxConns > 0 {
		cfg.MaxConns = opts.MaxConns
	}

	pool, err := pgxpool.ConnectConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return NewDatabase(pool), nil
}

func generateDsn(opts Options) string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		opts.Host, opts.Port, opts.User, opts.Password, opts.Name)
}
