package pg

import (
	"context"
	"fmt"
	"time"

	infraconfig "stocksummary-service/internal/infrastructure/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a pgx pool. Both binaries share one pool per process.
type DB struct{ Pool *pgxpool.Pool }

// Connect opens a pool against url and verifies it with a ping.
func Connect(ctx context.Context, url string) (*DB, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	cfg.MaxConns = infraconfig.DefaultPGMaxConns
	cfg.MinConns = infraconfig.DefaultPGMinConns
	cfg.MaxConnIdleTime = 2 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect pg: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping pg: %w", err)
	}
	return &DB{Pool: pool}, nil
}

func (d *DB) Close()                         { d.Pool.Close() }
func (d *DB) Ping(ctx context.Context) error { return d.Pool.Ping(ctx) }
