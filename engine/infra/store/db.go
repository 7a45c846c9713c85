package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/todoman/todoman/pkg/config"
	"github.com/todoman/todoman/pkg/logger"
)

// DBInterface defines the minimal interface needed by repositories.
// This allows both a real pgxpool.Pool and pgxmock.PgxPoolIface to be used.
type DBInterface interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// DB wraps a pgx connection pool.
type DB struct {
	pool *pgxpool.Pool
}

// NewDB creates a connection pool from the database configuration and
// verifies connectivity with a bounded ping.
func NewDB(ctx context.Context, cfg *config.DatabaseConfig) (*DB, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	poolConfig.MaxConns = 20
	poolConfig.MinConns = 2
	poolConfig.HealthCheckPeriod = 30 * time.Second
	poolConfig.ConnConfig.ConnectTimeout = 5 * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("creating pool: %w", err)
	}

	pingCtx, pingCancel := context.WithTimeout(ctx, 3*time.Second)
	defer pingCancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	log := logger.FromContext(ctx)
	log.Info("Database connection established",
		"host", cfg.Host,
		"port", cfg.Port,
		"db_name", cfg.Name,
	)
	return &DB{pool: pool}, nil
}

// Close shuts down the connection pool.
func (db *DB) Close(ctx context.Context) {
	db.pool.Close()
	logger.FromContext(ctx).Info("Database connection closed")
}

// Pool returns the underlying pgxpool.Pool.
func (db *DB) Pool() *pgxpool.Pool {
	return db.pool
}

// Exec delegates to the pool's Exec method.
func (db *DB) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return db.pool.Exec(ctx, sql, arguments...)
}

// Query delegates to the pool's Query method.
func (db *DB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return db.pool.Query(ctx, sql, args...)
}

// QueryRow delegates to the pool's QueryRow method.
func (db *DB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return db.pool.QueryRow(ctx, sql, args...)
}

// Begin delegates to the pool's Begin method.
func (db *DB) Begin(ctx context.Context) (pgx.Tx, error) {
	return db.pool.Begin(ctx)
}

// WithTx executes fn within a transaction: commit on normal return,
// rollback on error or panic. The connection is returned to the pool on
// every exit path.
func WithTx(ctx context.Context, db DBInterface, fn func(pgx.Tx) error) (err error) {
	log := logger.FromContext(ctx)
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				log.Error("Failed to rollback transaction", "error", rbErr)
			}
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				log.Error("Failed to rollback transaction", "error", rbErr)
			}
			return
		}
		if commitErr := tx.Commit(ctx); commitErr != nil {
			log.Error("Failed to commit transaction", "error", commitErr)
			err = commitErr
		}
	}()

	err = fn(tx)
	return err
}

// WithTx executes fn within a transaction on this pool.
func (db *DB) WithTx(ctx context.Context, fn func(pgx.Tx) error) error {
	return WithTx(ctx, db, fn)
}
