// Copyright 2026 NeetStand Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/neetstand/admin-service/internal/logging"
	"github.com/neetstand/admin-service/internal/monitoring"
	"github.com/neetstand/admin-service/internal/tracing"
)

const defaultTxTimeout = time.Second * 60

type lazyTxContextKey struct{}

var lazyTxKey lazyTxContextKey

type Config struct {
	DSN             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	TracingEnabled  bool
}

// lazyTx defers BeginTx until the first statement actually runs, so that
// wrapping read-only work in WithTx costs nothing.
type lazyTx struct {
	db        *sql.DB
	tx        TxInterface
	logger    logging.LoggerInterface
	committed bool
	cancel    context.CancelFunc
	beginErr  error
}

func (lt *lazyTx) get() (TxInterface, error) {
	if lt.tx != nil {
		return lt.tx, nil
	}
	if lt.beginErr != nil {
		return nil, lt.beginErr
	}

	// Detached from the request context so a canceled request cannot kill a
	// half-applied transaction; bounded by a timeout instead.
	ctx, cancel := context.WithTimeout(context.Background(), defaultTxTimeout)
	tx, err := lt.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		cancel()
		lt.beginErr = err
		return nil, err
	}

	lt.tx = tx
	lt.cancel = cancel
	return tx, nil
}

func (lt *lazyTx) isStarted() bool {
	return lt.tx != nil
}

type DBClient struct {
	pool *pgxpool.Pool
	db   *sql.DB

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// txErrRunner carries a failed BeginTx into every statement issued inside the
// transaction scope, so work requested under WithTx never runs on the pool.
type txErrRunner struct {
	err error
}

func (r txErrRunner) Exec(string, ...any) (sql.Result, error) { return nil, r.err }

func (r txErrRunner) Query(string, ...any) (*sql.Rows, error) { return nil, r.err }

func (r txErrRunner) ExecContext(context.Context, string, ...any) (sql.Result, error) {
	return nil, r.err
}

func (r txErrRunner) QueryContext(context.Context, string, ...any) (*sql.Rows, error) {
	return nil, r.err
}

func (r txErrRunner) QueryRowContext(context.Context, string, ...any) sq.RowScanner {
	return errRow{err: r.err}
}

type errRow struct {
	err error
}

func (r errRow) Scan(...any) error { return r.err }

// Statement returns a squirrel builder bound to the transaction in ctx when
// one exists, otherwise to the pool.
func (d *DBClient) Statement(ctx context.Context) sq.StatementBuilderType {
	if lt, ok := ctx.Value(lazyTxKey).(*lazyTx); ok {
		tx, err := lt.get()
		if err != nil {
			d.logger.Errorf("failed to start lazy transaction: %v", err)
			return sq.StatementBuilder.
				PlaceholderFormat(sq.Dollar).
				RunWith(txErrRunner{err: err})
		}

		return sq.StatementBuilder.
			PlaceholderFormat(sq.Dollar).
			RunWith(tx)
	}

	return sq.StatementBuilder.
		PlaceholderFormat(sq.Dollar).
		RunWith(d.db)
}

// WithTx runs fn with a transaction attached to its context. Every statement
// issued through Statement inside fn joins that transaction. The transaction
// is rolled back when fn errors and committed otherwise; if fn never touched
// the database, nothing is begun or committed.
func (d *DBClient) WithTx(ctx context.Context, fn func(context.Context) error) error {
	lt := &lazyTx{
		db:     d.db,
		logger: d.logger,
	}
	txCtx := context.WithValue(ctx, lazyTxKey, lt)

	defer func() {
		if lt.isStarted() && !lt.committed {
			if err := lt.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
				d.logger.Errorf("failed to rollback transaction: %v", err)
			}
		}
		if lt.cancel != nil {
			lt.cancel()
		}
	}()

	if err := fn(txCtx); err != nil {
		return err
	}

	if lt.beginErr != nil {
		return fmt.Errorf("failed to begin transaction: %v", lt.beginErr)
	}

	if lt.isStarted() {
		if err := lt.tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit transaction: %v", err)
		}
		lt.committed = true
	}

	return nil
}

func (d *DBClient) Close() {
	if d.db != nil {
		_ = d.db.Close()
	}

	if d.pool != nil {
		d.pool.Close()
	}
}

func NewDBClient(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*DBClient, error) {
	config, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		logger.Fatalf("DSN validation failed, shutting down, err: %v", err)
	}

	if cfg.TracingEnabled {
		config.ConnConfig.Tracer = otelpgx.NewTracer()
	}

	config.MaxConns = cfg.MaxConns
	config.MinConns = cfg.MinConns
	config.MaxConnLifetime = cfg.MaxConnLifetime
	config.MaxConnLifetimeJitter = cfg.MaxConnLifetime / 10
	config.MaxConnIdleTime = cfg.MaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("failed to create db pool: %v", err)
	}

	if cfg.TracingEnabled {
		if err := otelpgx.RecordStats(pool); err != nil {
			return nil, fmt.Errorf("failed to start metrics collection for database: %v", err)
		}
	}

	db := stdlib.OpenDBFromPool(pool)
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %v", err)
	}

	d := new(DBClient)
	d.pool = pool
	d.db = db

	d.tracer = tracer
	d.monitor = monitor
	d.logger = logger

	return d, nil
}
