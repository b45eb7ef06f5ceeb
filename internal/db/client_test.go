// Copyright 2026 NeetStand Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"

	"github.com/neetstand/admin-service/internal/logging"
)

func newTestClient(t *testing.T) (*DBClient, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet database expectations: %v", err)
		}
		_ = conn.Close()
	})

	return &DBClient{db: conn, logger: logging.NewNoopLogger()}, mock
}

func TestWithTxCommitsOnSuccess(t *testing.T) {
	client, mock := newTestClient(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE profiles SET is_active = $1 WHERE id = $2")).
		WithArgs(true, "user-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := client.WithTx(context.Background(), func(ctx context.Context) error {
		_, execErr := client.Statement(ctx).
			Update("profiles").
			Set("is_active", true).
			Where(sq.Eq{"id": "user-1"}).
			ExecContext(ctx)
		return execErr
	})
	if err != nil {
		t.Fatalf("expected transaction to commit, got: %v", err)
	}
}

func TestWithTxRollsBackOnError(t *testing.T) {
	client, mock := newTestClient(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE profiles SET is_active = $1 WHERE id = $2")).
		WithArgs(false, "user-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	wantErr := errors.New("validation failed")
	err := client.WithTx(context.Background(), func(ctx context.Context) error {
		if _, execErr := client.Statement(ctx).
			Update("profiles").
			Set("is_active", false).
			Where(sq.Eq{"id": "user-1"}).
			ExecContext(ctx); execErr != nil {
			return execErr
		}
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected the callback error, got: %v", err)
	}
}

func TestWithTxBeginFailureDoesNotReachPool(t *testing.T) {
	client, mock := newTestClient(t)

	beginErr := errors.New("connection refused")
	mock.ExpectBegin().WillReturnError(beginErr)

	err := client.WithTx(context.Background(), func(ctx context.Context) error {
		var level int
		scanErr := client.Statement(ctx).
			Select("hierarchy_level").
			From("roles").
			Where(sq.Eq{"name": "manager"}).
			QueryRowContext(ctx).
			Scan(&level)
		if !errors.Is(scanErr, beginErr) {
			t.Errorf("expected the begin failure on scan, got: %v", scanErr)
		}

		res, execErr := client.Statement(ctx).
			Update("profiles").
			Set("role", "support").
			Where(sq.Eq{"id": "user-1"}).
			ExecContext(ctx)
		if res != nil || !errors.Is(execErr, beginErr) {
			t.Errorf("expected the begin failure on exec, got: %v", execErr)
		}

		// Swallowing statement errors must not make the transaction succeed.
		return nil
	})
	if err == nil || !strings.Contains(err.Error(), beginErr.Error()) {
		t.Fatalf("expected a begin failure from WithTx, got: %v", err)
	}
}
