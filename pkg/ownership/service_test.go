// Copyright 2026 NeetStand Ltd.
// SPDX-License-Identifier: AGPL-3.0

package ownership

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/neetstand/admin-service/internal/logging"
	"github.com/neetstand/admin-service/internal/monitoring"
	"github.com/neetstand/admin-service/internal/storage"
	"github.com/neetstand/admin-service/internal/tracing"
	"github.com/neetstand/admin-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package ownership -destination ./mock_ownership.go -source=./interfaces.go

const testAdminURL = "https://admin.neetstand.com"

func newTestService(t *testing.T) (*Service, *MockStorageInterface, *MockTxManagerInterface, *MockDirectoryInterface, *MockMailerInterface) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockStorage := NewMockStorageInterface(ctrl)
	mockTx := NewMockTxManagerInterface(ctrl)
	mockDirectory := NewMockDirectoryInterface(ctrl)
	mockMailer := NewMockMailerInterface(ctrl)

	s := NewService(
		mockStorage,
		mockTx,
		mockDirectory,
		mockMailer,
		testAdminURL,
		24*time.Hour,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)

	return s, mockStorage, mockTx, mockDirectory, mockMailer
}

func pendingSetting(t *testing.T, pending types.PendingTransfer) *types.Setting {
	t.Helper()
	payload, err := json.Marshal(pending)
	if err != nil {
		t.Fatalf("marshalling pending transfer: %v", err)
	}
	return &types.Setting{Variable: pendingTransferKey, Value: string(payload)}
}

func TestService_InitiateTransfer(t *testing.T) {
	s, mockStorage, _, _, mockMailer := newTestService(t)

	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	var stored string

	mockStorage.EXPECT().GetProfileByID(gomock.Any(), "owner-1").Return(&types.Profile{ID: "owner-1", Role: types.RoleOwner}, nil)
	mockStorage.EXPECT().UpsertSetting(gomock.Any(), pendingTransferKey, gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _, value, _ string) error {
			stored = value
			return nil
		})
	mockMailer.EXPECT().Send(gomock.Any(), "next@example.com", "NeetStand Ownership Transfer", gomock.Any()).Return(nil)

	if err := s.InitiateTransfer(context.Background(), "owner-1", "next@example.com"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	var pending types.PendingTransfer
	if err := json.Unmarshal([]byte(stored), &pending); err != nil {
		t.Fatalf("stored payload is not valid JSON: %v", err)
	}
	if pending.TargetEmail != "next@example.com" {
		t.Errorf("unexpected target email %q", pending.TargetEmail)
	}
	if pending.FromOwnerID != "owner-1" {
		t.Errorf("unexpected from owner %q", pending.FromOwnerID)
	}
	if pending.Token == "" {
		t.Error("expected a token")
	}
	if got := pending.ExpiresAt(); !got.Equal(now.Add(24 * time.Hour)) {
		t.Errorf("expected expiry %v, got %v", now.Add(24*time.Hour), got)
	}
}

func TestService_InitiateTransferNotOwner(t *testing.T) {
	s, mockStorage, _, _, _ := newTestService(t)

	mockStorage.EXPECT().GetProfileByID(gomock.Any(), "admin-1").Return(&types.Profile{ID: "admin-1", Role: types.RoleSuperadmin}, nil)

	err := s.InitiateTransfer(context.Background(), "admin-1", "next@example.com")
	if !errors.Is(err, types.ErrInsufficientRank) {
		t.Fatalf("expected ErrInsufficientRank, got %v", err)
	}
}

func TestService_ValidateTransferToken(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	valid := types.PendingTransfer{
		TargetEmail: "next@example.com",
		Token:       "tok-1",
		Expires:     now.Add(time.Hour).UnixMilli(),
		FromOwnerID: "owner-1",
	}
	expired := valid
	expired.Expires = now.Add(-time.Minute).UnixMilli()

	testCases := []struct {
		name        string
		token       string
		setupMocks  func(*testing.T, *MockStorageInterface)
		expectedErr error
	}{
		{
			name:  "no pending transfer",
			token: "tok-1",
			setupMocks: func(t *testing.T, s *MockStorageInterface) {
				s.EXPECT().GetSetting(gomock.Any(), pendingTransferKey).Return(nil, storage.ErrNotFound)
			},
			expectedErr: types.ErrNoPendingTransfer,
		},
		{
			name:  "token mismatch",
			token: "tok-2",
			setupMocks: func(t *testing.T, s *MockStorageInterface) {
				s.EXPECT().GetSetting(gomock.Any(), pendingTransferKey).Return(pendingSetting(t, valid), nil)
			},
			expectedErr: types.ErrTokenMismatch,
		},
		{
			name:  "token expired",
			token: "tok-1",
			setupMocks: func(t *testing.T, s *MockStorageInterface) {
				s.EXPECT().GetSetting(gomock.Any(), pendingTransferKey).Return(pendingSetting(t, expired), nil)
			},
			expectedErr: types.ErrTokenExpired,
		},
		{
			name:  "valid",
			token: "tok-1",
			setupMocks: func(t *testing.T, s *MockStorageInterface) {
				s.EXPECT().GetSetting(gomock.Any(), pendingTransferKey).Return(pendingSetting(t, valid), nil)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mockStorage, _, _, _ := newTestService(t)
			s.now = func() time.Time { return now }
			tc.setupMocks(t, mockStorage)

			pending, err := s.ValidateTransferToken(context.Background(), tc.token)
			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected %v, got %v", tc.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if pending.TargetEmail != "next@example.com" {
				t.Errorf("unexpected payload %+v", pending)
			}
		})
	}
}

func TestService_CompleteTransfer(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	pending := types.PendingTransfer{
		TargetEmail: "next@example.com",
		Token:       "tok-1",
		Expires:     now.Add(time.Hour).UnixMilli(),
		FromOwnerID: "owner-1",
	}

	s, mockStorage, mockTx, mockDirectory, _ := newTestService(t)
	s.now = func() time.Time { return now }

	mockTx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
	mockStorage.EXPECT().GetSetting(gomock.Any(), pendingTransferKey).Return(pendingSetting(t, pending), nil)
	mockStorage.EXPECT().UpdateProfileRole(gomock.Any(), "owner-1", types.RoleSuperadmin).Return(nil)
	mockStorage.EXPECT().UpdateProfileRole(gomock.Any(), "accepter-1", types.RoleOwner).Return(nil)
	mockStorage.EXPECT().SetProfileActive(gomock.Any(), "accepter-1", true).Return(nil)
	mockStorage.EXPECT().DeleteSetting(gomock.Any(), pendingTransferKey).Return(nil)
	mockDirectory.EXPECT().UpdateMetadata(gomock.Any(), "owner-1", map[string]interface{}{"role": types.RoleSuperadmin}).Return(nil)
	mockDirectory.EXPECT().UpdateMetadata(gomock.Any(), "accepter-1", map[string]interface{}{"role": types.RoleOwner}).Return(nil)

	err := s.CompleteTransfer(context.Background(), "tok-1", "accepter-1", "next@example.com")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestService_CompleteTransferEmailMismatch(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	pending := types.PendingTransfer{
		TargetEmail: "next@example.com",
		Token:       "tok-1",
		Expires:     now.Add(time.Hour).UnixMilli(),
		FromOwnerID: "owner-1",
	}

	s, mockStorage, mockTx, _, _ := newTestService(t)
	s.now = func() time.Time { return now }

	mockTx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
	mockStorage.EXPECT().GetSetting(gomock.Any(), pendingTransferKey).Return(pendingSetting(t, pending), nil)

	err := s.CompleteTransfer(context.Background(), "tok-1", "accepter-1", "impostor@example.com")
	if !errors.Is(err, types.ErrEmailMismatch) {
		t.Fatalf("expected ErrEmailMismatch, got %v", err)
	}
}

func TestService_CompleteTransferTokenSingleUse(t *testing.T) {
	s, mockStorage, mockTx, _, _ := newTestService(t)

	// After a completed transfer the pending record is gone, so the same
	// token cannot be redeemed twice.
	mockTx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
	mockStorage.EXPECT().GetSetting(gomock.Any(), pendingTransferKey).Return(nil, storage.ErrNotFound)

	err := s.CompleteTransfer(context.Background(), "tok-1", "accepter-1", "next@example.com")
	if !errors.Is(err, types.ErrNoPendingTransfer) {
		t.Fatalf("expected ErrNoPendingTransfer, got %v", err)
	}
}
