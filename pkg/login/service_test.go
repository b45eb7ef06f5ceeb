// Copyright 2026 NeetStand Ltd.
// SPDX-License-Identifier: AGPL-3.0

package login

import (
	"context"
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

//go:generate mockgen -build_flags=--mod=mod -package login -destination ./mock_login.go -source=./interfaces.go

const (
	testOTPLifetime     = 10 * time.Minute
	testSessionLifetime = 12 * time.Hour
)

func newTestService(t *testing.T) (*Service, *MockStorageInterface, *MockDirectoryInterface, *MockMailerInterface, *MockTokenIssuerInterface) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockStorage := NewMockStorageInterface(ctrl)
	mockDirectory := NewMockDirectoryInterface(ctrl)
	mockMailer := NewMockMailerInterface(ctrl)
	mockIssuer := NewMockTokenIssuerInterface(ctrl)

	s := NewService(
		mockStorage,
		mockDirectory,
		mockMailer,
		mockIssuer,
		testOTPLifetime,
		testSessionLifetime,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)

	return s, mockStorage, mockDirectory, mockMailer, mockIssuer
}

func activeOwner() *types.Profile {
	return &types.Profile{ID: "owner-1", Role: types.RoleOwner, IsActive: true}
}

func TestService_LoginUserNotFound(t *testing.T) {
	s, _, mockDirectory, _, _ := newTestService(t)

	mockDirectory.EXPECT().GetIdentityIDByEmail(gomock.Any(), "ghost@example.com").Return("", nil)

	_, err := s.Login(context.Background(), "ghost@example.com")
	if !errors.Is(err, types.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestService_LoginProfileNotFound(t *testing.T) {
	s, mockStorage, mockDirectory, _, _ := newTestService(t)

	mockDirectory.EXPECT().GetIdentityIDByEmail(gomock.Any(), "no-profile@example.com").Return("user-9", nil)
	mockStorage.EXPECT().GetProfileByID(gomock.Any(), "user-9").Return(nil, storage.ErrNotFound)

	_, err := s.Login(context.Background(), "no-profile@example.com")
	if !errors.Is(err, types.ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestService_LoginSystemLocked(t *testing.T) {
	s, mockStorage, mockDirectory, _, _ := newTestService(t)

	mockDirectory.EXPECT().GetIdentityIDByEmail(gomock.Any(), "support@example.com").Return("support-1", nil)
	mockStorage.EXPECT().GetProfileByID(gomock.Any(), "support-1").Return(&types.Profile{ID: "support-1", Role: "support"}, nil)
	mockStorage.EXPECT().GetProfileByRole(gomock.Any(), types.RoleOwner).Return(&types.Profile{ID: "owner-1", Role: types.RoleOwner, IsActive: false}, nil)

	_, err := s.Login(context.Background(), "support@example.com")
	if !errors.Is(err, types.ErrSystemLocked) {
		t.Fatalf("expected ErrSystemLocked, got %v", err)
	}
}

func TestService_LoginPasswordModeForOwnerDuringSetup(t *testing.T) {
	s, mockStorage, mockDirectory, _, _ := newTestService(t)

	mockDirectory.EXPECT().GetIdentityIDByEmail(gomock.Any(), "owner@example.com").Return("owner-1", nil)
	mockStorage.EXPECT().GetProfileByID(gomock.Any(), "owner-1").Return(&types.Profile{ID: "owner-1", Role: types.RoleOwner}, nil)
	mockStorage.EXPECT().GetProfileByRole(gomock.Any(), types.RoleOwner).Return(&types.Profile{ID: "owner-1", Role: types.RoleOwner}, nil)
	mockStorage.EXPECT().CountProfilesByRole(gomock.Any(), types.RoleSuperadmin).Return(0, nil)
	mockStorage.EXPECT().GetSetting(gomock.Any(), types.SettingSuperadminIsOwner).Return(nil, storage.ErrNotFound)

	mode, err := s.Login(context.Background(), "owner@example.com")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if mode != types.LoginModePassword {
		t.Errorf("expected password mode, got %q", mode)
	}
}

func TestService_LoginIssuesCode(t *testing.T) {
	s, mockStorage, mockDirectory, mockMailer, _ := newTestService(t)

	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	var rotated string

	mockDirectory.EXPECT().GetIdentityIDByEmail(gomock.Any(), "admin@example.com").Return("admin-1", nil)
	mockStorage.EXPECT().GetProfileByID(gomock.Any(), "admin-1").Return(&types.Profile{ID: "admin-1", Role: types.RoleSuperadmin}, nil)
	mockStorage.EXPECT().GetProfileByRole(gomock.Any(), types.RoleOwner).Return(activeOwner(), nil)
	mockStorage.EXPECT().CountProfilesByRole(gomock.Any(), types.RoleSuperadmin).Return(1, nil)
	mockStorage.EXPECT().SetProfileOTPGeneratedAt(gomock.Any(), "admin-1", gomock.Not(gomock.Nil())).Return(nil)
	mockDirectory.EXPECT().SetPassword(gomock.Any(), "admin-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _, code string) error {
			rotated = code
			return nil
		})
	mockMailer.EXPECT().Send(gomock.Any(), "admin@example.com", "NeetStand Admin Login Code", gomock.Any()).Return(nil)

	mode, err := s.Login(context.Background(), "admin@example.com")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if mode != types.LoginModeOTP {
		t.Errorf("expected otp mode, got %q", mode)
	}
	if len(rotated) != 8 {
		t.Errorf("expected an 8 character code, got %q", rotated)
	}
}

func TestService_LoginClearsTimestampOnRotationFailure(t *testing.T) {
	s, mockStorage, mockDirectory, _, _ := newTestService(t)

	mockDirectory.EXPECT().GetIdentityIDByEmail(gomock.Any(), "admin@example.com").Return("admin-1", nil)
	mockStorage.EXPECT().GetProfileByID(gomock.Any(), "admin-1").Return(&types.Profile{ID: "admin-1", Role: types.RoleSuperadmin}, nil)
	mockStorage.EXPECT().GetProfileByRole(gomock.Any(), types.RoleOwner).Return(activeOwner(), nil)
	mockStorage.EXPECT().CountProfilesByRole(gomock.Any(), types.RoleSuperadmin).Return(1, nil)
	mockStorage.EXPECT().SetProfileOTPGeneratedAt(gomock.Any(), "admin-1", gomock.Not(gomock.Nil())).Return(nil)
	mockDirectory.EXPECT().SetPassword(gomock.Any(), "admin-1", gomock.Any()).Return(errors.New("directory down"))
	mockStorage.EXPECT().SetProfileOTPGeneratedAt(gomock.Any(), "admin-1", gomock.Nil()).Return(nil)

	if _, err := s.Login(context.Background(), "admin@example.com"); err == nil {
		t.Fatal("expected an error")
	}
}

func TestService_LoginEmailDispatchFailed(t *testing.T) {
	s, mockStorage, mockDirectory, mockMailer, _ := newTestService(t)

	mockDirectory.EXPECT().GetIdentityIDByEmail(gomock.Any(), "admin@example.com").Return("admin-1", nil)
	mockStorage.EXPECT().GetProfileByID(gomock.Any(), "admin-1").Return(&types.Profile{ID: "admin-1", Role: types.RoleSuperadmin}, nil)
	mockStorage.EXPECT().GetProfileByRole(gomock.Any(), types.RoleOwner).Return(activeOwner(), nil)
	mockStorage.EXPECT().CountProfilesByRole(gomock.Any(), types.RoleSuperadmin).Return(1, nil)
	mockStorage.EXPECT().SetProfileOTPGeneratedAt(gomock.Any(), "admin-1", gomock.Not(gomock.Nil())).Return(nil)
	mockDirectory.EXPECT().SetPassword(gomock.Any(), "admin-1", gomock.Any()).Return(nil)
	mockMailer.EXPECT().Send(gomock.Any(), "admin@example.com", gomock.Any(), gomock.Any()).Return(errors.New("provider 500"))

	_, err := s.Login(context.Background(), "admin@example.com")
	if !errors.Is(err, types.ErrEmailDispatchFailed) {
		t.Fatalf("expected ErrEmailDispatchFailed, got %v", err)
	}
}

func TestService_VerifyLoginBadCredential(t *testing.T) {
	s, _, mockDirectory, _, _ := newTestService(t)

	mockDirectory.EXPECT().VerifyPassword(gomock.Any(), "admin@example.com", "wrong").Return("", errors.New("401"))

	_, err := s.VerifyLogin(context.Background(), "admin@example.com", "wrong")
	if !errors.Is(err, types.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestService_VerifyLoginCodeWindow(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	testCases := []struct {
		name        string
		issuedAgo   time.Duration
		expectedErr error
	}{
		{name: "just inside the window", issuedAgo: 9*time.Minute + 59*time.Second},
		{name: "just past the window", issuedAgo: 10*time.Minute + 1*time.Second, expectedErr: types.ErrOTPExpired},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mockStorage, mockDirectory, _, mockIssuer := newTestService(t)
			s.now = func() time.Time { return now }

			issuedAt := now.Add(-tc.issuedAgo)
			profile := &types.Profile{ID: "admin-1", Role: types.RoleSuperadmin, IsActive: true, OTPGeneratedAt: &issuedAt}

			mockDirectory.EXPECT().VerifyPassword(gomock.Any(), "admin@example.com", "Zz12Ab34").Return("admin-1", nil)
			mockStorage.EXPECT().GetProfileByID(gomock.Any(), "admin-1").Return(profile, nil)
			mockStorage.EXPECT().CountProfilesByRole(gomock.Any(), types.RoleSuperadmin).Return(1, nil)

			if tc.expectedErr != nil {
				mockDirectory.EXPECT().DeleteSessions(gomock.Any(), "admin-1").Return(nil)
			} else {
				mockIssuer.EXPECT().IssueToken("admin-1", "admin@example.com", types.RoleSuperadmin, testSessionLifetime).Return("session-token", nil)
			}

			result, err := s.VerifyLogin(context.Background(), "admin@example.com", "Zz12Ab34")
			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected %v, got %v", tc.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if result.Role != types.RoleSuperadmin {
				t.Errorf("expected role superadmin, got %q", result.Role)
			}
			if result.Token != "session-token" {
				t.Errorf("unexpected token %q", result.Token)
			}
		})
	}
}

func TestService_VerifyLoginActivatesOwner(t *testing.T) {
	s, mockStorage, mockDirectory, _, mockIssuer := newTestService(t)

	mockDirectory.EXPECT().VerifyPassword(gomock.Any(), "owner@example.com", "hunter2secret").Return("owner-1", nil)
	mockStorage.EXPECT().GetProfileByID(gomock.Any(), "owner-1").Return(&types.Profile{ID: "owner-1", Role: types.RoleOwner, IsActive: false}, nil)
	mockStorage.EXPECT().CountProfilesByRole(gomock.Any(), types.RoleSuperadmin).Return(0, nil)
	mockStorage.EXPECT().GetSetting(gomock.Any(), types.SettingSuperadminIsOwner).Return(nil, storage.ErrNotFound)
	mockStorage.EXPECT().SetProfileActive(gomock.Any(), "owner-1", true).Return(nil)
	mockIssuer.EXPECT().IssueToken("owner-1", "owner@example.com", types.RoleOwner, testSessionLifetime).Return("session-token", nil)

	result, err := s.VerifyLogin(context.Background(), "owner@example.com", "hunter2secret")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.Role != types.RoleOwner {
		t.Errorf("expected role owner, got %q", result.Role)
	}
}

func TestGenerateCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code, err := generateCode()
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(code) != 8 {
			t.Fatalf("expected 8 characters, got %q", code)
		}
		for _, r := range code {
			switch {
			case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			default:
				t.Fatalf("unexpected character %q in code %q", r, code)
			}
		}
		seen[code] = true
	}
	if len(seen) < 90 {
		t.Errorf("codes look non-uniform: %d distinct out of 100", len(seen))
	}
}
