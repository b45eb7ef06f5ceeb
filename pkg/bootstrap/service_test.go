// Copyright 2026 NeetStand Ltd.
// SPDX-License-Identifier: AGPL-3.0

package bootstrap

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/neetstand/admin-service/internal/logging"
	"github.com/neetstand/admin-service/internal/mail"
	"github.com/neetstand/admin-service/internal/monitoring"
	"github.com/neetstand/admin-service/internal/storage"
	"github.com/neetstand/admin-service/internal/tracing"
	"github.com/neetstand/admin-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package bootstrap -destination ./mock_bootstrap.go -source=./interfaces.go

func TestService_Status(t *testing.T) {
	testCases := []struct {
		name          string
		setupMocks    func(*MockStorageInterface)
		expectedPhase types.Phase
	}{
		{
			name: "no owner",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetProfileByRole(gomock.Any(), types.RoleOwner).Return(nil, storage.ErrNotFound)
				s.EXPECT().CountProfilesByRole(gomock.Any(), types.RoleSuperadmin).Return(0, nil)
				s.EXPECT().GetSetting(gomock.Any(), types.SettingSuperadminIsOwner).Return(nil, storage.ErrNotFound)
				s.EXPECT().GetSetting(gomock.Any(), mail.SettingVerified).Return(nil, storage.ErrNotFound)
			},
			expectedPhase: types.PhaseNoOwner,
		},
		{
			name: "owner not yet active",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetProfileByRole(gomock.Any(), types.RoleOwner).Return(&types.Profile{ID: "owner-1", Role: types.RoleOwner}, nil)
				s.EXPECT().CountProfilesByRole(gomock.Any(), types.RoleSuperadmin).Return(0, nil)
				s.EXPECT().GetSetting(gomock.Any(), types.SettingSuperadminIsOwner).Return(nil, storage.ErrNotFound)
				s.EXPECT().GetSetting(gomock.Any(), mail.SettingVerified).Return(nil, storage.ErrNotFound)
			},
			expectedPhase: types.PhaseOwnerInactive,
		},
		{
			name: "owner active, nothing else configured",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetProfileByRole(gomock.Any(), types.RoleOwner).Return(&types.Profile{ID: "owner-1", Role: types.RoleOwner, IsActive: true}, nil)
				s.EXPECT().CountProfilesByRole(gomock.Any(), types.RoleSuperadmin).Return(0, nil)
				s.EXPECT().GetSetting(gomock.Any(), types.SettingSuperadminIsOwner).Return(nil, storage.ErrNotFound)
				s.EXPECT().GetSetting(gomock.Any(), mail.SettingVerified).Return(nil, storage.ErrNotFound)
			},
			expectedPhase: types.PhaseOwnerActiveNoSuperadmin,
		},
		{
			name: "superadmin set but email unverified",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetProfileByRole(gomock.Any(), types.RoleOwner).Return(&types.Profile{ID: "owner-1", Role: types.RoleOwner, IsActive: true}, nil)
				s.EXPECT().CountProfilesByRole(gomock.Any(), types.RoleSuperadmin).Return(1, nil)
				s.EXPECT().GetSetting(gomock.Any(), mail.SettingVerified).Return(&types.Setting{Variable: mail.SettingVerified, Value: "false"}, nil)
			},
			expectedPhase: types.PhaseOwnerActiveNoSuperadmin,
		},
		{
			name: "fully operational",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetProfileByRole(gomock.Any(), types.RoleOwner).Return(&types.Profile{ID: "owner-1", Role: types.RoleOwner, IsActive: true}, nil)
				s.EXPECT().CountProfilesByRole(gomock.Any(), types.RoleSuperadmin).Return(1, nil)
				s.EXPECT().GetSetting(gomock.Any(), mail.SettingVerified).Return(&types.Setting{Variable: mail.SettingVerified, Value: "true"}, nil)
			},
			expectedPhase: types.PhaseOperational,
		},
		{
			name: "owner covers superadmin duty",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetProfileByRole(gomock.Any(), types.RoleOwner).Return(&types.Profile{ID: "owner-1", Role: types.RoleOwner, IsActive: true}, nil)
				s.EXPECT().CountProfilesByRole(gomock.Any(), types.RoleSuperadmin).Return(0, nil)
				s.EXPECT().GetSetting(gomock.Any(), types.SettingSuperadminIsOwner).Return(&types.Setting{Variable: types.SettingSuperadminIsOwner, Value: "true"}, nil)
				s.EXPECT().GetSetting(gomock.Any(), mail.SettingVerified).Return(&types.Setting{Variable: mail.SettingVerified, Value: "true"}, nil)
			},
			expectedPhase: types.PhaseOperational,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			tc.setupMocks(mockStorage)

			s := NewService(mockStorage, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

			status, err := s.Status(context.Background())
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if status.Phase != tc.expectedPhase {
				t.Errorf("expected phase %q, got %q", tc.expectedPhase, status.Phase)
			}
		})
	}
}

func TestService_StatusStorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().GetProfileByRole(gomock.Any(), types.RoleOwner).Return(nil, errors.New("connection refused"))

	s := NewService(mockStorage, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

	if _, err := s.Status(context.Background()); err == nil {
		t.Fatal("expected an error")
	}
}
