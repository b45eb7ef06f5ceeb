// Copyright 2026 NeetStand Ltd.
// SPDX-License-Identifier: AGPL-3.0

package settings

import (
	"context"
	"errors"
	"testing"

	gomock "go.uber.org/mock/gomock"

	"github.com/neetstand/admin-service/internal/logging"
	"github.com/neetstand/admin-service/internal/mail"
	"github.com/neetstand/admin-service/internal/monitoring"
	"github.com/neetstand/admin-service/internal/storage"
	"github.com/neetstand/admin-service/internal/tracing"
	"github.com/neetstand/admin-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package settings -destination ./mock_settings.go -source=./interfaces.go

func newTestService(t *testing.T) (*Service, *MockStorageInterface, *MockMailerInterface) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mockStorage := NewMockStorageInterface(ctrl)
	mockMailer := NewMockMailerInterface(ctrl)

	service := NewService(mockStorage, mockMailer, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
	return service, mockStorage, mockMailer
}

func expectOwner(mockStorage *MockStorageInterface, id string) {
	mockStorage.EXPECT().GetProfileByID(gomock.Any(), id).Return(&types.Profile{ID: id, Role: types.RoleOwner, IsActive: true}, nil)
}

func TestService_GetEmailSettings(t *testing.T) {
	service, mockStorage, _ := newTestService(t)

	expectOwner(mockStorage, "owner-1")
	mockStorage.EXPECT().GetSetting(gomock.Any(), mail.SettingAPIKey).Return(&types.Setting{Variable: mail.SettingAPIKey, Value: "key-123"}, nil)
	mockStorage.EXPECT().GetSetting(gomock.Any(), mail.SettingProviderURL).Return(&types.Setting{Variable: mail.SettingProviderURL, Value: "https://api.brevo.com/v3/smtp/email"}, nil)
	mockStorage.EXPECT().GetSetting(gomock.Any(), mail.SettingSiteURL).Return(nil, storage.ErrNotFound)
	mockStorage.EXPECT().GetSetting(gomock.Any(), mail.SettingSender).Return(&types.Setting{Variable: mail.SettingSender, Value: "admin@neetstand.example"}, nil)
	mockStorage.EXPECT().GetSetting(gomock.Any(), mail.SettingVerified).Return(&types.Setting{Variable: mail.SettingVerified, Value: "true"}, nil)

	out, err := service.GetEmailSettings(context.Background(), "owner-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out.APIKey != "key-123" {
		t.Fatalf("expected API key to round trip, got %q", out.APIKey)
	}
	if out.SiteURL != "" {
		t.Fatalf("expected missing setting to come back empty, got %q", out.SiteURL)
	}
	if !out.Verified {
		t.Fatal("expected verified flag to be set")
	}
}

func TestService_GetEmailSettingsNotOwner(t *testing.T) {
	service, mockStorage, _ := newTestService(t)

	mockStorage.EXPECT().GetProfileByID(gomock.Any(), "manager-1").Return(&types.Profile{ID: "manager-1", Role: types.RoleManager, IsActive: true}, nil)

	_, err := service.GetEmailSettings(context.Background(), "manager-1")
	if !errors.Is(err, types.ErrInsufficientRank) {
		t.Fatalf("expected ErrInsufficientRank, got %v", err)
	}
}

func TestService_GetEmailSettingsUnknownCaller(t *testing.T) {
	service, mockStorage, _ := newTestService(t)

	mockStorage.EXPECT().GetProfileByID(gomock.Any(), "ghost").Return(nil, storage.ErrNotFound)

	_, err := service.GetEmailSettings(context.Background(), "ghost")
	if !errors.Is(err, types.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestService_SaveEmailSettings(t *testing.T) {
	service, mockStorage, _ := newTestService(t)

	expectOwner(mockStorage, "owner-1")
	mockStorage.EXPECT().UpsertSetting(gomock.Any(), mail.SettingAPIKey, "key-456", gomock.Any()).Return(nil)
	mockStorage.EXPECT().UpsertSetting(gomock.Any(), mail.SettingSender, "noreply@neetstand.example", gomock.Any()).Return(nil)
	// Empty fields are skipped, but the verified flag is always reset.
	mockStorage.EXPECT().UpsertSetting(gomock.Any(), mail.SettingVerified, "false", gomock.Any()).Return(nil)

	err := service.SaveEmailSettings(context.Background(), "owner-1", &EmailSettings{
		APIKey: "key-456",
		Sender: "noreply@neetstand.example",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestService_SaveEmailSettingsNotOwner(t *testing.T) {
	service, mockStorage, _ := newTestService(t)

	mockStorage.EXPECT().GetProfileByID(gomock.Any(), "support-1").Return(&types.Profile{ID: "support-1", Role: types.RoleSupport, IsActive: true}, nil)

	err := service.SaveEmailSettings(context.Background(), "support-1", &EmailSettings{APIKey: "key"})
	if !errors.Is(err, types.ErrInsufficientRank) {
		t.Fatalf("expected ErrInsufficientRank, got %v", err)
	}
}

func TestService_SendTestEmail(t *testing.T) {
	service, mockStorage, mockMailer := newTestService(t)

	expectOwner(mockStorage, "owner-1")
	mockMailer.EXPECT().Send(gomock.Any(), "check@neetstand.example", "NeetStand Email Configuration Test", gomock.Any()).Return(nil)

	if err := service.SendTestEmail(context.Background(), "owner-1", "check@neetstand.example"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestService_SendTestEmailUnconfigured(t *testing.T) {
	service, mockStorage, mockMailer := newTestService(t)

	expectOwner(mockStorage, "owner-1")
	mockMailer.EXPECT().Send(gomock.Any(), "check@neetstand.example", gomock.Any(), gomock.Any()).Return(types.ErrConfigurationMissing)

	err := service.SendTestEmail(context.Background(), "owner-1", "check@neetstand.example")
	if !errors.Is(err, types.ErrConfigurationMissing) {
		t.Fatalf("expected ErrConfigurationMissing, got %v", err)
	}
}

func TestService_SendTestEmailProviderDown(t *testing.T) {
	service, mockStorage, mockMailer := newTestService(t)

	expectOwner(mockStorage, "owner-1")
	mockMailer.EXPECT().Send(gomock.Any(), "check@neetstand.example", gomock.Any(), gomock.Any()).Return(errors.New("provider returned 502"))

	err := service.SendTestEmail(context.Background(), "owner-1", "check@neetstand.example")
	if !errors.Is(err, types.ErrEmailDispatchFailed) {
		t.Fatalf("expected ErrEmailDispatchFailed, got %v", err)
	}
}

func TestService_ConfirmEmailVerified(t *testing.T) {
	service, mockStorage, _ := newTestService(t)

	expectOwner(mockStorage, "owner-1")
	mockStorage.EXPECT().UpsertSetting(gomock.Any(), mail.SettingVerified, "true", gomock.Any()).Return(nil)

	if err := service.ConfirmEmailVerified(context.Background(), "owner-1"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestService_MaintenanceMode(t *testing.T) {
	service, mockStorage, _ := newTestService(t)

	mockStorage.EXPECT().GetSetting(gomock.Any(), maintenanceModeKey).Return(nil, storage.ErrNotFound)

	enabled, err := service.GetMaintenanceMode(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if enabled {
		t.Fatal("expected maintenance mode off by default")
	}

	expectOwner(mockStorage, "owner-1")
	mockStorage.EXPECT().UpsertSetting(gomock.Any(), maintenanceModeKey, "true", gomock.Any()).Return(nil)

	if err := service.SetMaintenanceMode(context.Background(), "owner-1", true); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	mockStorage.EXPECT().GetSetting(gomock.Any(), maintenanceModeKey).Return(&types.Setting{Variable: maintenanceModeKey, Value: "true"}, nil)

	enabled, err = service.GetMaintenanceMode(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !enabled {
		t.Fatal("expected maintenance mode on after toggle")
	}
}

func TestService_SetMaintenanceModeNotOwner(t *testing.T) {
	service, mockStorage, _ := newTestService(t)

	mockStorage.EXPECT().GetProfileByID(gomock.Any(), "manager-1").Return(&types.Profile{ID: "manager-1", Role: types.RoleManager, IsActive: true}, nil)

	err := service.SetMaintenanceMode(context.Background(), "manager-1", true)
	if !errors.Is(err, types.ErrInsufficientRank) {
		t.Fatalf("expected ErrInsufficientRank, got %v", err)
	}
}
