// Copyright 2026 NeetStand Ltd.
// SPDX-License-Identifier: AGPL-3.0

package profile

import (
	"context"
	"errors"
	"testing"

	gomock "go.uber.org/mock/gomock"

	"github.com/neetstand/admin-service/internal/logging"
	"github.com/neetstand/admin-service/internal/monitoring"
	"github.com/neetstand/admin-service/internal/storage"
	"github.com/neetstand/admin-service/internal/tracing"
	"github.com/neetstand/admin-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package profile -destination ./mock_profile.go -source=./interfaces.go

func newTestService(t *testing.T) (*Service, *MockStorageInterface) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mockStorage := NewMockStorageInterface(ctrl)
	service := NewService(mockStorage, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
	return service, mockStorage
}

func TestService_GetPreferences(t *testing.T) {
	service, mockStorage := newTestService(t)

	mockStorage.EXPECT().GetProfilePreferences(gomock.Any(), "user-1").Return(&types.NotificationPreferences{
		Newsletter: true,
		Email:      true,
	}, nil)

	prefs, err := service.GetPreferences(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !prefs.Newsletter || !prefs.Email {
		t.Fatalf("expected stored toggles to round trip, got %+v", prefs)
	}
	if prefs.SMS || prefs.Phone {
		t.Fatalf("expected unset toggles to stay off, got %+v", prefs)
	}
}

func TestService_GetPreferencesUnknownCaller(t *testing.T) {
	service, mockStorage := newTestService(t)

	mockStorage.EXPECT().GetProfilePreferences(gomock.Any(), "ghost").Return(nil, storage.ErrNotFound)

	_, err := service.GetPreferences(context.Background(), "ghost")
	if !errors.Is(err, types.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestService_UpdatePreferences(t *testing.T) {
	service, mockStorage := newTestService(t)

	want := &types.NotificationPreferences{CourseLaunch: true, CityEvents: true, Email: true}
	mockStorage.EXPECT().UpdateProfilePreferences(gomock.Any(), "user-1", want).Return(nil)

	if err := service.UpdatePreferences(context.Background(), "user-1", want); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestService_UpdatePreferencesUnknownCaller(t *testing.T) {
	service, mockStorage := newTestService(t)

	mockStorage.EXPECT().UpdateProfilePreferences(gomock.Any(), "ghost", gomock.Any()).Return(storage.ErrNotFound)

	err := service.UpdatePreferences(context.Background(), "ghost", &types.NotificationPreferences{})
	if !errors.Is(err, types.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestService_UpdatePreferencesStorageError(t *testing.T) {
	service, mockStorage := newTestService(t)

	boom := errors.New("connection reset")
	mockStorage.EXPECT().UpdateProfilePreferences(gomock.Any(), "user-1", gomock.Any()).Return(boom)

	err := service.UpdatePreferences(context.Background(), "user-1", &types.NotificationPreferences{})
	if !errors.Is(err, boom) {
		t.Fatalf("expected the storage error, got %v", err)
	}
}
