// Copyright 2026 NeetStand Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	"github.com/neetstand/admin-service/internal/types"
)

type StorageInterface interface {
	GetRoleByName(ctx context.Context, name string) (*types.Role, error)
	ListRoles(ctx context.Context) ([]*types.Role, error)

	GetProfileByID(ctx context.Context, id string) (*types.Profile, error)
	GetProfileByRole(ctx context.Context, role string) (*types.Profile, error)
	ListAdminProfiles(ctx context.Context) ([]*types.AdminView, error)
	CountProfilesByRole(ctx context.Context, role string) (int, error)
	CountProfilesByRoleForUpdate(ctx context.Context, role string) (int, error)
	CreateProfile(ctx context.Context, p *types.Profile) error
	UpdateProfileRole(ctx context.Context, id, role string) error
	SetProfileActive(ctx context.Context, id string, active bool) error
	SetProfileOTPGeneratedAt(ctx context.Context, id string, at *time.Time) error
	GetProfilePreferences(ctx context.Context, id string) (*types.NotificationPreferences, error)
	UpdateProfilePreferences(ctx context.Context, id string, p *types.NotificationPreferences) error
	DeleteProfile(ctx context.Context, id string) error

	GetSetting(ctx context.Context, variable string) (*types.Setting, error)
	UpsertSetting(ctx context.Context, variable, value, description string) error
	DeleteSetting(ctx context.Context, variable string) error

	EnqueueEmail(ctx context.Context, e *types.QueuedEmail) (string, error)
	ListPendingEmails(ctx context.Context, limit uint64) ([]*types.QueuedEmail, error)
	MarkEmailProcessed(ctx context.Context, id, status, sendErr string) error
}
