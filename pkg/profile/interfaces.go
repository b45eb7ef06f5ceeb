// Copyright 2026 NeetStand Ltd.
// SPDX-License-Identifier: AGPL-3.0

package profile

import (
	"context"

	"github.com/neetstand/admin-service/internal/types"
)

type ServiceInterface interface {
	GetPreferences(ctx context.Context, callerID string) (*types.NotificationPreferences, error)
	UpdatePreferences(ctx context.Context, callerID string, prefs *types.NotificationPreferences) error
}

type StorageInterface interface {
	GetProfilePreferences(ctx context.Context, id string) (*types.NotificationPreferences, error)
	UpdateProfilePreferences(ctx context.Context, id string, p *types.NotificationPreferences) error
}
