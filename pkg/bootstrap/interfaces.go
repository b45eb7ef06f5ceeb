// Copyright 2026 NeetStand Ltd.
// SPDX-License-Identifier: AGPL-3.0

package bootstrap

import (
	"context"

	"github.com/neetstand/admin-service/internal/types"
)

// StorageInterface is the subset of the storage layer the bootstrap state
// machine reads. It never writes.
type StorageInterface interface {
	GetProfileByRole(ctx context.Context, role string) (*types.Profile, error)
	CountProfilesByRole(ctx context.Context, role string) (int, error)
	GetSetting(ctx context.Context, variable string) (*types.Setting, error)
}

type ServiceInterface interface {
	Status(ctx context.Context) (*Status, error)
}
