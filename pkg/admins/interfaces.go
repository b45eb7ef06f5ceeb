// Copyright 2026 NeetStand Ltd.
// SPDX-License-Identifier: AGPL-3.0

package admins

import (
	"context"

	ory "github.com/ory/client-go"

	"github.com/neetstand/admin-service/internal/types"
)

type ServiceInterface interface {
	ListAdmins(ctx context.Context, callerID string) ([]*types.AdminView, error)
	ListAssignableRoles(ctx context.Context, callerID string) ([]*types.Role, error)
	DeleteAdmin(ctx context.Context, callerID, targetID string) error
	UpdateAdminRole(ctx context.Context, callerID, targetID, newRole string) error
}

type StorageInterface interface {
	GetProfileByID(ctx context.Context, id string) (*types.Profile, error)
	GetRoleByName(ctx context.Context, name string) (*types.Role, error)
	ListRoles(ctx context.Context) ([]*types.Role, error)
	ListAdminProfiles(ctx context.Context) ([]*types.AdminView, error)
	CountProfilesByRoleForUpdate(ctx context.Context, role string) (int, error)
	UpdateProfileRole(ctx context.Context, id, role string) error
	DeleteProfile(ctx context.Context, id string) error
}

// TxManagerInterface serializes the superadmin count check against the
// mutation it gates.
type TxManagerInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}

type DirectoryInterface interface {
	ListIdentities(ctx context.Context) ([]ory.Identity, error)
	DeleteIdentity(ctx context.Context, id string) error
}
