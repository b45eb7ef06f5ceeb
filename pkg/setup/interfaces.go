// Copyright 2026 NeetStand Ltd.
// SPDX-License-Identifier: AGPL-3.0

package setup

import (
	"context"

	"github.com/neetstand/admin-service/internal/types"
)

type ServiceInterface interface {
	SetupOwner(ctx context.Context, email, password, fullName string) (string, error)
	CreateSuperAdmin(ctx context.Context, callerID, fullName, email string, isMe bool) (string, error)
}

type StorageInterface interface {
	GetProfileByID(ctx context.Context, id string) (*types.Profile, error)
	GetProfileByRole(ctx context.Context, role string) (*types.Profile, error)
	CreateProfile(ctx context.Context, p *types.Profile) error
	UpdateProfileRole(ctx context.Context, id, role string) error
	SetProfileActive(ctx context.Context, id string, active bool) error
	UpsertSetting(ctx context.Context, variable, value, description string) error
}

type DirectoryInterface interface {
	GetIdentityIDByEmail(ctx context.Context, email string) (string, error)
	CreateIdentity(ctx context.Context, email, password, fullName string) (string, error)
}

type MailerInterface interface {
	Send(ctx context.Context, to, subject, html string) error
}
