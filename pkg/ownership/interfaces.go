// Copyright 2026 NeetStand Ltd.
// SPDX-License-Identifier: AGPL-3.0

package ownership

import (
	"context"

	"github.com/neetstand/admin-service/internal/types"
)

type ServiceInterface interface {
	InitiateTransfer(ctx context.Context, ownerID, targetEmail string) error
	ValidateTransferToken(ctx context.Context, token string) (*types.PendingTransfer, error)
	CompleteTransfer(ctx context.Context, token, accepterID, accepterEmail string) error
}

type StorageInterface interface {
	GetProfileByID(ctx context.Context, id string) (*types.Profile, error)
	GetProfileByRole(ctx context.Context, role string) (*types.Profile, error)
	GetSetting(ctx context.Context, variable string) (*types.Setting, error)
	UpsertSetting(ctx context.Context, variable, value, description string) error
	DeleteSetting(ctx context.Context, variable string) error
	UpdateProfileRole(ctx context.Context, id, role string) error
	SetProfileActive(ctx context.Context, id string, active bool) error
}

type TxManagerInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}

type DirectoryInterface interface {
	UpdateMetadata(ctx context.Context, id string, metadata map[string]interface{}) error
}

type MailerInterface interface {
	Send(ctx context.Context, to, subject, html string) error
}
