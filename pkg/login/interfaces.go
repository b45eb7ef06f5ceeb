// Copyright 2026 NeetStand Ltd.
// SPDX-License-Identifier: AGPL-3.0

package login

import (
	"context"
	"time"

	"github.com/neetstand/admin-service/internal/types"
)

type ServiceInterface interface {
	Login(ctx context.Context, email string) (types.LoginMode, error)
	VerifyLogin(ctx context.Context, email, secret string) (*Result, error)
	ResendCode(ctx context.Context, email string) error
}

// StorageInterface is the subset of the storage layer the login protocol
// needs.
type StorageInterface interface {
	GetProfileByID(ctx context.Context, id string) (*types.Profile, error)
	GetProfileByRole(ctx context.Context, role string) (*types.Profile, error)
	CountProfilesByRole(ctx context.Context, role string) (int, error)
	GetSetting(ctx context.Context, variable string) (*types.Setting, error)
	SetProfileOTPGeneratedAt(ctx context.Context, id string, at *time.Time) error
	SetProfileActive(ctx context.Context, id string, active bool) error
}

// DirectoryInterface is the identity directory subset used for credential
// rotation and verification.
type DirectoryInterface interface {
	GetIdentityIDByEmail(ctx context.Context, email string) (string, error)
	SetPassword(ctx context.Context, id, password string) error
	VerifyPassword(ctx context.Context, email, password string) (string, error)
	DeleteSessions(ctx context.Context, id string) error
}

type MailerInterface interface {
	Send(ctx context.Context, to, subject, html string) error
}

type TokenIssuerInterface interface {
	IssueToken(userID, email, role string, ttl time.Duration) (string, error)
}
