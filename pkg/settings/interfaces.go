// Copyright 2026 NeetStand Ltd.
// SPDX-License-Identifier: AGPL-3.0

package settings

import (
	"context"

	"github.com/neetstand/admin-service/internal/types"
)

// EmailSettings is the provider configuration exposed to the console.
type EmailSettings struct {
	APIKey      string `json:"api_key"`
	ProviderURL string `json:"provider_url"`
	SiteURL     string `json:"site_url"`
	Sender      string `json:"sender"`
	Verified    bool   `json:"verified"`
}

type ServiceInterface interface {
	GetEmailSettings(ctx context.Context, callerID string) (*EmailSettings, error)
	SaveEmailSettings(ctx context.Context, callerID string, settings *EmailSettings) error
	SendTestEmail(ctx context.Context, callerID, to string) error
	ConfirmEmailVerified(ctx context.Context, callerID string) error
	GetMaintenanceMode(ctx context.Context) (bool, error)
	SetMaintenanceMode(ctx context.Context, callerID string, enabled bool) error
}

type StorageInterface interface {
	GetProfileByID(ctx context.Context, id string) (*types.Profile, error)
	GetSetting(ctx context.Context, variable string) (*types.Setting, error)
	UpsertSetting(ctx context.Context, variable, value, description string) error
}

type MailerInterface interface {
	Send(ctx context.Context, to, subject, html string) error
}
