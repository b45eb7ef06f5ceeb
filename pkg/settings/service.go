// Copyright 2026 NeetStand Ltd.
// SPDX-License-Identifier: AGPL-3.0

package settings

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/neetstand/admin-service/internal/logging"
	"github.com/neetstand/admin-service/internal/mail"
	"github.com/neetstand/admin-service/internal/monitoring"
	"github.com/neetstand/admin-service/internal/storage"
	"github.com/neetstand/admin-service/internal/tracing"
	"github.com/neetstand/admin-service/internal/types"
)

const maintenanceModeKey = "maintenance_mode"

type Service struct {
	storage StorageInterface
	mailer  MailerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) GetEmailSettings(ctx context.Context, callerID string) (*EmailSettings, error) {
	ctx, span := s.tracer.Start(ctx, "settings.Service.GetEmailSettings")
	defer span.End()

	if err := s.requireOwner(ctx, callerID); err != nil {
		return nil, err
	}

	out := new(EmailSettings)
	out.APIKey, _ = s.settingValue(ctx, mail.SettingAPIKey)
	out.ProviderURL, _ = s.settingValue(ctx, mail.SettingProviderURL)
	out.SiteURL, _ = s.settingValue(ctx, mail.SettingSiteURL)
	out.Sender, _ = s.settingValue(ctx, mail.SettingSender)
	verified, _ := s.settingValue(ctx, mail.SettingVerified)
	out.Verified = verified == "true"

	return out, nil
}

func (s *Service) SaveEmailSettings(ctx context.Context, callerID string, settings *EmailSettings) error {
	ctx, span := s.tracer.Start(ctx, "settings.Service.SaveEmailSettings")
	defer span.End()

	if err := s.requireOwner(ctx, callerID); err != nil {
		return err
	}

	pairs := map[string]string{
		mail.SettingAPIKey:      settings.APIKey,
		mail.SettingProviderURL: settings.ProviderURL,
		mail.SettingSiteURL:     settings.SiteURL,
		mail.SettingSender:      settings.Sender,
	}
	for variable, value := range pairs {
		if value == "" {
			continue
		}
		if err := s.storage.UpsertSetting(ctx, variable, value, "Email provider configuration"); err != nil {
			return fmt.Errorf("saving %s: %w", variable, err)
		}
	}

	// Changing provider credentials invalidates any earlier verification.
	return s.storage.UpsertSetting(ctx, mail.SettingVerified, "false", "Email provider verified")
}

func (s *Service) SendTestEmail(ctx context.Context, callerID, to string) error {
	ctx, span := s.tracer.Start(ctx, "settings.Service.SendTestEmail")
	defer span.End()

	if err := s.requireOwner(ctx, callerID); err != nil {
		return err
	}

	body := "<p>This is a test email from the NeetStand admin console. " +
		"If you received it, the email provider is configured correctly.</p>"
	if err := s.mailer.Send(ctx, to, "NeetStand Email Configuration Test", body); err != nil {
		if errors.Is(err, types.ErrConfigurationMissing) {
			return err
		}
		return fmt.Errorf("%w: %v", types.ErrEmailDispatchFailed, err)
	}

	return nil
}

func (s *Service) ConfirmEmailVerified(ctx context.Context, callerID string) error {
	ctx, span := s.tracer.Start(ctx, "settings.Service.ConfirmEmailVerified")
	defer span.End()

	if err := s.requireOwner(ctx, callerID); err != nil {
		return err
	}

	return s.storage.UpsertSetting(ctx, mail.SettingVerified, "true", "Email provider verified")
}

func (s *Service) GetMaintenanceMode(ctx context.Context) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "settings.Service.GetMaintenanceMode")
	defer span.End()

	value, err := s.settingValue(ctx, maintenanceModeKey)
	if err != nil {
		return false, err
	}

	enabled, _ := strconv.ParseBool(value)
	return enabled, nil
}

func (s *Service) SetMaintenanceMode(ctx context.Context, callerID string, enabled bool) error {
	ctx, span := s.tracer.Start(ctx, "settings.Service.SetMaintenanceMode")
	defer span.End()

	if err := s.requireOwner(ctx, callerID); err != nil {
		return err
	}

	return s.storage.UpsertSetting(ctx, maintenanceModeKey, strconv.FormatBool(enabled), "Maintenance mode")
}

func (s *Service) requireOwner(ctx context.Context, callerID string) error {
	profile, err := s.storage.GetProfileByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return types.ErrNotAuthenticated
		}
		return err
	}
	if profile.Role != types.RoleOwner {
		return types.ErrInsufficientRank
	}
	return nil
}

func (s *Service) settingValue(ctx context.Context, variable string) (string, error) {
	setting, err := s.storage.GetSetting(ctx, variable)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", nil
		}
		return "", err
	}
	return setting.Value, nil
}

func NewService(storage StorageInterface, mailer MailerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.storage = storage
	s.mailer = mailer

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
