// Copyright 2026 NeetStand Ltd.
// SPDX-License-Identifier: AGPL-3.0

package setup

import (
	"context"
	"errors"
	"fmt"

	"github.com/neetstand/admin-service/internal/logging"
	"github.com/neetstand/admin-service/internal/monitoring"
	"github.com/neetstand/admin-service/internal/storage"
	"github.com/neetstand/admin-service/internal/tracing"
	"github.com/neetstand/admin-service/internal/types"
)

type Service struct {
	storage   StorageInterface
	directory DirectoryInterface
	mailer    MailerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// SetupOwner creates the first account of the system. The owner starts
// inactive; their first successful login flips is_active and unlocks
// logins for everyone else.
func (s *Service) SetupOwner(ctx context.Context, email, password, fullName string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "setup.Service.SetupOwner")
	defer span.End()

	existing, err := s.storage.GetProfileByRole(ctx, types.RoleOwner)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return "", fmt.Errorf("failed to look up owner: %w", err)
	}
	if existing != nil {
		return "", types.ErrOwnerExists
	}

	id, err := s.directory.CreateIdentity(ctx, email, password, fullName)
	if err != nil {
		return "", fmt.Errorf("failed to create owner identity: %w", err)
	}

	profile := &types.Profile{
		ID:       id,
		FullName: fullName,
		Role:     types.RoleOwner,
		IsActive: false,
	}
	if err := s.storage.CreateProfile(ctx, profile); err != nil {
		return "", fmt.Errorf("failed to create owner profile: %w", err)
	}

	s.logger.Infof("owner account created: %s", id)

	return id, nil
}

// CreateSuperAdmin completes the superadmin setup step. The owner can
// take the duty on themselves, designate an existing account, or invite
// a new one by email. The welcome email is best effort.
func (s *Service) CreateSuperAdmin(ctx context.Context, callerID, fullName, email string, isMe bool) (string, error) {
	ctx, span := s.tracer.Start(ctx, "setup.Service.CreateSuperAdmin")
	defer span.End()

	if isMe {
		id, err := s.designateSelf(ctx, callerID)
		if err != nil {
			return "", err
		}
		s.sendWelcome(ctx, email, fullName)
		return id, nil
	}

	if email == "" {
		return "", types.ErrUserNotFound
	}

	targetID, err := s.directory.GetIdentityIDByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("failed to resolve email: %w", err)
	}

	if targetID == "" {
		// Invite: no password credential yet, the login code flow
		// rotates one in on first login.
		targetID, err = s.directory.CreateIdentity(ctx, email, "", fullName)
		if err != nil {
			return "", fmt.Errorf("failed to create identity: %w", err)
		}

		profile := &types.Profile{
			ID:       targetID,
			FullName: orDefault(fullName, "Super Admin"),
			Role:     types.RoleSuperadmin,
			IsActive: true,
		}
		if err := s.storage.CreateProfile(ctx, profile); err != nil {
			return "", fmt.Errorf("failed to create profile: %w", err)
		}
	} else if err := s.ensureSuperadminProfile(ctx, targetID, fullName); err != nil {
		return "", err
	}

	s.sendWelcome(ctx, email, fullName)

	s.logger.Security().RoleChanged(callerID, targetID, types.RoleSuperadmin)

	return targetID, nil
}

// designateSelf marks the caller as covering the superadmin duty. When
// the caller is the owner, the designation is recorded as a settings
// flag instead of changing their role, so the system keeps exactly one
// owner.
func (s *Service) designateSelf(ctx context.Context, callerID string) (string, error) {
	profile, err := s.storage.GetProfileByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", types.ErrNotAuthenticated
		}
		return "", fmt.Errorf("failed to load caller profile: %w", err)
	}

	if profile.Role == types.RoleOwner {
		err := s.storage.UpsertSetting(ctx, types.SettingSuperadminIsOwner, "true", "Owner covers the superadmin duty")
		if err != nil {
			return "", fmt.Errorf("failed to record designation: %w", err)
		}
		return callerID, nil
	}

	if err := s.storage.UpdateProfileRole(ctx, callerID, types.RoleSuperadmin); err != nil {
		return "", fmt.Errorf("failed to promote caller: %w", err)
	}

	return callerID, nil
}

func (s *Service) ensureSuperadminProfile(ctx context.Context, id, fullName string) error {
	_, err := s.storage.GetProfileByID(ctx, id)
	if err == nil {
		return s.storage.UpdateProfileRole(ctx, id, types.RoleSuperadmin)
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("failed to load profile: %w", err)
	}

	profile := &types.Profile{
		ID:       id,
		FullName: orDefault(fullName, "Super Admin"),
		Role:     types.RoleSuperadmin,
		IsActive: true,
	}
	if err := s.storage.CreateProfile(ctx, profile); err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}

	return nil
}

// sendWelcome is warn-only. Superadmin setup succeeds even when the
// welcome mail cannot be delivered.
func (s *Service) sendWelcome(ctx context.Context, email, name string) {
	if email == "" {
		return
	}

	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>You have been set up as a super admin on the NeetStand admin console. "+
			"Log in with your email address to get started.</p>",
		orDefault(name, "there"),
	)
	if err := s.mailer.Send(ctx, email, "Welcome to NEETStand Admin", body); err != nil {
		s.logger.Warnf("failed to send welcome email to %s: %v", email, err)
	}
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func NewService(storage StorageInterface, directory DirectoryInterface, mailer MailerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.storage = storage
	s.directory = directory
	s.mailer = mailer

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
