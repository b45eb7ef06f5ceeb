// Copyright 2026 NeetStand Ltd.
// SPDX-License-Identifier: AGPL-3.0

package login

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/neetstand/admin-service/internal/logging"
	"github.com/neetstand/admin-service/internal/monitoring"
	"github.com/neetstand/admin-service/internal/storage"
	"github.com/neetstand/admin-service/internal/tracing"
	"github.com/neetstand/admin-service/internal/types"
)

// Result is what a successful verification resolves to.
type Result struct {
	Role  string `json:"role"`
	Token string `json:"token"`
}

type Service struct {
	storage   StorageInterface
	directory DirectoryInterface
	mailer    MailerInterface
	issuer    TokenIssuerInterface

	otpLifetime     time.Duration
	sessionLifetime time.Duration

	now func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	s StorageInterface,
	directory DirectoryInterface,
	mailer MailerInterface,
	issuer TokenIssuerInterface,
	otpLifetime time.Duration,
	sessionLifetime time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:         s,
		directory:       directory,
		mailer:          mailer,
		issuer:          issuer,
		otpLifetime:     otpLifetime,
		sessionLifetime: sessionLifetime,
		now:             time.Now,
		tracer:          tracer,
		monitor:         monitor,
		logger:          logger,
	}
}

// Login resolves the email against the directory, enforces the system lock,
// and either offers the password mode (owner during initial setup, before a
// superadmin exists) or issues a fresh one-time code.
func (s *Service) Login(ctx context.Context, email string) (types.LoginMode, error) {
	ctx, span := s.tracer.Start(ctx, "login.Service.Login")
	defer span.End()

	userID, err := s.directory.GetIdentityIDByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("failed to resolve email: %w", err)
	}
	if userID == "" {
		return "", types.ErrUserNotFound
	}

	profile, err := s.storage.GetProfileByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", types.ErrProfileNotFound
		}
		return "", fmt.Errorf("failed to load profile: %w", err)
	}

	// System lock: until the owner has activated their account, nobody
	// else gets in.
	owner, err := s.storage.GetProfileByRole(ctx, types.RoleOwner)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return "", fmt.Errorf("failed to look up owner: %w", err)
	}
	systemActive := owner != nil && owner.IsActive
	if !systemActive && profile.Role != types.RoleOwner {
		s.logger.Security().LoginRejected(email, "system locked")
		return "", types.ErrSystemLocked
	}

	configured, err := s.superadminConfigured(ctx)
	if err != nil {
		return "", err
	}

	// Setup phase exception: the owner keeps password login until a
	// superadmin is configured.
	if !configured && profile.Role == types.RoleOwner {
		return types.LoginModePassword, nil
	}

	if err := s.issueCode(ctx, userID, email); err != nil {
		return "", err
	}

	return types.LoginModeOTP, nil
}

// issueCode records the issuance timestamp before rotating the credential,
// so a failure between the two steps never leaves a rotated credential with
// no recorded issuance time. The timestamp is cleared again if the rotation
// fails.
func (s *Service) issueCode(ctx context.Context, userID, email string) error {
	code, err := generateCode()
	if err != nil {
		return err
	}

	issuedAt := s.now().UTC()
	if err := s.storage.SetProfileOTPGeneratedAt(ctx, userID, &issuedAt); err != nil {
		return fmt.Errorf("failed to record code issuance: %w", err)
	}

	if err := s.directory.SetPassword(ctx, userID, code); err != nil {
		if clearErr := s.storage.SetProfileOTPGeneratedAt(ctx, userID, nil); clearErr != nil {
			s.logger.Errorf("failed to clear issuance time after rotation failure: %v", clearErr)
		}
		return fmt.Errorf("failed to rotate credential: %w", err)
	}

	s.logger.Security().CodeIssued(userID)

	html := fmt.Sprintf("<p>Your login code is: <strong>%s</strong></p>", code)
	if err := s.mailer.Send(ctx, email, "NeetStand Admin Login Code", html); err != nil {
		return fmt.Errorf("%w: %v", types.ErrEmailDispatchFailed, err)
	}

	return nil
}

// VerifyLogin delegates the credential check to the directory, applies the
// one-time code expiry window, and activates the owner on their first
// successful login.
func (s *Service) VerifyLogin(ctx context.Context, email, secret string) (*Result, error) {
	ctx, span := s.tracer.Start(ctx, "login.Service.VerifyLogin")
	defer span.End()

	userID, err := s.directory.VerifyPassword(ctx, email, secret)
	if err != nil {
		s.logger.Security().LoginRejected(email, "credential check failed")
		return nil, types.ErrNotAuthenticated
	}

	role := types.RoleUser
	profile, err := s.storage.GetProfileByID(ctx, userID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	if profile != nil {
		role = profile.Role

		configured, err := s.superadminConfigured(ctx)
		if err != nil {
			return nil, err
		}
		passwordMode := !configured && role == types.RoleOwner

		if !passwordMode && (role == types.RoleOwner || role == types.RoleSuperadmin) {
			if err := s.checkCodeWindow(ctx, userID, profile.OTPGeneratedAt, email); err != nil {
				return nil, err
			}
		}

		// First successful login activates the owner.
		if role == types.RoleOwner && !profile.IsActive {
			if err := s.storage.SetProfileActive(ctx, userID, true); err != nil {
				return nil, fmt.Errorf("failed to activate owner: %w", err)
			}
		}
	}

	token, err := s.issuer.IssueToken(userID, email, role, s.sessionLifetime)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	s.logger.Security().LoginSucceeded(userID, role)

	return &Result{Role: role, Token: token}, nil
}

// superadminConfigured reports whether the superadmin setup step has been
// completed, either by a dedicated superadmin profile or by the owner
// taking the duty on themselves.
func (s *Service) superadminConfigured(ctx context.Context) (bool, error) {
	superadmins, err := s.storage.CountProfilesByRole(ctx, types.RoleSuperadmin)
	if err != nil {
		return false, fmt.Errorf("failed to count superadmins: %w", err)
	}
	if superadmins > 0 {
		return true, nil
	}

	flag, err := s.storage.GetSetting(ctx, types.SettingSuperadminIsOwner)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read superadmin designation: %w", err)
	}
	return flag.Value == "true", nil
}

func (s *Service) checkCodeWindow(ctx context.Context, userID string, issuedAt *time.Time, email string) error {
	expired := issuedAt == nil || s.now().Sub(*issuedAt) > s.otpLifetime
	if !expired {
		return nil
	}

	// Force out the directory session the credential check just opened.
	if err := s.directory.DeleteSessions(ctx, userID); err != nil {
		s.logger.Warnf("failed to revoke sessions for %s: %v", userID, err)
	}

	s.logger.Security().LoginRejected(email, "code expired")
	return types.ErrOTPExpired
}

// ResendCode re-runs the issuance half of Login. A new code and timestamp
// overwrite the previous ones.
func (s *Service) ResendCode(ctx context.Context, email string) error {
	ctx, span := s.tracer.Start(ctx, "login.Service.ResendCode")
	defer span.End()

	_, err := s.Login(ctx, email)
	return err
}
