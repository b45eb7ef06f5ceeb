// Copyright 2026 NeetStand Ltd.
// SPDX-License-Identifier: AGPL-3.0

package ownership

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/neetstand/admin-service/internal/logging"
	"github.com/neetstand/admin-service/internal/monitoring"
	"github.com/neetstand/admin-service/internal/storage"
	"github.com/neetstand/admin-service/internal/tracing"
	"github.com/neetstand/admin-service/internal/types"
)

const pendingTransferKey = "pending_owner_transfer"

type Service struct {
	storage   StorageInterface
	tx        TxManagerInterface
	directory DirectoryInterface
	mailer    MailerInterface

	adminURL         string
	transferLifetime time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface

	now func() time.Time
}

// InitiateTransfer records a pending handoff of the owner role to
// targetEmail and mails them an acceptance link. Only the current owner
// may start a transfer, checked against a fresh profile lookup rather
// than the caller's session claims. A new transfer supersedes any
// pending one.
func (s *Service) InitiateTransfer(ctx context.Context, ownerID, targetEmail string) error {
	ctx, span := s.tracer.Start(ctx, "ownership.Service.InitiateTransfer")
	defer span.End()

	caller, err := s.storage.GetProfileByID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return types.ErrNotAuthenticated
		}
		return err
	}
	if caller.Role != types.RoleOwner {
		return types.ErrInsufficientRank
	}

	pending := types.PendingTransfer{
		TargetEmail: targetEmail,
		Token:       uuid.NewString(),
		Expires:     s.now().Add(s.transferLifetime).UnixMilli(),
		FromOwnerID: ownerID,
	}

	payload, err := json.Marshal(pending)
	if err != nil {
		return fmt.Errorf("marshalling pending transfer: %w", err)
	}

	err = s.storage.UpsertSetting(ctx, pendingTransferKey, string(payload), "Pending ownership transfer")
	if err != nil {
		return err
	}

	link := fmt.Sprintf("%s/transfer-ownership?token=%s", strings.TrimRight(s.adminURL, "/"), pending.Token)
	body := fmt.Sprintf(
		"<p>You have been designated as the new owner of the NeetStand admin console.</p>"+
			"<p><a href=%q>Accept ownership</a></p>"+
			"<p>This link expires in %d hours.</p>",
		link, int(s.transferLifetime.Hours()),
	)
	if err := s.mailer.Send(ctx, targetEmail, "NeetStand Ownership Transfer", body); err != nil {
		// Leave the pending record in place so the owner can retry by
		// initiating again.
		return fmt.Errorf("%w: %v", types.ErrEmailDispatchFailed, err)
	}

	s.logger.Security().OwnershipTransferInitiated(ownerID, targetEmail)

	return nil
}

// ValidateTransferToken returns the pending transfer matching token.
func (s *Service) ValidateTransferToken(ctx context.Context, token string) (*types.PendingTransfer, error) {
	ctx, span := s.tracer.Start(ctx, "ownership.Service.ValidateTransferToken")
	defer span.End()

	return s.pendingForToken(ctx, token)
}

// CompleteTransfer swaps the owner role. The accepter's verified email
// must match the transfer target. The demotion of the old owner, the
// promotion of the accepter and the removal of the pending record
// happen in one transaction so there is never a moment with zero or
// two owners.
func (s *Service) CompleteTransfer(ctx context.Context, token, accepterID, accepterEmail string) error {
	ctx, span := s.tracer.Start(ctx, "ownership.Service.CompleteTransfer")
	defer span.End()

	var fromOwnerID string
	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		pending, err := s.pendingForToken(ctx, token)
		if err != nil {
			return err
		}

		if !strings.EqualFold(pending.TargetEmail, accepterEmail) {
			return types.ErrEmailMismatch
		}
		fromOwnerID = pending.FromOwnerID

		if err := s.storage.UpdateProfileRole(ctx, pending.FromOwnerID, types.RoleSuperadmin); err != nil {
			return fmt.Errorf("demoting previous owner: %w", err)
		}

		if err := s.storage.UpdateProfileRole(ctx, accepterID, types.RoleOwner); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return types.ErrProfileNotFound
			}
			return fmt.Errorf("promoting new owner: %w", err)
		}
		if err := s.storage.SetProfileActive(ctx, accepterID, true); err != nil {
			return fmt.Errorf("activating new owner: %w", err)
		}

		return s.storage.DeleteSetting(ctx, pendingTransferKey)
	})
	if err != nil {
		return err
	}

	// Metadata mirrors are best effort, the profiles table is the
	// source of truth for roles.
	if err := s.directory.UpdateMetadata(ctx, fromOwnerID, map[string]interface{}{"role": types.RoleSuperadmin}); err != nil {
		s.logger.Warnf("failed to mirror role for previous owner %s: %v", fromOwnerID, err)
	}
	if err := s.directory.UpdateMetadata(ctx, accepterID, map[string]interface{}{"role": types.RoleOwner}); err != nil {
		s.logger.Warnf("failed to mirror role for new owner %s: %v", accepterID, err)
	}

	s.logger.Security().OwnershipTransferred(fromOwnerID, accepterID)

	return nil
}

func (s *Service) pendingForToken(ctx context.Context, token string) (*types.PendingTransfer, error) {
	setting, err := s.storage.GetSetting(ctx, pendingTransferKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, types.ErrNoPendingTransfer
		}
		return nil, err
	}

	var pending types.PendingTransfer
	if err := json.Unmarshal([]byte(setting.Value), &pending); err != nil {
		return nil, fmt.Errorf("decoding pending transfer: %w", err)
	}

	if pending.Token != token {
		return nil, types.ErrTokenMismatch
	}
	if s.now().After(pending.ExpiresAt()) {
		return nil, types.ErrTokenExpired
	}

	return &pending, nil
}

func NewService(storage StorageInterface, tx TxManagerInterface, directory DirectoryInterface, mailer MailerInterface, adminURL string, transferLifetime time.Duration, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.storage = storage
	s.tx = tx
	s.directory = directory
	s.mailer = mailer

	s.adminURL = adminURL
	s.transferLifetime = transferLifetime

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	s.now = time.Now

	return s
}
