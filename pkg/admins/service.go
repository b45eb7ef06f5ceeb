// Copyright 2026 NeetStand Ltd.
// SPDX-License-Identifier: AGPL-3.0

package admins

import (
	"context"
	"errors"
	"fmt"

	"github.com/neetstand/admin-service/internal/kratos"
	"github.com/neetstand/admin-service/internal/logging"
	"github.com/neetstand/admin-service/internal/monitoring"
	"github.com/neetstand/admin-service/internal/storage"
	"github.com/neetstand/admin-service/internal/tracing"
	"github.com/neetstand/admin-service/internal/types"
)

const emailUnavailable = "Email unavailable"

type Service struct {
	storage   StorageInterface
	tx        TxManagerInterface
	directory DirectoryInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// ListAdmins returns every admin profile the caller is allowed to see,
// meaning admins at or below the caller's own hierarchy level. Email
// addresses come from the identity directory; a profile whose identity
// is missing still shows up, with a placeholder address.
func (s *Service) ListAdmins(ctx context.Context, callerID string) ([]*types.AdminView, error) {
	ctx, span := s.tracer.Start(ctx, "admins.Service.ListAdmins")
	defer span.End()

	callerLevel, err := s.profileLevel(ctx, callerID)
	if err != nil {
		return nil, err
	}

	all, err := s.storage.ListAdminProfiles(ctx)
	if err != nil {
		return nil, err
	}

	emails := make(map[string]string)
	identities, err := s.directory.ListIdentities(ctx)
	if err != nil {
		s.logger.Warnf("listing identities failed, admin emails unavailable: %v", err)
	} else {
		for _, identity := range identities {
			emails[identity.Id] = kratos.IdentityEmail(&identity)
		}
	}

	visible := make([]*types.AdminView, 0, len(all))
	for _, admin := range all {
		if admin.HierarchyLevel > callerLevel {
			continue
		}
		admin.EmailAddress = emails[admin.ID]
		if admin.EmailAddress == "" {
			admin.EmailAddress = emailUnavailable
		}
		visible = append(visible, admin)
	}

	return visible, nil
}

// ListAssignableRoles returns the roles the caller may hand out, meaning
// roles at or below the caller's own hierarchy level.
func (s *Service) ListAssignableRoles(ctx context.Context, callerID string) ([]*types.Role, error) {
	ctx, span := s.tracer.Start(ctx, "admins.Service.ListAssignableRoles")
	defer span.End()

	callerLevel, err := s.profileLevel(ctx, callerID)
	if err != nil {
		return nil, err
	}

	all, err := s.storage.ListRoles(ctx)
	if err != nil {
		return nil, err
	}

	assignable := make([]*types.Role, 0, len(all))
	for _, role := range all {
		if role.HierarchyLevel > callerLevel {
			continue
		}
		assignable = append(assignable, role)
	}

	return assignable, nil
}

// DeleteAdmin removes the target's profile and directory identity. The
// caller must outrank or match the target, may not delete themselves,
// and may not remove the last remaining superadmin.
func (s *Service) DeleteAdmin(ctx context.Context, callerID, targetID string) error {
	ctx, span := s.tracer.Start(ctx, "admins.Service.DeleteAdmin")
	defer span.End()

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		callerLevel, err := s.profileLevel(ctx, callerID)
		if err != nil {
			return err
		}

		target, err := s.storage.GetProfileByID(ctx, targetID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return types.ErrProfileNotFound
			}
			return err
		}

		targetLevel, err := s.roleLevel(ctx, target.Role)
		if err != nil {
			return err
		}

		if callerLevel < targetLevel {
			return types.ErrInsufficientRank
		}

		if callerID == targetID {
			return types.ErrSelfDeletionForbidden
		}

		if target.Role == types.RoleSuperadmin {
			count, err := s.storage.CountProfilesByRoleForUpdate(ctx, types.RoleSuperadmin)
			if err != nil {
				return err
			}
			if count <= 1 {
				return types.ErrLastSuperadminProtected
			}
		}

		if err := s.storage.DeleteProfile(ctx, targetID); err != nil {
			return err
		}

		// Inside the transaction so a directory failure rolls the
		// profile deletion back.
		if err := s.directory.DeleteIdentity(ctx, targetID); err != nil {
			return fmt.Errorf("deleting identity %s: %w", targetID, err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Security().AdminDeleted(callerID, targetID)

	return nil
}

// UpdateAdminRole changes the target's role. The caller may not assign
// a role above their own level, may not act on a target above their
// own level, and may not demote the last remaining superadmin.
func (s *Service) UpdateAdminRole(ctx context.Context, callerID, targetID, newRole string) error {
	ctx, span := s.tracer.Start(ctx, "admins.Service.UpdateAdminRole")
	defer span.End()

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		callerLevel, err := s.profileLevel(ctx, callerID)
		if err != nil {
			return err
		}

		target, err := s.storage.GetProfileByID(ctx, targetID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return types.ErrProfileNotFound
			}
			return err
		}

		role, err := s.storage.GetRoleByName(ctx, newRole)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return types.ErrInvalidRole
			}
			return err
		}

		if role.HierarchyLevel > callerLevel {
			return types.ErrPromotionAboveSelf
		}

		targetLevel, err := s.roleLevel(ctx, target.Role)
		if err != nil {
			return err
		}

		if callerLevel < targetLevel {
			return types.ErrInsufficientRank
		}

		if target.Role == types.RoleSuperadmin && newRole != types.RoleSuperadmin {
			count, err := s.storage.CountProfilesByRoleForUpdate(ctx, types.RoleSuperadmin)
			if err != nil {
				return err
			}
			if count <= 1 {
				return types.ErrLastSuperadminProtected
			}
		}

		return s.storage.UpdateProfileRole(ctx, targetID, newRole)
	})
	if err != nil {
		return err
	}

	s.logger.Security().RoleChanged(callerID, targetID, newRole)

	return nil
}

func (s *Service) profileLevel(ctx context.Context, id string) (int, error) {
	profile, err := s.storage.GetProfileByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return 0, types.ErrNotAuthenticated
		}
		return 0, err
	}
	return s.roleLevel(ctx, profile.Role)
}

func (s *Service) roleLevel(ctx context.Context, name string) (int, error) {
	role, err := s.storage.GetRoleByName(ctx, name)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return role.HierarchyLevel, nil
}

func NewService(storage StorageInterface, tx TxManagerInterface, directory DirectoryInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.storage = storage
	s.tx = tx
	s.directory = directory

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
