// Copyright 2026 NeetStand Ltd.
// SPDX-License-Identifier: AGPL-3.0

package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/neetstand/admin-service/internal/logging"
	"github.com/neetstand/admin-service/internal/mail"
	"github.com/neetstand/admin-service/internal/monitoring"
	"github.com/neetstand/admin-service/internal/storage"
	"github.com/neetstand/admin-service/internal/tracing"
	"github.com/neetstand/admin-service/internal/types"
)

// Status is the readiness snapshot the routing layer gates on. It is
// recomputed from the database on every call; caching it across requests
// would let a request slip past setup gating on stale state.
type Status struct {
	Phase            types.Phase `json:"phase"`
	OwnerExists      bool        `json:"owner_exists"`
	OwnerActive      bool        `json:"owner_active"`
	SuperadminExists bool        `json:"superadmin_exists"`
	EmailVerified    bool        `json:"email_verified"`
}

type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(s StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	return &Service{
		storage: s,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) Status(ctx context.Context) (*Status, error) {
	ctx, span := s.tracer.Start(ctx, "bootstrap.Service.Status")
	defer span.End()

	st := new(Status)

	owner, err := s.storage.GetProfileByRole(ctx, types.RoleOwner)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up owner: %w", err)
	}
	if owner != nil {
		st.OwnerExists = true
		st.OwnerActive = owner.IsActive
	}

	superadmins, err := s.storage.CountProfilesByRole(ctx, types.RoleSuperadmin)
	if err != nil {
		return nil, fmt.Errorf("failed to count superadmins: %w", err)
	}
	st.SuperadminExists = superadmins > 0

	if !st.SuperadminExists {
		// The owner may have taken the superadmin duty on themselves
		// during setup.
		flag, err := s.storage.GetSetting(ctx, types.SettingSuperadminIsOwner)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("failed to read superadmin designation: %w", err)
		}
		st.SuperadminExists = flag != nil && flag.Value == "true"
	}

	verified, err := s.storage.GetSetting(ctx, mail.SettingVerified)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to read email verification setting: %w", err)
	}
	st.EmailVerified = verified != nil && verified.Value == "true"

	switch {
	case !st.OwnerExists:
		st.Phase = types.PhaseNoOwner
	case !st.OwnerActive:
		st.Phase = types.PhaseOwnerInactive
	case !st.SuperadminExists || !st.EmailVerified:
		st.Phase = types.PhaseOwnerActiveNoSuperadmin
	default:
		st.Phase = types.PhaseOperational
	}

	return st, nil
}
