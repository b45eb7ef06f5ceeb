// Copyright 2026 NeetStand Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package profile exposes the self-service part of a signed-in user's
// profile. Preferences carry no rank checks, every caller may edit only
// their own row.
package profile

import (
	"context"
	"errors"

	"github.com/neetstand/admin-service/internal/logging"
	"github.com/neetstand/admin-service/internal/monitoring"
	"github.com/neetstand/admin-service/internal/storage"
	"github.com/neetstand/admin-service/internal/tracing"
	"github.com/neetstand/admin-service/internal/types"
)

type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) GetPreferences(ctx context.Context, callerID string) (*types.NotificationPreferences, error) {
	ctx, span := s.tracer.Start(ctx, "profile.Service.GetPreferences")
	defer span.End()

	prefs, err := s.storage.GetProfilePreferences(ctx, callerID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, types.ErrNotAuthenticated
		}
		return nil, err
	}

	return prefs, nil
}

func (s *Service) UpdatePreferences(ctx context.Context, callerID string, prefs *types.NotificationPreferences) error {
	ctx, span := s.tracer.Start(ctx, "profile.Service.UpdatePreferences")
	defer span.End()

	if err := s.storage.UpdateProfilePreferences(ctx, callerID, prefs); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return types.ErrNotAuthenticated
		}
		return err
	}

	return nil
}

func NewService(storage StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.storage = storage

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
