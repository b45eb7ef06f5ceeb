// Copyright 2026 NeetStand Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/neetstand/admin-service/internal/db"
	"github.com/neetstand/admin-service/internal/logging"
	"github.com/neetstand/admin-service/internal/monitoring"
	"github.com/neetstand/admin-service/internal/tracing"
	"github.com/neetstand/admin-service/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func (s *Storage) GetRoleByName(ctx context.Context, name string) (*types.Role, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetRoleByName")
	defer span.End()

	var r types.Role
	err := s.db.Statement(ctx).
		Select("id", "name", "description", "hierarchy_level").
		From("roles").
		Where(sq.Eq{"name": name}).
		QueryRowContext(ctx).
		Scan(&r.ID, &r.Name, &r.Description, &r.HierarchyLevel)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get role: %w", err)
	}

	return &r, nil
}

func (s *Storage) ListRoles(ctx context.Context) ([]*types.Role, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListRoles")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "name", "description", "hierarchy_level").
		From("roles").
		OrderBy("hierarchy_level DESC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	defer rows.Close()

	var roles []*types.Role
	for rows.Next() {
		var r types.Role
		if err := rows.Scan(&r.ID, &r.Name, &r.Description, &r.HierarchyLevel); err != nil {
			return nil, fmt.Errorf("failed to scan role: %w", err)
		}
		roles = append(roles, &r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return roles, nil
}

func scanProfile(row sq.RowScanner) (*types.Profile, error) {
	var p types.Profile
	err := row.Scan(&p.ID, &p.FullName, &p.Role, &p.IsActive, &p.OTPGeneratedAt, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan profile: %w", err)
	}
	return &p, nil
}

func (s *Storage) GetProfileByID(ctx context.Context, id string) (*types.Profile, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetProfileByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select("id", "full_name", "role", "is_active", "otp_generated_at", "created_at", "updated_at").
		From("profiles").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	return scanProfile(row)
}

// GetProfileByRole returns the first profile holding the role. Used for the
// owner, where at most one row exists.
func (s *Storage) GetProfileByRole(ctx context.Context, role string) (*types.Profile, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetProfileByRole")
	defer span.End()

	row := s.db.Statement(ctx).
		Select("id", "full_name", "role", "is_active", "otp_generated_at", "created_at", "updated_at").
		From("profiles").
		Where(sq.Eq{"role": role}).
		OrderBy("created_at ASC").
		Limit(1).
		QueryRowContext(ctx)

	return scanProfile(row)
}

// ListAdminProfiles returns every non-user profile joined with its role's
// hierarchy level. Visibility filtering against the caller's level happens
// in the service layer.
func (s *Storage) ListAdminProfiles(ctx context.Context) ([]*types.AdminView, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListAdminProfiles")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("p.id", "p.full_name", "p.role", "r.hierarchy_level", "p.is_active").
		From("profiles p").
		Join("roles r ON p.role = r.name").
		Where(sq.NotEq{"p.role": types.RoleUser}).
		OrderBy("r.hierarchy_level DESC", "p.created_at ASC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list admin profiles: %w", err)
	}
	defer rows.Close()

	var admins []*types.AdminView
	for rows.Next() {
		var a types.AdminView
		if err := rows.Scan(&a.ID, &a.FullName, &a.Role, &a.HierarchyLevel, &a.IsActive); err != nil {
			return nil, fmt.Errorf("failed to scan admin profile: %w", err)
		}
		admins = append(admins, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return admins, nil
}

func (s *Storage) CountProfilesByRole(ctx context.Context, role string) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountProfilesByRole")
	defer span.End()

	var count int
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("profiles").
		Where(sq.Eq{"role": role}).
		QueryRowContext(ctx).
		Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count profiles: %w", err)
	}

	return count, nil
}

// CountProfilesByRoleForUpdate locks the matching rows for the duration of
// the surrounding transaction, so that two concurrent demotions cannot both
// observe "more than one superadmin" and proceed.
func (s *Storage) CountProfilesByRoleForUpdate(ctx context.Context, role string) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountProfilesByRoleForUpdate")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id").
		From("profiles").
		Where(sq.Eq{"role": role}).
		Suffix("FOR UPDATE").
		QueryContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to lock profiles: %w", err)
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return 0, fmt.Errorf("failed to scan locked profile: %w", err)
		}
		count++
	}

	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return count, nil
}

func (s *Storage) CreateProfile(ctx context.Context, p *types.Profile) error {
	ctx, span := s.tracer.Start(ctx, "storage.CreateProfile")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("profiles").
		Columns("id", "full_name", "role", "is_active").
		Values(p.ID, p.FullName, p.Role, p.IsActive).
		ExecContext(ctx)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("failed to create profile: %w", err)
	}

	return nil
}

func (s *Storage) UpdateProfileRole(ctx context.Context, id, role string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateProfileRole")
	defer span.End()

	return s.updateProfile(ctx, id, map[string]interface{}{"role": role})
}

func (s *Storage) SetProfileActive(ctx context.Context, id string, active bool) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetProfileActive")
	defer span.End()

	return s.updateProfile(ctx, id, map[string]interface{}{"is_active": active})
}

func (s *Storage) SetProfileOTPGeneratedAt(ctx context.Context, id string, at *time.Time) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetProfileOTPGeneratedAt")
	defer span.End()

	return s.updateProfile(ctx, id, map[string]interface{}{"otp_generated_at": at})
}

func (s *Storage) updateProfile(ctx context.Context, id string, set map[string]interface{}) error {
	set["updated_at"] = time.Now().UTC()

	res, err := s.db.Statement(ctx).
		Update("profiles").
		SetMap(set).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) GetProfilePreferences(ctx context.Context, id string) (*types.NotificationPreferences, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetProfilePreferences")
	defer span.End()

	var p types.NotificationPreferences
	err := s.db.Statement(ctx).
		Select("newsletter", "course_launch", "city_events", "email", "sms", "phone").
		From("profiles").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&p.Newsletter, &p.CourseLaunch, &p.CityEvents, &p.Email, &p.SMS, &p.Phone)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get profile preferences: %w", err)
	}

	return &p, nil
}

func (s *Storage) UpdateProfilePreferences(ctx context.Context, id string, p *types.NotificationPreferences) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateProfilePreferences")
	defer span.End()

	return s.updateProfile(ctx, id, map[string]interface{}{
		"newsletter":    p.Newsletter,
		"course_launch": p.CourseLaunch,
		"city_events":   p.CityEvents,
		"email":         p.Email,
		"sms":           p.SMS,
		"phone":         p.Phone,
	})
}

func (s *Storage) DeleteProfile(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteProfile")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("profiles").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}

	return nil
}

func (s *Storage) GetSetting(ctx context.Context, variable string) (*types.Setting, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetSetting")
	defer span.End()

	var v types.Setting
	err := s.db.Statement(ctx).
		Select("variable", "value", "COALESCE(description, '')", "updated_at").
		From("settings").
		Where(sq.Eq{"variable": variable}).
		QueryRowContext(ctx).
		Scan(&v.Variable, &v.Value, &v.Description, &v.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get setting: %w", err)
	}

	return &v, nil
}

func (s *Storage) UpsertSetting(ctx context.Context, variable, value, description string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertSetting")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("settings").
		Columns("variable", "value", "description", "updated_at").
		Values(variable, value, description, time.Now().UTC()).
		Suffix("ON CONFLICT (variable) DO UPDATE SET value = EXCLUDED.value, description = EXCLUDED.description, updated_at = EXCLUDED.updated_at").
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert setting: %w", err)
	}

	return nil
}

func (s *Storage) DeleteSetting(ctx context.Context, variable string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteSetting")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("settings").
		Where(sq.Eq{"variable": variable}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete setting: %w", err)
	}

	return nil
}

func (s *Storage) EnqueueEmail(ctx context.Context, e *types.QueuedEmail) (string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.EnqueueEmail")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate email ID: %w", err)
	}

	_, err = s.db.Statement(ctx).
		Insert("email_queue").
		Columns("id", "to_email", "from_email", "subject", "html_body", "status").
		Values(id.String(), e.ToEmail, e.FromEmail, e.Subject, e.HTMLBody, "pending").
		ExecContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to enqueue email: %w", err)
	}

	return id.String(), nil
}

func (s *Storage) ListPendingEmails(ctx context.Context, limit uint64) ([]*types.QueuedEmail, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListPendingEmails")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "to_email", "from_email", "subject", "html_body", "status").
		From("email_queue").
		Where(sq.Eq{"status": "pending"}).
		OrderBy("created_at ASC").
		Limit(limit).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending emails: %w", err)
	}
	defer rows.Close()

	var emails []*types.QueuedEmail
	for rows.Next() {
		var e types.QueuedEmail
		if err := rows.Scan(&e.ID, &e.ToEmail, &e.FromEmail, &e.Subject, &e.HTMLBody, &e.Status); err != nil {
			return nil, fmt.Errorf("failed to scan queued email: %w", err)
		}
		emails = append(emails, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return emails, nil
}

func (s *Storage) MarkEmailProcessed(ctx context.Context, id, status, sendErr string) error {
	ctx, span := s.tracer.Start(ctx, "storage.MarkEmailProcessed")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Update("email_queue").
		SetMap(map[string]interface{}{
			"status":       status,
			"processed_at": time.Now().UTC(),
			"error":        sendErr,
		}).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark email processed: %w", err)
	}

	return nil
}
