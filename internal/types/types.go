// Copyright 2026 NeetStand Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

// Phase is the system readiness state derived from the profile and settings
// stores. It is recomputed on every request and never cached.
type Phase string

const (
	PhaseNoOwner                    Phase = "no_owner"
	PhaseOwnerInactive              Phase = "owner_inactive"
	PhaseOwnerActiveNoSuperadmin    Phase = "owner_active_no_superadmin"
	PhaseOperational                Phase = "operational"
)

// LoginMode selects how a submitted login secret is interpreted.
type LoginMode string

const (
	// LoginModePassword is only offered to the owner while no superadmin
	// has been configured yet.
	LoginModePassword LoginMode = "password"
	LoginModeOTP      LoginMode = "otp"
)

const (
	RoleOwner             = "owner"
	RoleSuperadmin        = "superadmin"
	RoleFunctionalManager = "functional_manager"
	RoleManager           = "manager"
	RoleSupport           = "support"
	RoleUser              = "user"
)

// SettingSuperadminIsOwner marks the owner as having taken on the
// superadmin duty during setup. Role enforcement still reads only the
// profile role column; this is bootstrap-completion state, like the
// email verification flag.
const SettingSuperadminIsOwner = "superadmin_is_owner"

type Role struct {
	ID             string    `db:"id"`
	Name           string    `db:"name"`
	Description    string    `db:"description"`
	HierarchyLevel int       `db:"hierarchy_level"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

// Profile holds the authoritative role of an identity. ID mirrors the
// identity directory's user id. The Email field is a notification
// preference toggle, not an address; addresses live in the directory only.
type Profile struct {
	ID             string     `db:"id"`
	FullName       string     `db:"full_name"`
	Role           string     `db:"role"`
	IsActive       bool       `db:"is_active"`
	Newsletter     bool       `db:"newsletter"`
	CourseLaunch   bool       `db:"course_launch"`
	CityEvents     bool       `db:"city_events"`
	Email          bool       `db:"email"`
	SMS            bool       `db:"sms"`
	Phone          bool       `db:"phone"`
	OTPGeneratedAt *time.Time `db:"otp_generated_at"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
}

// NotificationPreferences are the self-service contact toggles on a profile.
// Email here is the channel opt-in flag, not an address.
type NotificationPreferences struct {
	Newsletter   bool `json:"newsletter"`
	CourseLaunch bool `json:"course_launch"`
	CityEvents   bool `json:"city_events"`
	Email        bool `json:"email"`
	SMS          bool `json:"sms"`
	Phone        bool `json:"phone"`
}

// AdminView is a profile joined with its hierarchy level and enriched with
// the directory email address for listing purposes.
type AdminView struct {
	ID             string `json:"id"`
	FullName       string `json:"full_name"`
	Role           string `json:"role"`
	HierarchyLevel int    `json:"hierarchy_level"`
	IsActive       bool   `json:"is_active"`
	EmailAddress   string `json:"email"`
}

type Setting struct {
	Variable    string    `db:"variable"`
	Value       string    `db:"value"`
	Description string    `db:"description"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// PendingTransfer is the single in-flight ownership handoff, serialized as
// JSON under the pending_owner_transfer settings key.
type PendingTransfer struct {
	TargetEmail string `json:"target_email"`
	Token       string `json:"token"`
	// Expires is epoch milliseconds.
	Expires     int64  `json:"expires"`
	FromOwnerID string `json:"from_owner_id"`
}

func (p *PendingTransfer) ExpiresAt() time.Time {
	return time.UnixMilli(p.Expires)
}

// QueuedEmail is a row in the email_queue table drained by the mail worker.
type QueuedEmail struct {
	ID          string     `db:"id"`
	ToEmail     string     `db:"to_email"`
	FromEmail   string     `db:"from_email"`
	Subject     string     `db:"subject"`
	HTMLBody    string     `db:"html_body"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	ProcessedAt *time.Time `db:"processed_at"`
	Error       string     `db:"error"`
}
