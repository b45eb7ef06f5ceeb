// Copyright 2026 NeetStand Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"errors"
)

// Sentinel errors for the hierarchy, login and ownership state machines.
// All precondition checks return one of these before any mutation happens.
var (
	ErrNotAuthenticated        = errors.New("not authenticated")
	ErrProfileNotFound         = errors.New("profile not found")
	ErrUserNotFound            = errors.New("user not found")
	ErrSystemLocked            = errors.New("system is locked until the owner activates their account")
	ErrOTPExpired              = errors.New("one-time code has expired")
	ErrInsufficientRank        = errors.New("insufficient rank to manage this user")
	ErrSelfDeletionForbidden   = errors.New("you cannot remove yourself")
	ErrLastSuperadminProtected = errors.New("cannot remove the last superadmin")
	ErrPromotionAboveSelf      = errors.New("cannot promote a user above your own rank")
	ErrInvalidRole             = errors.New("invalid role")
	ErrNoPendingTransfer       = errors.New("no pending ownership transfer")
	ErrTokenMismatch           = errors.New("transfer token does not match")
	ErrTokenExpired            = errors.New("transfer token has expired")
	ErrEmailMismatch           = errors.New("logged in email does not match transfer target")
	ErrEmailDispatchFailed     = errors.New("failed to send email")
	ErrConfigurationMissing    = errors.New("required configuration is missing")
	ErrOwnerExists             = errors.New("system already has an owner")
)
