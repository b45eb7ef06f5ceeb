// Copyright 2026 NeetStand Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"time"
)

type TokenIssuerInterface interface {
	// IssueToken signs a session token for the given identity.
	IssueToken(userID, email, role string, ttl time.Duration) (string, error)
}

type TokenVerifierInterface interface {
	// VerifyToken verifies a raw token and returns its session claims.
	VerifyToken(ctx context.Context, rawToken string) (*Session, error)
}
