// Copyright 2026 NeetStand Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import "context"

type contextKey struct{}

var sessionContextKey = contextKey{}

// WithSession returns a new context carrying the verified session.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, s)
}

// GetSession retrieves the verified session from the context.
func GetSession(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionContextKey).(*Session)
	return s, ok
}

// GetUserID retrieves the authenticated user ID from the context.
// Returns an empty string and false if no session is present.
func GetUserID(ctx context.Context) (string, bool) {
	s, ok := GetSession(ctx)
	if !ok {
		return "", false
	}
	return s.UserID, true
}
