// Copyright 2026 NeetStand Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/neetstand/admin-service/internal/logging"
	"github.com/neetstand/admin-service/internal/monitoring"
	"github.com/neetstand/admin-service/internal/tracing"
)

const issuer = "neetstand-admin"

var ErrInvalidToken = errors.New("invalid session token")

// Session is what a verified token resolves to. The role claim is a hint
// for the UI only; every privileged operation re-reads the role from the
// profile store.
type Session struct {
	UserID string
	Email  string
	Role   string
}

type claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

var (
	_ TokenIssuerInterface   = (*TokenManager)(nil)
	_ TokenVerifierInterface = (*TokenManager)(nil)
)

type TokenManager struct {
	secret []byte

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewTokenManager(secret string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*TokenManager, error) {
	if secret == "" {
		return nil, errors.New("session secret is required")
	}

	return &TokenManager{
		secret:  []byte(secret),
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}, nil
}

func (t *TokenManager) IssueToken(userID, email, role string, ttl time.Duration) (string, error) {
	if userID == "" {
		return "", errors.New("userID is required")
	}
	if ttl <= 0 {
		return "", errors.New("ttl must be greater than zero")
	}

	now := time.Now().UTC()
	c := claims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.NewString(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

func (t *TokenManager) VerifyToken(ctx context.Context, rawToken string) (*Session, error) {
	_, span := t.tracer.Start(ctx, "authentication.TokenManager.VerifyToken")
	defer span.End()

	if rawToken == "" {
		return nil, ErrInvalidToken
	}

	parsed, err := jwt.ParseWithClaims(rawToken, &claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, ErrInvalidToken
		}
		return t.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	c, ok := parsed.Claims.(*claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	if c.Issuer != issuer || c.Subject == "" {
		return nil, ErrInvalidToken
	}

	return &Session{
		UserID: c.Subject,
		Email:  c.Email,
		Role:   c.Role,
	}, nil
}
