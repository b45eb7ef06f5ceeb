// Copyright 2026 NeetStand Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ LoggerInterface = (*Logger)(nil)

type Logger struct {
	*zap.SugaredLogger

	security *SecurityLogger
}

func (l *Logger) Security() *SecurityLogger {
	return l.security
}

func NewLogger(level string) *Logger {
	zapLevel, err := zapcore.ParseLevel(level)
	if err != nil {
		zapLevel = zapcore.ErrorLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	base, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}

	return &Logger{
		SugaredLogger: base.Sugar(),
		security:      &SecurityLogger{l: base.Named("security")},
	}
}

// SecurityLogger emits structured records for auth relevant events so they
// can be filtered out of the main application stream.
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system startup")
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system shutdown")
}

func (s *SecurityLogger) CodeIssued(userID string) {
	s.l.Info("one-time code issued", zap.String("user_id", userID))
}

func (s *SecurityLogger) LoginSucceeded(userID, role string) {
	s.l.Info("login succeeded", zap.String("user_id", userID), zap.String("role", role))
}

func (s *SecurityLogger) LoginRejected(email, reason string) {
	s.l.Warn("login rejected", zap.String("email", email), zap.String("reason", reason))
}

func (s *SecurityLogger) RoleChanged(callerID, targetID, newRole string) {
	s.l.Info("role changed",
		zap.String("caller_id", callerID),
		zap.String("target_id", targetID),
		zap.String("new_role", newRole),
	)
}

func (s *SecurityLogger) AdminDeleted(callerID, targetID string) {
	s.l.Info("admin deleted", zap.String("caller_id", callerID), zap.String("target_id", targetID))
}

func (s *SecurityLogger) OwnershipTransferInitiated(ownerID, targetEmail string) {
	s.l.Info("ownership transfer initiated",
		zap.String("owner_id", ownerID),
		zap.String("target_email", targetEmail),
	)
}

func (s *SecurityLogger) OwnershipTransferred(oldOwnerID, newOwnerID string) {
	s.l.Info("ownership transferred",
		zap.String("old_owner_id", oldOwnerID),
		zap.String("new_owner_id", newOwnerID),
	)
}
