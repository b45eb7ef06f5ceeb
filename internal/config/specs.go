// Copyright 2026 NeetStand Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the environment configuration needed for the app to start.
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	KratosAdminURL  string `envconfig:"kratos_admin_url" required:"true"`
	KratosPublicURL string `envconfig:"kratos_public_url" required:"true"`

	// AdminURL is the externally reachable base URL of the console, embedded
	// in login code and ownership transfer emails.
	AdminURL string `envconfig:"admin_url" required:"true"`

	SessionSecret   string        `envconfig:"session_secret" required:"true"`
	SessionLifetime time.Duration `envconfig:"session_lifetime" default:"12h"`

	TransferLifetime time.Duration `envconfig:"transfer_lifetime" default:"24h"`
	OTPLifetime      time.Duration `envconfig:"otp_lifetime" default:"10m"`

	MailQueueEnabled  bool   `envconfig:"mail_queue_enabled" default:"false"`
	MailQueueSchedule string `envconfig:"mail_queue_schedule" default:"@every 1m"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`
}
