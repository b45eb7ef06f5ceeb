// Copyright 2026 NeetStand Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/neetstand/admin-service/internal/config"
	"github.com/neetstand/admin-service/internal/db"
	"github.com/neetstand/admin-service/internal/kratos"
	"github.com/neetstand/admin-service/internal/logging"
	"github.com/neetstand/admin-service/internal/mail"
	"github.com/neetstand/admin-service/internal/monitoring"
	"github.com/neetstand/admin-service/internal/storage"
	"github.com/neetstand/admin-service/internal/tracing"
	"github.com/neetstand/admin-service/pkg/admins"
	"github.com/neetstand/admin-service/pkg/authentication"
	"github.com/neetstand/admin-service/pkg/bootstrap"
	"github.com/neetstand/admin-service/pkg/login"
	"github.com/neetstand/admin-service/pkg/metrics"
	"github.com/neetstand/admin-service/pkg/ownership"
	"github.com/neetstand/admin-service/pkg/profile"
	"github.com/neetstand/admin-service/pkg/settings"
	"github.com/neetstand/admin-service/pkg/setup"
	"github.com/neetstand/admin-service/pkg/status"
)

func NewRouter(
	s storage.StorageInterface,
	dbClient db.DBClientInterface,
	kratosClient kratos.ClientInterface,
	mailer mail.MailerInterface,
	tokens *authentication.TokenManager,
	specs *config.EnvSpec,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	router.Use(
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS([]string{"*"}),
	)

	bootstrapService := bootstrap.NewService(s, tracer, monitor, logger)
	loginService := login.NewService(s, kratosClient, mailer, tokens, specs.OTPLifetime, specs.SessionLifetime, tracer, monitor, logger)
	adminsService := admins.NewService(s, dbClient, kratosClient, tracer, monitor, logger)
	ownershipService := ownership.NewService(s, dbClient, kratosClient, mailer, specs.AdminURL, specs.TransferLifetime, tracer, monitor, logger)
	settingsService := settings.NewService(s, mailer, tracer, monitor, logger)
	setupService := setup.NewService(s, kratosClient, mailer, tracer, monitor, logger)
	profileService := profile.NewService(s, tracer, monitor, logger)

	phases := bootstrap.NewMiddleware(bootstrapService, logger)
	sessions := authentication.NewMiddleware(tokens, tracer, monitor, logger)

	// Public surface: health, metrics, bootstrap status, login and the
	// ownership acceptance landing lookup.
	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)
	bootstrap.NewAPI(bootstrapService, logger).RegisterEndpoints(router)
	login.NewAPI(loginService, logger).RegisterEndpoints(router)

	setupAPI := setup.NewAPI(setupService, logger)
	ownershipAPI := ownership.NewAPI(ownershipService, logger)
	ownershipAPI.RegisterPublicEndpoints(router)

	router.Group(func(r chi.Router) {
		r.Use(phases.RequireSetupPhase)
		setupAPI.RegisterOwnerEndpoint(r)
	})

	// Session required, allowed before the system is operational: the
	// setup wizard steps driven by the authenticated owner.
	router.Group(func(r chi.Router) {
		r.Use(sessions.RequireSession)
		setupAPI.RegisterEndpoints(r)
		settings.NewAPI(settingsService, logger).RegisterEndpoints(r)
		ownershipAPI.RegisterEndpoints(r)
		profile.NewAPI(profileService, logger).RegisterEndpoints(r)
	})

	// Fully operational surface.
	router.Group(func(r chi.Router) {
		r.Use(sessions.RequireSession, phases.RequireOperational)
		admins.NewAPI(adminsService, logger).RegisterEndpoints(r)
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}

func middlewareCORS(origins []string) func(http.Handler) http.Handler {
	return cors.Handler(
		cors.Options{
			AllowedOrigins: origins,
			AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
			MaxAge:         300,
		},
	)
}
