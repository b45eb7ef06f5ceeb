// Copyright 2026 NeetStand Ltd.
// SPDX-License-Identifier: AGPL-3.0

package bootstrap

import (
	"encoding/json"
	"net/http"

	"github.com/neetstand/admin-service/internal/logging"
	"github.com/neetstand/admin-service/internal/types"
)

// Middleware gates routes on the current bootstrap phase. The phase is
// evaluated per request, never cached.
type Middleware struct {
	service ServiceInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(service ServiceInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		service: service,
		logger:  logger,
	}
}

// RequireOperational blocks the protected surface until setup completed.
// Pre-operational requests get 409 with the phase so the UI can route the
// user to the right setup step.
func (m *Middleware) RequireOperational(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status, err := m.service.Status(r.Context())
		if err != nil {
			m.logger.Errorf("failed to compute bootstrap status: %v", err)
			http.Error(w, "failed to determine system status", http.StatusInternalServerError)
			return
		}

		if status.Phase != types.PhaseOperational {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusConflict)
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"error": "system setup is not complete",
				"phase": status.Phase,
			})
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireSetupPhase is the inverse gate: once the system is operational the
// setup surface goes away.
func (m *Middleware) RequireSetupPhase(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status, err := m.service.Status(r.Context())
		if err != nil {
			m.logger.Errorf("failed to compute bootstrap status: %v", err)
			http.Error(w, "failed to determine system status", http.StatusInternalServerError)
			return
		}

		if status.Phase == types.PhaseOperational {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusConflict)
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"error": "system is already configured",
				"phase": status.Phase,
			})
			return
		}

		next.ServeHTTP(w, r)
	})
}
