// Copyright 2026 NeetStand Ltd.
// SPDX-License-Identifier: AGPL-3.0

package bootstrap

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/neetstand/admin-service/internal/logging"
)

type API struct {
	service ServiceInterface
	logger  logging.LoggerInterface
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/v0/setup/status", a.status)
}

func (a *API) status(w http.ResponseWriter, r *http.Request) {
	status, err := a.service.Status(r.Context())
	if err != nil {
		a.logger.Errorf("failed to compute bootstrap status: %v", err)
		http.Error(w, "failed to determine system status", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(status)
}
