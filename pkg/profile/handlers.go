// Copyright 2026 NeetStand Ltd.
// SPDX-License-Identifier: AGPL-3.0

package profile

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/neetstand/admin-service/internal/httputil"
	"github.com/neetstand/admin-service/internal/logging"
	"github.com/neetstand/admin-service/internal/types"
	"github.com/neetstand/admin-service/pkg/authentication"
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
	mux.Get("/api/v0/profile/preferences", a.getPreferences)
	mux.Put("/api/v0/profile/preferences", a.updatePreferences)
}

func (a *API) getPreferences(w http.ResponseWriter, r *http.Request) {
	session, ok := authentication.GetSession(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	prefs, err := a.service.GetPreferences(r.Context(), session.UserID)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, prefs)
}

func (a *API) updatePreferences(w http.ResponseWriter, r *http.Request) {
	session, ok := authentication.GetSession(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req types.NotificationPreferences
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := a.service.UpdatePreferences(r.Context(), session.UserID, &req); err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, map[string]string{"status": "saved"})
}
