// Copyright 2026 NeetStand Ltd.
// SPDX-License-Identifier: AGPL-3.0

package settings

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/neetstand/admin-service/internal/httputil"
	"github.com/neetstand/admin-service/internal/logging"
	"github.com/neetstand/admin-service/pkg/authentication"
)

type API struct {
	service  ServiceInterface
	validate *validator.Validate
	logger   logging.LoggerInterface
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	return &API{
		service:  service,
		validate: validator.New(),
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/v0/settings/email", a.getEmail)
	mux.Put("/api/v0/settings/email", a.saveEmail)
	mux.Post("/api/v0/settings/email/test", a.testEmail)
	mux.Post("/api/v0/settings/email/confirm", a.confirmEmail)
	mux.Get("/api/v0/settings/maintenance", a.getMaintenance)
	mux.Put("/api/v0/settings/maintenance", a.setMaintenance)
}

type testEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type maintenanceRequest struct {
	Enabled bool `json:"enabled"`
}

func (a *API) getEmail(w http.ResponseWriter, r *http.Request) {
	session, ok := authentication.GetSession(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	settings, err := a.service.GetEmailSettings(r.Context(), session.UserID)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, settings)
}

func (a *API) saveEmail(w http.ResponseWriter, r *http.Request) {
	session, ok := authentication.GetSession(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req EmailSettings
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := a.service.SaveEmailSettings(r.Context(), session.UserID, &req); err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, map[string]string{"status": "saved"})
}

func (a *API) testEmail(w http.ResponseWriter, r *http.Request) {
	session, ok := authentication.GetSession(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req testEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := a.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := a.service.SendTestEmail(r.Context(), session.UserID, req.Email); err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, map[string]string{"status": "test email sent"})
}

func (a *API) confirmEmail(w http.ResponseWriter, r *http.Request) {
	session, ok := authentication.GetSession(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if err := a.service.ConfirmEmailVerified(r.Context(), session.UserID); err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, map[string]string{"status": "email verified"})
}

func (a *API) getMaintenance(w http.ResponseWriter, r *http.Request) {
	enabled, err := a.service.GetMaintenanceMode(r.Context())
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, maintenanceRequest{Enabled: enabled})
}

func (a *API) setMaintenance(w http.ResponseWriter, r *http.Request) {
	session, ok := authentication.GetSession(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req maintenanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := a.service.SetMaintenanceMode(r.Context(), session.UserID, req.Enabled); err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, map[string]string{"status": "saved"})
}
