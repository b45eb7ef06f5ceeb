// Copyright 2026 NeetStand Ltd.
// SPDX-License-Identifier: AGPL-3.0

package setup

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

// RegisterOwnerEndpoint is reachable without a session. It is gated on
// the bootstrap phase by the router instead.
func (a *API) RegisterOwnerEndpoint(mux chi.Router) {
	mux.Post("/api/v0/setup/owner", a.setupOwner)
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Post("/api/v0/setup/superadmin", a.createSuperAdmin)
}

type setupOwnerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required"`
}

type createSuperAdminRequest struct {
	IsMe     bool   `json:"is_me"`
	Email    string `json:"email" validate:"omitempty,email"`
	FullName string `json:"full_name"`
}

func (a *API) setupOwner(w http.ResponseWriter, r *http.Request) {
	var req setupOwnerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := a.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	id, err := a.service.SetupOwner(r.Context(), req.Email, req.Password, req.FullName)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (a *API) createSuperAdmin(w http.ResponseWriter, r *http.Request) {
	session, ok := authentication.GetSession(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req createSuperAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := a.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	email := req.Email
	if req.IsMe && email == "" {
		email = session.Email
	}

	id, err := a.service.CreateSuperAdmin(r.Context(), session.UserID, req.FullName, email, req.IsMe)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusCreated, map[string]string{"id": id})
}
