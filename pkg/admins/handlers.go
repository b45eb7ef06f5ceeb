// Copyright 2026 NeetStand Ltd.
// SPDX-License-Identifier: AGPL-3.0

package admins

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
	mux.Get("/api/v0/admins", a.list)
	mux.Get("/api/v0/roles", a.listRoles)
	mux.Delete("/api/v0/admins/{id}", a.delete)
	mux.Patch("/api/v0/admins/{id}/role", a.updateRole)
}

type updateRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	session, ok := authentication.GetSession(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	admins, err := a.service.ListAdmins(r.Context(), session.UserID)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, admins)
}

func (a *API) listRoles(w http.ResponseWriter, r *http.Request) {
	session, ok := authentication.GetSession(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	roles, err := a.service.ListAssignableRoles(r.Context(), session.UserID)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, roles)
}

func (a *API) delete(w http.ResponseWriter, r *http.Request) {
	session, ok := authentication.GetSession(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	targetID := chi.URLParam(r, "id")
	if err := a.service.DeleteAdmin(r.Context(), session.UserID, targetID); err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (a *API) updateRole(w http.ResponseWriter, r *http.Request) {
	session, ok := authentication.GetSession(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req updateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := a.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	targetID := chi.URLParam(r, "id")
	if err := a.service.UpdateAdminRole(r.Context(), session.UserID, targetID, req.Role); err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, map[string]string{"status": "updated"})
}
