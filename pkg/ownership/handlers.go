// Copyright 2026 NeetStand Ltd.
// SPDX-License-Identifier: AGPL-3.0

package ownership

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

// RegisterPublicEndpoints serves the acceptance landing page lookup,
// reachable before the invitee has logged in.
func (a *API) RegisterPublicEndpoints(mux chi.Router) {
	mux.Get("/api/v0/ownership/transfer/{token}", a.validateToken)
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Post("/api/v0/ownership/transfer", a.initiate)
	mux.Post("/api/v0/ownership/transfer/{token}/accept", a.accept)
}

type initiateRequest struct {
	Email string `json:"email" validate:"required,email"`
}

func (a *API) initiate(w http.ResponseWriter, r *http.Request) {
	session, ok := authentication.GetSession(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req initiateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := a.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := a.service.InitiateTransfer(r.Context(), session.UserID, req.Email); err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, map[string]string{"status": "transfer initiated"})
}

func (a *API) validateToken(w http.ResponseWriter, r *http.Request) {
	pending, err := a.service.ValidateTransferToken(r.Context(), chi.URLParam(r, "token"))
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, map[string]string{"target_email": pending.TargetEmail})
}

func (a *API) accept(w http.ResponseWriter, r *http.Request) {
	session, ok := authentication.GetSession(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	err := a.service.CompleteTransfer(r.Context(), chi.URLParam(r, "token"), session.UserID, session.Email)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, map[string]string{"status": "ownership transferred"})
}
