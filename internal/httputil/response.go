// Copyright 2026 NeetStand Ltd.
// SPDX-License-Identifier: AGPL-3.0

package httputil

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/neetstand/admin-service/internal/types"
)

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorBody struct {
	Error string `json:"error"`
}

// Error maps the domain error taxonomy onto HTTP status codes. Unrecognized
// errors become opaque 500s so internal detail never leaks to the client.
func Error(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "internal error"

	switch {
	case errors.Is(err, types.ErrNotAuthenticated):
		status = http.StatusUnauthorized
	case errors.Is(err, types.ErrUserNotFound),
		errors.Is(err, types.ErrProfileNotFound),
		errors.Is(err, types.ErrNoPendingTransfer):
		status = http.StatusNotFound
	case errors.Is(err, types.ErrSystemLocked),
		errors.Is(err, types.ErrOwnerExists):
		status = http.StatusConflict
	case errors.Is(err, types.ErrOTPExpired),
		errors.Is(err, types.ErrTokenExpired):
		status = http.StatusGone
	case errors.Is(err, types.ErrInsufficientRank),
		errors.Is(err, types.ErrSelfDeletionForbidden),
		errors.Is(err, types.ErrLastSuperadminProtected),
		errors.Is(err, types.ErrPromotionAboveSelf),
		errors.Is(err, types.ErrEmailMismatch):
		status = http.StatusForbidden
	case errors.Is(err, types.ErrInvalidRole),
		errors.Is(err, types.ErrTokenMismatch):
		status = http.StatusBadRequest
	case errors.Is(err, types.ErrConfigurationMissing):
		status = http.StatusPreconditionFailed
	case errors.Is(err, types.ErrEmailDispatchFailed):
		status = http.StatusBadGateway
	}

	if status != http.StatusInternalServerError {
		message = err.Error()
	}

	JSON(w, status, errorBody{Error: message})
}
