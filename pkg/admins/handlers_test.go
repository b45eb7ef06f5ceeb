// Copyright 2026 NeetStand Ltd.
// SPDX-License-Identifier: AGPL-3.0

package admins

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	gomock "go.uber.org/mock/gomock"

	"github.com/neetstand/admin-service/internal/logging"
	"github.com/neetstand/admin-service/internal/types"
	"github.com/neetstand/admin-service/pkg/authentication"
)

func newTestAPI(t *testing.T, session *authentication.Session) (*chi.Mux, *MockServiceInterface) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mockService := NewMockServiceInterface(ctrl)
	api := NewAPI(mockService, logging.NewNoopLogger())

	mux := chi.NewMux()
	if session != nil {
		mux.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				next.ServeHTTP(w, r.WithContext(authentication.WithSession(r.Context(), session)))
			})
		})
	}
	api.RegisterEndpoints(mux)
	return mux, mockService
}

func TestHandler_ListAdmins(t *testing.T) {
	session := &authentication.Session{UserID: "mgr-1", Email: "robin@neetstand.example", Role: types.RoleManager}
	mux, mockService := newTestAPI(t, session)

	mockService.EXPECT().ListAdmins(gomock.Any(), "mgr-1").Return([]*types.AdminView{
		{ID: "mgr-1", FullName: "Robin Day", EmailAddress: "robin@neetstand.example", Role: types.RoleManager, HierarchyLevel: 20, IsActive: true},
		{ID: "sup-2", FullName: "Sam Desk", EmailAddress: "sam@neetstand.example", Role: types.RoleSupport, HierarchyLevel: 10, IsActive: true},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/admins", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var admins []*types.AdminView
	if err := json.Unmarshal(rec.Body.Bytes(), &admins); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(admins) != 2 {
		t.Fatalf("expected 2 admins, got %d", len(admins))
	}
}

func TestHandler_ListAdminsNoSession(t *testing.T) {
	mux, _ := newTestAPI(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/admins", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestHandler_DeleteAdmin(t *testing.T) {
	session := &authentication.Session{UserID: "sup-1", Role: types.RoleSuperadmin}

	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{name: "success", serviceErr: nil, wantStatus: http.StatusOK},
		{name: "self deletion", serviceErr: types.ErrSelfDeletionForbidden, wantStatus: http.StatusForbidden},
		{name: "last superadmin", serviceErr: types.ErrLastSuperadminProtected, wantStatus: http.StatusForbidden},
		{name: "target above caller", serviceErr: types.ErrInsufficientRank, wantStatus: http.StatusForbidden},
		{name: "unknown target", serviceErr: types.ErrProfileNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux, mockService := newTestAPI(t, session)
			mockService.EXPECT().DeleteAdmin(gomock.Any(), "sup-1", "target-1").Return(tt.serviceErr)

			req := httptest.NewRequest(http.MethodDelete, "/api/v0/admins/target-1", nil)
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.wantStatus, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestHandler_UpdateAdminRole(t *testing.T) {
	session := &authentication.Session{UserID: "sup-1", Role: types.RoleSuperadmin}

	t.Run("success", func(t *testing.T) {
		mux, mockService := newTestAPI(t, session)
		mockService.EXPECT().UpdateAdminRole(gomock.Any(), "sup-1", "target-1", types.RoleManager).Return(nil)

		req := httptest.NewRequest(http.MethodPatch, "/api/v0/admins/target-1/role", strings.NewReader(`{"role":"manager"}`))
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("missing role", func(t *testing.T) {
		mux, _ := newTestAPI(t, session)

		req := httptest.NewRequest(http.MethodPatch, "/api/v0/admins/target-1/role", strings.NewReader(`{}`))
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("invalid role", func(t *testing.T) {
		mux, mockService := newTestAPI(t, session)
		mockService.EXPECT().UpdateAdminRole(gomock.Any(), "sup-1", "target-1", "archduke").Return(types.ErrInvalidRole)

		req := httptest.NewRequest(http.MethodPatch, "/api/v0/admins/target-1/role", strings.NewReader(`{"role":"archduke"}`))
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
		}
	})
}
