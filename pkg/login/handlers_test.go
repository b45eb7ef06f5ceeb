// Copyright 2026 NeetStand Ltd.
// SPDX-License-Identifier: AGPL-3.0

package login

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	gomock "go.uber.org/mock/gomock"

	"github.com/neetstand/admin-service/internal/logging"
	"github.com/neetstand/admin-service/internal/types"
)

func newTestAPI(t *testing.T) (*chi.Mux, *MockServiceInterface) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mockService := NewMockServiceInterface(ctrl)
	api := NewAPI(mockService, logging.NewNoopLogger())

	mux := chi.NewMux()
	api.RegisterEndpoints(mux)
	return mux, mockService
}

func TestHandler_Login(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMocks func(*MockServiceInterface)
		wantStatus int
		wantMode   string
	}{
		{
			name: "otp mode",
			body: `{"email":"pat@neetstand.example"}`,
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().Login(gomock.Any(), "pat@neetstand.example").Return(types.LoginModeOTP, nil)
			},
			wantStatus: http.StatusOK,
			wantMode:   "otp",
		},
		{
			name: "password mode during setup",
			body: `{"email":"founder@neetstand.example"}`,
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().Login(gomock.Any(), "founder@neetstand.example").Return(types.LoginModePassword, nil)
			},
			wantStatus: http.StatusOK,
			wantMode:   "password",
		},
		{
			name:       "missing email",
			body:       `{}`,
			setupMocks: func(*MockServiceInterface) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed body",
			body:       `{"email":`,
			setupMocks: func(*MockServiceInterface) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "unknown account",
			body: `{"email":"ghost@neetstand.example"}`,
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().Login(gomock.Any(), "ghost@neetstand.example").Return(types.LoginMode(""), types.ErrUserNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "system locked",
			body: `{"email":"pat@neetstand.example"}`,
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().Login(gomock.Any(), "pat@neetstand.example").Return(types.LoginMode(""), types.ErrSystemLocked)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "internal error is opaque",
			body: `{"email":"pat@neetstand.example"}`,
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().Login(gomock.Any(), "pat@neetstand.example").Return(types.LoginMode(""), errors.New("pool exhausted"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux, mockService := newTestAPI(t)
			tt.setupMocks(mockService)

			req := httptest.NewRequest(http.MethodPost, "/api/v0/auth/login", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.wantStatus, rec.Code, rec.Body.String())
			}

			if tt.wantMode != "" {
				var resp map[string]string
				if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if resp["mode"] != tt.wantMode {
					t.Fatalf("expected mode %q, got %q", tt.wantMode, resp["mode"])
				}
			}

			if tt.wantStatus == http.StatusInternalServerError && strings.Contains(rec.Body.String(), "pool exhausted") {
				t.Fatal("internal error detail leaked to the client")
			}
		})
	}
}

func TestHandler_Verify(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMocks func(*MockServiceInterface)
		wantStatus int
	}{
		{
			name: "success",
			body: `{"email":"pat@neetstand.example","secret":"A7K2M9Q4"}`,
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().VerifyLogin(gomock.Any(), "pat@neetstand.example", "A7K2M9Q4").
					Return(&Result{Token: "session-token", Role: types.RoleManager}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing secret",
			body:       `{"email":"pat@neetstand.example"}`,
			setupMocks: func(*MockServiceInterface) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "expired code",
			body: `{"email":"pat@neetstand.example","secret":"A7K2M9Q4"}`,
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().VerifyLogin(gomock.Any(), "pat@neetstand.example", "A7K2M9Q4").
					Return(nil, types.ErrOTPExpired)
			},
			wantStatus: http.StatusGone,
		},
		{
			name: "bad credential",
			body: `{"email":"pat@neetstand.example","secret":"WRONG123"}`,
			setupMocks: func(mockService *MockServiceInterface) {
				mockService.EXPECT().VerifyLogin(gomock.Any(), "pat@neetstand.example", "WRONG123").
					Return(nil, types.ErrNotAuthenticated)
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux, mockService := newTestAPI(t)
			tt.setupMocks(mockService)

			req := httptest.NewRequest(http.MethodPost, "/api/v0/auth/verify", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.wantStatus, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestHandler_Resend(t *testing.T) {
	mux, mockService := newTestAPI(t)

	mockService.EXPECT().ResendCode(gomock.Any(), "pat@neetstand.example").Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v0/auth/resend", strings.NewReader(`{"email":"pat@neetstand.example"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}
