// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/user-management/internal/service"
	"github.com/MKhiriev/user-management/models"
)

const registrationBody = `{"username":"gambitier","first_name":"Akash","last_name":"Jadhav","email":"akash@yopmail.com","password":"Test@123"}`

func serve(h *testHandler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

func authorized(h *testHandler, req *http.Request, userID string) *http.Request {
	h.auth.EXPECT().ParseToken(gomock.Any(), "valid-token").Return(models.Token{
		Claims: models.TokenClaims{UserID: userID},
	}, nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	return req
}

func userDto() models.UserDto {
	return models.UserDto{
		ID:        "user-1",
		Username:  "gambitier",
		FirstName: "Akash",
		LastName:  "Jadhav",
		Email:     "akash@yopmail.com",
	}
}

// ── register ─────────────────────────────────────────────────────────────────

func TestRegister(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(h *testHandler)
		wantStatus int
		wantBody   string
	}{
		{
			name: "created",
			body: registrationBody,
			setup: func(h *testHandler) {
				h.users.EXPECT().RegisterUser(gomock.Any(), models.UserRegistration{
					Username:  "gambitier",
					FirstName: "Akash",
					LastName:  "Jadhav",
					Email:     "akash@yopmail.com",
					Password:  "Test@123",
				}).Return("user-1", nil)
			},
			wantStatus: http.StatusCreated,
			wantBody:   `{"id":"user-1"}`,
		},
		{
			name:       "malformed json",
			body:       `{"username":`,
			setup:      func(*testHandler) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   "invalid JSON was passed",
		},
		{
			name: "validation error",
			body: registrationBody,
			setup: func(h *testHandler) {
				h.users.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).
					Return("", service.NewValidationError(`username "gambitier" is already taken`, nil))
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `username "gambitier" is already taken`,
		},
		{
			name: "degraded store",
			body: registrationBody,
			setup: func(h *testHandler) {
				h.users.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).Return("", nil)
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "user registration failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t)
			tt.setup(h)

			rr := serve(h, httptest.NewRequest(http.MethodPost, "/api/users/register", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusCreated {
				assert.JSONEq(t, tt.wantBody, rr.Body.String())
				assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
				return
			}
			assert.Equal(t, tt.wantBody, rr.Body.String())
		})
	}
}

// ── authenticate ─────────────────────────────────────────────────────────────

func TestAuthenticate_Success(t *testing.T) {
	h := newTestHandler(t)
	expiresAt := time.Date(2026, 10, 17, 13, 0, 0, 0, time.UTC)

	h.auth.EXPECT().Authenticate(gomock.Any(), models.UserCredential{Username: "gambitier", Password: "Test@123"}).
		Return(models.Token{
			SignedString: "signed.jwt.value",
			Claims: models.TokenClaims{
				RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(expiresAt)},
			},
		}, nil)

	rr := serve(h, httptest.NewRequest(http.MethodPost, "/api/users/authenticate",
		strings.NewReader(`{"username":"gambitier","password":"Test@123"}`)))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Bearer signed.jwt.value", rr.Header().Get("Authorization"))

	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "signed.jwt.value", resp.Token)
	assert.True(t, expiresAt.Equal(resp.ExpiresAt))
}

func TestAuthenticate_InvalidCredentials(t *testing.T) {
	h := newTestHandler(t)

	h.auth.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(models.Token{}, service.ErrInvalidCredentials)

	rr := serve(h, httptest.NewRequest(http.MethodPost, "/api/users/authenticate",
		strings.NewReader(`{"username":"gambitier","password":"nope"}`)))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "invalid username or password", rr.Body.String())
	assert.Empty(t, rr.Header().Get("Authorization"))
}

func TestAuthenticate_InternalErrorExposesMessage(t *testing.T) {
	h := newTestHandler(t)

	h.auth.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(models.Token{}, service.ErrCredentialVerificationFailed)

	rr := serve(h, httptest.NewRequest(http.MethodPost, "/api/users/authenticate",
		strings.NewReader(`{"username":"gambitier","password":"Test@123"}`)))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "credential verification failed", rr.Body.String())
}

// ── lookups ──────────────────────────────────────────────────────────────────

func TestMe(t *testing.T) {
	h := newTestHandler(t)
	req := authorized(h, httptest.NewRequest(http.MethodGet, "/api/users/me", nil), "user-1")

	h.users.EXPECT().GetUser(gomock.Any(), "user-1").Return(userDto(), nil)

	rr := serve(h, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var got models.UserDto
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, userDto(), got)
	assert.NotContains(t, rr.Body.String(), "password")
}

func TestGetUser_NotFound(t *testing.T) {
	h := newTestHandler(t)
	req := authorized(h, httptest.NewRequest(http.MethodGet, "/api/users/ghost", nil), "user-1")

	h.users.EXPECT().GetUser(gomock.Any(), "ghost").
		Return(models.UserDto{}, service.NewNotFoundError(`User with ID "ghost" does not exist.`))

	rr := serve(h, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, `User with ID "ghost" does not exist.`, rr.Body.String())
	assert.Equal(t, "text/plain; charset=utf-8", rr.Header().Get("Content-Type"))
}

func TestFindUser(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		setup      func(h *testHandler)
		wantStatus int
	}{
		{
			name:  "by email",
			query: "?email=akash@yopmail.com",
			setup: func(h *testHandler) {
				h.users.EXPECT().GetUserByEmail(gomock.Any(), "akash@yopmail.com").Return(userDto(), nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "by username",
			query: "?username=gambitier",
			setup: func(h *testHandler) {
				h.users.EXPECT().GetUserByUsername(gomock.Any(), "gambitier").Return(userDto(), nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "email wins over username",
			query: "?username=other&email=akash@yopmail.com",
			setup: func(h *testHandler) {
				h.users.EXPECT().GetUserByEmail(gomock.Any(), "akash@yopmail.com").Return(userDto(), nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "no parameter",
			query:      "",
			setup:      func(*testHandler) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:  "not found",
			query: "?username=nobody",
			setup: func(h *testHandler) {
				h.users.EXPECT().GetUserByUsername(gomock.Any(), "nobody").
					Return(models.UserDto{}, service.NewNotFoundError(`User with username "nobody" does not exist.`))
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t)
			tt.setup(h)
			req := authorized(h, httptest.NewRequest(http.MethodGet, "/api/users"+tt.query, nil), "user-1")

			rr := serve(h, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusBadRequest {
				assert.Equal(t, ErrMissingLookupParameter.Error(), rr.Body.String())
			}
		})
	}
}

func TestResponsesAreCompressed(t *testing.T) {
	h := newTestHandler(t)
	req := authorized(h, httptest.NewRequest(http.MethodGet, "/api/users/me", nil), "user-1")
	req.Header.Set("Accept-Encoding", "gzip")

	h.users.EXPECT().GetUser(gomock.Any(), "user-1").Return(userDto(), nil)

	rr := serve(h, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(rr.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"username":"gambitier"`)
}
