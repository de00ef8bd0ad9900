// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/user-management/internal/config"
	"github.com/MKhiriev/user-management/internal/logger"
	"github.com/MKhiriev/user-management/models"
)

func newTestSender(t *testing.T, serverURL string) EmailSender {
	t.Helper()
	return NewHTTPEmailSender(config.Mail{
		APIURL:  serverURL,
		APIKey:  "mail-key",
		From:    "noreply@example.com",
		Timeout: time.Second,
	}, logger.Nop())
}

func TestSendEmail_Success(t *testing.T) {
	var got emailRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer mail-key", r.Header.Get("Authorization"))
		assert.Contains(t, r.Header.Get("Content-Type"), "application/json")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	err := newTestSender(t, srv.URL).SendEmail(context.Background(), models.Email{
		To:      "akash@yopmail.com",
		Subject: "Welcome",
		Body:    "Hello",
	})

	require.NoError(t, err)
	assert.Equal(t, emailRequest{From: "noreply@example.com", To: "akash@yopmail.com", Subject: "Welcome", Text: "Hello"}, got)
}

func TestSendEmail_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "bad request", status: http.StatusBadRequest, wantErr: ErrBadRequest},
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: ErrUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, wantErr: ErrForbidden},
		{name: "not found", status: http.StatusNotFound, wantErr: ErrNotFound},
		{name: "rate limited", status: http.StatusTooManyRequests, wantErr: ErrTooManyRequests},
		{name: "bad gateway", status: http.StatusBadGateway, wantErr: ErrBadGateway},
		{name: "internal", status: http.StatusInternalServerError, wantErr: ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("provider says no"))
			}))
			defer srv.Close()

			err := newTestSender(t, srv.URL).SendEmail(context.Background(), models.Email{To: "a@b.c"})
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), "provider says no")
		})
	}
}

func TestSendEmail_UnmappedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	err := newTestSender(t, srv.URL).SendEmail(context.Background(), models.Email{To: "a@b.c"})
	require.Error(t, err)
	assert.Equal(t, "http 503: Service Unavailable", err.Error())
}

func TestSendEmail_EmptyRecipient(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	err := newTestSender(t, srv.URL).SendEmail(context.Background(), models.Email{To: "  "})
	assert.ErrorIs(t, err, ErrEmptyRecipient)
	assert.False(t, called)
}

func TestSendEmail_ServerUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	err := newTestSender(t, url).SendEmail(context.Background(), models.Email{To: "a@b.c"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "send email request")
}

func TestNewHTTPEmailSender_DisabledWithoutURL(t *testing.T) {
	sender := NewHTTPEmailSender(config.Mail{}, logger.Nop())

	_, ok := sender.(*nopEmailSender)
	require.True(t, ok)
	assert.NoError(t, sender.SendEmail(context.Background(), models.Email{To: "a@b.c"}))
}
