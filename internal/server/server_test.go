// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/user-management/internal/config"
	"github.com/MKhiriev/user-management/internal/logger"
)

func freeAddress(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestNewServer_RequiresAddress(t *testing.T) {
	srv, err := NewServer(http.NotFoundHandler(), config.Server{}, logger.Nop())
	assert.Nil(t, srv)
	assert.ErrorIs(t, err, errNoHTTPAddress)
}

func TestNewServer_AppliesTimeouts(t *testing.T) {
	srv, err := NewServer(http.NotFoundHandler(), config.Server{
		HTTPAddress:     "127.0.0.1:8080",
		RequestTimeout:  3 * time.Second,
		ShutdownTimeout: time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	s := srv.(*server)
	assert.Equal(t, "127.0.0.1:8080", s.httpServer.server.Addr)
	assert.Equal(t, 3*time.Second, s.httpServer.server.ReadTimeout)
	assert.Equal(t, 3*time.Second, s.httpServer.server.WriteTimeout)
	assert.Equal(t, time.Second, s.shutdownTimeout)
}

func TestRunServer_ServesUntilCancelled(t *testing.T) {
	addr := freeAddress(t)
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	srv, err := NewServer(handler, config.Server{HTTPAddress: addr, ShutdownTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.RunServer(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusTeapot
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestRunServer_ListenError(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	srv, err := NewServer(http.NotFoundHandler(), config.Server{HTTPAddress: l.Addr().String()}, logger.Nop())
	require.NoError(t, err)

	err = srv.RunServer(context.Background())
	assert.ErrorContains(t, err, "ListenAndServe")
}
