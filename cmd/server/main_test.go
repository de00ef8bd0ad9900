package main

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/user-management/internal/config"
	"github.com/MKhiriev/user-management/internal/logger"
)

func sqliteConfig() *config.StructuredConfig {
	return &config.StructuredConfig{
		App: config.App{TokenKey: "secret"},
		Storage: config.Storage{
			Driver: config.DriverSQLite,
			DB:     config.DB{DSN: ":memory:"},
		},
		Server: config.Server{ShutdownTimeout: time.Second},
	}
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *config.StructuredConfig)
		wantErr string
	}{
		{
			name:    "unknown storage driver",
			mutate:  func(cfg *config.StructuredConfig) { cfg.Storage.Driver = "redis" },
			wantErr: "error creating storages",
		},
		{
			name:    "missing token key",
			mutate:  func(cfg *config.StructuredConfig) { cfg.App.TokenKey = "" },
			wantErr: "error creating services",
		},
		{
			name:    "missing http address",
			mutate:  func(*config.StructuredConfig) {},
			wantErr: "error creating server",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := sqliteConfig()
			tt.mutate(cfg)

			err := run(context.Background(), cfg, logger.Nop())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRun_StopsWhenContextIsDone(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	cfg := sqliteConfig()
	cfg.Server.HTTPAddress = addr

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, run(ctx, cfg, logger.Nop()))
}
