// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/user-management/internal/adapter"
	"github.com/MKhiriev/user-management/internal/config"
	"github.com/MKhiriev/user-management/internal/crypto"
	handler "github.com/MKhiriev/user-management/internal/handler/http"
	"github.com/MKhiriev/user-management/internal/logger"
	"github.com/MKhiriev/user-management/internal/server"
	"github.com/MKhiriev/user-management/internal/service"
	"github.com/MKhiriev/user-management/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const storageCloseTimeout = 5 * time.Second

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("user-management").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("user-management", cfg.App.LogLevel)
	log.Debug().
		Str("storage_driver", cfg.Storage.Driver).
		Str("http_address", cfg.Server.HTTPAddress).
		Msg("received configs")

	if err = run(context.Background(), cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

// run opens the storages and serves until ctx is done or a signal arrives.
// Storages are closed on every return path once they are open.
func run(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) error {
	storages, err := store.NewStorages(ctx, cfg.Storage, crypto.NewEncryptionService(), log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), storageCloseTimeout)
		defer cancel()
		if err := storages.Close(closeCtx); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, adapter.NewHTTPEmailSender(cfg.Mail, log), *cfg, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	srv, err := server.NewServer(handler.NewHandler(services, log).Init(), cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	if err = srv.RunServer(ctx); err != nil {
		return fmt.Errorf("error running server: %w", err)
	}
	return nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
