// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

const (
	defaultStorageDriver    = DriverMongo
	defaultOperationTimeout = 5 * time.Second
	defaultMongoDatabase    = "user_management"
	defaultMongoCollection  = "users"
	defaultHTTPAddress      = "localhost:8080"
	defaultRequestTimeout   = 30 * time.Second
	defaultShutdownTimeout  = 10 * time.Second
	defaultMailTimeout      = 10 * time.Second
)

// applyDefaults fills fields no source has set.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = defaultStorageDriver
	}
	if cfg.Storage.OperationTimeout == 0 {
		cfg.Storage.OperationTimeout = defaultOperationTimeout
	}
	if cfg.Storage.Mongo.Database == "" {
		cfg.Storage.Mongo.Database = defaultMongoDatabase
	}
	if cfg.Storage.Mongo.Collection == "" {
		cfg.Storage.Mongo.Collection = defaultMongoCollection
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = defaultShutdownTimeout
	}
	if cfg.Mail.Timeout == 0 {
		cfg.Mail.Timeout = defaultMailTimeout
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// A missing token key is reported as [ErrTokenKeyNotSpecified]; the service
// can not issue tokens without it.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenKey == "" {
		return ErrTokenKeyNotSpecified
	}

	switch cfg.Storage.Driver {
	case DriverMongo:
		if cfg.Storage.Mongo.URI == "" {
			return fmt.Errorf("%w: empty mongo URI", ErrInvalidStorageConfigs)
		}
	case DriverPostgres, DriverSQLite:
		if cfg.Storage.DB.DSN == "" {
			return fmt.Errorf("%w: empty DSN for %s", ErrInvalidStorageConfigs, cfg.Storage.Driver)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStorageDriver, cfg.Storage.Driver)
	}

	if cfg.Storage.OperationTimeout < 0 {
		return fmt.Errorf("%w: negative operation timeout", ErrInvalidStorageConfigs)
	}

	if cfg.Server.RequestTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
