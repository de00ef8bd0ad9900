// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/user-management/internal/config"
	"github.com/MKhiriev/user-management/internal/crypto"
	"github.com/MKhiriev/user-management/internal/logger"
)

// Storages bundles the persistence components handed to the service layer
// together with the connection they share.
type Storages struct {
	UserStorage    UserStorage
	UserRepository UserRepository

	close func(ctx context.Context) error
}

// NewStorages connects to the backend selected by cfg.Driver, prepares its
// schema (SQL migrations or MongoDB indexes) and builds the repositories on
// top of it.
func NewStorages(ctx context.Context, cfg config.Storage, encryption crypto.EncryptionService, log *logger.Logger) (*Storages, error) {
	storages := new(Storages)

	switch cfg.Driver {
	case config.DriverMongo, "":
		client, err := NewConnectMongo(ctx, cfg.Mongo, log)
		if err != nil {
			return nil, err
		}
		storage := newMongoUserStorage(client, cfg.Mongo, log)
		if err = storage.EnsureIndexes(ctx); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
		storages.UserStorage = storage
		storages.close = client.Disconnect

	case config.DriverPostgres, config.DriverSQLite:
		db, err := connectSQL(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		if err = db.Migrate(); err != nil {
			log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
			_ = db.Close()
			return nil, err
		}
		storages.UserStorage = NewSQLUserStorage(db)
		storages.close = func(context.Context) error { return db.Close() }

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}

	storages.UserRepository = NewUserRepository(storages.UserStorage, encryption, cfg.OperationTimeout, log)
	return storages, nil
}

func connectSQL(ctx context.Context, cfg config.Storage, log *logger.Logger) (*DB, error) {
	if cfg.Driver == config.DriverPostgres {
		return NewConnectPostgres(ctx, cfg.DB, log)
	}
	return NewConnectSQLite(ctx, cfg.DB, log)
}

// Close releases the underlying connection.
func (s *Storages) Close(ctx context.Context) error {
	if s == nil || s.close == nil {
		return nil
	}
	return s.close(ctx)
}
