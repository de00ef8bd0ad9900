// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/user-management/internal/adapter"
	"github.com/MKhiriev/user-management/internal/config"
	"github.com/MKhiriev/user-management/internal/logger"
	"github.com/MKhiriev/user-management/internal/store"
)

type Services struct {
	UserService UserService
	AuthManager AuthManager
}

// NewServices wires the service layer: the user service decorated with
// input validation, and the auth manager on top of it.
func NewServices(storages *store.Storages, mailer adapter.EmailSender, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	userService := NewUserValidationService().Wrap(
		NewUserService(storages.UserRepository, mailer, logger),
	)

	authManager, err := NewAuthManager(userService, cfg.App)
	if err != nil {
		return nil, err
	}

	return &Services{
		UserService: userService,
		AuthManager: authManager,
	}, nil
}
