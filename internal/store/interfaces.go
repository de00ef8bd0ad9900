// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/user-management/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserStorage is the backend-specific persistence of user records.
//
// Implementations return errors as-is; deciding how a failure surfaces to
// callers is the job of [UserRepository]. Absent records are reported as
// [ErrNoUserWasFound], unique-key collisions as [ErrUserAlreadyExists] and
// identifiers the backend can not parse as [ErrInvalidUserID].
type UserStorage interface {
	// InsertUser persists user and assigns its ID (and CreatedAt if unset).
	InsertUser(ctx context.Context, user *models.User) error

	FindUserByID(ctx context.Context, id string) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// UserRepository exposes user records to the service layer.
//
// It never returns errors: every storage failure is logged and degraded
// into a neutral value (empty DTO, nil pointer or a negative
// [models.VerificationResult]), so an outage looks like "not found" to
// callers.
type UserRepository interface {
	// Add hashes the registration password, stores the new user and
	// returns its DTO. The empty DTO is returned on any failure.
	Add(ctx context.Context, registration models.UserRegistration) models.UserDto

	// GetByEmail returns the user with the given e-mail or nil.
	GetByEmail(ctx context.Context, email string) *models.UserDto

	// GetByUsername returns the user with the given username or nil.
	GetByUsername(ctx context.Context, username string) *models.UserDto

	// GetByID returns the user with the given identifier or nil.
	GetByID(ctx context.Context, id string) *models.UserDto

	// VerifyCredentials checks a username/password pair. UserID is set
	// only when Verified is true.
	VerifyCredentials(ctx context.Context, credentials models.UserCredential) models.VerificationResult
}
