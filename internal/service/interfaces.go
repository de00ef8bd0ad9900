// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/user-management/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// UserService implements the user-facing account operations. Errors it
// returns are [*DomainError] values unless they are internal failures.
type UserService interface {
	// RegisterUser creates an account and returns its identifier. An empty
	// identifier with a nil error means the store could not persist the
	// user.
	RegisterUser(ctx context.Context, registration models.UserRegistration) (string, error)

	// VerifyUserCredentials checks a username/password pair.
	VerifyUserCredentials(ctx context.Context, credentials models.UserCredential) (models.VerificationResult, error)

	GetUser(ctx context.Context, id string) (models.UserDto, error)
	GetUserByEmail(ctx context.Context, email string) (models.UserDto, error)
	GetUserByUsername(ctx context.Context, username string) (models.UserDto, error)
}

// AuthManager issues and verifies bearer tokens.
type AuthManager interface {
	// Authenticate verifies credentials and mints a token valid for one hour.
	Authenticate(ctx context.Context, credentials models.UserCredential) (models.Token, error)

	// ParseToken validates a compact token and returns its claims.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}
