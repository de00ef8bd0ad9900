// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/user-management/internal/config"
	"github.com/MKhiriev/user-management/internal/logger"
	"github.com/MKhiriev/user-management/internal/utils"
	"github.com/MKhiriev/user-management/models"
)

// tokenTTL is the lifetime of every issued token.
const tokenTTL = time.Hour

// authManager is the concrete implementation of [AuthManager].
// It verifies credentials through a [UserService] and signs HS256 tokens.
// All state is read-only after construction.
type authManager struct {
	userService UserService

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the optional "iss" claim. When set, tokens whose issuer
	// does not match are rejected during parsing.
	tokenIssuer string

	// now is the clock; replaced in tests.
	now func() time.Time
}

// NewAuthManager constructs an [AuthManager]. It fails with
// [ErrTokenKeyNotSpecified] when cfg carries no signing key.
func NewAuthManager(userService UserService, cfg config.App) (AuthManager, error) {
	if cfg.TokenKey == "" {
		return nil, ErrTokenKeyNotSpecified
	}

	return &authManager{
		userService:  userService,
		tokenSignKey: cfg.TokenKey,
		tokenIssuer:  cfg.TokenIssuer,
		now:          time.Now,
	}, nil
}

// Authenticate verifies credentials and issues a token for the verified
// user. Unverified credentials are rejected with [ErrInvalidCredentials].
func (a *authManager) Authenticate(ctx context.Context, credentials models.UserCredential) (models.Token, error) {
	log := logger.FromContext(ctx)

	result, err := a.userService.VerifyUserCredentials(ctx, credentials)
	if err != nil {
		return models.Token{}, err
	}

	if !result.Verified {
		log.Info().Str("username", models.NormalizeIdentity(credentials.Username)).Msg("authentication rejected")
		return models.Token{}, ErrInvalidCredentials
	}
	if result.UserID == "" {
		log.Error().Msg("verified credentials carry no user id")
		return models.Token{}, ErrCredentialVerificationFailed
	}

	username := models.NormalizeIdentity(credentials.Username)
	token, err := utils.GenerateJWTToken(a.tokenIssuer, username, result.UserID, a.now(), tokenTTL, a.tokenSignKey)
	if err != nil {
		log.Err(err).Msg("error generating token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates a raw JWT string. Any validation failure (expired,
// wrong issuer, wrong algorithm, malformed) is normalised to
// [ErrTokenIsExpiredOrInvalid].
func (a *authManager) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
