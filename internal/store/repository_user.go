// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/user-management/internal/crypto"
	"github.com/MKhiriev/user-management/internal/logger"
	"github.com/MKhiriev/user-management/models"
)

// userRepository is the default implementation of [UserRepository].
//
// It normalizes identities, hashes passwords through [crypto.EncryptionService]
// and delegates persistence to a [UserStorage]. Storage errors never cross
// this boundary: they are logged with the request-scoped logger and turned
// into neutral results.
type userRepository struct {
	storage    UserStorage
	encryption crypto.EncryptionService
	timeout    time.Duration
	logger     *logger.Logger
}

// NewUserRepository constructs a [UserRepository]. A non-positive timeout
// leaves operations bounded by the caller's context only.
func NewUserRepository(storage UserStorage, encryption crypto.EncryptionService, timeout time.Duration, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		storage:    storage,
		encryption: encryption,
		timeout:    timeout,
		logger:     logger,
	}
}

// Add implements [UserRepository].
func (r *userRepository) Add(ctx context.Context, registration models.UserRegistration) models.UserDto {
	log := r.log(ctx, "Add")

	username := models.NormalizeIdentity(registration.Username)
	email := models.NormalizeIdentity(registration.Email)
	if username == "" || email == "" {
		log.Error().Msg("empty username or email")
		return models.UserDto{}
	}

	hash, salt, err := r.encryption.CreatePasswordHash(registration.Password)
	if err != nil {
		log.Err(err).Msg("error hashing password")
		return models.UserDto{}
	}

	user := &models.User{
		Username:     username,
		FirstName:    strings.TrimSpace(registration.FirstName),
		LastName:     strings.TrimSpace(registration.LastName),
		Email:        email,
		PasswordHash: hash,
		PasswordSalt: salt,
	}

	opCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	if err = r.storage.InsertUser(opCtx, user); err != nil {
		log.Err(err).Str("username", user.Username).Msg("error inserting user")
		return models.UserDto{}
	}

	log.Info().Str("user_id", user.ID).Msg("user added")
	return user.ToDto()
}

// GetByEmail implements [UserRepository].
func (r *userRepository) GetByEmail(ctx context.Context, email string) *models.UserDto {
	return r.find(ctx, "GetByEmail", models.NormalizeIdentity(email), r.storage.FindUserByEmail)
}

// GetByUsername implements [UserRepository].
func (r *userRepository) GetByUsername(ctx context.Context, username string) *models.UserDto {
	return r.find(ctx, "GetByUsername", models.NormalizeIdentity(username), r.storage.FindUserByUsername)
}

// GetByID implements [UserRepository].
func (r *userRepository) GetByID(ctx context.Context, id string) *models.UserDto {
	return r.find(ctx, "GetByID", strings.TrimSpace(id), r.storage.FindUserByID)
}

// VerifyCredentials implements [UserRepository].
func (r *userRepository) VerifyCredentials(ctx context.Context, credentials models.UserCredential) models.VerificationResult {
	log := r.log(ctx, "VerifyCredentials")
	username := models.NormalizeIdentity(credentials.Username)
	if username == "" {
		log.Debug().Msg("empty username")
		return models.VerificationResult{}
	}

	opCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	user, err := r.storage.FindUserByUsername(opCtx, username)
	if err != nil {
		r.logLookupError(log, err, username)
		return models.VerificationResult{}
	}

	if !r.encryption.VerifyPasswordHash(credentials.Password, user.PasswordHash, user.PasswordSalt) {
		log.Debug().Str("username", username).Msg("password mismatch")
		return models.VerificationResult{}
	}

	if user.ID == "" {
		log.Error().Str("username", username).Msg("stored user has no id")
		return models.VerificationResult{}
	}

	return models.VerificationResult{Verified: true, UserID: user.ID}
}

type findFunc func(ctx context.Context, key string) (models.User, error)

func (r *userRepository) find(ctx context.Context, op, key string, fn findFunc) *models.UserDto {
	log := r.log(ctx, op)
	if key == "" {
		log.Debug().Msg("empty lookup key")
		return nil
	}

	opCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	user, err := fn(opCtx, key)
	if err != nil {
		r.logLookupError(log, err, key)
		return nil
	}

	dto := user.ToDto()
	return &dto
}

func (r *userRepository) logLookupError(log *zerolog.Logger, err error, key string) {
	if errors.Is(err, ErrNoUserWasFound) || errors.Is(err, ErrInvalidUserID) {
		log.Debug().Err(err).Str("key", key).Msg("user not found")
		return
	}
	log.Err(err).Str("key", key).Msg("error looking up user")
}

func (r *userRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.timeout)
}

// log returns the request-scoped logger (or the repository logger when the
// context carries none) enriched with the repository and operation names.
func (r *userRepository) log(ctx context.Context, op string) *zerolog.Logger {
	base := r.logger.Logger
	if ctxLogger := zerolog.Ctx(ctx); ctxLogger.GetLevel() != zerolog.Disabled {
		base = *ctxLogger
	}
	l := base.With().Str("repository", "user").Str("op", op).Logger()
	return &l
}
