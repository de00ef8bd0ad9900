// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/user-management/internal/adapter"
	"github.com/MKhiriev/user-management/internal/logger"
	"github.com/MKhiriev/user-management/internal/store"
	"github.com/MKhiriev/user-management/models"
)

const confirmationSubject = "Welcome! Your account has been created"

// userService is the core implementation of [UserService].
// Input shape checks live in [UserValidationService]; this type enforces
// the rules that need the store.
type userService struct {
	repository store.UserRepository
	mailer     adapter.EmailSender
	logger     *logger.Logger
}

// NewUserService constructs a [UserService] over the given repository.
// Registration confirmations are sent through mailer.
func NewUserService(repository store.UserRepository, mailer adapter.EmailSender, logger *logger.Logger) UserService {
	return &userService{
		repository: repository,
		mailer:     mailer,
		logger:     logger,
	}
}

// RegisterUser rejects a username or e-mail that is already in use, then
// adds the user. A confirmation e-mail is sent on success; a delivery
// failure is logged and does not fail the registration.
func (s *userService) RegisterUser(ctx context.Context, registration models.UserRegistration) (string, error) {
	log := logger.FromContext(ctx)

	username := models.NormalizeIdentity(registration.Username)
	if existing := s.repository.GetByUsername(ctx, username); existing != nil {
		return "", NewValidationError(fmt.Sprintf("username %q is already taken", username), nil)
	}

	email := models.NormalizeIdentity(registration.Email)
	if existing := s.repository.GetByEmail(ctx, email); existing != nil {
		return "", NewValidationError(fmt.Sprintf("email %q is already registered", email), nil)
	}

	user := s.repository.Add(ctx, registration)
	if user.ID == "" {
		log.Error().Str("username", username).Msg("user was not added")
		return "", nil
	}

	s.sendConfirmation(ctx, user)

	return user.ID, nil
}

// VerifyUserCredentials delegates to the repository. A result claiming
// success without a user id is downgraded to a failed verification.
func (s *userService) VerifyUserCredentials(ctx context.Context, credentials models.UserCredential) (models.VerificationResult, error) {
	result := s.repository.VerifyCredentials(ctx, credentials)
	if result.Verified && result.UserID == "" {
		logger.FromContext(ctx).Error().Msg("verification succeeded without user id")
		return models.VerificationResult{}, nil
	}
	if !result.Verified {
		result.UserID = ""
	}
	return result, nil
}

func (s *userService) GetUser(ctx context.Context, id string) (models.UserDto, error) {
	user := s.repository.GetByID(ctx, id)
	if user == nil {
		return models.UserDto{}, userNotFound("ID", id)
	}
	return *user, nil
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (models.UserDto, error) {
	user := s.repository.GetByEmail(ctx, email)
	if user == nil {
		return models.UserDto{}, userNotFound("email", email)
	}
	return *user, nil
}

func (s *userService) GetUserByUsername(ctx context.Context, username string) (models.UserDto, error) {
	user := s.repository.GetByUsername(ctx, username)
	if user == nil {
		return models.UserDto{}, userNotFound("username", username)
	}
	return *user, nil
}

func (s *userService) sendConfirmation(ctx context.Context, user models.UserDto) {
	name := strings.TrimSpace(user.FirstName + " " + user.LastName)
	if name == "" {
		name = user.Username
	}

	email := models.Email{
		To:      user.Email,
		Subject: confirmationSubject,
		Body:    fmt.Sprintf("Hi %s,\n\nyour account %q has been created.", name, user.Username),
	}

	if err := s.mailer.SendEmail(ctx, email); err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", user.ID).Msg("error sending confirmation email")
	}
}
