// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/user-management/internal/validators"
	"github.com/MKhiriev/user-management/models"
)

// UserServiceWrapper defines middleware composition for UserService.
// Implementations wrap an existing UserService to add behavior such as
// validating.
type UserServiceWrapper interface {
	Wrap(UserService) UserService // returns a decorated UserService applying additional behavior
}

// UserValidationService decorates a [UserService] with input validation.
// Input is normalized before it is checked, so the rules apply to the values
// that get stored. Invalid input is reported as a [KindValidation] error and
// never reaches the wrapped service.
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService() UserServiceWrapper {
	return &UserValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *UserValidationService) RegisterUser(ctx context.Context, registration models.UserRegistration) (string, error) {
	registration = registration.Normalized()
	if err := v.validate(ctx, registration); err != nil {
		return "", err
	}

	return v.inner.RegisterUser(ctx, registration)
}

func (v *UserValidationService) VerifyUserCredentials(ctx context.Context, credentials models.UserCredential) (models.VerificationResult, error) {
	credentials = credentials.Normalized()
	if err := v.validate(ctx, credentials); err != nil {
		return models.VerificationResult{}, err
	}

	return v.inner.VerifyUserCredentials(ctx, credentials)
}

func (v *UserValidationService) GetUser(ctx context.Context, id string) (models.UserDto, error) {
	return v.inner.GetUser(ctx, id)
}

func (v *UserValidationService) GetUserByEmail(ctx context.Context, email string) (models.UserDto, error) {
	return v.inner.GetUserByEmail(ctx, email)
}

func (v *UserValidationService) GetUserByUsername(ctx context.Context, username string) (models.UserDto, error) {
	return v.inner.GetUserByUsername(ctx, username)
}

func (v *UserValidationService) Wrap(wrapped UserService) UserService {
	v.inner = wrapped
	return v
}

func (v *UserValidationService) validate(ctx context.Context, obj any) error {
	err := v.validator.Validate(ctx, obj)
	if err == nil {
		return nil
	}
	if errors.Is(err, validators.ErrInvalidInput) {
		return NewValidationError(err.Error(), err)
	}
	return err
}
