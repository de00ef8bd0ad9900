// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/user-management/models"
)

// Struct field names accepted as the optional field filter of
// [UserValidator.Validate].
const (
	FieldUsername  = "Username"
	FieldFirstName = "FirstName"
	FieldLastName  = "LastName"
	FieldEmail     = "Email"
	FieldPassword  = "Password"
)

// UserValidator validates user registration and credential inputs using the
// `validate` struct tags declared on the models.
type UserValidator struct {
	validate *validator.Validate
}

func NewUserValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report fields by their JSON names
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	return &UserValidator{validate: v}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UserRegistration:
		return v.validateStruct(ctx, &value, fields...)
	case *models.UserRegistration:
		return v.validateStruct(ctx, value, fields...)

	case models.UserCredential:
		return v.validateStruct(ctx, &value, fields...)
	case *models.UserCredential:
		return v.validateStruct(ctx, value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateStruct(ctx context.Context, obj any, fields ...string) error {
	if reflect.ValueOf(obj).IsNil() {
		return ErrUnsupportedType
	}

	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	problems := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		problems = append(problems, describe(fe))
	}
	return &ValidationError{Problems: problems}
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
