// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

// Kind classifies a [DomainError] for the transport layer.
type Kind int

const (
	// KindInternal is any failure that is not the caller's fault.
	KindInternal Kind = iota
	// KindValidation marks malformed or conflicting input.
	KindValidation
	// KindNotFound marks a lookup of an absent entity.
	KindNotFound
	// KindUnauthorized marks rejected credentials or tokens.
	KindUnauthorized
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindUnauthorized:
		return "unauthorized"
	default:
		return "internal"
	}
}

// DomainError is an error whose Message is safe to show to API clients.
// The HTTP layer maps Kind onto a status code and writes Message verbatim.
type DomainError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewValidationError returns a [KindValidation] error wrapping cause.
// cause may be nil.
func NewValidationError(message string, cause error) *DomainError {
	return &DomainError{Kind: KindValidation, Message: message, Err: cause}
}

// NewNotFoundError returns a [KindNotFound] error.
func NewNotFoundError(message string) *DomainError {
	return &DomainError{Kind: KindNotFound, Message: message}
}

// NewUnauthorizedError returns a [KindUnauthorized] error.
func NewUnauthorizedError(message string) *DomainError {
	return &DomainError{Kind: KindUnauthorized, Message: message}
}

// KindOf returns the kind of the first [DomainError] in err's chain, or
// [KindInternal] if there is none.
func KindOf(err error) Kind {
	var domainErr *DomainError
	if errors.As(err, &domainErr) && domainErr != nil {
		return domainErr.Kind
	}
	return KindInternal
}

var (
	// ErrTokenKeyNotSpecified is returned by [NewAuthManager] when no token
	// signing key is configured.
	ErrTokenKeyNotSpecified = errors.New("token signing key is not specified")

	// ErrCredentialVerificationFailed is returned when a verification
	// reports success without a user identifier.
	ErrCredentialVerificationFailed = errors.New("credential verification failed")

	ErrTokenCreationFailed = errors.New("token creation failed")

	ErrUserRegistrationFailed = errors.New("user registration failed")

	ErrInvalidCredentials      = NewUnauthorizedError("invalid username or password")
	ErrTokenIsExpiredOrInvalid = NewUnauthorizedError("token is expired or invalid")
)

func userNotFound(attribute, value string) *DomainError {
	return NewNotFoundError(fmt.Sprintf("User with %s %q does not exist.", attribute, value))
}
