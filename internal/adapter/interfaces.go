// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides clients for the external services the
// user-management backend talks to.
//
// The primary abstraction is [EmailSender], which decouples the service layer
// from the mail provider. The package ships an HTTP/JSON implementation
// ([NewHTTPEmailSender]) and a no-op one used when mail delivery is not
// configured.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/user-management/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/email_sender_mock.go -package=mock

// EmailSender delivers a single e-mail message.
type EmailSender interface {
	// SendEmail hands email to the provider. It returns an error if the
	// request fails or the provider responds with a non-2xx status.
	SendEmail(ctx context.Context, email models.Email) error
}
