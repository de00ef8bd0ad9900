// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by [UserStorage] implementations to signal
// well-known failure conditions. Callers should use [errors.Is] to match
// against these values.
var (
	// ErrUserAlreadyExists is returned when an insert collides with an
	// existing username or e-mail.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrNoUserWasFound is returned when a lookup matches no user record.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrInvalidUserID is returned when an identifier has a shape the
	// backend can not use as a key (e.g. a non-hex MongoDB ObjectID).
	ErrInvalidUserID = errors.New("invalid user id")

	// ErrUnknownDriver is returned by [NewStorages] for an unsupported
	// storage driver name.
	ErrUnknownDriver = errors.New("unknown storage driver")
)

// Low-level database operation errors. These wrap the driver error when an
// operation fails before any domain logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a user row fails.
	ErrScanningRow = errors.New("failed to scan user row")

	// ErrDecodingDocument is returned when a MongoDB document can not be
	// decoded into a user record.
	ErrDecodingDocument = errors.New("failed to decode user document")
)
