// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/user-management/models"
)

const usersTable = "users"

// Lookup columns accepted by buildFindUserQuery.
const (
	columnID       = "id"
	columnUsername = "username"
	columnEmail    = "email"
)

// userColumns is the column order shared by INSERT and SELECT; scanUser
// relies on it.
var userColumns = []string{
	"id",
	"username",
	"first_name",
	"last_name",
	"email",
	"password_hash",
	"password_salt",
	"created_at",
}

func buildInsertUserQuery(builder sq.StatementBuilderType, user *models.User) (string, []any, error) {
	return builder.
		Insert(usersTable).
		Columns(userColumns...).
		Values(
			user.ID,
			user.Username,
			user.FirstName,
			user.LastName,
			user.Email,
			user.PasswordHash,
			user.PasswordSalt,
			user.CreatedAt,
		).
		ToSql()
}

func buildFindUserQuery(builder sq.StatementBuilderType, column, value string) (string, []any, error) {
	return builder.
		Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{column: value}).
		Limit(1).
		ToSql()
}
