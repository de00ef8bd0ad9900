// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/user-management/internal/utils"
	"github.com/MKhiriev/user-management/models"
)

// sqlUserStorage is the relational implementation of [UserStorage].
// It works with both PostgreSQL and SQLite; dialect differences live in
// [DB].
type sqlUserStorage struct {
	db  *DB
	ids *utils.UUIDGenerator
}

// NewSQLUserStorage constructs a [UserStorage] over the "users" table.
func NewSQLUserStorage(db *DB) UserStorage {
	db.logger.Debug().Msg("creating sql user storage")
	return &sqlUserStorage{db: db, ids: utils.NewUUIDGenerator()}
}

// InsertUser assigns a UUIDv7 identifier to user and inserts it.
// A unique-constraint violation is reported as [ErrUserAlreadyExists].
func (s *sqlUserStorage) InsertUser(ctx context.Context, user *models.User) error {
	user.ID = s.ids.Generate()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	query, args, err := buildInsertUserQuery(s.db.builder, user)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		user.ID = ""
		if s.db.errorClassificator.IsUniqueViolation(err) {
			return ErrUserAlreadyExists
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqlUserStorage) FindUserByID(ctx context.Context, id string) (models.User, error) {
	if err := uuid.Validate(id); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidUserID, err)
	}
	return s.findUser(ctx, columnID, id)
}

func (s *sqlUserStorage) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return s.findUser(ctx, columnUsername, username)
}

func (s *sqlUserStorage) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return s.findUser(ctx, columnEmail, email)
}

func (s *sqlUserStorage) findUser(ctx context.Context, column, value string) (models.User, error) {
	query, args, err := buildFindUserQuery(s.db.builder, column, value)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := s.db.QueryRowContext(ctx, query, args...)
	if err = row.Err(); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	user, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

func scanUser(row *sql.Row) (models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.PasswordHash,
		&user.PasswordSalt,
		&user.CreatedAt,
	)
	return user, err
}
