// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// User represents a persisted account record.
// PasswordHash and PasswordSalt never leave the storage and repository
// layers; outward-facing code works with [UserDto] instead.
type User struct {
	// ID is assigned by the store on insert and is immutable afterwards.
	ID string `json:"id"`

	// Username is the normalized (trimmed, lowercase) unique login name.
	Username string `json:"username"`

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	// Email is the normalized (trimmed, lowercase) unique e-mail address.
	Email string `json:"email"`

	PasswordHash []byte `json:"-"`
	PasswordSalt []byte `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table (or document
// collection) associated with the User model.
func (u User) TableName() string {
	return "users"
}

// ToDto returns the externally safe projection of u.
func (u User) ToDto() UserDto {
	return UserDto{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}

// UserDto is the externally safe projection of [User]: it carries every
// identity attribute but never the password hash or salt.
type UserDto struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// IsEmpty reports whether d is the neutral empty value returned by the
// repository when an operation degraded.
func (d UserDto) IsEmpty() bool {
	return d == UserDto{}
}

// UserRegistration is the input of the registration flow.
// Password is plaintext and transient: it is hashed before anything is
// persisted.
type UserRegistration struct {
	Username  string `json:"username" validate:"required,min=3,max=64"`
	FirstName string `json:"first_name" validate:"max=128"`
	LastName  string `json:"last_name" validate:"max=128"`
	Email     string `json:"email" validate:"required,email,max=254"`
	Password  string `json:"password" validate:"required,min=6,max=128"`
}

// Normalized returns r with identity fields in their stored form and names
// trimmed. The password is left untouched.
func (r UserRegistration) Normalized() UserRegistration {
	r.Username = NormalizeIdentity(r.Username)
	r.Email = NormalizeIdentity(r.Email)
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	return r
}

// UserCredential carries a username/password pair presented for
// verification. It is never persisted.
type UserCredential struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Normalized returns c with the username in its stored form.
func (c UserCredential) Normalized() UserCredential {
	c.Username = NormalizeIdentity(c.Username)
	return c
}

// VerificationResult is the outcome of a credential check.
// UserID is non-empty if and only if Verified is true.
type VerificationResult struct {
	Verified bool   `json:"verified"`
	UserID   string `json:"user_id"`
}

// RegistrationResponse is returned by the registration endpoint.
type RegistrationResponse struct {
	ID string `json:"id"`
}

// NormalizeIdentity trims surrounding whitespace and lowercases s.
// Usernames and e-mail addresses are stored and looked up in this form.
func NormalizeIdentity(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
