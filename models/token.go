// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the payload of every bearer token issued by the service.
//
// The standard "sub" claim carries the username; Name duplicates it under
// the "name" key and UserID carries the store-assigned identifier.
type TokenClaims struct {
	jwt.RegisteredClaims

	Name   string `json:"name"`
	UserID string `json:"userId"`
}

// Token wraps a signed JWT together with its decoded claims.
type Token struct {
	// Claims holds the claims the token was signed (or parsed) with.
	Claims TokenClaims `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}

// ExpiresAt returns the expiry instant of the token, or the zero time if the
// claim is absent.
func (t Token) ExpiresAt() time.Time {
	if t.Claims.ExpiresAt == nil {
		return time.Time{}
	}
	return t.Claims.ExpiresAt.Time
}

// AuthResponse is the JSON body returned by the authentication endpoint.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
