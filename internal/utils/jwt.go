// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/user-management/models"
)

var (
	ErrInvalidJWTParams          = errors.New("invalid params for generating JWT token")
	ErrInvalidAuthorizationValue = errors.New("invalid authorization header")
	ErrEmptyTokenUserID          = errors.New("token carries no user id")
)

// GenerateJWTToken creates an HMAC-SHA256 signed JWT for the given user.
//
// The token carries the claims:
//   - sub, name: username
//   - userId:    userID
//   - iat:       issuedAt
//   - exp:       issuedAt plus tokenDuration
//   - iss:       issuer, omitted when empty
//
// username, userID, signKey and a positive tokenDuration are required.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("users-api", "gambitier", id, time.Now(), time.Hour, key)
func GenerateJWTToken(issuer, username, userID string, issuedAt time.Time, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if username == "" || userID == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, ErrInvalidJWTParams
	}

	claims := models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(tokenDuration)),
		},
		Name:   username,
		UserID: userID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Claims: claims, SignedString: tokenString}, nil
}

// ValidateAndParseJWTToken verifies tokenString and extracts its claims.
//
// Validation includes the HS256 signature with tokenSignKey, the presence
// and value of exp, the issuer when tokenIssuer is not empty, and a
// non-empty userId claim.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if tokenIssuer != "" {
		opts = append(opts, jwt.WithIssuer(tokenIssuer))
	}

	claims := new(models.TokenClaims)
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, opts...)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.UserID == "" {
		return models.Token{}, ErrEmptyTokenUserID
	}

	return models.Token{Claims: *claims, SignedString: tokenString}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	scheme, token, found := strings.Cut(strings.TrimSpace(authorizationHeader), " ")
	token = strings.TrimSpace(token)
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", ErrInvalidAuthorizationValue
	}
	return token, nil
}
