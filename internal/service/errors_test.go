package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "nil", err: nil, want: KindInternal},
		{name: "plain", err: errors.New("boom"), want: KindInternal},
		{name: "validation", err: NewValidationError("bad", nil), want: KindValidation},
		{name: "not found", err: NewNotFoundError("missing"), want: KindNotFound},
		{name: "unauthorized", err: ErrInvalidCredentials, want: KindUnauthorized},
		{name: "wrapped", err: fmt.Errorf("ctx: %w", NewNotFoundError("missing")), want: KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestDomainError_MessageAndUnwrap(t *testing.T) {
	cause := errors.New("cause")
	err := NewValidationError("username is required", cause)

	assert.EqualError(t, err, "username is required")
	assert.ErrorIs(t, err, cause)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "validation", KindValidation.String())
	assert.Equal(t, "not_found", KindNotFound.String())
	assert.Equal(t, "unauthorized", KindUnauthorized.String())
	assert.Equal(t, "internal", KindInternal.String())
}

func TestUserNotFound_Message(t *testing.T) {
	assert.EqualError(t, userNotFound("email", "a@b.c"), `User with email "a@b.c" does not exist.`)
}
