// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

const saltLength = 16

// argon2Params holds the Argon2id cost parameters.
type argon2Params struct {
	time    uint32
	memory  uint32
	threads uint8
	keyLen  uint32
}

// encryptionService is the Argon2id implementation of [EncryptionService].
type encryptionService struct {
	params argon2Params
}

// NewEncryptionService constructs an [EncryptionService] with the Argon2id
// parameters recommended by OWASP:
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewEncryptionService() EncryptionService {
	return &encryptionService{
		params: argon2Params{
			time:    1,
			memory:  64 * 1024, // 64 MiB
			threads: 4,
			keyLen:  32,
		},
	}
}

// CreatePasswordHash implements [EncryptionService].
func (e *encryptionService) CreatePasswordHash(password string) ([]byte, []byte, error) {
	salt := make([]byte, saltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, nil, fmt.Errorf("error generating password salt: %w", err)
	}

	return e.derive(password, salt), salt, nil
}

// VerifyPasswordHash implements [EncryptionService].
func (e *encryptionService) VerifyPasswordHash(password string, hash, salt []byte) bool {
	if len(hash) == 0 || len(salt) == 0 {
		return false
	}

	computed := e.derive(password, salt)
	return subtle.ConstantTimeCompare(computed, hash) == 1
}

func (e *encryptionService) derive(password string, salt []byte) []byte {
	return argon2.IDKey([]byte(password), salt, e.params.time, e.params.memory, e.params.threads, e.params.keyLen)
}
