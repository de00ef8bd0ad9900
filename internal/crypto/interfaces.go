// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/encryption_service_mock.go -package=mock

// EncryptionService derives and checks salted password hashes.
// It knows nothing about users, storage or the network.
type EncryptionService interface {
	// CreatePasswordHash generates a fresh random salt and derives the hash
	// of password with it. An error is returned only if the system random
	// source fails.
	CreatePasswordHash(password string) (hash, salt []byte, err error)

	// VerifyPasswordHash recomputes the hash of password with salt and
	// compares it with hash in constant time. Empty hash or salt never match.
	VerifyPasswordHash(password string, hash, salt []byte) bool
}
