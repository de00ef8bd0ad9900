// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/MKhiriev/user-management/internal/crypto"
	"github.com/MKhiriev/user-management/models"
)

func TestUserDocument_RoundTrip(t *testing.T) {
	id := bson.NewObjectID()
	user := models.User{
		ID:           id.Hex(),
		Username:     "gambitier",
		FirstName:    "Akash",
		LastName:     "Jadhav",
		Email:        "akash@yopmail.com",
		PasswordHash: []byte("hash"),
		PasswordSalt: []byte("salt"),
		CreatedAt:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	doc := toUserDocument(user)
	assert.Equal(t, id, doc.ID)

	assert.Equal(t, user, fromUserDocument(doc))
}

func TestUserDocument_BSONKeepsArgon2Hash(t *testing.T) {
	encryption := crypto.NewEncryptionService()
	hash, salt, err := encryption.CreatePasswordHash("Test@123")
	require.NoError(t, err)

	raw, err := bson.Marshal(toUserDocument(models.User{
		ID:           bson.NewObjectID().Hex(),
		Username:     "gambitier",
		Email:        "akash@yopmail.com",
		PasswordHash: hash,
		PasswordSalt: salt,
	}))
	require.NoError(t, err)

	var decoded userDocument
	require.NoError(t, bson.Unmarshal(raw, &decoded))
	user := fromUserDocument(decoded)

	assert.Equal(t, hash, user.PasswordHash)
	assert.Equal(t, salt, user.PasswordSalt)
	assert.True(t, encryption.VerifyPasswordHash("Test@123", user.PasswordHash, user.PasswordSalt))
	assert.False(t, encryption.VerifyPasswordHash("Wrong@123", user.PasswordHash, user.PasswordSalt))
}

func TestToUserDocument_WithoutID(t *testing.T) {
	doc := toUserDocument(models.User{Username: "gambitier"})
	assert.True(t, doc.ID.IsZero())

	// _id is omitted so the server can assign one
	raw, err := bson.Marshal(doc)
	require.NoError(t, err)
	_, err = bson.Raw(raw).LookupErr("_id")
	assert.Error(t, err)
}

func TestFromUserDocument_ZeroID(t *testing.T) {
	user := fromUserDocument(userDocument{Email: "a@b.c"})
	assert.Empty(t, user.ID)
	assert.Equal(t, "a@b.c", user.Email)
}

func TestUserDocument_BSONFieldNames(t *testing.T) {
	raw, err := bson.Marshal(toUserDocument(models.User{
		ID:       bson.NewObjectID().Hex(),
		Username: "gambitier",
		Email:    "akash@yopmail.com",
	}))
	require.NoError(t, err)

	for _, key := range []string{"_id", "username", "first_name", "last_name", "email", "password_hash", "password_salt", "created_at"} {
		_, err := bson.Raw(raw).LookupErr(key)
		assert.NoError(t, err, key)
	}
}

func TestUserIndexModels_AreUnique(t *testing.T) {
	indexes := userIndexModels()
	require.Len(t, indexes, 2)

	keys := make([]string, 0, len(indexes))
	for _, idx := range indexes {
		d, ok := idx.Keys.(bson.D)
		require.True(t, ok)
		require.Len(t, d, 1)
		keys = append(keys, d[0].Key)
		require.NotNil(t, idx.Options)
	}
	assert.ElementsMatch(t, []string{"username", "email"}, keys)
}
