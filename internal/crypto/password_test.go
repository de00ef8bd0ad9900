package crypto

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestService keeps the memory cost low so the suite stays fast.
func newTestService() *encryptionService {
	return &encryptionService{params: argon2Params{time: 1, memory: 1024, threads: 1, keyLen: 32}}
}

func TestNewEncryptionService_Defaults(t *testing.T) {
	svc, ok := NewEncryptionService().(*encryptionService)
	require.True(t, ok)

	assert.Equal(t, uint32(1), svc.params.time)
	assert.Equal(t, uint32(64*1024), svc.params.memory)
	assert.Equal(t, uint8(4), svc.params.threads)
	assert.Equal(t, uint32(32), svc.params.keyLen)
}

func TestCreatePasswordHash_LengthAndRandomness(t *testing.T) {
	svc := newTestService()

	h1, s1, err := svc.CreatePasswordHash("Test@123")
	require.NoError(t, err)
	h2, s2, err := svc.CreatePasswordHash("Test@123")
	require.NoError(t, err)

	assert.Len(t, s1, saltLength)
	assert.Len(t, h1, 32)
	assert.False(t, bytes.Equal(s1, s2), "salts must differ between calls")
	assert.False(t, bytes.Equal(h1, h2), "same password with different salts must hash differently")
}

func TestVerifyPasswordHash(t *testing.T) {
	svc := newTestService()

	hash, salt, err := svc.CreatePasswordHash("Test@123")
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		hash     []byte
		salt     []byte
		want     bool
	}{
		{name: "matching password", password: "Test@123", hash: hash, salt: salt, want: true},
		{name: "wrong password", password: "Test@124", hash: hash, salt: salt, want: false},
		{name: "empty password", password: "", hash: hash, salt: salt, want: false},
		{name: "wrong salt", password: "Test@123", hash: hash, salt: bytes.Repeat([]byte{0x01}, saltLength), want: false},
		{name: "truncated hash", password: "Test@123", hash: hash[:16], salt: salt, want: false},
		{name: "empty hash", password: "Test@123", hash: nil, salt: salt, want: false},
		{name: "empty salt", password: "Test@123", hash: hash, salt: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.VerifyPasswordHash(tt.password, tt.hash, tt.salt))
		})
	}
}

func TestDerive_DeterministicForSameInputs(t *testing.T) {
	svc := newTestService()
	salt := bytes.Repeat([]byte{0xAB}, saltLength)

	assert.Equal(t, svc.derive("correct horse battery staple", salt), svc.derive("correct horse battery staple", salt))
}
