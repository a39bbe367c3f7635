package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_Success(t *testing.T) {
	hash, err := HashPassword("SecurePass123")

	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "SecurePass123", hash, "Hash should not contain the plaintext")
	assert.True(t, strings.HasPrefix(hash, "$2"), "Output should be a bcrypt hash")
}

func TestHashPassword_SamePasswordDifferentHashes(t *testing.T) {
	// The salt is random per call, so two hashes of the same password
	// must differ.
	hash1, err := HashPassword("same-password")
	require.NoError(t, err)
	hash2, err := HashPassword("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, hash1, hash2)
}

func TestVerifyPassword_CorrectPassword(t *testing.T) {
	hash, err := HashPassword("correct-horse-battery-staple")
	require.NoError(t, err)

	assert.True(t, VerifyPassword("correct-horse-battery-staple", hash))
}

func TestVerifyPassword_WrongPassword(t *testing.T) {
	hash, err := HashPassword("the-real-password")
	require.NoError(t, err)

	assert.False(t, VerifyPassword("the-wrong-password", hash))
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	// A corrupt hash must behave like a wrong password, not an error.
	assert.False(t, VerifyPassword("password", "not-a-valid-bcrypt-hash"))
	assert.False(t, VerifyPassword("password", ""))
}

func TestHashVerify_RoundTrip(t *testing.T) {
	testCases := []struct {
		name     string
		password string
	}{
		{"simple alphanumeric", "hello123"},
		{"special characters", "p@$$w0rd!#%"},
		{"unicode", "пароль-密码"},
		{"whitespace", "  leading and trailing  "},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			hash, err := HashPassword(tc.password)
			require.NoError(t, err)
			assert.True(t, VerifyPassword(tc.password, hash))
		})
	}
}
