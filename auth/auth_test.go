// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	Cost = bcrypt.MinCost
}

func TestHashPassword_RoundTrip(t *testing.T) {
	passwords := []string{
		"password123",
		"",
		"ünïcødé-pässwörd",
		"with spaces and $ymbols!",
		strings.Repeat("a", MaxPasswordBytes),
	}

	for _, p := range passwords {
		hash, err := HashPassword(p)
		require.NoError(t, err)
		assert.NotEqual(t, p, hash, "hash must not equal the plaintext")
		assert.True(t, VerifyPassword(p, hash), "password %q should verify", p)
	}
}

func TestHashPassword_FreshSalt(t *testing.T) {
	h1, err := HashPassword("same-password")
	require.NoError(t, err)
	h2, err := HashPassword("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
	assert.True(t, VerifyPassword("same-password", h1))
	assert.True(t, VerifyPassword("same-password", h2))
}

func TestVerifyPassword_Mismatch(t *testing.T) {
	hash, err := HashPassword("correct horse")
	require.NoError(t, err)

	tests := []string{
		"correct horse ",
		"Correct horse",
		"correct",
		"",
	}
	for _, p := range tests {
		assert.False(t, VerifyPassword(p, hash), "password %q should not verify", p)
	}
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	tests := []struct {
		name string
		hash string
	}{
		{"empty", ""},
		{"plaintext", "password123"},
		{"truncated", "$2a$10$abc"},
		{"wrong prefix", "$argon2id$v=19$m=65536,t=3,p=4$c2FsdA$aGFzaA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.False(t, VerifyPassword("password123", tt.hash))
			})
		})
	}
}

func TestHashPassword_TooLong(t *testing.T) {
	_, err := HashPassword(strings.Repeat("x", MaxPasswordBytes+1))
	assert.ErrorIs(t, err, ErrPasswordTooLong)
}

func TestDummyHash(t *testing.T) {
	h := DummyHash()
	require.NotEmpty(t, h)
	assert.Equal(t, h, DummyHash())
	assert.False(t, VerifyPassword("", h))
	assert.False(t, VerifyPassword("password123", h))
}
