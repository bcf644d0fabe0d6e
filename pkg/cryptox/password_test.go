package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"simple password", "password123"},
		{"complex password", "P@ssw0rd!#$%^&*()"},
		{"empty password", ""},
		{"unicode password", "пароль密码"},
		{"whitespace password", "   spaces   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPassword(tt.password)
			require.NoError(t, err)
			require.True(t, strings.HasPrefix(hash, "$2a$"), "expected a bcrypt hash")

			cost, err := bcrypt.Cost([]byte(hash))
			require.NoError(t, err)
			require.Equal(t, Cost, cost)
		})
	}
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	password := "samepassword"

	hash1, err := HashPassword(password)
	require.NoError(t, err)
	hash2, err := HashPassword(password)
	require.NoError(t, err)

	// Random salts mean identical inputs never produce identical hashes.
	require.NotEqual(t, hash1, hash2)

	require.True(t, VerifyPassword(password, hash1))
	require.True(t, VerifyPassword(password, hash2))
}

func TestVerifyPassword_WrongPassword(t *testing.T) {
	hash, err := HashPassword("correct-password")
	require.NoError(t, err)

	tests := []struct {
		name  string
		wrong string
	}{
		{"completely wrong", "wrong-password"},
		{"case difference", "Correct-Password"},
		{"trailing space", "correct-password "},
		{"empty password", ""},
		{"near miss", "correct-passwor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.False(t, VerifyPassword(tt.wrong, hash))
		})
	}
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	// A broken stored hash is a mismatch, never a panic or error.
	tests := []struct {
		name string
		hash string
	}{
		{"empty hash", ""},
		{"not a hash", "plaintext-leaked"},
		{"wrong algorithm", "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA"},
		{"truncated bcrypt", "$2a$12$tooshort"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.False(t, VerifyPassword("anything", tt.hash))
		})
	}
}
