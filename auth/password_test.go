package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"no digit no upper", "abcdef", true},
		{"no lowercase", "ABCDEF1", true},
		{"too short", "abc12", true},
		{"no digit", "Abcdefg", true},
		{"valid", "Abcdef1", false},
		{"valid longer", "Sup3rSecret", false},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrWeakPassword)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("Abcdef1")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "Abcdef1", hash)

	assert.NoError(t, VerifyPassword(hash, "Abcdef1"))
	assert.Error(t, VerifyPassword(hash, "abcdef1"))
}

func TestHashPasswordSalted(t *testing.T) {
	h1, err := HashPassword("Abcdef1")
	require.NoError(t, err)
	h2, err := HashPassword("Abcdef1")
	require.NoError(t, err)

	// per-record salt means two hashes of the same password differ
	assert.NotEqual(t, h1, h2)
}
