package auth

import (
	"context"
	"testing"

	"snapwall/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*Service, *store.MemoryUserStore) {
	t.Helper()
	users := store.NewMemoryUserStore()
	return NewService(users), users
}

func TestSignupMissingFields(t *testing.T) {
	tests := []struct {
		name                      string
		username, email, password string
	}{
		{"no username", "", "a@b.com", "Abcdef1"},
		{"no email", "alice", "", "Abcdef1"},
		{"no password", "alice", "a@b.com", ""},
		{"all empty", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, users := newTestService(t)
			_, err := svc.Signup(context.Background(), tt.username, tt.email, tt.password, "")
			assert.ErrorIs(t, err, ErrMissingFields)
			assert.Equal(t, 0, users.Count(), "no store write on validation failure")
		})
	}
}

func TestSignupWeakPassword(t *testing.T) {
	svc, users := newTestService(t)

	for _, password := range []string{"abcdef", "ABCDEF1", "abc12"} {
		_, err := svc.Signup(context.Background(), "alice", "a@b.com", password, "")
		assert.ErrorIs(t, err, ErrWeakPassword, "password %q", password)
	}
	assert.Equal(t, 0, users.Count())
}

func TestSignupSuccess(t *testing.T) {
	svc, users := newTestService(t)

	user, err := svc.Signup(context.Background(), "alice", "a@b.com", "Abcdef1", "https://img.test/a.png")
	require.NoError(t, err)

	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "a@b.com", user.Email)
	assert.Equal(t, "https://img.test/a.png", user.ImageURL)
	assert.False(t, user.ID.IsZero())
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "Abcdef1", user.PasswordHash, "raw password must never be persisted")
	assert.Equal(t, 1, users.Count())
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc, users := newTestService(t)

	_, err := svc.Signup(context.Background(), "alice", "a@b.com", "Abcdef1", "")
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), "bob", "a@b.com", "Abcdef1", "")
	assert.ErrorIs(t, err, store.ErrDuplicate)
	assert.Equal(t, 1, users.Count())
}

func TestLogin(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Signup(context.Background(), "alice", "a@b.com", "Abcdef1", "")
	require.NoError(t, err)

	t.Run("missing credentials", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "", "Abcdef1")
		assert.ErrorIs(t, err, ErrMissingCredentials)

		_, err = svc.Login(context.Background(), "a@b.com", "")
		assert.ErrorIs(t, err, ErrMissingCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "nobody@b.com", "Abcdef1")
		assert.ErrorIs(t, err, ErrUnknownEmail)
	})

	t.Run("incorrect password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "a@b.com", "Wrong1pw")
		assert.ErrorIs(t, err, ErrIncorrectPassword)
	})

	t.Run("success", func(t *testing.T) {
		user, err := svc.Login(context.Background(), "a@b.com", "Abcdef1")
		require.NoError(t, err)
		assert.Equal(t, "a@b.com", user.Email)
	})
}
