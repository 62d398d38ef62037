package auth

import (
	"errors"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// hashRounds is the bcrypt cost factor used for all derived hashes.
const hashRounds = 10

// ErrWeakPassword is returned when a password fails the strength policy.
var ErrWeakPassword = errors.New("password needs to have at least 6 chars and must contain at least one number, one lowercase and one uppercase letter")

// ValidatePassword enforces the strength policy: length of at least 6
// with one digit, one lowercase and one uppercase letter.
func ValidatePassword(password string) error {
	if len(password) < 6 {
		return ErrWeakPassword
	}

	var hasDigit, hasLower, hasUpper bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		}
	}
	if !hasDigit || !hasLower || !hasUpper {
		return ErrWeakPassword
	}
	return nil
}

// HashPassword derives a salted bcrypt hash from a plaintext password.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), hashRounds)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// VerifyPassword compares a plaintext password with a stored hash.
func VerifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
