// Package auth implements the signup and login flows on top of a
// UserStore and the bcrypt credential hasher.
package auth

import (
	"context"
	"errors"
	"time"

	"snapwall/models"
	"snapwall/store"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrMissingFields      = errors.New("all fields are mandatory")
	ErrMissingCredentials = errors.New("email and password are required")
	ErrUnknownEmail       = errors.New("email is not registered")
	ErrIncorrectPassword  = errors.New("incorrect password")
)

type Service struct {
	users store.UserStore
}

func NewService(users store.UserStore) *Service {
	return &Service{users: users}
}

// Signup validates the submitted identity, hashes the password and
// creates the user record. The password is checked against the strength
// policy before any hashing happens. imageURL is the already-uploaded
// profile picture reference and may be empty.
func (s *Service) Signup(ctx context.Context, username, email, password, imageURL string) (*models.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, ErrMissingFields
	}

	if err := ValidatePassword(password); err != nil {
		return nil, err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           primitive.NewObjectID(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		ImageURL:     imageURL,
		CreatedAt:    time.Now().Unix(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates a user by email and password and returns the
// matching record. The unknown-email and wrong-password cases are
// reported separately, mirroring what the pages show.
func (s *Service) Login(ctx context.Context, email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrUnknownEmail
	}
	if err != nil {
		return nil, err
	}

	if err := VerifyPassword(user.PasswordHash, password); err != nil {
		return nil, ErrIncorrectPassword
	}
	return user, nil
}
