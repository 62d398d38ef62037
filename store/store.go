// Package store persists users and posts. The Mongo implementations are
// the production path; the memory implementations back the tests.
package store

import (
	"context"
	"errors"

	"snapwall/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrDuplicate is returned when a write violates a uniqueness
	// constraint on username or email.
	ErrDuplicate = errors.New("duplicate identity")

	// ErrNotFound is returned when a lookup matches no record.
	ErrNotFound = errors.New("record not found")

	// ErrTimeout is returned when a store call exceeds its deadline.
	ErrTimeout = errors.New("store timeout")
)

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

type PostStore interface {
	Create(ctx context.Context, post *models.Post) error
	FindAll(ctx context.Context) ([]models.Post, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error)
}
