package store

import (
	"context"
	"sync"

	"snapwall/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryUserStore is an in-process UserStore enforcing the same
// username/email uniqueness as the Mongo indexes.
type MemoryUserStore struct {
	mu    sync.Mutex
	users []models.User
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{}
}

func (s *MemoryUserStore) Create(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == user.Username || u.Email == user.Email {
			return ErrDuplicate
		}
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	s.users = append(s.users, *user)
	return nil
}

func (s *MemoryUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryUserStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.ID == id {
			user := u
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

// Count reports how many users have been written. Used by tests to prove
// rejected signups never reach the store.
func (s *MemoryUserStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}

// MemoryPostStore keeps posts in insertion order, matching the natural
// order a collection scan returns.
type MemoryPostStore struct {
	mu    sync.Mutex
	posts []models.Post
}

func NewMemoryPostStore() *MemoryPostStore {
	return &MemoryPostStore{}
}

func (s *MemoryPostStore) Create(ctx context.Context, post *models.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if post.ID.IsZero() {
		post.ID = primitive.NewObjectID()
	}
	s.posts = append(s.posts, *post)
	return nil
}

func (s *MemoryPostStore) FindAll(ctx context.Context) ([]models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Post, len(s.posts))
	copy(out, s.posts)
	return out, nil
}

func (s *MemoryPostStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.posts {
		if p.ID == id {
			post := p
			return &post, nil
		}
	}
	return nil, ErrNotFound
}
