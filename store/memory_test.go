package store

import (
	"context"
	"testing"

	"snapwall/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMemoryUserStoreUniqueness(t *testing.T) {
	s := NewMemoryUserStore()
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, &models.User{Username: "alice", Email: "a@b.com"}))

	err := s.Create(ctx, &models.User{Username: "alice", Email: "other@b.com"})
	assert.ErrorIs(t, err, ErrDuplicate, "duplicate username")

	err = s.Create(ctx, &models.User{Username: "bob", Email: "a@b.com"})
	assert.ErrorIs(t, err, ErrDuplicate, "duplicate email")

	assert.Equal(t, 1, s.Count())
}

func TestMemoryUserStoreLookups(t *testing.T) {
	s := NewMemoryUserStore()
	ctx := context.Background()

	user := &models.User{Username: "alice", Email: "a@b.com"}
	require.NoError(t, s.Create(ctx, user))
	require.False(t, user.ID.IsZero())

	found, err := s.FindByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	found, err = s.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", found.Username)

	_, err = s.FindByEmail(ctx, "nobody@b.com")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.FindByID(ctx, primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryPostStoreOrderAndIdempotence(t *testing.T) {
	s := NewMemoryPostStore()
	ctx := context.Background()
	creator := primitive.NewObjectID()

	for _, content := range []string{"first", "second", "third"} {
		require.NoError(t, s.Create(ctx, &models.Post{CreatorID: creator, Content: content}))
	}

	first, err := s.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, first, 3)
	assert.Equal(t, "first", first[0].Content)
	assert.Equal(t, "third", first[2].Content)

	second, err := s.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second, "listing twice with no writes returns the same sequence")
}

func TestMemoryPostStoreFindByID(t *testing.T) {
	s := NewMemoryPostStore()
	ctx := context.Background()

	post := &models.Post{CreatorID: primitive.NewObjectID(), Content: "hello", PicName: "cat"}
	require.NoError(t, s.Create(ctx, post))

	found, err := s.FindByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "hello", found.Content)
	assert.Equal(t, "cat", found.PicName)

	_, err = s.FindByID(ctx, primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrNotFound)
}
