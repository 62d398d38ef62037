// Package session wraps the cookie-backed session middleware. Only the
// user's ID is stored; the live record is re-fetched when needed, so the
// session never carries a stale snapshot.
package session

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const currentUserKey = "CURRENT_USER_ID"

// SetCurrentUser binds the session to the given user.
func SetCurrentUser(c *gin.Context, id primitive.ObjectID) error {
	s := sessions.Default(c)
	s.Set(currentUserKey, id.Hex())
	return s.Save()
}

// CurrentUserID returns the logged-in user's ID, if any.
func CurrentUserID(c *gin.Context) (primitive.ObjectID, bool) {
	s := sessions.Default(c)
	hex, ok := s.Get(currentUserKey).(string)
	if !ok || hex == "" {
		return primitive.NilObjectID, false
	}
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}

// IsLoggedIn reports whether the session holds a user ID.
func IsLoggedIn(c *gin.Context) bool {
	_, ok := CurrentUserID(c)
	return ok
}

// Clear destroys the session and expires its cookie.
func Clear(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	s.Options(sessions.Options{
		Path:   "/",
		MaxAge: -1,
	})
	return s.Save()
}
