package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"snapwall/models"
	"snapwall/session"
	"snapwall/store"

	"github.com/gin-gonic/gin"
)

const currentUserContextKey = "currentUser"

const storeTimeout = 10 * time.Second

// RequireLogin gates every protected route. It resolves the session's
// user ID against the store so downstream handlers always see a live
// record; a session pointing at a deleted user is destroyed.
func RequireLogin(users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := session.CurrentUserID(c)
		if !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
		defer cancel()

		user, err := users.FindByID(ctx, id)
		switch {
		case err == nil:
		case errors.Is(err, store.ErrNotFound):
			// the session points at a user that no longer exists
			_ = session.Clear(c)
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		case errors.Is(err, store.ErrTimeout):
			// transient store fault: the session stays intact
			c.HTML(http.StatusGatewayTimeout, "error.html", gin.H{
				"status":       http.StatusGatewayTimeout,
				"errorMessage": "The database did not respond in time. Please try again.",
			})
			c.Abort()
			return
		default:
			c.HTML(http.StatusInternalServerError, "error.html", gin.H{
				"status":       http.StatusInternalServerError,
				"errorMessage": "Something went wrong. Please try again.",
			})
			c.Abort()
			return
		}

		c.Set(currentUserContextKey, user)
		c.Next()
	}
}

// CurrentUser returns the user attached by RequireLogin.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, exists := c.Get(currentUserContextKey)
	if !exists {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}
