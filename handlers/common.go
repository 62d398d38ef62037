package handlers

import (
	"context"
	"net/http"
	"time"

	"snapwall/auth"
	"snapwall/store"
	"snapwall/upload"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Shared collaborators for all handler files, set once at startup.
var (
	posts   store.PostStore
	uploads upload.Uploader
	authSvc *auth.Service
)

const (
	storeTimeout  = 10 * time.Second
	uploadTimeout = 30 * time.Second
)

// Setup wires the handlers to their stores and the upload service.
func Setup(us store.UserStore, ps store.PostStore, up upload.Uploader) {
	posts = ps
	uploads = up
	authSvc = auth.NewService(us)
}

// storeCtx caps every persistence call so a hung store cannot hang the
// request.
func storeCtx(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), storeTimeout)
}

// uploadImage pushes the optional image form field to the hosting
// service and returns its durable URL. A missing file is not an error.
func uploadImage(c *gin.Context, field string) (string, error) {
	file, _, err := c.Request.FormFile(field)
	if err != nil {
		return "", nil
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(c.Request.Context(), uploadTimeout)
	defer cancel()

	return uploads.Upload(ctx, file, uuid.NewString())
}

func renderError(c *gin.Context, status int, message string) {
	c.HTML(status, "error.html", gin.H{
		"status":       status,
		"errorMessage": message,
	})
}

func renderTimeout(c *gin.Context) {
	renderError(c, http.StatusGatewayTimeout, "The database did not respond in time. Please try again.")
}
