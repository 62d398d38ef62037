package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"snapwall/middleware"
	"snapwall/models"
	"snapwall/store"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func ShowCreatePost(c *gin.Context) {
	c.HTML(http.StatusOK, "post-form.html", nil)
}

// CreatePost persists a new post for the logged-in user. The route guard
// already resolved the user, but the handler re-checks so it stays safe
// even if wired without the guard.
func CreatePost(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		renderError(c, http.StatusUnauthorized, "Please log in first.")
		return
	}

	content := c.PostForm("content")
	picName := c.PostForm("picName")

	if content == "" {
		c.HTML(http.StatusOK, "post-form.html", gin.H{
			"errorMessage": "Please provide the content.",
		})
		return
	}

	picPath, err := uploadImage(c, "image")
	if err != nil {
		log.Printf("CreatePost image upload failed: %v", err)
		renderError(c, http.StatusBadGateway, "We could not store your image. Please try again.")
		return
	}

	post := &models.Post{
		ID:        primitive.NewObjectID(),
		CreatorID: user.ID,
		Content:   content,
		PicPath:   picPath,
		PicName:   picName,
		CreatedAt: time.Now().Unix(),
	}

	ctx, cancel := storeCtx(c)
	defer cancel()

	if err := posts.Create(ctx, post); err != nil {
		if errors.Is(err, store.ErrTimeout) {
			renderTimeout(c)
			return
		}
		log.Printf("CreatePost failed: %v", err)
		renderError(c, http.StatusInternalServerError, "Failed to create the post. Please try again.")
		return
	}

	c.Redirect(http.StatusFound, "/posts")
}

// ListPosts renders every post in store order.
func ListPosts(c *gin.Context) {
	if _, ok := middleware.CurrentUser(c); !ok {
		renderError(c, http.StatusUnauthorized, "Please log in first.")
		return
	}

	ctx, cancel := storeCtx(c)
	defer cancel()

	all, err := posts.FindAll(ctx)
	if err != nil {
		if errors.Is(err, store.ErrTimeout) {
			renderTimeout(c)
			return
		}
		log.Printf("ListPosts failed: %v", err)
		renderError(c, http.StatusInternalServerError, "Failed to load posts.")
		return
	}

	c.HTML(http.StatusOK, "posts-list.html", gin.H{"allPosts": all})
}

// GetPost renders a single post by its ID.
func GetPost(c *gin.Context) {
	if _, ok := middleware.CurrentUser(c); !ok {
		renderError(c, http.StatusUnauthorized, "Please log in first.")
		return
	}

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		renderError(c, http.StatusNotFound, "Post not found.")
		return
	}

	ctx, cancel := storeCtx(c)
	defer cancel()

	post, err := posts.FindByID(ctx, id)
	switch {
	case err == nil:
	case errors.Is(err, store.ErrNotFound):
		renderError(c, http.StatusNotFound, "Post not found.")
		return
	case errors.Is(err, store.ErrTimeout):
		renderTimeout(c)
		return
	default:
		log.Printf("GetPost failed: %v", err)
		renderError(c, http.StatusInternalServerError, "Failed to load the post.")
		return
	}

	c.HTML(http.StatusOK, "post-details.html", gin.H{"thePost": post})
}
