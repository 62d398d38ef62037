package handlers

import (
	"errors"
	"log"
	"net/http"

	"snapwall/auth"
	"snapwall/middleware"
	"snapwall/session"
	"snapwall/store"

	"github.com/gin-gonic/gin"
)

func ShowIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"loggedIn": session.IsLoggedIn(c),
	})
}

func ShowSignup(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.html", nil)
}

// Signup processes the signup form: optional profile image first, then
// validation, hashing and the user insert. A fresh account is logged in
// right away and sent to its profile page.
func Signup(c *gin.Context) {
	username := c.PostForm("username")
	email := c.PostForm("email")
	password := c.PostForm("password")

	imageURL, err := uploadImage(c, "image")
	if err != nil {
		log.Printf("Signup image upload failed: %v", err)
		renderError(c, http.StatusBadGateway, "We could not store your profile image. Please try again.")
		return
	}

	ctx, cancel := storeCtx(c)
	defer cancel()

	user, err := authSvc.Signup(ctx, username, email, password, imageURL)
	switch {
	case err == nil:
	case errors.Is(err, auth.ErrMissingFields):
		c.HTML(http.StatusOK, "signup.html", gin.H{
			"errorMessage": "All fields are mandatory. Please provide your username, email and password.",
		})
		return
	case errors.Is(err, auth.ErrWeakPassword):
		c.HTML(http.StatusInternalServerError, "signup.html", gin.H{
			"errorMessage": "Password needs to have at least 6 chars and must contain at least one number, one lowercase and one uppercase letter.",
		})
		return
	case errors.Is(err, store.ErrDuplicate):
		c.HTML(http.StatusInternalServerError, "signup.html", gin.H{
			"errorMessage": "Username and email need to be unique. Either username or email is already used.",
		})
		return
	case errors.Is(err, store.ErrTimeout):
		renderTimeout(c)
		return
	default:
		log.Printf("Signup failed: %v", err)
		c.HTML(http.StatusInternalServerError, "signup.html", gin.H{
			"errorMessage": err.Error(),
		})
		return
	}

	if err := session.SetCurrentUser(c, user.ID); err != nil {
		log.Printf("Unable to save session after signup: %v", err)
		renderError(c, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}
	c.Redirect(http.StatusFound, "/userProfile")
}

func ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", nil)
}

// Login authenticates the submitted credentials and binds the session to
// the user's ID.
func Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	ctx, cancel := storeCtx(c)
	defer cancel()

	user, err := authSvc.Login(ctx, email, password)
	switch {
	case err == nil:
	case errors.Is(err, auth.ErrMissingCredentials):
		c.HTML(http.StatusOK, "login.html", gin.H{
			"errorMessage": "Please enter both, email and password to login.",
		})
		return
	case errors.Is(err, auth.ErrUnknownEmail):
		c.HTML(http.StatusOK, "login.html", gin.H{
			"errorMessage": "Email is not registered. Try with other email.",
		})
		return
	case errors.Is(err, auth.ErrIncorrectPassword):
		c.HTML(http.StatusOK, "login.html", gin.H{
			"errorMessage": "Incorrect password.",
		})
		return
	case errors.Is(err, store.ErrTimeout):
		renderTimeout(c)
		return
	default:
		log.Printf("Login failed: %v", err)
		renderError(c, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}

	if err := session.SetCurrentUser(c, user.ID); err != nil {
		log.Printf("Unable to save session after login: %v", err)
		renderError(c, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}
	c.Redirect(http.StatusFound, "/userProfile")
}

// Logout destroys the session and sends the client back to the landing
// page.
func Logout(c *gin.Context) {
	if err := session.Clear(c); err != nil {
		log.Printf("Unable to clear session: %v", err)
	}
	c.Redirect(http.StatusFound, "/")
}

// UserProfile renders the profile of the logged-in user attached by the
// route guard.
func UserProfile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}
	c.HTML(http.StatusOK, "user-profile.html", gin.H{"user": user})
}
