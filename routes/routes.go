package routes

import (
	"time"

	"snapwall/config"
	"snapwall/handlers"
	"snapwall/middleware"
	"snapwall/store"
	"snapwall/upload"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// SetupRouter builds the full gin engine: session and CORS middleware,
// HTML templates, public auth routes and the guarded post/profile routes.
func SetupRouter(cfg *config.Config, users store.UserStore, posts store.PostStore, up upload.Uploader) *gin.Engine {
	router := gin.Default()
	router.LoadHTMLGlob(cfg.TemplateGlob)

	sessionStore := cookie.NewStore([]byte(cfg.SessionSecret))
	sessionStore.Options(sessions.Options{
		Path:     "/",
		MaxAge:   7 * 24 * 60 * 60,
		HttpOnly: true,
	})
	router.Use(sessions.Sessions("snapwall_session", sessionStore))

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	handlers.Setup(users, posts, up)

	router.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	authLimit := middleware.RateLimit(20, time.Minute)

	// Public routes
	router.GET("/", handlers.ShowIndex)
	router.GET("/signup", handlers.ShowSignup)
	router.POST("/signup", authLimit, handlers.Signup)
	router.GET("/login", handlers.ShowLogin)
	router.POST("/login", authLimit, handlers.Login)
	router.POST("/logout", handlers.Logout)

	// Protected routes share one guard instead of per-handler checks.
	protected := router.Group("/")
	protected.Use(middleware.RequireLogin(users))

	protected.GET("/userProfile", handlers.UserProfile)
	protected.GET("/posts", handlers.ListPosts)
	protected.GET("/posts/create", handlers.ShowCreatePost)
	protected.POST("/posts/create", handlers.CreatePost)
	protected.GET("/posts/:id", handlers.GetPost)

	return router
}
