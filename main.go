package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"snapwall/config"
	"snapwall/database"
	"snapwall/routes"
	"snapwall/store"
	"snapwall/upload"

	"github.com/gin-gonic/gin"
)

func main() {
	log.Println("🚀 Starting snapwall...")

	cfg := config.Load()

	if cfg.SessionSecret == "" {
		log.Fatal("❌ SESSION_SECRET must be set")
	}

	// ===== CONNECT TO MONGODB WITH RETRY =====
	log.Println("🔌 Connecting to MongoDB...")

	var dbErr error
	for i := 1; i <= 3; i++ {
		if err := database.Connect(cfg.MongoURI, cfg.DBName); err != nil {
			dbErr = err
			log.Printf("❌ MongoDB connection attempt %d failed: %v", i, err)
			time.Sleep(2 * time.Second)
			continue
		}
		dbErr = nil
		break
	}
	if dbErr != nil {
		log.Fatal("❌ Failed to connect to MongoDB:", dbErr)
	}
	defer database.Disconnect()

	// ===== UPLOAD SERVICE =====
	var uploader upload.Uploader
	if cfg.CloudinaryURL != "" {
		cld, err := upload.NewCloudinary(cfg.CloudinaryURL)
		if err != nil {
			log.Fatal("❌ Cloudinary configuration error:", err)
		}
		uploader = cld
		log.Println("✅ Cloudinary upload service configured")
	} else {
		uploader = upload.Noop{}
		log.Println("⚠️ CLOUDINARY_URL not set, image uploads are disabled")
	}

	// ===== GIN MODE =====
	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := routes.SetupRouter(
		cfg,
		store.NewMongoUserStore(database.Users),
		store.NewMongoPostStore(database.Posts),
		uploader,
	)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("🌐 Server running on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("❌ Server error:", err)
		}
	}()

	// ===== GRACEFUL SHUTDOWN =====
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Println("❌ Forced shutdown:", err)
	}

	log.Println("👋 Server stopped gracefully")
}
