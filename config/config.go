package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds everything the app reads from the environment.
type Config struct {
	Port          string
	MongoURI      string
	DBName        string
	SessionSecret string
	CloudinaryURL string
	GinMode       string
	TemplateGlob  string

	AllowedOrigins []string
}

// Load reads configuration from a .env file (if present) and the
// environment, applying localhost defaults for development.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading environment directly")
	}

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		MongoURI:      getEnv("MONGODB_URI", "mongodb://127.0.0.1:27017"),
		DBName:        getEnv("DB_NAME", "snapwall"),
		SessionSecret: getEnv("SESSION_SECRET", ""),
		CloudinaryURL: os.Getenv("CLOUDINARY_URL"),
		GinMode:       os.Getenv("GIN_MODE"),
		TemplateGlob:  getEnv("TEMPLATE_GLOB", "templates/*.html"),
	}

	origins := getEnv("ALLOWED_ORIGINS", "http://localhost:8080,http://127.0.0.1:8080")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
