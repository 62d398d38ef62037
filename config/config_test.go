package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	c := Load()
	require.NotNil(t, c)

	assert.Equal(t, "8080", c.Port)
	assert.Equal(t, "mongodb://127.0.0.1:27017", c.MongoURI)
	assert.Equal(t, "snapwall", c.DBName)
	assert.Equal(t, "templates/*.html", c.TemplateGlob)
	assert.NotEmpty(t, c.AllowedOrigins)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("DB_NAME", "snapwall_test")
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("ALLOWED_ORIGINS", "https://a.test, https://b.test")

	c := Load()

	assert.Equal(t, "9999", c.Port)
	assert.Equal(t, "snapwall_test", c.DBName)
	assert.Equal(t, "s3cret", c.SessionSecret)
	assert.Equal(t, []string{"https://a.test", "https://b.test"}, c.AllowedOrigins)
}
