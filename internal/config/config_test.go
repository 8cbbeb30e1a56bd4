package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "MONGO_URI", "DATABASE_URL", "DATABASE_NAME", "CORS_ORIGINS", "QUERY_TIMEOUT", "STORE"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "blood_donor", cfg.DatabaseName)
	assert.Equal(t, "*", cfg.CORSOrigins)
	assert.Equal(t, 10*time.Second, cfg.QueryTimeout)
	assert.Equal(t, StoreMongo, cfg.Store)
	assert.False(t, cfg.URIConfigured())
}

func TestLoadFallsBackToDatabaseURL(t *testing.T) {
	t.Setenv("MONGO_URI", "")
	t.Setenv("DATABASE_URL", "mongodb://db:27017")

	cfg := Load()

	assert.Equal(t, "mongodb://db:27017", cfg.MongoURI)
	assert.True(t, cfg.URIConfigured())
}

func TestLoadQueryTimeout(t *testing.T) {
	t.Setenv("QUERY_TIMEOUT", "3s")
	assert.Equal(t, 3*time.Second, Load().QueryTimeout)

	t.Setenv("QUERY_TIMEOUT", "soon")
	assert.Equal(t, 10*time.Second, Load().QueryTimeout)
}
