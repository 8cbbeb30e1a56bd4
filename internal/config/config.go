package config

import (
	"os"
	"time"
)

// Config is read once at startup and passed down explicitly.
type Config struct {
	Port         string
	MongoURI     string
	DatabaseName string
	CORSOrigins  string
	QueryTimeout time.Duration
	// Store selects the persistence backend: "mongo" or "memory".
	Store string
}

const (
	StoreMongo  = "mongo"
	StoreMemory = "memory"
)

// Load builds a Config from environment variables, falling back to defaults.
func Load() Config {
	cfg := Config{
		Port:         getenv("PORT", "8080"),
		MongoURI:     os.Getenv("MONGO_URI"),
		DatabaseName: getenv("DATABASE_NAME", "blood_donor"),
		CORSOrigins:  getenv("CORS_ORIGINS", "*"),
		QueryTimeout: 10 * time.Second,
		Store:        getenv("STORE", StoreMongo),
	}

	// DATABASE_URL is the name older deployments used.
	if cfg.MongoURI == "" {
		cfg.MongoURI = os.Getenv("DATABASE_URL")
	}

	if raw := os.Getenv("QUERY_TIMEOUT"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			cfg.QueryTimeout = d
		}
	}

	return cfg
}

// URIConfigured reports whether a database connection string was supplied.
func (c Config) URIConfigured() bool {
	return c.MongoURI != ""
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
