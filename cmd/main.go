package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arzan03/BloodDonorNepal/internal/config"
	"github.com/arzan03/BloodDonorNepal/internal/db"
	"github.com/arzan03/BloodDonorNepal/internal/handlers"
	"github.com/arzan03/BloodDonorNepal/internal/routes"
	"github.com/gofiber/fiber/v2/log"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found or error loading it, using environment variables")
	}

	cfg := config.Load()
	store := openStore(cfg)

	app := routes.NewApp(handlers.New(store, cfg), cfg)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		if err := app.Shutdown(); err != nil {
			log.Errorf("shutdown: %v", err)
		}
	}()

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}

	if store != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Close(ctx); err != nil {
			log.Warnf("closing store: %v", err)
		}
	}
}

// openStore never aborts startup: without a usable database the API still
// serves and reports the problem on /test.
func openStore(cfg config.Config) db.Store {
	if cfg.Store == config.StoreMemory {
		log.Warn("Using in-memory store; data is lost on restart")
		return db.NewMemoryStore()
	}

	if !cfg.URIConfigured() {
		log.Warn("MONGO_URI not set, running without a database")
		return nil
	}

	mongoDB, err := db.ConnectMongoDB(cfg.MongoURI, cfg.DatabaseName, cfg.QueryTimeout)
	if err != nil {
		log.Errorf("MongoDB unavailable: %v", err)
		return nil
	}
	return mongoDB
}
