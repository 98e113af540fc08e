// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fyyur/internal/config"
	"fyyur/internal/db"
	"fyyur/internal/db/migrations"
	"fyyur/internal/repository/memstore"
	"fyyur/internal/routes"
	"fyyur/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log.SetFlags(log.LstdFlags | log.Lshortfile)
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(io.MultiWriter(os.Stderr, f))
	}

	ctx := context.Background()

	var stores routes.Stores
	switch cfg.StoreBackend {
	case config.StoreMemory:
		log.Println("Using in-memory store; data is lost on exit")
		stores = routes.MemoryStores(memstore.New())
	case config.StorePostgres:
		// Create database if it doesn't exist
		if err := db.CreateDatabaseIfNotExists(ctx, cfg.DatabaseURL); err != nil {
			log.Fatalf("Failed to ensure database exists: %v", err)
		}

		database, err := db.New(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer database.Close()

		if err := migrations.RunMigrations(database.DB); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		stores = routes.PostgresStores(database.DB)
	default:
		log.Fatalf("Unknown STORE_BACKEND %q", cfg.StoreBackend)
	}

	// Image uploads are optional
	var images services.ImageStore
	if config.S3Enabled() {
		s3Config, err := config.NewS3Config(ctx)
		if err != nil {
			log.Fatalf("Failed to configure S3: %v", err)
		}
		images = services.NewS3ImageStore(s3Config.Client, s3Config.Bucket, s3Config.PublicBaseURL)
		log.Printf("Image uploads enabled (bucket %s)", s3Config.Bucket)
	}

	router := routes.SetupRoutes(stores, cfg, images)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on port %s (%s)", cfg.Port, cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
