package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v3"

	"askfun/internal/cache"
	"askfun/internal/catalog"
	"askfun/internal/config"
	"askfun/internal/db"
	"askfun/internal/metrics"
	"askfun/internal/server"
	"askfun/internal/services"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	// Optional YAML config for the send-option catalog
	yamlCfg, err := config.LoadYAMLConfig()
	if err != nil {
		log.Fatalf("Failed to load YAML config: %v", err)
	}
	yamlCfg.ApplyTo(cfg)

	sendOptions, err := catalog.FromConfig(yamlCfg)
	if err != nil {
		log.Fatalf("Invalid send options: %v", err)
	}
	log.Printf("Loaded %d send options", sendOptions.Len())

	// Initialize database
	database, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	// Run migrations
	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	if cfg.SeedDevProfiles {
		if err := database.SeedDevProfiles(ctx); err != nil {
			log.Fatalf("Failed to seed dev profiles: %v", err)
		}
		log.Println("Seeded development profiles")
	}

	metrics.Init(database)

	// Redis backs the profile cache and sessions when configured
	var sessionStorage fiber.Storage
	var profileCache *cache.ProfileCache
	if cfg.RedisURL != "" {
		store := cache.NewRedisStorage(cfg.RedisURL)
		defer store.Close()
		sessionStorage = store
		if cfg.IsCacheEnabled() {
			profileCache = cache.NewProfileCache(store, cfg.ProfileCacheTTL)
			log.Printf("Profile cache enabled (ttl %s)", cfg.ProfileCacheTTL)
		}
	}

	profiles := services.NewProfileService(database, profileCache)

	srv := server.New(cfg, sessionStorage)
	srv.RegisterRoutes(database, profiles, sendOptions)

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("Server started on %s", cfg.ServerAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := srv.Shutdown(); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
	metrics.Wait()
	log.Println("Server exited")
}
