package main

import (
	"log"

	"github.com/labstack/echo/v4"

	"github.com/adityakx/sangam/backend/internal/logger"
	"github.com/adityakx/sangam/backend/internal/router"
	"github.com/adityakx/sangam/backend/pkg/config"
	"github.com/adityakx/sangam/backend/validators"
)

func main() {
	// Load configuration
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogFormat)

	// Initialize database connection
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer config.CloseDB(db)

	// Optional Redis cache for the profile-view window
	cache := config.InitRedis(cfg)
	if cache != nil {
		defer cache.Close()
	}

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	router.SetupRoutes(e, db, cache, cfg)

	// Validator
	e.Validator = validators.NewValidator()

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
