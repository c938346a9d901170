package router

import (
	"log"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/adityakx/sangam/backend/internal/handlers"
	"github.com/adityakx/sangam/backend/internal/middleware"
	"github.com/adityakx/sangam/backend/internal/models"
	"github.com/adityakx/sangam/backend/internal/repositories"
	"github.com/adityakx/sangam/backend/internal/services"
	"github.com/adityakx/sangam/backend/pkg/config"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	e.Use(eMiddleware.RequestIDWithConfig(eMiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *gorm.DB, cache *redis.Client, cfg *config.Config) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Preferences{},
		&models.ConnectionRequest{},
		&models.Message{},
		&models.ProfileView{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Repositories ---
	userRepo := repositories.NewPostgresUserRepository(db)
	prefRepo := repositories.NewPostgresPreferenceRepository(db)
	connRepo := repositories.NewPostgresConnectionRepository(db)
	msgRepo := repositories.NewPostgresMessageRepository(db)
	viewRepo := repositories.NewPostgresProfileViewRepository(db)

	// --- Services ---
	identity := services.NewIdentityService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	preferences := services.NewPreferenceService(prefRepo)
	userService := services.NewUserService(userRepo, preferences, identity)
	connections := services.NewConnectionService(connRepo, userRepo)
	messages := services.NewMessageService(msgRepo, connRepo)
	matches := services.NewMatchService(userRepo, preferences)
	moderation := services.NewModerationService(userRepo)
	profileViews := services.NewProfileViewService(viewRepo, cache)

	// --- Unprotected routes ---
	authHandler := handlers.NewAuthHandler(userService, identity)
	authHandler.RegisterAuthRoutes(e.Group("/user"))

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("")
	api.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))

	authHandler.RegisterMeRoutes(api.Group("/user"))

	userHandler := handlers.NewUserHandler(userService, identity, matches, messages, connections, profileViews)
	userHandler.RegisterUserRoutes(api)

	prefHandler := handlers.NewPreferenceHandler(preferences, identity)
	prefHandler.RegisterPreferenceRoutes(api)

	connHandler := handlers.NewConnectionHandler(connections, identity)
	connHandler.RegisterConnectionRoutes(api)

	msgHandler := handlers.NewMessageHandler(messages, identity)
	msgHandler.RegisterMessageRoutes(api)

	matchHandler := handlers.NewMatchHandler(matches)
	matchHandler.RegisterMatchRoutes(api)

	adminHandler := handlers.NewAdminHandler(moderation, identity)
	adminHandler.RegisterAdminRoutes(api.Group("/api/admin"))

	log.Println("All routes configured.")
}
