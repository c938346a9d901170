package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adityakx/sangam/backend/internal/apperrors"
	"github.com/adityakx/sangam/backend/internal/middleware"
	"github.com/adityakx/sangam/backend/internal/models"
	"github.com/adityakx/sangam/backend/internal/services"
)

// AuthHandler handles registration and authentication HTTP requests
type AuthHandler struct {
	userService *services.UserService
	identity    *services.IdentityService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userService *services.UserService, identity *services.IdentityService) *AuthHandler {
	return &AuthHandler{userService: userService, identity: identity}
}

// RegisterAuthRoutes registers the unauthenticated routes
func (h *AuthHandler) RegisterAuthRoutes(g *echo.Group) {
	g.POST("/signup", h.Signup)
	g.POST("/login", h.Login)
}

// RegisterMeRoutes registers the authenticated identity route
func (h *AuthHandler) RegisterMeRoutes(g *echo.Group) {
	g.GET("/me", h.Me)
}

// Signup registers a new user with password hashing
func (h *AuthHandler) Signup(c echo.Context) error {
	var req models.SignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.userService.Signup(&req)
	if err != nil {
		return apperrors.JSON(c, err)
	}
	return c.JSON(http.StatusCreated, user)
}

// Login authenticates a user and returns a JWT token
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, token, err := h.userService.Login(req.Email, req.Password)
	if err != nil {
		return apperrors.JSON(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"token": token, "user": user})
}

// Me returns the profile of the authenticated caller
func (h *AuthHandler) Me(c echo.Context) error {
	actor, err := h.identity.Resolve(middleware.EmailFrom(c))
	if err != nil {
		return apperrors.JSON(c, err)
	}
	return c.JSON(http.StatusOK, actor)
}
