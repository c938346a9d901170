package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/adityakx/sangam/backend/internal/apperrors"
	"github.com/adityakx/sangam/backend/internal/middleware"
	"github.com/adityakx/sangam/backend/internal/models"
	"github.com/adityakx/sangam/backend/internal/services"
)

// UserHandler handles profile-related HTTP requests
type UserHandler struct {
	userService  *services.UserService
	identity     *services.IdentityService
	matches      *services.MatchService
	messages     *services.MessageService
	connections  *services.ConnectionService
	profileViews *services.ProfileViewService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService *services.UserService, identity *services.IdentityService,
	matches *services.MatchService, messages *services.MessageService,
	connections *services.ConnectionService, profileViews *services.ProfileViewService) *UserHandler {
	return &UserHandler{
		userService:  userService,
		identity:     identity,
		matches:      matches,
		messages:     messages,
		connections:  connections,
		profileViews: profileViews,
	}
}

// RegisterUserRoutes registers user profile routes
func (h *UserHandler) RegisterUserRoutes(g *echo.Group) {
	g.GET("/user/:id", h.GetUser)
	g.PUT("/user/update/:id", h.UpdateUser)
	g.GET("/user/dashboard-stats/:userId", h.DashboardStats)
	g.POST("/user/profile/view/:viewedUserId", h.RecordProfileView)
}

// GetUser retrieves a user profile by ID
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	user, err := h.userService.GetByID(id)
	if err != nil {
		return apperrors.JSON(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateUser applies a partial update to the caller's own profile
func (h *UserHandler) UpdateUser(c echo.Context) error {
	actor, err := h.identity.Resolve(middleware.EmailFrom(c))
	if err != nil {
		return apperrors.JSON(c, err)
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req models.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.userService.Update(actor, id, &req)
	if err != nil {
		return apperrors.JSON(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

// DashboardStats returns the caller's home screen counters
func (h *UserHandler) DashboardStats(c echo.Context) error {
	actor, err := h.identity.Resolve(middleware.EmailFrom(c))
	if err != nil {
		return apperrors.JSON(c, err)
	}
	userID, err := parseID(c, "userId")
	if err != nil {
		return err
	}

	stats, err := h.userService.DashboardStats(actor, userID, h.matches, h.messages, h.connections, h.profileViews)
	if err != nil {
		return apperrors.JSON(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}

// RecordProfileView records that the caller visited another profile
func (h *UserHandler) RecordProfileView(c echo.Context) error {
	actor, err := h.identity.Resolve(middleware.EmailFrom(c))
	if err != nil {
		return apperrors.JSON(c, err)
	}
	viewedID, err := parseID(c, "viewedUserId")
	if err != nil {
		return err
	}

	if err := h.profileViews.Record(c.Request().Context(), actor, viewedID); err != nil {
		return apperrors.JSON(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Profile view recorded"})
}

func parseID(c echo.Context, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid "+param)
	}
	return uint(id), nil
}
