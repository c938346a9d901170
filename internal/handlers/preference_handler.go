package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adityakx/sangam/backend/internal/apperrors"
	"github.com/adityakx/sangam/backend/internal/middleware"
	"github.com/adityakx/sangam/backend/internal/models"
	"github.com/adityakx/sangam/backend/internal/services"
)

// PreferenceHandler handles preference-saving HTTP requests
type PreferenceHandler struct {
	preferences *services.PreferenceService
	identity    *services.IdentityService
}

// NewPreferenceHandler creates a new PreferenceHandler
func NewPreferenceHandler(preferences *services.PreferenceService, identity *services.IdentityService) *PreferenceHandler {
	return &PreferenceHandler{preferences: preferences, identity: identity}
}

// RegisterPreferenceRoutes registers preference routes
func (h *PreferenceHandler) RegisterPreferenceRoutes(g *echo.Group) {
	g.POST("/user/preferences/save/:id", h.Save)
}

// Save replaces the caller's partner preferences
func (h *PreferenceHandler) Save(c echo.Context) error {
	actor, err := h.identity.Resolve(middleware.EmailFrom(c))
	if err != nil {
		return apperrors.JSON(c, err)
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req models.SavePreferencesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	prefs, err := h.preferences.Save(actor, id, &req)
	if err != nil {
		return apperrors.JSON(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "preferences": prefs})
}
