package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adityakx/sangam/backend/internal/apperrors"
	"github.com/adityakx/sangam/backend/internal/services"
)

// MatchHandler handles match-candidate HTTP requests
type MatchHandler struct {
	matches *services.MatchService
}

// NewMatchHandler creates a new MatchHandler
func NewMatchHandler(matches *services.MatchService) *MatchHandler {
	return &MatchHandler{matches: matches}
}

// RegisterMatchRoutes registers match routes
func (h *MatchHandler) RegisterMatchRoutes(g *echo.Group) {
	g.GET("/matches/:userId", h.FindMatches)
}

// FindMatches returns the user's match candidates. An empty list is a valid
// result, not an error.
func (h *MatchHandler) FindMatches(c echo.Context) error {
	userID, err := parseID(c, "userId")
	if err != nil {
		return err
	}

	matches, err := h.matches.FindMatches(userID)
	if err != nil {
		return apperrors.JSON(c, err)
	}
	return c.JSON(http.StatusOK, matches)
}
