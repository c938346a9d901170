package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adityakx/sangam/backend/internal/apperrors"
	"github.com/adityakx/sangam/backend/internal/middleware"
	"github.com/adityakx/sangam/backend/internal/models"
	"github.com/adityakx/sangam/backend/internal/services"
)

// AdminHandler exposes the moderation and user-management endpoints. All of
// them resolve the caller and re-check the admin gate in the service layer.
type AdminHandler struct {
	moderation *services.ModerationService
	identity   *services.IdentityService
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(moderation *services.ModerationService, identity *services.IdentityService) *AdminHandler {
	return &AdminHandler{moderation: moderation, identity: identity}
}

// RegisterAdminRoutes registers admin routes under /api/admin
func (h *AdminHandler) RegisterAdminRoutes(g *echo.Group) {
	g.GET("/dashboard", h.Dashboard)
	g.GET("/users", h.ListUsers)
	g.GET("/users/search", h.SearchUsers)
	g.GET("/users/:id", h.GetUser)
	g.PUT("/users/:id", h.UpdateUser)
	g.DELETE("/users/:id", h.SoftDeleteUser)
	g.POST("/users/:id/restore", h.RestoreUser)
	g.GET("/profiles", h.ListProfiles)
	g.GET("/profiles/pending", h.PendingProfiles)
	g.POST("/profiles/:id/approve", h.ApproveProfile)
	g.POST("/profiles/:id/reject", h.RejectProfile)
	g.POST("/profiles/:id/revoke", h.RevokeProfile)
}

func (h *AdminHandler) actor(c echo.Context) (*models.User, error) {
	return h.identity.Resolve(middleware.EmailFrom(c))
}

// Dashboard returns aggregate user counts
func (h *AdminHandler) Dashboard(c echo.Context) error {
	actor, err := h.actor(c)
	if err != nil {
		return apperrors.JSON(c, err)
	}
	stats, err := h.moderation.DashboardStats(actor)
	if err != nil {
		return apperrors.JSON(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}

// ListUsers returns all users
func (h *AdminHandler) ListUsers(c echo.Context) error {
	actor, err := h.actor(c)
	if err != nil {
		return apperrors.JSON(c, err)
	}
	users, err := h.moderation.ListUsers(actor)
	if err != nil {
		return apperrors.JSON(c, err)
	}
	return c.JSON(http.StatusOK, users)
}

// SearchUsers filters users by name, email, and gender
func (h *AdminHandler) SearchUsers(c echo.Context) error {
	actor, err := h.actor(c)
	if err != nil {
		return apperrors.JSON(c, err)
	}
	users, err := h.moderation.SearchUsers(actor,
		c.QueryParam("name"), c.QueryParam("email"), c.QueryParam("gender"))
	if err != nil {
		return apperrors.JSON(c, err)
	}
	return c.JSON(http.StatusOK, users)
}

// GetUser returns a single user
func (h *AdminHandler) GetUser(c echo.Context) error {
	actor, err := h.actor(c)
	if err != nil {
		return apperrors.JSON(c, err)
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	user, err := h.moderation.GetUser(actor, id)
	if err != nil {
		return apperrors.JSON(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateUser applies an admin-level update, including role and state fields
func (h *AdminHandler) UpdateUser(c echo.Context) error {
	actor, err := h.actor(c)
	if err != nil {
		return apperrors.JSON(c, err)
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req models.AdminUpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.moderation.UpdateUser(actor, id, &req)
	if err != nil {
		return apperrors.JSON(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

// SoftDeleteUser deactivates an account without deleting its data
func (h *AdminHandler) SoftDeleteUser(c echo.Context) error {
	actor, err := h.actor(c)
	if err != nil {
		return apperrors.JSON(c, err)
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.moderation.SoftDelete(actor, id); err != nil {
		return apperrors.JSON(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "User soft deleted successfully"})
}

// RestoreUser reactivates a soft-deleted account
func (h *AdminHandler) RestoreUser(c echo.Context) error {
	actor, err := h.actor(c)
	if err != nil {
		return apperrors.JSON(c, err)
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.moderation.Restore(actor, id); err != nil {
		return apperrors.JSON(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "User restored successfully"})
}

// ListProfiles returns all profiles
func (h *AdminHandler) ListProfiles(c echo.Context) error {
	return h.ListUsers(c)
}

// PendingProfiles returns profiles awaiting approval
func (h *AdminHandler) PendingProfiles(c echo.Context) error {
	actor, err := h.actor(c)
	if err != nil {
		return apperrors.JSON(c, err)
	}
	profiles, err := h.moderation.PendingProfiles(actor)
	if err != nil {
		return apperrors.JSON(c, err)
	}
	return c.JSON(http.StatusOK, profiles)
}

// ApproveProfile marks a profile approved
func (h *AdminHandler) ApproveProfile(c echo.Context) error {
	actor, err := h.actor(c)
	if err != nil {
		return apperrors.JSON(c, err)
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.moderation.Approve(actor, id); err != nil {
		return apperrors.JSON(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Profile approved successfully"})
}

// RejectProfile clears approval, recording the supplied reason
func (h *AdminHandler) RejectProfile(c echo.Context) error {
	actor, err := h.actor(c)
	if err != nil {
		return apperrors.JSON(c, err)
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var body struct {
		Reason string `json:"reason"`
	}
	_ = c.Bind(&body) // reason is optional

	if err := h.moderation.Reject(actor, id, body.Reason); err != nil {
		return apperrors.JSON(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Profile rejected successfully"})
}

// RevokeProfile withdraws approval from a previously approved profile
func (h *AdminHandler) RevokeProfile(c echo.Context) error {
	actor, err := h.actor(c)
	if err != nil {
		return apperrors.JSON(c, err)
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.moderation.Revoke(actor, id); err != nil {
		return apperrors.JSON(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Profile approval revoked"})
}
