package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/adityakx/sangam/backend/internal/apperrors"
	"github.com/adityakx/sangam/backend/internal/middleware"
	"github.com/adityakx/sangam/backend/internal/services"
)

// ConnectionHandler handles connection-request HTTP endpoints
type ConnectionHandler struct {
	connections *services.ConnectionService
	identity    *services.IdentityService
}

// NewConnectionHandler creates a new ConnectionHandler
func NewConnectionHandler(connections *services.ConnectionService, identity *services.IdentityService) *ConnectionHandler {
	return &ConnectionHandler{connections: connections, identity: identity}
}

// RegisterConnectionRoutes registers connection-request routes
func (h *ConnectionHandler) RegisterConnectionRoutes(g *echo.Group) {
	g.POST("/pending-requests/send", h.Send)
	g.GET("/pending-requests/pending/:userId", h.ListPending)
	g.POST("/pending-requests/accept/:id", h.Accept)
	g.POST("/pending-requests/reject/:id", h.Reject)
	g.GET("/pending-requests/is-connected", h.IsConnected)
	g.GET("/pending-requests/has-sent", h.HasSent)
}

// Send creates a pending connection request
func (h *ConnectionHandler) Send(c echo.Context) error {
	actor, err := h.identity.Resolve(middleware.EmailFrom(c))
	if err != nil {
		return apperrors.JSON(c, err)
	}

	senderID, err := parseQueryID(c, "senderId")
	if err != nil {
		return err
	}
	receiverID, err := parseQueryID(c, "receiverId")
	if err != nil {
		return err
	}

	if _, err := h.connections.Send(actor, senderID, receiverID); err != nil {
		return apperrors.JSON(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Request sent successfully"})
}

// ListPending returns all requests addressed to the user
func (h *ConnectionHandler) ListPending(c echo.Context) error {
	actor, err := h.identity.Resolve(middleware.EmailFrom(c))
	if err != nil {
		return apperrors.JSON(c, err)
	}
	userID, err := parseID(c, "userId")
	if err != nil {
		return err
	}

	requests, err := h.connections.ListForReceiver(actor, userID)
	if err != nil {
		return apperrors.JSON(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "requests": requests})
}

// Accept resolves a pending request to accepted
func (h *ConnectionHandler) Accept(c echo.Context) error {
	actor, err := h.identity.Resolve(middleware.EmailFrom(c))
	if err != nil {
		return apperrors.JSON(c, err)
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.connections.Accept(actor, id); err != nil {
		return apperrors.JSON(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Request accepted"})
}

// Reject resolves a pending request to rejected
func (h *ConnectionHandler) Reject(c echo.Context) error {
	actor, err := h.identity.Resolve(middleware.EmailFrom(c))
	if err != nil {
		return apperrors.JSON(c, err)
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.connections.Reject(actor, id); err != nil {
		return apperrors.JSON(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Request rejected"})
}

// IsConnected reports whether two users share an accepted request
func (h *ConnectionHandler) IsConnected(c echo.Context) error {
	userID1, err := parseQueryID(c, "userId1")
	if err != nil {
		return err
	}
	userID2, err := parseQueryID(c, "userId2")
	if err != nil {
		return err
	}

	connected, err := h.connections.IsConnected(userID1, userID2)
	if err != nil {
		return apperrors.JSON(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "connected": connected})
}

// HasSent reports whether the ordered pair already has a request
func (h *ConnectionHandler) HasSent(c echo.Context) error {
	senderID, err := parseQueryID(c, "senderId")
	if err != nil {
		return err
	}
	receiverID, err := parseQueryID(c, "receiverId")
	if err != nil {
		return err
	}

	sent, err := h.connections.HasSent(senderID, receiverID)
	if err != nil {
		return apperrors.JSON(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "hasSent": sent})
}

func parseQueryID(c echo.Context, param string) (uint, error) {
	raw := c.QueryParam(param)
	if raw == "" {
		return 0, echo.NewHTTPError(http.StatusBadRequest, param+" is required")
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid "+param)
	}
	return uint(id), nil
}
