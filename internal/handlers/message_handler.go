package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adityakx/sangam/backend/internal/apperrors"
	"github.com/adityakx/sangam/backend/internal/middleware"
	"github.com/adityakx/sangam/backend/internal/services"
)

// MessageHandler handles messaging HTTP endpoints
type MessageHandler struct {
	messages *services.MessageService
	identity *services.IdentityService
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(messages *services.MessageService, identity *services.IdentityService) *MessageHandler {
	return &MessageHandler{messages: messages, identity: identity}
}

// RegisterMessageRoutes registers messaging routes
func (h *MessageHandler) RegisterMessageRoutes(g *echo.Group) {
	g.POST("/messages/send", h.Send)
	g.GET("/messages/conversation", h.GetConversation)
	g.GET("/messages/conversations", h.GetConversations)
	g.POST("/messages/markAsRead", h.MarkAsRead)
	g.GET("/messages/unreadCount/:userId", h.UnreadCount)
}

// Send delivers a message to a connected user
func (h *MessageHandler) Send(c echo.Context) error {
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
	content := c.QueryParam("content")

	msg, err := h.messages.Send(actor, senderID, receiverID, content)
	if err != nil {
		return apperrors.JSON(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": msg})
}

// GetConversation returns the chronological conversation between two users
func (h *MessageHandler) GetConversation(c echo.Context) error {
	actor, err := h.identity.Resolve(middleware.EmailFrom(c))
	if err != nil {
		return apperrors.JSON(c, err)
	}

	user1ID, err := parseQueryID(c, "user1Id")
	if err != nil {
		return err
	}
	user2ID, err := parseQueryID(c, "user2Id")
	if err != nil {
		return err
	}

	conversation, err := h.messages.GetConversation(actor, user1ID, user2ID)
	if err != nil {
		return apperrors.JSON(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "conversation": conversation})
}

// GetConversations returns the caller's conversation-list summary
func (h *MessageHandler) GetConversations(c echo.Context) error {
	actor, err := h.identity.Resolve(middleware.EmailFrom(c))
	if err != nil {
		return apperrors.JSON(c, err)
	}
	userID, err := parseQueryID(c, "userId")
	if err != nil {
		return err
	}

	conversations, err := h.messages.GetConversations(actor, userID)
	if err != nil {
		return apperrors.JSON(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "conversations": conversations})
}

// MarkAsRead flips unread messages addressed to the caller in a conversation
func (h *MessageHandler) MarkAsRead(c echo.Context) error {
	actor, err := h.identity.Resolve(middleware.EmailFrom(c))
	if err != nil {
		return apperrors.JSON(c, err)
	}

	user1ID, err := parseQueryID(c, "user1Id")
	if err != nil {
		return err
	}
	user2ID, err := parseQueryID(c, "user2Id")
	if err != nil {
		return err
	}

	if err := h.messages.MarkRead(actor, user1ID, user2ID); err != nil {
		return apperrors.JSON(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Messages marked as read"})
}

// UnreadCount returns the caller's unread message count
func (h *MessageHandler) UnreadCount(c echo.Context) error {
	actor, err := h.identity.Resolve(middleware.EmailFrom(c))
	if err != nil {
		return apperrors.JSON(c, err)
	}
	userID, err := parseID(c, "userId")
	if err != nil {
		return err
	}

	n, err := h.messages.UnreadCount(actor, userID)
	if err != nil {
		return apperrors.JSON(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "unreadCount": n})
}
