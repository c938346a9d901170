package services

import (
	"strings"

	"github.com/adityakx/sangam/backend/internal/apperrors"
	"github.com/adityakx/sangam/backend/internal/models"
	"github.com/adityakx/sangam/backend/internal/repositories"
)

// MessageService is the messaging gate: a message is only ever created after
// the full precondition chain passes, connection state included.
type MessageService struct {
	messages    repositories.MessageRepository
	connections repositories.ConnectionRepository
}

func NewMessageService(messages repositories.MessageRepository, connections repositories.ConnectionRepository) *MessageService {
	return &MessageService{messages: messages, connections: connections}
}

// Send delivers a message from sender to receiver. Precondition chain, each a
// distinct failure: caller identity matches sender; sender approved; sender
// active; the two users are connected.
func (s *MessageService) Send(actor *models.User, senderID, receiverID uint, content string) (*models.Message, error) {
	if actor == nil {
		return nil, apperrors.Unauthenticated("authentication required")
	}
	if actor.ID != senderID {
		return nil, apperrors.Forbidden("you can only send messages from your own account")
	}
	if !actor.ProfileApproved {
		return nil, apperrors.Invalid("your profile must be approved by admin before you can send messages")
	}
	if !actor.IsActive {
		return nil, apperrors.Invalid("your account must be active to send messages")
	}
	if strings.TrimSpace(content) == "" {
		return nil, apperrors.Invalid("message content is required")
	}

	connected, err := s.connections.IsConnected(senderID, receiverID)
	if err != nil {
		return nil, apperrors.Internal(err, "failed to check connection")
	}
	if !connected {
		return nil, apperrors.Invalid("you can only send messages to users you are connected with")
	}

	msg := &models.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
	}
	if err := s.messages.CreateMessage(msg); err != nil {
		return nil, apperrors.Internal(err, "failed to send message")
	}
	return msg, nil
}

// GetConversation returns all messages between two users in chronological
// order. The caller must be one of the participants.
func (s *MessageService) GetConversation(actor *models.User, userA, userB uint) ([]models.Message, error) {
	if err := Authorize(actor, ActParticipant, Between(userA, userB)); err != nil {
		return nil, apperrors.Forbidden("you can only view conversations you are part of")
	}
	messages, err := s.messages.GetConversation(userA, userB)
	if err != nil {
		return nil, apperrors.Internal(err, "failed to get conversation")
	}
	return messages, nil
}

// GetConversations returns the most recent message per distinct counterpart,
// used as the conversation-list summary. Self-only.
func (s *MessageService) GetConversations(actor *models.User, userID uint) ([]models.Message, error) {
	if err := Authorize(actor, ActSelf, Owned(userID)); err != nil {
		return nil, apperrors.Forbidden("you can only view your own conversations")
	}
	messages, err := s.messages.GetLatestPerCounterpart(userID)
	if err != nil {
		return nil, apperrors.Internal(err, "failed to get conversations")
	}
	return messages, nil
}

// MarkRead flips unread messages addressed to the caller within the
// conversation. The caller must be one of the participants.
func (s *MessageService) MarkRead(actor *models.User, userA, userB uint) error {
	if err := Authorize(actor, ActParticipant, Between(userA, userB)); err != nil {
		return apperrors.Forbidden("you can only mark messages as read for conversations you are part of")
	}

	other := userA
	if other == actor.ID {
		other = userB
	}
	if err := s.messages.MarkConversationRead(actor.ID, other); err != nil {
		return apperrors.Internal(err, "failed to mark messages as read")
	}
	return nil
}

// UnreadCount counts unread messages addressed to the user. Self-only.
func (s *MessageService) UnreadCount(actor *models.User, userID uint) (int64, error) {
	if err := Authorize(actor, ActSelf, Owned(userID)); err != nil {
		return 0, apperrors.Forbidden("you can only view your own unread message count")
	}
	n, err := s.messages.CountUnread(userID)
	if err != nil {
		return 0, apperrors.Internal(err, "failed to get unread message count")
	}
	return n, nil
}
