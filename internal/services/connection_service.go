package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/adityakx/sangam/backend/internal/apperrors"
	"github.com/adityakx/sangam/backend/internal/models"
	"github.com/adityakx/sangam/backend/internal/repositories"
)

// ConnectionService owns the connection-request lifecycle: PENDING on send,
// resolved to ACCEPTED or REJECTED exactly once.
type ConnectionService struct {
	connections repositories.ConnectionRepository
	users       repositories.UserRepository
}

func NewConnectionService(connections repositories.ConnectionRepository, users repositories.UserRepository) *ConnectionService {
	return &ConnectionService{connections: connections, users: users}
}

// Send creates a PENDING request from sender to receiver. Preconditions are
// checked in a fixed order and the first failure wins, each with its own
// reason.
func (s *ConnectionService) Send(actor *models.User, senderID, receiverID uint) (*models.ConnectionRequest, error) {
	if actor == nil || actor.ID != senderID {
		return nil, apperrors.Forbidden("you can only send requests from your own account")
	}
	if senderID == receiverID {
		return nil, apperrors.Invalid("cannot send a request to yourself")
	}

	receiver, err := s.users.GetUserByID(receiverID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("receiver not found")
		}
		return nil, apperrors.Internal(err, "failed to load receiver")
	}

	sent, err := s.connections.HasSentRequest(senderID, receiverID)
	if err != nil {
		return nil, apperrors.Internal(err, "failed to check existing requests")
	}
	if sent {
		return nil, apperrors.Invalid("request already sent to this user")
	}

	if !actor.IsActive {
		return nil, apperrors.Invalid("your account must be active to send connection requests")
	}
	if !actor.ProfileApproved {
		return nil, apperrors.Invalid("your profile must be approved by admin before you can send connection requests")
	}
	if !receiver.IsActive {
		return nil, apperrors.Invalid("cannot send request to inactive user")
	}
	if !receiver.ProfileApproved {
		return nil, apperrors.Invalid("cannot send request to user with unapproved profile")
	}

	req := &models.ConnectionRequest{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Status:     models.StatusPending,
	}
	if err := s.connections.CreateRequest(req); err != nil {
		return nil, apperrors.Internal(err, "failed to send request")
	}
	return req, nil
}

// Accept resolves a PENDING request to ACCEPTED.
func (s *ConnectionService) Accept(actor *models.User, requestID uint) error {
	return s.resolve(actor, requestID, models.StatusAccepted)
}

// Reject resolves a PENDING request to REJECTED.
func (s *ConnectionService) Reject(actor *models.User, requestID uint) error {
	return s.resolve(actor, requestID, models.StatusRejected)
}

// resolve is a compare-and-set on status = PENDING: a request already in a
// terminal state reports a conflict instead of being overwritten.
func (s *ConnectionService) resolve(actor *models.User, requestID uint, status string) error {
	if actor == nil {
		return apperrors.Unauthenticated("authentication required")
	}

	req, err := s.connections.GetRequestByID(requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("request not found")
		}
		return apperrors.Internal(err, "failed to load request")
	}
	if err := Authorize(actor, ActParticipant, Between(req.SenderID, req.ReceiverID)); err != nil {
		return apperrors.Forbidden("you are not authorized to modify this request")
	}

	rows, err := s.connections.UpdateStatusIfPending(requestID, status)
	if err != nil {
		return apperrors.Internal(err, "failed to update request")
	}
	if rows == 0 {
		return apperrors.Conflict("request has already been resolved")
	}
	return nil
}

// IsConnected reports whether an accepted request links the two users.
func (s *ConnectionService) IsConnected(userA, userB uint) (bool, error) {
	connected, err := s.connections.IsConnected(userA, userB)
	if err != nil {
		return false, apperrors.Internal(err, "failed to check connection")
	}
	return connected, nil
}

// HasSent reports whether the ordered pair already has a request.
func (s *ConnectionService) HasSent(senderID, receiverID uint) (bool, error) {
	sent, err := s.connections.HasSentRequest(senderID, receiverID)
	if err != nil {
		return false, apperrors.Internal(err, "failed to check request status")
	}
	return sent, nil
}

// ListForReceiver returns all requests addressed to the user, any status.
// Self-only.
func (s *ConnectionService) ListForReceiver(actor *models.User, userID uint) ([]models.ConnectionRequest, error) {
	if err := Authorize(actor, ActSelf, Owned(userID)); err != nil {
		return nil, apperrors.Forbidden("you can only view your own pending requests")
	}
	requests, err := s.connections.GetRequestsForReceiver(userID)
	if err != nil {
		return nil, apperrors.Internal(err, "failed to get pending requests")
	}
	return requests, nil
}

// CountPending counts PENDING requests addressed to the user.
func (s *ConnectionService) CountPending(userID uint) (int64, error) {
	n, err := s.connections.CountPendingRequests(userID)
	if err != nil {
		return 0, apperrors.Internal(err, "failed to count pending requests")
	}
	return n, nil
}
