package repositories

import (
	"errors"

	"github.com/adityakx/sangam/backend/internal/models"
	"gorm.io/gorm"
)

// ConnectionRepository defines the interface for connection request data operations
type ConnectionRepository interface {
	CreateRequest(req *models.ConnectionRequest) error
	GetRequestByID(id uint) (*models.ConnectionRequest, error)
	HasSentRequest(senderID, receiverID uint) (bool, error)
	IsConnected(userA, userB uint) (bool, error)
	GetRequestsForReceiver(userID uint) ([]models.ConnectionRequest, error)
	CountPendingRequests(userID uint) (int64, error)
	UpdateStatusIfPending(id uint, status string) (int64, error)
}

// PostgresConnectionRepository implements ConnectionRepository for PostgreSQL
type PostgresConnectionRepository struct {
	db *gorm.DB
}

// NewPostgresConnectionRepository creates a new PostgresConnectionRepository
func NewPostgresConnectionRepository(db *gorm.DB) *PostgresConnectionRepository {
	return &PostgresConnectionRepository{db: db}
}

// CreateRequest inserts a new connection request
func (r *PostgresConnectionRepository) CreateRequest(req *models.ConnectionRequest) error {
	return r.db.Create(req).Error
}

// GetRequestByID retrieves a connection request by ID
func (r *PostgresConnectionRepository) GetRequestByID(id uint) (*models.ConnectionRequest, error) {
	var req models.ConnectionRequest
	if err := r.db.First(&req, id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

// HasSentRequest reports whether any record exists for the exact ordered
// (sender, receiver) pair, regardless of status. Used only for duplicate-send
// prevention, not for connection state.
func (r *PostgresConnectionRepository) HasSentRequest(senderID, receiverID uint) (bool, error) {
	var req models.ConnectionRequest
	err := r.db.Where("sender_id = ? AND receiver_id = ?", senderID, receiverID).First(&req).Error
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, err
}

// IsConnected reports whether an ACCEPTED request exists between the two
// users in either direction.
func (r *PostgresConnectionRepository) IsConnected(userA, userB uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.ConnectionRequest{}).
		Where("status = ?", models.StatusAccepted).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userA, userB, userB, userA).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetRequestsForReceiver retrieves all requests addressed to the user,
// regardless of status.
func (r *PostgresConnectionRepository) GetRequestsForReceiver(userID uint) ([]models.ConnectionRequest, error) {
	var requests []models.ConnectionRequest
	if err := r.db.Where("receiver_id = ?", userID).Order("created_at DESC").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// CountPendingRequests counts PENDING requests addressed to the user
func (r *PostgresConnectionRepository) CountPendingRequests(userID uint) (int64, error) {
	var n int64
	err := r.db.Model(&models.ConnectionRequest{}).
		Where("receiver_id = ? AND status = ?", userID, models.StatusPending).
		Count(&n).Error
	return n, err
}

// UpdateStatusIfPending transitions a request out of PENDING conditionally.
// Returns the number of rows changed: zero means the request was already in a
// terminal state (or the id does not exist) and the transition did not happen.
func (r *PostgresConnectionRepository) UpdateStatusIfPending(id uint, status string) (int64, error) {
	result := r.db.Model(&models.ConnectionRequest{}).
		Where("id = ? AND status = ?", id, models.StatusPending).
		Update("status", status)
	return result.RowsAffected, result.Error
}
