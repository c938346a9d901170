package repositories

import (
	"github.com/adityakx/sangam/backend/internal/models"
	"gorm.io/gorm"
)

// MessageRepository defines the interface for message data operations
type MessageRepository interface {
	CreateMessage(msg *models.Message) error
	GetConversation(userA, userB uint) ([]models.Message, error)
	GetLatestPerCounterpart(userID uint) ([]models.Message, error)
	MarkConversationRead(readerID, otherID uint) error
	CountUnread(userID uint) (int64, error)
}

// PostgresMessageRepository implements MessageRepository for PostgreSQL
type PostgresMessageRepository struct {
	db *gorm.DB
}

// NewPostgresMessageRepository creates a new PostgresMessageRepository
func NewPostgresMessageRepository(db *gorm.DB) *PostgresMessageRepository {
	return &PostgresMessageRepository{db: db}
}

// CreateMessage inserts a new message
func (r *PostgresMessageRepository) CreateMessage(msg *models.Message) error {
	return r.db.Create(msg).Error
}

// GetConversation retrieves all messages between two users in chronological order
func (r *PostgresMessageRepository) GetConversation(userA, userB uint) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userA, userB, userB, userA).
		Order("created_at ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// GetLatestPerCounterpart returns the most recent message exchanged with each
// distinct counterpart of the user, newest conversation first.
func (r *PostgresMessageRepository) GetLatestPerCounterpart(userID uint) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}

	seen := make(map[uint]bool)
	var latest []models.Message
	for _, msg := range messages {
		counterpart := msg.SenderID
		if counterpart == userID {
			counterpart = msg.ReceiverID
		}
		if seen[counterpart] {
			continue
		}
		seen[counterpart] = true
		latest = append(latest, msg)
	}
	return latest, nil
}

// MarkConversationRead flips the read flag on all unread messages addressed
// to the reader within the conversation.
func (r *PostgresMessageRepository) MarkConversationRead(readerID, otherID uint) error {
	return r.db.Model(&models.Message{}).
		Where("receiver_id = ? AND sender_id = ? AND read = ?", readerID, otherID, false).
		Update("read", true).Error
}

// CountUnread counts unread messages addressed to the user
func (r *PostgresMessageRepository) CountUnread(userID uint) (int64, error) {
	var n int64
	err := r.db.Model(&models.Message{}).
		Where("receiver_id = ? AND read = ?", userID, false).
		Count(&n).Error
	return n, err
}
