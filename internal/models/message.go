package models

import "time"

// Message is a chat message between two connected users. Only the read flag
// ever mutates after creation.
type Message struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	SenderID   uint      `json:"senderId" gorm:"index"`
	ReceiverID uint      `json:"receiverId" gorm:"index"`
	Content    string    `json:"content" gorm:"type:text"`
	Read       bool      `json:"read"`
	CreatedAt  time.Time `json:"timestamp"`
}
