package models

import "time"

// Connection request statuses. A request is created PENDING and resolved to
// ACCEPTED or REJECTED exactly once; terminal states never transition again.
const (
	StatusPending  = "PENDING"
	StatusAccepted = "ACCEPTED"
	StatusRejected = "REJECTED"
)

// ConnectionRequest represents one directed contact request between two users.
// Two users are "connected" iff an ACCEPTED record exists between them in
// either direction.
type ConnectionRequest struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	SenderID   uint      `json:"senderId" gorm:"index"`
	ReceiverID uint      `json:"receiverId" gorm:"index"`
	Status     string    `json:"status" gorm:"type:varchar(20);default:'PENDING'"`
	CreatedAt  time.Time `json:"timestamp"`
}
