package models

import "time"

// ProfileView records one user visiting another's profile. Repeat visits by
// the same viewer within an hour are suppressed, best effort.
type ProfileView struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ViewerID  uint      `json:"viewerId" gorm:"index"`
	ViewedID  uint      `json:"viewedId" gorm:"index"`
	CreatedAt time.Time `json:"timestamp"`
}
