package models

import "time"

// PreferenceAny is the sentinel saved when a user has no opinion about a
// field. The match filter treats it as "no constraint".
const PreferenceAny = "Any"

// PreferenceAnyGender is the gender wildcard (stored upper-case like the
// Gender enum values).
const PreferenceAnyGender = "ANY"

// Preferences holds one user's partner criteria. Exactly one row exists per
// user; the row is synthesized lazily from the owner's own profile when absent.
type Preferences struct {
	ID     uint `json:"id" gorm:"primaryKey"`
	UserID uint `json:"userId" gorm:"uniqueIndex"`

	Age        int    `json:"age"`
	Gender     string `json:"gender" gorm:"type:varchar(10)"`
	Location   string `json:"location"`
	Religion   string `json:"religion"`
	Caste      string `json:"caste"`
	Education  string `json:"education"`
	Profession string `json:"profession"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SavePreferencesRequest defines the request body for saving preferences
type SavePreferencesRequest struct {
	Age        int    `json:"age" validate:"required,min=18,max=120"`
	Gender     string `json:"gender" validate:"required,oneof=MALE FEMALE OTHER ANY"`
	Location   string `json:"location" validate:"required"`
	Religion   string `json:"religion" validate:"required"`
	Caste      string `json:"caste" validate:"required"`
	Education  string `json:"education" validate:"required"`
	Profession string `json:"profession" validate:"required"`
}
