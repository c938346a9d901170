package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Role of a user account. Admins moderate profiles and never appear as match candidates.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Email    string `json:"email" gorm:"uniqueIndex"` // Ensure email is unique across all users
	Password string `json:"-"`                        // Store hashed password, ignore for JSON serialization

	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	Age           int    `json:"age"`
	Gender        Gender `json:"gender" gorm:"type:varchar(10)"`
	MaritalStatus string `json:"maritalStatus"`
	Religion      string `json:"religion"`
	Caste         string `json:"caste"`
	MotherTongue  string `json:"motherTongue"`
	Education     string `json:"education"`
	Profession    string `json:"profession"`
	AnnualIncome  string `json:"annualIncome"`
	Location      string `json:"location"`
	Bio           string `json:"bio"`
	Hobbies       string `json:"hobbies"`

	Role            Role   `json:"role" gorm:"type:varchar(10);default:'USER'"`
	IsActive        bool   `json:"isActive"`
	ProfileApproved bool   `json:"profileApproved"`
	ModerationNote  string `json:"moderationNote,omitempty"` // last rejection reason, if any

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SignupRequest defines the request body for user registration
type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`

	FirstName     string `json:"firstName" validate:"required,min=2,max=50"`
	LastName      string `json:"lastName" validate:"omitempty,max=50"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	Age           int    `json:"age" validate:"omitempty,min=18,max=120"`
	Gender        Gender `json:"gender" validate:"omitempty,oneof=MALE FEMALE OTHER"`
	MaritalStatus string `json:"maritalStatus"`
	Religion      string `json:"religion"`
	Caste         string `json:"caste"`
	MotherTongue  string `json:"motherTongue"`
	Education     string `json:"education"`
	Profession    string `json:"profession"`
	AnnualIncome  string `json:"annualIncome"`
	Location      string `json:"location"`
	Bio           string `json:"bio"`
	Hobbies       string `json:"hobbies"`

	ProfileApproved bool `json:"profileApproved"` // false unless explicitly set (seeded accounts)
}

// LoginRequest defines the request body for user authentication
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserRequest defines the self-service partial update body.
// Pointer fields distinguish "not provided" from zero values.
type UpdateUserRequest struct {
	FirstName     *string `json:"firstName" validate:"omitempty,min=2,max=50"`
	LastName      *string `json:"lastName" validate:"omitempty,max=50"`
	Email         *string `json:"email" validate:"omitempty,email"`
	Phone         *string `json:"phone"`
	Address       *string `json:"address"`
	Age           *int    `json:"age" validate:"omitempty,min=18,max=120"`
	Gender        *Gender `json:"gender" validate:"omitempty,oneof=MALE FEMALE OTHER"`
	MaritalStatus *string `json:"maritalStatus"`
	Religion      *string `json:"religion"`
	Caste         *string `json:"caste"`
	MotherTongue  *string `json:"motherTongue"`
	Education     *string `json:"education"`
	Profession    *string `json:"profession"`
	AnnualIncome  *string `json:"annualIncome"`
	Location      *string `json:"location"`
	Bio           *string `json:"bio"`
	Hobbies       *string `json:"hobbies"`
}

// AdminUpdateUserRequest extends the self-service update with the
// moderation- and role-level fields only admins may touch.
type AdminUpdateUserRequest struct {
	UpdateUserRequest
	Role            *Role `json:"role" validate:"omitempty,oneof=USER ADMIN"`
	IsActive        *bool `json:"isActive"`
	ProfileApproved *bool `json:"profileApproved"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}
