package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"github.com/adityakx/sangam/backend/internal/apperrors"
	"github.com/adityakx/sangam/backend/internal/models"
	"github.com/adityakx/sangam/backend/internal/repositories"
)

// IdentityService resolves bearer credentials to user records and issues
// tokens. It is the only component that trusts token contents; everything
// downstream receives the resolved *models.User explicitly.
type IdentityService struct {
	users     repositories.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewIdentityService(users repositories.UserRepository, jwtSecret string, tokenTTL time.Duration) *IdentityService {
	return &IdentityService{users: users, jwtSecret: []byte(jwtSecret), tokenTTL: tokenTTL}
}

// IssueToken generates a signed JWT for a user
func (s *IdentityService) IssueToken(user *models.User) (string, error) {
	claims := &models.JwtCustomClaims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", apperrors.Internal(err, "failed to generate token")
	}
	return signed, nil
}

// Resolve maps a verified credential subject (email) to the user record.
// A verified token naming an unknown user is still unauthenticated.
func (s *IdentityService) Resolve(email string) (*models.User, error) {
	if email == "" {
		return nil, apperrors.Unauthenticated("authentication required")
	}
	user, err := s.users.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Unauthenticated("invalid authentication")
		}
		return nil, apperrors.Internal(err, "failed to resolve identity")
	}
	return user, nil
}
