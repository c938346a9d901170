package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/adityakx/sangam/backend/internal/apperrors"
	"github.com/adityakx/sangam/backend/internal/models"
	"github.com/adityakx/sangam/backend/internal/repositories"
)

// MatchService computes match candidates: the active, approved, non-admin
// users whose attributes equal the requester's preferences.
type MatchService struct {
	users repositories.UserRepository
	prefs *PreferenceService
}

func NewMatchService(users repositories.UserRepository, prefs *PreferenceService) *MatchService {
	return &MatchService{users: users, prefs: prefs}
}

// FindMatches loads (or lazily creates) the user's preferences and filters
// the directory by them. An empty result is valid, not an error.
func (s *MatchService) FindMatches(userID uint) ([]models.User, error) {
	user, err := s.users.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("user not found")
		}
		return nil, apperrors.Internal(err, "failed to load user")
	}

	prefs, err := s.prefs.GetOrCreate(user)
	if err != nil {
		return nil, err
	}

	matches, err := s.users.FindMatches(prefs, userID)
	if err != nil {
		return nil, apperrors.Internal(err, "failed to find matches")
	}
	return matches, nil
}
