package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/adityakx/sangam/backend/internal/apperrors"
	"github.com/adityakx/sangam/backend/internal/logger"
	"github.com/adityakx/sangam/backend/internal/models"
	"github.com/adityakx/sangam/backend/internal/repositories"
)

// PreferenceService owns the one-preference-row-per-user invariant, including
// lazy default derivation from the owner's own profile.
type PreferenceService struct {
	prefs repositories.PreferenceRepository
}

func NewPreferenceService(prefs repositories.PreferenceRepository) *PreferenceService {
	return &PreferenceService{prefs: prefs}
}

// DefaultsFor derives a preference set from the user's own attributes.
// Gender flips to the opposite of the owner's; unset fields fall back to the
// "Any" sentinel.
func (s *PreferenceService) DefaultsFor(user *models.User) *models.Preferences {
	prefs := &models.Preferences{
		UserID:     user.ID,
		Age:        user.Age,
		Location:   orAny(user.Location),
		Religion:   orAny(user.Religion),
		Caste:      orAny(user.Caste),
		Education:  orAny(user.Education),
		Profession: orAny(user.Profession),
	}
	if prefs.Age == 0 {
		prefs.Age = 25
	}

	switch user.Gender {
	case models.GenderMale:
		prefs.Gender = string(models.GenderFemale)
	case models.GenderFemale:
		prefs.Gender = string(models.GenderMale)
	default:
		prefs.Gender = models.PreferenceAnyGender
	}
	return prefs
}

// GetOrCreate returns the user's preference row, synthesizing and persisting
// defaults when absent. Creation is race-safe: existence is re-checked
// immediately before insert, and a duplicate-key failure from a concurrent
// insert is recovered by re-fetching the winner's row.
func (s *PreferenceService) GetOrCreate(user *models.User) (*models.Preferences, error) {
	prefs, err := s.prefs.GetPreferencesByUserID(user.ID)
	if err == nil {
		return prefs, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Internal(err, "failed to load preferences")
	}

	defaults := s.DefaultsFor(user)

	// Re-check right before insert: another request may have created the row.
	if existing, err := s.prefs.GetPreferencesByUserID(user.ID); err == nil {
		return existing, nil
	}

	if err := s.prefs.CreatePreferences(defaults); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			existing, ferr := s.prefs.GetPreferencesByUserID(user.ID)
			if ferr != nil {
				return nil, apperrors.Internal(ferr, "failed to load preferences")
			}
			return existing, nil
		}
		return nil, apperrors.Internal(err, "failed to create preferences")
	}
	return defaults, nil
}

// EnsureDefaults creates the user's preference row if missing. Failures are
// logged, never surfaced: signup and profile updates must succeed without
// preferences.
func (s *PreferenceService) EnsureDefaults(user *models.User) {
	if _, err := s.GetOrCreate(user); err != nil {
		logger.Warn("failed to ensure default preferences", "userId", user.ID, "err", err)
	}
}

// Save replaces the caller's preference values. Self-only, and gated on the
// caller being active with an approved profile.
func (s *PreferenceService) Save(actor *models.User, userID uint, req *models.SavePreferencesRequest) (*models.Preferences, error) {
	if err := Authorize(actor, ActSelf, Owned(userID)); err != nil {
		return nil, apperrors.Forbidden("you can only save preferences for your own account")
	}
	if err := Authorize(actor, ActInitiate, Resource{}); err != nil {
		return nil, err
	}

	prefs, err := s.prefs.GetPreferencesByUserID(userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Internal(err, "failed to load preferences")
		}
		prefs = &models.Preferences{UserID: userID}
	}

	prefs.Age = req.Age
	prefs.Gender = req.Gender
	prefs.Location = req.Location
	prefs.Religion = req.Religion
	prefs.Caste = req.Caste
	prefs.Education = req.Education
	prefs.Profession = req.Profession

	if prefs.ID == 0 {
		if err := s.prefs.CreatePreferences(prefs); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, apperrors.Conflict("preferences were modified concurrently, retry")
			}
			return nil, apperrors.Internal(err, "failed to save preferences")
		}
		return prefs, nil
	}
	if err := s.prefs.UpdatePreferences(prefs); err != nil {
		return nil, apperrors.Internal(err, "failed to save preferences")
	}
	return prefs, nil
}

func orAny(v string) string {
	if v == "" {
		return models.PreferenceAny
	}
	return v
}
