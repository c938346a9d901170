package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/adityakx/sangam/backend/internal/apperrors"
	"github.com/adityakx/sangam/backend/internal/models"
	"github.com/adityakx/sangam/backend/internal/repositories"
)

// ModerationService owns the two per-user lifecycle axes: profile approval
// (approve / reject / revoke) and account activity (soft delete / restore).
// Every operation is admin-gated; a non-admin caller gets a forbidden error,
// never a silent no-op.
type ModerationService struct {
	users repositories.UserRepository
}

func NewModerationService(users repositories.UserRepository) *ModerationService {
	return &ModerationService{users: users}
}

func (s *ModerationService) loadTarget(actor *models.User, id uint) (*models.User, error) {
	if err := Authorize(actor, ActAdmin, Resource{}); err != nil {
		return nil, err
	}
	user, err := s.users.GetUserByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("user not found")
		}
		return nil, apperrors.Internal(err, "failed to load user")
	}
	return user, nil
}

// Approve sets the profile approved flag.
func (s *ModerationService) Approve(actor *models.User, id uint) error {
	user, err := s.loadTarget(actor, id)
	if err != nil {
		return err
	}
	user.ProfileApproved = true
	user.ModerationNote = ""
	if err := s.users.UpdateUser(user); err != nil {
		return apperrors.Internal(err, "failed to approve profile")
	}
	return nil
}

// Reject clears the approved flag and records the supplied reason.
func (s *ModerationService) Reject(actor *models.User, id uint, reason string) error {
	user, err := s.loadTarget(actor, id)
	if err != nil {
		return err
	}
	if reason == "" {
		reason = "Profile rejected by admin"
	}
	user.ProfileApproved = false
	user.ModerationNote = reason
	if err := s.users.UpdateUser(user); err != nil {
		return apperrors.Internal(err, "failed to reject profile")
	}
	return nil
}

// Revoke clears the approved flag on a previously approved profile.
func (s *ModerationService) Revoke(actor *models.User, id uint) error {
	user, err := s.loadTarget(actor, id)
	if err != nil {
		return err
	}
	user.ProfileApproved = false
	if err := s.users.UpdateUser(user); err != nil {
		return apperrors.Internal(err, "failed to revoke profile")
	}
	return nil
}

// SoftDelete deactivates an account. Data is retained; the user simply stops
// appearing in matches and loses the ability to initiate anything.
func (s *ModerationService) SoftDelete(actor *models.User, id uint) error {
	user, err := s.loadTarget(actor, id)
	if err != nil {
		return err
	}
	user.IsActive = false
	if err := s.users.UpdateUser(user); err != nil {
		return apperrors.Internal(err, "failed to deactivate user")
	}
	return nil
}

// Restore reactivates a soft-deleted account.
func (s *ModerationService) Restore(actor *models.User, id uint) error {
	user, err := s.loadTarget(actor, id)
	if err != nil {
		return err
	}
	user.IsActive = true
	if err := s.users.UpdateUser(user); err != nil {
		return apperrors.Internal(err, "failed to restore user")
	}
	return nil
}

// DashboardStats aggregates directory counts for the admin dashboard.
func (s *ModerationService) DashboardStats(actor *models.User) (map[string]int64, error) {
	if err := Authorize(actor, ActAdmin, Resource{}); err != nil {
		return nil, err
	}

	total, err := s.users.CountUsers()
	if err != nil {
		return nil, apperrors.Internal(err, "failed to fetch dashboard stats")
	}
	active, err := s.users.CountActiveUsers()
	if err != nil {
		return nil, apperrors.Internal(err, "failed to fetch dashboard stats")
	}
	approved, err := s.users.CountApprovedUsers()
	if err != nil {
		return nil, apperrors.Internal(err, "failed to fetch dashboard stats")
	}
	recent, err := s.users.CountUsersCreatedSince(time.Now().AddDate(0, 0, -7))
	if err != nil {
		return nil, apperrors.Internal(err, "failed to fetch dashboard stats")
	}

	return map[string]int64{
		"totalUsers":         total,
		"activeUsers":        active,
		"recentlyRegistered": recent,
		"approvedProfiles":   approved,
		"pendingProfiles":    total - approved,
	}, nil
}

// ListUsers returns the whole directory. Admin-only.
func (s *ModerationService) ListUsers(actor *models.User) ([]models.User, error) {
	if err := Authorize(actor, ActAdmin, Resource{}); err != nil {
		return nil, err
	}
	users, err := s.users.GetUsers()
	if err != nil {
		return nil, apperrors.Internal(err, "failed to fetch users")
	}
	return users, nil
}

// SearchUsers filters the directory by name, email, and gender. Admin-only.
func (s *ModerationService) SearchUsers(actor *models.User, name, email, gender string) ([]models.User, error) {
	if err := Authorize(actor, ActAdmin, Resource{}); err != nil {
		return nil, err
	}
	users, err := s.users.SearchUsers(name, email, gender)
	if err != nil {
		return nil, apperrors.Internal(err, "failed to search users")
	}
	return users, nil
}

// GetUser loads a single user. Admin-only.
func (s *ModerationService) GetUser(actor *models.User, id uint) (*models.User, error) {
	return s.loadTarget(actor, id)
}

// PendingProfiles lists users still awaiting approval. Admin-only.
func (s *ModerationService) PendingProfiles(actor *models.User) ([]models.User, error) {
	if err := Authorize(actor, ActAdmin, Resource{}); err != nil {
		return nil, err
	}
	users, err := s.users.GetUnapprovedUsers()
	if err != nil {
		return nil, apperrors.Internal(err, "failed to fetch pending profiles")
	}
	return users, nil
}

// UpdateUser applies an admin-level partial update, including the role,
// activity, and approval fields regular users may not touch.
func (s *ModerationService) UpdateUser(actor *models.User, id uint, req *models.AdminUpdateUserRequest) (*models.User, error) {
	user, err := s.loadTarget(actor, id)
	if err != nil {
		return nil, err
	}

	applyUserUpdate(user, &req.UpdateUserRequest)
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.ProfileApproved != nil {
		user.ProfileApproved = *req.ProfileApproved
	}

	if err := s.users.UpdateUser(user); err != nil {
		return nil, apperrors.Internal(err, "failed to update user")
	}
	return user, nil
}
