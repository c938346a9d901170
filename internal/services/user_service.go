package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/adityakx/sangam/backend/internal/apperrors"
	"github.com/adityakx/sangam/backend/internal/logger"
	"github.com/adityakx/sangam/backend/internal/models"
	"github.com/adityakx/sangam/backend/internal/repositories"
)

// UserService handles registration, authentication, and self-service profile
// operations.
type UserService struct {
	users    repositories.UserRepository
	prefs    *PreferenceService
	identity *IdentityService
}

func NewUserService(users repositories.UserRepository, prefs *PreferenceService, identity *IdentityService) *UserService {
	return &UserService{users: users, prefs: prefs, identity: identity}
}

// Signup registers a new user. The account starts unapproved (unless
// explicitly flagged) and active; default preferences are created best-effort.
func (s *UserService) Signup(req *models.SignupRequest) (*models.User, error) {
	if _, err := s.users.GetUserByEmail(req.Email); err == nil {
		return nil, apperrors.Invalid("email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Internal(err, "failed to check email")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Internal(err, "failed to hash password")
	}

	user := &models.User{
		Email:           req.Email,
		Password:        string(hashed),
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Phone:           req.Phone,
		Address:         req.Address,
		Age:             req.Age,
		Gender:          req.Gender,
		MaritalStatus:   req.MaritalStatus,
		Religion:        req.Religion,
		Caste:           req.Caste,
		MotherTongue:    req.MotherTongue,
		Education:       req.Education,
		Profession:      req.Profession,
		AnnualIncome:    req.AnnualIncome,
		Location:        req.Location,
		Bio:             req.Bio,
		Hobbies:         req.Hobbies,
		Role:            models.RoleUser,
		IsActive:        true,
		ProfileApproved: req.ProfileApproved,
	}

	if err := s.users.CreateUser(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Invalid("email already registered")
		}
		return nil, apperrors.Internal(err, "failed to create user")
	}

	// Signup must succeed even when preference creation fails.
	s.prefs.EnsureDefaults(user)

	return user, nil
}

// Login authenticates by email and password and issues a token.
func (s *UserService) Login(email, password string) (*models.User, string, error) {
	user, err := s.users.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperrors.Unauthenticated("invalid credentials")
		}
		return nil, "", apperrors.Internal(err, "failed to load user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", apperrors.Unauthenticated("invalid credentials")
	}

	token, err := s.identity.IssueToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// GetByID loads a user profile.
func (s *UserService) GetByID(id uint) (*models.User, error) {
	user, err := s.users.GetUserByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("user not found")
		}
		return nil, apperrors.Internal(err, "failed to load user")
	}
	return user, nil
}

// Update applies a self-service partial update, then makes sure the user has
// a preference row (best-effort, failures only logged).
func (s *UserService) Update(actor *models.User, id uint, req *models.UpdateUserRequest) (*models.User, error) {
	if err := Authorize(actor, ActSelf, Owned(id)); err != nil {
		return nil, apperrors.Forbidden("you can only update your own profile")
	}

	user, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	applyUserUpdate(user, req)

	if err := s.users.UpdateUser(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Invalid("email already registered")
		}
		return nil, apperrors.Internal(err, "failed to update user")
	}

	s.prefs.EnsureDefaults(user)

	return user, nil
}

// DashboardStats aggregates the signed-in user's home screen counters. The
// match count degrades to zero on failure instead of failing the whole call.
func (s *UserService) DashboardStats(actor *models.User, userID uint, matches *MatchService, messages *MessageService, connections *ConnectionService, views *ProfileViewService) (map[string]int64, error) {
	if err := Authorize(actor, ActSelf, Owned(userID)); err != nil {
		return nil, apperrors.Forbidden("you can only view your own dashboard")
	}

	stats := map[string]int64{}

	if found, err := matches.FindMatches(userID); err != nil {
		logger.Warn("failed to count matches for dashboard", "userId", userID, "err", err)
		stats["totalMatches"] = 0
	} else {
		stats["totalMatches"] = int64(len(found))
	}

	unread, err := messages.UnreadCount(actor, userID)
	if err != nil {
		return nil, err
	}
	stats["newMessages"] = unread

	pending, err := connections.CountPending(userID)
	if err != nil {
		return nil, err
	}
	stats["pendingRequests"] = pending

	viewCount, err := views.Count(userID)
	if err != nil {
		return nil, err
	}
	stats["profileViews"] = viewCount

	return stats, nil
}

func applyUserUpdate(user *models.User, req *models.UpdateUserRequest) {
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Address != nil {
		user.Address = *req.Address
	}
	if req.Age != nil {
		user.Age = *req.Age
	}
	if req.Gender != nil {
		user.Gender = *req.Gender
	}
	if req.MaritalStatus != nil {
		user.MaritalStatus = *req.MaritalStatus
	}
	if req.Religion != nil {
		user.Religion = *req.Religion
	}
	if req.Caste != nil {
		user.Caste = *req.Caste
	}
	if req.MotherTongue != nil {
		user.MotherTongue = *req.MotherTongue
	}
	if req.Education != nil {
		user.Education = *req.Education
	}
	if req.Profession != nil {
		user.Profession = *req.Profession
	}
	if req.AnnualIncome != nil {
		user.AnnualIncome = *req.AnnualIncome
	}
	if req.Location != nil {
		user.Location = *req.Location
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.Hobbies != nil {
		user.Hobbies = *req.Hobbies
	}
}
