package repositories

import (
	"time"

	"github.com/adityakx/sangam/backend/internal/models"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	CreateUser(user *models.User) error
	GetUserByID(id uint) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUsers() ([]models.User, error)
	UpdateUser(user *models.User) error
	SearchUsers(name, email, gender string) ([]models.User, error)
	GetUnapprovedUsers() ([]models.User, error)
	FindMatches(prefs *models.Preferences, excludeUserID uint) ([]models.User, error)
	CountUsers() (int64, error)
	CountActiveUsers() (int64, error)
	CountApprovedUsers() (int64, error)
	CountUsersCreatedSince(since time.Time) (int64, error)
}

// PostgresUserRepository implements UserRepository for PostgreSQL
type PostgresUserRepository struct {
	db *gorm.DB
}

// NewPostgresUserRepository creates a new PostgresUserRepository
func NewPostgresUserRepository(db *gorm.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

// CreateUser creates a new user
func (r *PostgresUserRepository) CreateUser(user *models.User) error {
	return r.db.Create(user).Error
}

// GetUserByID retrieves a user by ID
func (r *PostgresUserRepository) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail retrieves a user by email
func (r *PostgresUserRepository) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUsers retrieves all users
func (r *PostgresUserRepository) GetUsers() ([]models.User, error) {
	var users []models.User
	if err := r.db.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateUser persists changes to an existing user
func (r *PostgresUserRepository) UpdateUser(user *models.User) error {
	return r.db.Save(user).Error
}

// SearchUsers filters users by name, email, and gender (all optional, case-insensitive)
func (r *PostgresUserRepository) SearchUsers(name, email, gender string) ([]models.User, error) {
	query := r.db.Model(&models.User{})
	if name != "" {
		pattern := "%" + name + "%"
		query = query.Where("LOWER(first_name) LIKE LOWER(?) OR LOWER(last_name) LIKE LOWER(?)", pattern, pattern)
	}
	if email != "" {
		query = query.Where("LOWER(email) LIKE LOWER(?)", "%"+email+"%")
	}
	if gender != "" {
		query = query.Where("UPPER(gender) = UPPER(?)", gender)
	}

	var users []models.User
	if err := query.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// GetUnapprovedUsers retrieves all users awaiting profile approval
func (r *PostgresUserRepository) GetUnapprovedUsers() ([]models.User, error) {
	var users []models.User
	if err := r.db.Where("profile_approved = ?", false).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// FindMatches returns the active, approved, non-admin users matching the given
// preferences exactly, excluding the requesting user. A preference field equal
// to the "Any" sentinel carries no constraint and is dropped from the query.
func (r *PostgresUserRepository) FindMatches(prefs *models.Preferences, excludeUserID uint) ([]models.User, error) {
	query := r.db.Model(&models.User{}).
		Where("role = ?", models.RoleUser).
		Where("is_active = ?", true).
		Where("profile_approved = ?", true).
		Where("id <> ?", excludeUserID).
		Where("age = ?", prefs.Age)

	if !isWildcard(prefs.Gender) {
		query = query.Where("gender = ?", prefs.Gender)
	}
	if !isWildcard(prefs.Caste) {
		query = query.Where("caste = ?", prefs.Caste)
	}
	if !isWildcard(prefs.Religion) {
		query = query.Where("religion = ?", prefs.Religion)
	}
	if !isWildcard(prefs.Profession) {
		query = query.Where("profession = ?", prefs.Profession)
	}
	if !isWildcard(prefs.Location) {
		query = query.Where("location = ?", prefs.Location)
	}

	var users []models.User
	if err := query.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func isWildcard(v string) bool {
	return v == "" || v == models.PreferenceAny || v == models.PreferenceAnyGender
}

// CountUsers returns the total number of registered users
func (r *PostgresUserRepository) CountUsers() (int64, error) {
	var n int64
	err := r.db.Model(&models.User{}).Count(&n).Error
	return n, err
}

// CountActiveUsers returns the number of active users
func (r *PostgresUserRepository) CountActiveUsers() (int64, error) {
	var n int64
	err := r.db.Model(&models.User{}).Where("is_active = ?", true).Count(&n).Error
	return n, err
}

// CountApprovedUsers returns the number of users with approved profiles
func (r *PostgresUserRepository) CountApprovedUsers() (int64, error) {
	var n int64
	err := r.db.Model(&models.User{}).Where("profile_approved = ?", true).Count(&n).Error
	return n, err
}

// CountUsersCreatedSince returns the number of users registered after the given time
func (r *PostgresUserRepository) CountUsersCreatedSince(since time.Time) (int64, error) {
	var n int64
	err := r.db.Model(&models.User{}).Where("created_at > ?", since).Count(&n).Error
	return n, err
}
