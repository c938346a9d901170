package repositories

import (
	"github.com/adityakx/sangam/backend/internal/models"
	"gorm.io/gorm"
)

// PreferenceRepository defines the interface for preference data operations.
// A unique index on user_id guarantees at most one row per user; callers of
// CreatePreferences must treat gorm.ErrDuplicatedKey as "already exists".
type PreferenceRepository interface {
	GetPreferencesByUserID(userID uint) (*models.Preferences, error)
	CreatePreferences(prefs *models.Preferences) error
	UpdatePreferences(prefs *models.Preferences) error
}

// PostgresPreferenceRepository implements PreferenceRepository for PostgreSQL
type PostgresPreferenceRepository struct {
	db *gorm.DB
}

// NewPostgresPreferenceRepository creates a new PostgresPreferenceRepository
func NewPostgresPreferenceRepository(db *gorm.DB) *PostgresPreferenceRepository {
	return &PostgresPreferenceRepository{db: db}
}

// GetPreferencesByUserID retrieves the preference row owned by a user
func (r *PostgresPreferenceRepository) GetPreferencesByUserID(userID uint) (*models.Preferences, error) {
	var prefs models.Preferences
	if err := r.db.Where("user_id = ?", userID).First(&prefs).Error; err != nil {
		return nil, err
	}
	return &prefs, nil
}

// CreatePreferences inserts a new preference row
func (r *PostgresPreferenceRepository) CreatePreferences(prefs *models.Preferences) error {
	return r.db.Create(prefs).Error
}

// UpdatePreferences persists changes to an existing preference row
func (r *PostgresPreferenceRepository) UpdatePreferences(prefs *models.Preferences) error {
	return r.db.Save(prefs).Error
}
