package repositories

import (
	"time"

	"github.com/adityakx/sangam/backend/internal/models"
	"gorm.io/gorm"
)

// ProfileViewRepository defines the interface for profile view data operations
type ProfileViewRepository interface {
	CreateView(view *models.ProfileView) error
	CountRecentViews(viewerID, viewedID uint, since time.Time) (int64, error)
	CountViewsForUser(viewedID uint) (int64, error)
}

// PostgresProfileViewRepository implements ProfileViewRepository for PostgreSQL
type PostgresProfileViewRepository struct {
	db *gorm.DB
}

// NewPostgresProfileViewRepository creates a new PostgresProfileViewRepository
func NewPostgresProfileViewRepository(db *gorm.DB) *PostgresProfileViewRepository {
	return &PostgresProfileViewRepository{db: db}
}

// CreateView records a profile visit
func (r *PostgresProfileViewRepository) CreateView(view *models.ProfileView) error {
	return r.db.Create(view).Error
}

// CountRecentViews counts views by the same viewer of the same profile since
// the given time. Used for the sliding anti-spam window.
func (r *PostgresProfileViewRepository) CountRecentViews(viewerID, viewedID uint, since time.Time) (int64, error) {
	var n int64
	err := r.db.Model(&models.ProfileView{}).
		Where("viewer_id = ? AND viewed_id = ? AND created_at > ?", viewerID, viewedID, since).
		Count(&n).Error
	return n, err
}

// CountViewsForUser counts how many times a profile has been viewed
func (r *PostgresProfileViewRepository) CountViewsForUser(viewedID uint) (int64, error) {
	var n int64
	err := r.db.Model(&models.ProfileView{}).
		Where("viewed_id = ?", viewedID).
		Count(&n).Error
	return n, err
}
