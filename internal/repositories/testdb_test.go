package repositories_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/adityakx/sangam/backend/internal/models"
)

// setup in-memory DB
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Preferences{},
		&models.ConnectionRequest{},
		&models.Message{},
		&models.ProfileView{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string, mutate ...func(*models.User)) *models.User {
	t.Helper()
	user := &models.User{
		Email:           email,
		Password:        "hashed",
		FirstName:       "Test",
		Age:             30,
		Gender:          models.GenderMale,
		Religion:        "Hindu",
		Caste:           "X",
		Profession:      "Engineer",
		Location:        "Delhi",
		Education:       "BTech",
		Role:            models.RoleUser,
		IsActive:        true,
		ProfileApproved: true,
	}
	for _, m := range mutate {
		m(user)
	}
	require.NoError(t, db.Create(user).Error)
	return user
}
