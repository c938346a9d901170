package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/adityakx/sangam/backend/internal/models"
	"github.com/adityakx/sangam/backend/internal/repositories"
)

func TestFindMatchesExactFields(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewPostgresUserRepository(db)

	seeker := seedUser(t, db, "seeker@example.com")
	match := seedUser(t, db, "match@example.com", func(u *models.User) {
		u.Gender = models.GenderFemale
	})
	// wrong location
	seedUser(t, db, "far@example.com", func(u *models.User) {
		u.Gender = models.GenderFemale
		u.Location = "Mumbai"
	})
	// wrong age
	seedUser(t, db, "older@example.com", func(u *models.User) {
		u.Gender = models.GenderFemale
		u.Age = 40
	})

	prefs := &models.Preferences{
		UserID:     seeker.ID,
		Age:        30,
		Gender:     string(models.GenderFemale),
		Location:   "Delhi",
		Religion:   "Hindu",
		Caste:      "X",
		Profession: "Engineer",
	}

	users, err := repo.FindMatches(prefs, seeker.ID)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, match.ID, users[0].ID)
}

func TestFindMatchesExcludesIneligibleCandidates(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewPostgresUserRepository(db)

	seeker := seedUser(t, db, "seeker@example.com")
	seedUser(t, db, "inactive@example.com", func(u *models.User) {
		u.Gender = models.GenderFemale
		u.IsActive = false
	})
	seedUser(t, db, "unapproved@example.com", func(u *models.User) {
		u.Gender = models.GenderFemale
		u.ProfileApproved = false
	})
	seedUser(t, db, "admin@example.com", func(u *models.User) {
		u.Gender = models.GenderFemale
		u.Role = models.RoleAdmin
	})

	prefs := &models.Preferences{
		UserID: seeker.ID,
		Age:    30,
		Gender: string(models.GenderFemale),
	}

	users, err := repo.FindMatches(prefs, seeker.ID)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestFindMatchesWildcardFieldsCarryNoConstraint(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewPostgresUserRepository(db)

	seeker := seedUser(t, db, "seeker@example.com")
	seedUser(t, db, "anywhere@example.com", func(u *models.User) {
		u.Gender = models.GenderFemale
		u.Location = "Chennai"
		u.Religion = "Christian"
	})
	seedUser(t, db, "male@example.com", func(u *models.User) {
		u.Location = "Pune"
	})

	prefs := &models.Preferences{
		UserID:   seeker.ID,
		Age:      30,
		Gender:   models.PreferenceAnyGender,
		Location: models.PreferenceAny,
		Religion: models.PreferenceAny,
		Caste:    models.PreferenceAny,
	}

	users, err := repo.FindMatches(prefs, seeker.ID)
	require.NoError(t, err)
	// both genders and all locations qualify; the seeker never matches themselves
	assert.Len(t, users, 2)
}

func TestSearchUsers(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewPostgresUserRepository(db)

	seedUser(t, db, "priya@example.com", func(u *models.User) {
		u.FirstName = "Priya"
		u.Gender = models.GenderFemale
	})
	seedUser(t, db, "rahul@example.com", func(u *models.User) {
		u.FirstName = "Rahul"
	})

	byName, err := repo.SearchUsers("pri", "", "")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Priya", byName[0].FirstName)

	byEmail, err := repo.SearchUsers("", "rahul@", "")
	require.NoError(t, err)
	require.Len(t, byEmail, 1)
	assert.Equal(t, "Rahul", byEmail[0].FirstName)

	byGender, err := repo.SearchUsers("", "", "female")
	require.NoError(t, err)
	require.Len(t, byGender, 1)
	assert.Equal(t, "Priya", byGender[0].FirstName)
}

func TestGetUnapprovedUsers(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewPostgresUserRepository(db)

	seedUser(t, db, "approved@example.com")
	pending := seedUser(t, db, "pending@example.com", func(u *models.User) {
		u.ProfileApproved = false
	})

	users, err := repo.GetUnapprovedUsers()
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, pending.ID, users[0].ID)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewPostgresUserRepository(db)

	seedUser(t, db, "dup@example.com")
	err := repo.CreateUser(&models.User{Email: "dup@example.com", Password: "hashed"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestCountUsers(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewPostgresUserRepository(db)

	seedUser(t, db, "a@example.com")
	seedUser(t, db, "b@example.com", func(u *models.User) {
		u.IsActive = false
		u.ProfileApproved = false
	})

	total, err := repo.CountUsers()
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	active, err := repo.CountActiveUsers()
	require.NoError(t, err)
	assert.Equal(t, int64(1), active)

	approved, err := repo.CountApprovedUsers()
	require.NoError(t, err)
	assert.Equal(t, int64(1), approved)
}
