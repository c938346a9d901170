package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adityakx/sangam/backend/internal/apperrors"
	"github.com/adityakx/sangam/backend/internal/models"
)

func TestDefaultsForFlipsGender(t *testing.T) {
	e := newEnv(t)

	male := &models.User{ID: 1, Age: 32, Gender: models.GenderMale, Location: "Delhi"}
	prefs := e.prefs.DefaultsFor(male)
	assert.Equal(t, string(models.GenderFemale), prefs.Gender)
	assert.Equal(t, 32, prefs.Age)
	assert.Equal(t, "Delhi", prefs.Location)

	female := &models.User{ID: 2, Gender: models.GenderFemale}
	prefs = e.prefs.DefaultsFor(female)
	assert.Equal(t, string(models.GenderMale), prefs.Gender)

	other := &models.User{ID: 3, Gender: models.GenderOther}
	prefs = e.prefs.DefaultsFor(other)
	assert.Equal(t, models.PreferenceAnyGender, prefs.Gender)
}

func TestDefaultsForFillsGaps(t *testing.T) {
	e := newEnv(t)

	bare := &models.User{ID: 1, Gender: models.GenderMale}
	prefs := e.prefs.DefaultsFor(bare)
	assert.Equal(t, 25, prefs.Age)
	assert.Equal(t, models.PreferenceAny, prefs.Location)
	assert.Equal(t, models.PreferenceAny, prefs.Religion)
	assert.Equal(t, models.PreferenceAny, prefs.Caste)
	assert.Equal(t, models.PreferenceAny, prefs.Education)
	assert.Equal(t, models.PreferenceAny, prefs.Profession)
}

func TestGetOrCreatePersistsOnce(t *testing.T) {
	e := newEnv(t)
	user := e.seedUser(t, "user@example.com")

	first, err := e.prefs.GetOrCreate(user)
	require.NoError(t, err)
	assert.Equal(t, string(models.GenderFemale), first.Gender)

	second, err := e.prefs.GetOrCreate(user)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, e.db.Model(&models.Preferences{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSavePreferences(t *testing.T) {
	e := newEnv(t)
	user := e.seedUser(t, "user@example.com")

	req := &models.SavePreferencesRequest{
		Age: 27, Gender: "FEMALE", Location: "Mumbai",
		Religion: "Hindu", Caste: "Any", Education: "MBA", Profession: "Doctor",
	}
	saved, err := e.prefs.Save(user, user.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "Mumbai", saved.Location)

	// saving again overwrites the same row
	req.Location = "Pune"
	again, err := e.prefs.Save(user, user.ID, req)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, again.ID)
	assert.Equal(t, "Pune", again.Location)
}

func TestSavePreferencesGate(t *testing.T) {
	e := newEnv(t)

	req := &models.SavePreferencesRequest{
		Age: 27, Gender: "FEMALE", Location: "Mumbai",
		Religion: "Hindu", Caste: "X", Education: "MBA", Profession: "Doctor",
	}

	t.Run("other account", func(t *testing.T) {
		user := e.seedUser(t, "owner@example.com")
		other := e.seedUser(t, "other@example.com")
		_, err := e.prefs.Save(other, user.ID, req)
		assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))
	})

	t.Run("inactive", func(t *testing.T) {
		user := e.seedUser(t, "inactive@example.com", func(u *models.User) { u.IsActive = false })
		_, err := e.prefs.Save(user, user.ID, req)
		assert.Equal(t, apperrors.KindInvalid, apperrors.KindOf(err))
	})

	t.Run("unapproved", func(t *testing.T) {
		user := e.seedUser(t, "unapproved@example.com", func(u *models.User) { u.ProfileApproved = false })
		_, err := e.prefs.Save(user, user.ID, req)
		assert.Equal(t, apperrors.KindInvalid, apperrors.KindOf(err))
	})
}
