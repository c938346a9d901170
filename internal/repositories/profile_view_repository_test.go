package repositories_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adityakx/sangam/backend/internal/models"
	"github.com/adityakx/sangam/backend/internal/repositories"
)

func TestCountRecentViews(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewPostgresProfileViewRepository(db)

	now := time.Now().UTC().Truncate(time.Millisecond)
	require.NoError(t, repo.CreateView(&models.ProfileView{ViewerID: 1, ViewedID: 2, CreatedAt: now.Add(-10 * time.Minute)}))
	require.NoError(t, repo.CreateView(&models.ProfileView{ViewerID: 1, ViewedID: 2, CreatedAt: now.Add(-2 * time.Hour)}))
	require.NoError(t, repo.CreateView(&models.ProfileView{ViewerID: 3, ViewedID: 2, CreatedAt: now}))

	n, err := repo.CountRecentViews(1, 2, now.Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestCountViewsForUser(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewPostgresProfileViewRepository(db)

	now := time.Now().UTC().Truncate(time.Millisecond)
	require.NoError(t, repo.CreateView(&models.ProfileView{ViewerID: 1, ViewedID: 2, CreatedAt: now}))
	require.NoError(t, repo.CreateView(&models.ProfileView{ViewerID: 3, ViewedID: 2, CreatedAt: now}))
	require.NoError(t, repo.CreateView(&models.ProfileView{ViewerID: 2, ViewedID: 1, CreatedAt: now}))

	n, err := repo.CountViewsForUser(2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}
