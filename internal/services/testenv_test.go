package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/adityakx/sangam/backend/internal/models"
	"github.com/adityakx/sangam/backend/internal/repositories"
	"github.com/adityakx/sangam/backend/internal/services"
)

// env wires every service against a shared in-memory database, mirroring the
// production composition in the router.
type env struct {
	db          *gorm.DB
	users       repositories.UserRepository
	identity    *services.IdentityService
	prefs       *services.PreferenceService
	connections *services.ConnectionService
	messages    *services.MessageService
	matches     *services.MatchService
	moderation  *services.ModerationService
	views       *services.ProfileViewService
	userSvc     *services.UserService
}

func newEnv(t *testing.T) *env {
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

	users := repositories.NewPostgresUserRepository(db)
	prefRepo := repositories.NewPostgresPreferenceRepository(db)
	connRepo := repositories.NewPostgresConnectionRepository(db)
	msgRepo := repositories.NewPostgresMessageRepository(db)
	viewRepo := repositories.NewPostgresProfileViewRepository(db)

	identity := services.NewIdentityService(users, "test-secret", time.Hour)
	prefs := services.NewPreferenceService(prefRepo)

	return &env{
		db:          db,
		users:       users,
		identity:    identity,
		prefs:       prefs,
		connections: services.NewConnectionService(connRepo, users),
		messages:    services.NewMessageService(msgRepo, connRepo),
		matches:     services.NewMatchService(users, prefs),
		moderation:  services.NewModerationService(users),
		views:       services.NewProfileViewService(viewRepo, nil),
		userSvc:     services.NewUserService(users, prefs, identity),
	}
}

func (e *env) seedUser(t *testing.T, email string, mutate ...func(*models.User)) *models.User {
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
	require.NoError(t, e.db.Create(user).Error)
	return user
}

func (e *env) seedAdmin(t *testing.T, email string) *models.User {
	t.Helper()
	return e.seedUser(t, email, func(u *models.User) {
		u.Role = models.RoleAdmin
	})
}

// connect seeds an accepted request between the two users.
func (e *env) connect(t *testing.T, a, b uint) {
	t.Helper()
	require.NoError(t, e.db.Create(&models.ConnectionRequest{
		SenderID: a, ReceiverID: b, Status: models.StatusAccepted,
	}).Error)
}
