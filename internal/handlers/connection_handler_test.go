package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/adityakx/sangam/backend/internal/handlers"
	"github.com/adityakx/sangam/backend/internal/middleware"
	"github.com/adityakx/sangam/backend/internal/models"
	"github.com/adityakx/sangam/backend/internal/repositories"
	"github.com/adityakx/sangam/backend/internal/services"
)

const testJWTSecret = "handler-test-secret"

type testServer struct {
	echo     *echo.Echo
	db       *gorm.DB
	identity *services.IdentityService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Preferences{},
		&models.ConnectionRequest{},
		&models.Message{},
		&models.ProfileView{},
	))

	users := repositories.NewPostgresUserRepository(db)
	connections := services.NewConnectionService(repositories.NewPostgresConnectionRepository(db), users)
	identity := services.NewIdentityService(users, testJWTSecret, time.Hour)

	e := echo.New()
	api := e.Group("", middleware.JWTAuthMiddleware(testJWTSecret))
	handlers.NewConnectionHandler(connections, identity).RegisterConnectionRoutes(api)

	return &testServer{echo: e, db: db, identity: identity}
}

func (s *testServer) seedUser(t *testing.T, email string, mutate ...func(*models.User)) *models.User {
	t.Helper()
	user := &models.User{
		Email:           email,
		Password:        "hashed",
		FirstName:       "Test",
		Age:             30,
		Gender:          models.GenderMale,
		Role:            models.RoleUser,
		IsActive:        true,
		ProfileApproved: true,
	}
	for _, m := range mutate {
		m(user)
	}
	require.NoError(t, s.db.Create(user).Error)
	return user
}

func (s *testServer) request(t *testing.T, method, target string, as *models.User) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	if as != nil {
		token, err := s.identity.IssueToken(as)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestSendRequestEndpoint(t *testing.T) {
	s := newTestServer(t)
	sender := s.seedUser(t, "sender@example.com")
	receiver := s.seedUser(t, "receiver@example.com")

	target := fmt.Sprintf("/pending-requests/send?senderId=%d&receiverId=%d", sender.ID, receiver.ID)
	rec := s.request(t, http.MethodPost, target, sender)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Request sent successfully", body["message"])
}

func TestSendRequestEndpointFailures(t *testing.T) {
	s := newTestServer(t)
	sender := s.seedUser(t, "sender@example.com")
	receiver := s.seedUser(t, "receiver@example.com")
	unapproved := s.seedUser(t, "unapproved@example.com", func(u *models.User) { u.ProfileApproved = false })

	t.Run("no token", func(t *testing.T) {
		target := fmt.Sprintf("/pending-requests/send?senderId=%d&receiverId=%d", sender.ID, receiver.ID)
		rec := s.request(t, http.MethodPost, target, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("impersonation", func(t *testing.T) {
		target := fmt.Sprintf("/pending-requests/send?senderId=%d&receiverId=%d", receiver.ID, sender.ID)
		rec := s.request(t, http.MethodPost, target, sender)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, false, body["success"])
	})

	t.Run("unapproved sender", func(t *testing.T) {
		target := fmt.Sprintf("/pending-requests/send?senderId=%d&receiverId=%d", unapproved.ID, receiver.ID)
		rec := s.request(t, http.MethodPost, target, unapproved)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing receiver", func(t *testing.T) {
		target := fmt.Sprintf("/pending-requests/send?senderId=%d&receiverId=99999", sender.ID)
		rec := s.request(t, http.MethodPost, target, sender)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		rec := s.request(t, http.MethodPost, "/pending-requests/send?senderId=abc&receiverId=1", sender)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAcceptRequestEndpoint(t *testing.T) {
	s := newTestServer(t)
	sender := s.seedUser(t, "sender@example.com")
	receiver := s.seedUser(t, "receiver@example.com")
	outsider := s.seedUser(t, "outsider@example.com")

	target := fmt.Sprintf("/pending-requests/send?senderId=%d&receiverId=%d", sender.ID, receiver.ID)
	require.Equal(t, http.StatusOK, s.request(t, http.MethodPost, target, sender).Code)

	var req models.ConnectionRequest
	require.NoError(t, s.db.First(&req).Error)

	t.Run("outsider forbidden", func(t *testing.T) {
		rec := s.request(t, http.MethodPost, fmt.Sprintf("/pending-requests/accept/%d", req.ID), outsider)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("receiver accepts", func(t *testing.T) {
		rec := s.request(t, http.MethodPost, fmt.Sprintf("/pending-requests/accept/%d", req.ID), receiver)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("second resolution conflicts", func(t *testing.T) {
		rec := s.request(t, http.MethodPost, fmt.Sprintf("/pending-requests/reject/%d", req.ID), receiver)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("is-connected reflects acceptance", func(t *testing.T) {
		target := fmt.Sprintf("/pending-requests/is-connected?userId1=%d&userId2=%d", receiver.ID, sender.ID)
		rec := s.request(t, http.MethodGet, target, receiver)
		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, true, body["connected"])
	})
}

func TestListPendingEndpoint(t *testing.T) {
	s := newTestServer(t)
	sender := s.seedUser(t, "sender@example.com")
	receiver := s.seedUser(t, "receiver@example.com")

	target := fmt.Sprintf("/pending-requests/send?senderId=%d&receiverId=%d", sender.ID, receiver.ID)
	require.Equal(t, http.StatusOK, s.request(t, http.MethodPost, target, sender).Code)

	rec := s.request(t, http.MethodGet, fmt.Sprintf("/pending-requests/pending/%d", receiver.ID), receiver)
	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	requests, ok := body["requests"].([]any)
	require.True(t, ok)
	assert.Len(t, requests, 1)

	// someone else's inbox is off limits
	rec = s.request(t, http.MethodGet, fmt.Sprintf("/pending-requests/pending/%d", receiver.ID), sender)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
