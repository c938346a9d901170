package services

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/adityakx/sangam/backend/internal/apperrors"
	"github.com/adityakx/sangam/backend/internal/logger"
	"github.com/adityakx/sangam/backend/internal/models"
	"github.com/adityakx/sangam/backend/internal/repositories"
)

const viewWindow = time.Hour

// ProfileViewService records profile visits behind a sliding one-hour
// anti-spam window. The window is best-effort: a race can record a duplicate
// view, which is tolerated.
type ProfileViewService struct {
	views repositories.ProfileViewRepository
	cache *redis.Client // optional; DB count fallback when nil
}

func NewProfileViewService(views repositories.ProfileViewRepository, cache *redis.Client) *ProfileViewService {
	return &ProfileViewService{views: views, cache: cache}
}

// Record stores one view of viewedID by the actor. Self-views are ignored;
// repeat views inside the window are suppressed silently.
func (s *ProfileViewService) Record(ctx context.Context, actor *models.User, viewedID uint) error {
	if actor == nil {
		return apperrors.Unauthenticated("authentication required")
	}
	if actor.ID == viewedID {
		return nil
	}

	recent, err := s.seenRecently(ctx, actor.ID, viewedID)
	if err != nil {
		return err
	}
	if recent {
		return nil
	}

	view := &models.ProfileView{ViewerID: actor.ID, ViewedID: viewedID}
	if err := s.views.CreateView(view); err != nil {
		return apperrors.Internal(err, "failed to record profile view")
	}
	return nil
}

// seenRecently checks the suppression window. Redis SETNX with a TTL marks
// the pair atomically; without Redis a point-in-time count query is used.
func (s *ProfileViewService) seenRecently(ctx context.Context, viewerID, viewedID uint) (bool, error) {
	if s.cache != nil {
		key := fmt.Sprintf("profileview:%d:%d", viewerID, viewedID)
		set, err := s.cache.SetNX(ctx, key, 1, viewWindow).Result()
		if err == nil {
			return !set, nil
		}
		logger.Warn("profile view cache unavailable, falling back to database", "err", err)
	}

	n, err := s.views.CountRecentViews(viewerID, viewedID, time.Now().Add(-viewWindow))
	if err != nil {
		return false, apperrors.Internal(err, "failed to check recent views")
	}
	return n > 0, nil
}

// Count returns how many times a profile has been viewed.
func (s *ProfileViewService) Count(viewedID uint) (int64, error) {
	n, err := s.views.CountViewsForUser(viewedID)
	if err != nil {
		return 0, apperrors.Internal(err, "failed to count profile views")
	}
	return n, nil
}
