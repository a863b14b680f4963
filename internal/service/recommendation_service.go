package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"

	"hobby-discovery-service/internal/models"
	"hobby-discovery-service/internal/recommend"
)

const (
	defaultHobbyLimit = 3
	maxHobbyLimit     = 20
)

// RecommendationService ranks hobbies against a user's profile.
type RecommendationService struct {
	users   UserStore
	catalog CatalogStore
	hobbies atomic.Pointer[recommend.Catalog]
	cache   cache
}

// NewRecommendationService starts with the built-in hobby table. Call
// ReloadCatalog to switch to the stored one.
func NewRecommendationService(users UserStore, catalog CatalogStore, rdb *redis.Client, cacheTTL time.Duration) *RecommendationService {
	s := &RecommendationService{
		users:   users,
		catalog: catalog,
		cache:   newCache(rdb, cacheTTL),
	}
	s.hobbies.Store(recommend.NewCatalog(recommend.DefaultHobbyMeta()))
	return s
}

// ReloadCatalog replaces the hobby table with the metadata stored in the
// database. An empty table keeps the current one.
func (s *RecommendationService) ReloadCatalog(ctx context.Context) error {
	metas, err := s.catalog.LoadHobbyMeta(ctx)
	if err != nil {
		return fmt.Errorf("load hobby meta: %w", err)
	}
	if len(metas) == 0 {
		slog.Warn("no hobby metadata stored, keeping current catalog")
		return nil
	}

	s.hobbies.Store(recommend.NewCatalog(metas))
	s.cache.deletePattern(ctx, "hobby-recs:*")
	slog.Info("hobby catalog loaded", "hobbies", len(metas))
	return nil
}

// Catalog returns the hobby table currently used for ranking.
func (s *RecommendationService) Catalog() *recommend.Catalog {
	return s.hobbies.Load()
}

// HobbyRecommendations returns the top hobbies for the user's saved profile.
func (s *RecommendationService) HobbyRecommendations(ctx context.Context, userID string, limit int) (*models.HobbyRecommendationResponse, error) {
	if limit <= 0 {
		limit = defaultHobbyLimit
	}
	if limit > maxHobbyLimit {
		limit = maxHobbyLimit
	}

	cacheKey := hobbyRecsKey(userID, limit)
	var cached models.HobbyRecommendationResponse
	if s.cache.get(ctx, cacheKey, &cached) {
		slog.Debug("hobby recommendations cache hit", "user_id", userID)
		return &cached, nil
	}

	profile, err := s.users.GetProfile(ctx, userID)
	if err != nil {
		return nil, notFound(err, "profile")
	}

	ranked := s.Catalog().Rank(profile.Profile)
	resp := &models.HobbyRecommendationResponse{
		UserID:          userID,
		Recommendations: recommend.TopHobbies(ranked, limit),
		GeneratedAt:     time.Now().UTC().Format(time.RFC3339),
	}

	s.cache.set(ctx, cacheKey, resp)
	return resp, nil
}

// InvalidateUser drops every cached hobby ranking for the user.
func (s *RecommendationService) InvalidateUser(ctx context.Context, userID string) {
	s.cache.deletePattern(ctx, fmt.Sprintf("hobby-recs:%s:*", userID))
}

func hobbyRecsKey(userID string, limit int) string {
	return fmt.Sprintf("hobby-recs:%s:%d", userID, limit)
}
