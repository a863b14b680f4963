package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"hobby-discovery-service/internal/models"
	"hobby-discovery-service/internal/recommend"
)

// ResourceService scores, filters and ranks learning resources for a user.
type ResourceService struct {
	users   UserStore
	catalog CatalogStore
}

func NewResourceService(users UserStore, catalog CatalogStore) *ResourceService {
	return &ResourceService{users: users, catalog: catalog}
}

// Recommend returns the hobby's resources that pass the query filters, ranked
// by score. An empty userID scores as an anonymous beginner with no saved
// state.
func (s *ResourceService) Recommend(ctx context.Context, userID string, q models.ResourceQuery) ([]recommend.ScoredResource, error) {
	if q.HobbySlug == "" {
		return nil, invalid("hobby is required")
	}
	if q.TimeMin != nil && q.TimeMax != nil && *q.TimeMin > *q.TimeMax {
		return nil, invalid("timeMin %d exceeds timeMax %d", *q.TimeMin, *q.TimeMax)
	}
	if q.SavedOnly && userID == "" {
		return nil, fmt.Errorf("saved resources: %w", ErrUnauthenticated)
	}

	hobby, err := s.catalog.GetHobbyBySlug(ctx, q.HobbySlug)
	if err != nil {
		return nil, notFound(err, "hobby "+q.HobbySlug)
	}

	var (
		level        = recommend.LevelBeginner
		resources    []recommend.Resource
		interactions map[string]models.UserResource
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		resources, err = s.catalog.ListResourcesByHobby(gctx, hobby.ID)
		return err
	})
	if userID != "" {
		g.Go(func() error {
			l, ok, err := s.users.GetHobbyLevel(gctx, userID, hobby.ID)
			if err != nil {
				return err
			}
			if ok && l != "" {
				level = l
			}
			return nil
		})
		g.Go(func() error {
			var err error
			interactions, err = s.users.ListUserResources(gctx, userID, nil)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load resources for %s: %w", q.HobbySlug, err)
	}

	scored := scoreAll(resources, interactions, func(recommend.Resource) recommend.ResourceLevel { return level })
	return recommend.RankResources(recommend.FilterResources(q.Filter(), scored)), nil
}

// Personalized narrows the ranked hobby resources to the ones that suit the
// user's profile.
func (s *ResourceService) Personalized(ctx context.Context, userID, hobbySlug string) ([]recommend.ScoredResource, error) {
	profile, err := s.users.GetProfile(ctx, userID)
	if err != nil {
		return nil, notFound(err, "profile")
	}

	ranked, err := s.Recommend(ctx, userID, models.ResourceQuery{HobbySlug: hobbySlug})
	if err != nil {
		return nil, err
	}
	return recommend.Personalize(profile.Profile, ranked), nil
}

// Saved returns the user's saved resources across all hobbies, ranked. Each
// resource is scored at the user's level for its hobby.
func (s *ResourceService) Saved(ctx context.Context, userID string) ([]recommend.ScoredResource, error) {
	var (
		saved  map[string]models.UserResource
		levels = map[string]recommend.ResourceLevel{}
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		saved, err = s.users.ListSavedResources(gctx, userID)
		return err
	})
	g.Go(func() error {
		hobbies, err := s.users.ListUserHobbies(gctx, userID)
		if err != nil {
			return err
		}
		for _, h := range hobbies {
			levels[h.HobbyID] = h.Level
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load saved resources: %w", err)
	}

	ids := make([]string, 0, len(saved))
	for id := range saved {
		ids = append(ids, id)
	}
	resources, err := s.catalog.GetResourcesByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load saved resources: %w", err)
	}

	scored := scoreAll(resources, saved, func(r recommend.Resource) recommend.ResourceLevel {
		if l, ok := levels[r.HobbyID]; ok && l != "" {
			return l
		}
		return recommend.LevelBeginner
	})
	return recommend.RankResources(scored), nil
}

// scoreAll joins resources with the caller's interaction state and scores
// each one. The tag match count is the resource's tag count.
func scoreAll(
	resources []recommend.Resource,
	interactions map[string]models.UserResource,
	levelFor func(recommend.Resource) recommend.ResourceLevel,
) []recommend.ScoredResource {
	out := make([]recommend.ScoredResource, 0, len(resources))
	for _, r := range resources {
		sr := recommend.ScoredResource{Resource: r, Status: recommend.StatusNotStarted}
		if ur, ok := interactions[r.ID]; ok {
			sr.IsSaved = ur.Saved
			sr.Status = ur.Status
			sr.Feedback = ur.Feedback
		}
		sr.Value = recommend.ScoreResource(recommend.ResourceFactors{
			SkillLevel:      recommend.SkillLevel(levelFor(r)),
			ResourceLevel:   r.Level,
			Feedback:        sr.Feedback,
			PopularityScore: r.PopularityScore,
			TagMatchCount:   len(r.Tags),
		})
		out = append(out, sr)
	}
	return out
}
