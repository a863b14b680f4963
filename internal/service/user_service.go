package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"hobby-discovery-service/internal/models"
	"hobby-discovery-service/internal/recommend"
)

const defaultUserName = "User"

// UserService handles accounts, profiles, hobby selection and resource
// interactions.
type UserService struct {
	users   UserStore
	catalog CatalogStore
	recs    *RecommendationService
}

func NewUserService(users UserStore, catalog CatalogStore, recs *RecommendationService) *UserService {
	return &UserService{users: users, catalog: catalog, recs: recs}
}

// Login finds the user by email or registers a new one.
func (s *UserService) Login(ctx context.Context, req models.LoginRequest) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return nil, invalid("email is required")
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = defaultUserName
	}
	return s.users.FindOrCreateUser(ctx, email, name)
}

func (s *UserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	user, err := s.users.GetUser(ctx, id)
	if err != nil {
		return nil, notFound(err, "user")
	}
	return user, nil
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*models.StoredProfile, error) {
	p, err := s.users.GetProfile(ctx, userID)
	if err != nil {
		return nil, notFound(err, "profile")
	}
	return p, nil
}

// SaveProfile validates and stores the profile, then drops the user's cached
// hobby rankings.
func (s *UserService) SaveProfile(ctx context.Context, userID string, p recommend.Profile) (*models.StoredProfile, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", err.Error(), ErrInvalidInput)
	}
	if _, err := s.GetUser(ctx, userID); err != nil {
		return nil, err
	}

	stored, err := s.users.UpsertProfile(ctx, userID, p)
	if err != nil {
		return nil, err
	}
	if s.recs != nil {
		s.recs.InvalidateUser(ctx, userID)
	}
	slog.Info("profile saved", "user_id", userID)
	return stored, nil
}

// Onboard replaces the user's hobbies. Missing levels default to beginner
// and missing goals are stored as null.
func (s *UserService) Onboard(ctx context.Context, userID string, req models.OnboardingRequest) ([]models.UserHobby, error) {
	if len(req.HobbyIDs) == 0 {
		return nil, invalid("hobbyIds array is required")
	}

	hobbies := make([]models.UserHobby, 0, len(req.HobbyIDs))
	seen := make(map[string]bool, len(req.HobbyIDs))
	for i, id := range req.HobbyIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		if err := s.requireHobby(ctx, id); err != nil {
			return nil, err
		}

		uh := models.UserHobby{UserID: userID, HobbyID: id, Level: recommend.LevelBeginner}
		if i < len(req.Levels) && req.Levels[i] != "" {
			uh.Level = recommend.ResourceLevel(req.Levels[i])
		}
		if i < len(req.Goals) && strings.TrimSpace(req.Goals[i]) != "" {
			goal := req.Goals[i]
			uh.Goals = &goal
		}
		hobbies = append(hobbies, uh)
	}

	if err := s.users.ReplaceUserHobbies(ctx, userID, hobbies); err != nil {
		return nil, err
	}
	return hobbies, nil
}

// AddHobby adds or updates a single hobby without touching the others.
func (s *UserService) AddHobby(ctx context.Context, userID string, req models.DashboardHobbyRequest) (*models.UserHobby, error) {
	if req.HobbyID == "" {
		return nil, invalid("hobbyId is required")
	}
	if err := s.requireHobby(ctx, req.HobbyID); err != nil {
		return nil, err
	}
	level := recommend.LevelBeginner
	if req.Level != "" {
		level = recommend.ResourceLevel(req.Level)
	}
	return s.users.UpsertUserHobby(ctx, userID, req.HobbyID, level)
}

func (s *UserService) ListHobbies(ctx context.Context, userID string) ([]models.UserHobby, error) {
	return s.users.ListUserHobbies(ctx, userID)
}

// SetResourceState applies a partial update to the user's state for one
// resource.
func (s *UserService) SetResourceState(ctx context.Context, userID string, req models.ResourceInteractionRequest) (*models.UserResource, error) {
	if req.ResourceID == "" {
		return nil, invalid("resourceId is required")
	}
	if !req.Feedback.Valid() {
		return nil, invalid("feedback must be up, down or null")
	}
	exists, err := s.catalog.ResourceExists(ctx, req.ResourceID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("resource %s: %w", req.ResourceID, ErrNotFound)
	}
	return s.users.UpsertUserResource(ctx, userID, req)
}

// ClearResourceState forgets the user's state for one resource.
func (s *UserService) ClearResourceState(ctx context.Context, userID, resourceID string) error {
	deleted, err := s.users.DeleteUserResource(ctx, userID, resourceID)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("resource state %s: %w", resourceID, ErrNotFound)
	}
	return nil
}

// Hobbies lists the catalog with resource counts.
func (s *UserService) Hobbies(ctx context.Context) ([]models.Hobby, error) {
	return s.catalog.ListHobbies(ctx)
}

func (s *UserService) requireHobby(ctx context.Context, id string) error {
	_, err := s.catalog.GetHobby(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return invalid("unknown hobby %s", id)
	}
	return err
}
