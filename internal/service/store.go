package service

import (
	"context"

	"hobby-discovery-service/internal/models"
	"hobby-discovery-service/internal/recommend"
)

// UserStore is implemented by repository.UserRepository. Missing rows are
// reported as errors wrapping sql.ErrNoRows.
type UserStore interface {
	FindOrCreateUser(ctx context.Context, email, name string) (*models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	GetProfile(ctx context.Context, userID string) (*models.StoredProfile, error)
	UpsertProfile(ctx context.Context, userID string, p recommend.Profile) (*models.StoredProfile, error)
	ReplaceUserHobbies(ctx context.Context, userID string, hobbies []models.UserHobby) error
	UpsertUserHobby(ctx context.Context, userID, hobbyID string, level recommend.ResourceLevel) (*models.UserHobby, error)
	ListUserHobbies(ctx context.Context, userID string) ([]models.UserHobby, error)
	GetHobbyLevel(ctx context.Context, userID, hobbyID string) (recommend.ResourceLevel, bool, error)
	UpsertUserResource(ctx context.Context, userID string, req models.ResourceInteractionRequest) (*models.UserResource, error)
	DeleteUserResource(ctx context.Context, userID, resourceID string) (bool, error)
	ListUserResources(ctx context.Context, userID string, resourceIDs []string) (map[string]models.UserResource, error)
	ListSavedResources(ctx context.Context, userID string) (map[string]models.UserResource, error)
}

// CatalogStore is implemented by repository.CatalogRepository.
type CatalogStore interface {
	ListHobbies(ctx context.Context) ([]models.Hobby, error)
	GetHobbyBySlug(ctx context.Context, slug string) (*models.Hobby, error)
	GetHobby(ctx context.Context, id string) (*models.Hobby, error)
	LoadHobbyMeta(ctx context.Context) ([]recommend.HobbyMeta, error)
	ListResourcesByHobby(ctx context.Context, hobbyID string) ([]recommend.Resource, error)
	GetResourcesByIDs(ctx context.Context, ids []string) ([]recommend.Resource, error)
	ResourceExists(ctx context.Context, id string) (bool, error)
}
