// Package servicetest provides in-memory stores for exercising the service
// layer without PostgreSQL.
package servicetest

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"sync"
	"time"

	"hobby-discovery-service/internal/models"
	"hobby-discovery-service/internal/recommend"
)

// UserStore is an in-memory service.UserStore.
type UserStore struct {
	mu        sync.Mutex
	users     map[string]*models.User
	profiles  map[string]*models.StoredProfile
	hobbies   map[string][]models.UserHobby
	resources map[string]map[string]models.UserResource
	nextID    int
}

// NewUserStore returns an empty store.
func NewUserStore() *UserStore {
	return &UserStore{
		users:     map[string]*models.User{},
		profiles:  map[string]*models.StoredProfile{},
		hobbies:   map[string][]models.UserHobby{},
		resources: map[string]map[string]models.UserResource{},
	}
}

func (f *UserStore) FindOrCreateUser(_ context.Context, email, name string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	f.nextID++
	u := &models.User{ID: fmt.Sprintf("user-%d", f.nextID), Email: email, Name: name, CreatedAt: time.Now()}
	f.users[u.ID] = u
	return u, nil
}

func (f *UserStore) GetUser(_ context.Context, id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, fmt.Errorf("get user %s: %w", id, sql.ErrNoRows)
	}
	return u, nil
}

func (f *UserStore) GetProfile(_ context.Context, userID string) (*models.StoredProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.profiles[userID]
	if !ok {
		return nil, fmt.Errorf("get profile: %w", sql.ErrNoRows)
	}
	return p, nil
}

func (f *UserStore) UpsertProfile(_ context.Context, userID string, p recommend.Profile) (*models.StoredProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	sp := &models.StoredProfile{UserID: userID, Profile: p, UpdatedAt: time.Now()}
	f.profiles[userID] = sp
	return sp, nil
}

func (f *UserStore) ReplaceUserHobbies(_ context.Context, userID string, hobbies []models.UserHobby) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.hobbies[userID] = append([]models.UserHobby(nil), hobbies...)
	return nil
}

func (f *UserStore) UpsertUserHobby(_ context.Context, userID, hobbyID string, level recommend.ResourceLevel) (*models.UserHobby, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	list := f.hobbies[userID]
	for i := range list {
		if list[i].HobbyID == hobbyID {
			list[i].Level = level
			uh := list[i]
			return &uh, nil
		}
	}
	uh := models.UserHobby{UserID: userID, HobbyID: hobbyID, Level: level}
	f.hobbies[userID] = append(list, uh)
	return &uh, nil
}

func (f *UserStore) ListUserHobbies(_ context.Context, userID string) ([]models.UserHobby, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.UserHobby{}, f.hobbies[userID]...), nil
}

func (f *UserStore) GetHobbyLevel(_ context.Context, userID, hobbyID string) (recommend.ResourceLevel, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, h := range f.hobbies[userID] {
		if h.HobbyID == hobbyID {
			return h.Level, true, nil
		}
	}
	return "", false, nil
}

func (f *UserStore) UpsertUserResource(_ context.Context, userID string, req models.ResourceInteractionRequest) (*models.UserResource, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.resources[userID] == nil {
		f.resources[userID] = map[string]models.UserResource{}
	}
	ur, ok := f.resources[userID][req.ResourceID]
	if !ok {
		ur = models.UserResource{UserID: userID, ResourceID: req.ResourceID, Status: recommend.StatusNotStarted}
	}
	if req.Saved != nil {
		ur.Saved = *req.Saved
	}
	if req.Status != nil {
		ur.Status = recommend.Status(*req.Status)
	}
	if req.Feedback.Set {
		ur.Feedback = req.Feedback.Value
	}
	ur.UpdatedAt = time.Now()
	f.resources[userID][req.ResourceID] = ur
	return &ur, nil
}

func (f *UserStore) DeleteUserResource(_ context.Context, userID, resourceID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.resources[userID][resourceID]; !ok {
		return false, nil
	}
	delete(f.resources[userID], resourceID)
	return true, nil
}

func (f *UserStore) ListUserResources(_ context.Context, userID string, resourceIDs []string) (map[string]models.UserResource, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := map[string]models.UserResource{}
	for id, ur := range f.resources[userID] {
		if len(resourceIDs) > 0 && !containsString(resourceIDs, id) {
			continue
		}
		out[id] = ur
	}
	return out, nil
}

func (f *UserStore) ListSavedResources(_ context.Context, userID string) (map[string]models.UserResource, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := map[string]models.UserResource{}
	for id, ur := range f.resources[userID] {
		if ur.Saved {
			out[id] = ur
		}
	}
	return out, nil
}

// CatalogStore is an in-memory service.CatalogStore.
type CatalogStore struct {
	Hobbies   []models.Hobby
	Metas     []recommend.HobbyMeta
	Resources []recommend.Resource
	MetaErr   error
}

func (f *CatalogStore) ListHobbies(context.Context) ([]models.Hobby, error) {
	out := make([]models.Hobby, len(f.Hobbies))
	for i, h := range f.Hobbies {
		for _, r := range f.Resources {
			if r.HobbyID == h.ID {
				h.ResourceCount++
			}
		}
		out[i] = h
	}
	return out, nil
}

func (f *CatalogStore) GetHobbyBySlug(_ context.Context, slug string) (*models.Hobby, error) {
	for _, h := range f.Hobbies {
		if h.Slug == slug {
			return &h, nil
		}
	}
	return nil, fmt.Errorf("get hobby %s: %w", slug, sql.ErrNoRows)
}

func (f *CatalogStore) GetHobby(_ context.Context, id string) (*models.Hobby, error) {
	for _, h := range f.Hobbies {
		if h.ID == id {
			return &h, nil
		}
	}
	return nil, fmt.Errorf("get hobby %s: %w", id, sql.ErrNoRows)
}

func (f *CatalogStore) LoadHobbyMeta(context.Context) ([]recommend.HobbyMeta, error) {
	return f.Metas, f.MetaErr
}

func (f *CatalogStore) ListResourcesByHobby(_ context.Context, hobbyID string) ([]recommend.Resource, error) {
	out := []recommend.Resource{}
	for _, r := range f.Resources {
		if r.HobbyID == hobbyID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *CatalogStore) GetResourcesByIDs(_ context.Context, ids []string) ([]recommend.Resource, error) {
	out := []recommend.Resource{}
	for _, r := range f.Resources {
		if containsString(ids, r.ID) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *CatalogStore) ResourceExists(_ context.Context, id string) (bool, error) {
	for _, r := range f.Resources {
		if r.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// FixtureCatalog has two hobbies. Gardening resources cover every level
// and type; music has a single resource.
func FixtureCatalog() *CatalogStore {
	return &CatalogStore{
		Hobbies: []models.Hobby{
			{ID: "h-garden", Slug: "gardening", Name: "Gardening"},
			{ID: "h-music", Slug: "music", Name: "Music"},
		},
		Resources: []recommend.Resource{
			{ID: "g1", HobbyID: "h-garden", Title: "Beginner guide", Type: recommend.TypeArticle, Level: recommend.LevelBeginner, TimeMinutes: minutes(20), FreePaid: recommend.PriceFree, PopularityScore: 0.9, Tags: []string{"a", "b", "c"}},
			{ID: "g2", HobbyID: "h-garden", Title: "Herbs video", Type: recommend.TypeVideo, Level: recommend.LevelBeginner, TimeMinutes: minutes(15), FreePaid: recommend.PriceFree, PopularityScore: 0.85, Tags: []string{"a", "b"}},
			{ID: "g3", HobbyID: "h-garden", Title: "Pest control", Type: recommend.TypeArticle, Level: recommend.LevelIntermediate, TimeMinutes: minutes(25), FreePaid: recommend.PriceFree, PopularityScore: 0.8, Tags: []string{"a", "b"}},
			{ID: "g4", HobbyID: "h-garden", Title: "Soil video", Type: recommend.TypeVideo, Level: recommend.LevelIntermediate, TimeMinutes: minutes(30), FreePaid: recommend.PriceFree, PopularityScore: 0.82, Tags: []string{"a"}},
			{ID: "g5", HobbyID: "h-garden", Title: "Veg course", Type: recommend.TypeCourse, Level: recommend.LevelAdvanced, TimeMinutes: minutes(90), FreePaid: recommend.PricePaid, PopularityScore: 0.75, Tags: []string{"a", "b"}},
			{ID: "g6", HobbyID: "h-garden", Title: "Forum", Type: recommend.TypeCommunity, Level: recommend.LevelBeginner, FreePaid: recommend.PriceFree, PopularityScore: 0.5, Tags: []string{}},
			{ID: "m1", HobbyID: "h-music", Title: "Guitar basics", Type: recommend.TypeVideo, Level: recommend.LevelBeginner, TimeMinutes: minutes(25), FreePaid: recommend.PriceFree, PopularityScore: 0.92, Tags: []string{"a", "b"}},
		},
	}
}

func minutes(n int) *int { return &n }
