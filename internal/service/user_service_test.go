package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hobby-discovery-service/internal/models"
	"hobby-discovery-service/internal/recommend"
	"hobby-discovery-service/internal/service/servicetest"
)

func newUserService(t *testing.T) (*UserService, *servicetest.UserStore) {
	t.Helper()
	users := servicetest.NewUserStore()
	catalog := servicetest.FixtureCatalog()
	recs := NewRecommendationService(users, catalog, nil, time.Minute)
	return NewUserService(users, catalog, recs), users
}

func TestLogin(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	first, err := svc.Login(ctx, models.LoginRequest{Email: "  Ana@Example.com ", Name: ""})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", first.Email)
	assert.Equal(t, "User", first.Name)

	again, err := svc.Login(ctx, models.LoginRequest{Email: "ana@example.com", Name: "Ana"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)

	_, err = svc.Login(ctx, models.LoginRequest{Email: "   "})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSaveProfile(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	_, err := svc.SaveProfile(ctx, "ghost", gardenerProfile())
	assert.ErrorIs(t, err, ErrNotFound)

	user, err := svc.Login(ctx, models.LoginRequest{Email: "ana@example.com"})
	require.NoError(t, err)

	bad := gardenerProfile()
	bad.Budget = "lavish"
	_, err = svc.SaveProfile(ctx, user.ID, bad)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "lavish")

	stored, err := svc.SaveProfile(ctx, user.ID, gardenerProfile())
	require.NoError(t, err)
	assert.Equal(t, user.ID, stored.UserID)

	got, err := svc.GetProfile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, recommend.BudgetLow, got.Budget)
}

func TestGetProfile_Missing(t *testing.T) {
	svc, _ := newUserService(t)
	_, err := svc.GetProfile(context.Background(), "u1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOnboard(t *testing.T) {
	svc, users := newUserService(t)
	ctx := context.Background()

	_, err := users.UpsertUserHobby(ctx, "u1", "h-music", recommend.LevelAdvanced)
	require.NoError(t, err)

	got, err := svc.Onboard(ctx, "u1", models.OnboardingRequest{
		HobbyIDs: []string{"h-garden", "h-music", "h-garden"},
		Levels:   []string{"intermediate"},
		Goals:    []string{"", "play a song"},
	})
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, recommend.LevelIntermediate, got[0].Level)
	assert.Nil(t, got[0].Goals)
	assert.Equal(t, recommend.LevelBeginner, got[1].Level)
	require.NotNil(t, got[1].Goals)
	assert.Equal(t, "play a song", *got[1].Goals)

	stored, err := svc.ListHobbies(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, got, stored)
}

func TestOnboard_Invalid(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	_, err := svc.Onboard(ctx, "u1", models.OnboardingRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Onboard(ctx, "u1", models.OnboardingRequest{HobbyIDs: []string{"h-garden", "h-knitting"}})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAddHobby_KeepsOthers(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	_, err := svc.Onboard(ctx, "u1", models.OnboardingRequest{HobbyIDs: []string{"h-garden"}})
	require.NoError(t, err)

	uh, err := svc.AddHobby(ctx, "u1", models.DashboardHobbyRequest{HobbyID: "h-music"})
	require.NoError(t, err)
	assert.Equal(t, recommend.LevelBeginner, uh.Level)

	uh, err = svc.AddHobby(ctx, "u1", models.DashboardHobbyRequest{HobbyID: "h-garden", Level: "advanced"})
	require.NoError(t, err)
	assert.Equal(t, recommend.LevelAdvanced, uh.Level)

	list, err := svc.ListHobbies(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, list, 2)

	_, err = svc.AddHobby(ctx, "u1", models.DashboardHobbyRequest{HobbyID: "nope"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSetResourceState_PartialUpdate(t *testing.T) {
	svc, users := newUserService(t)
	ctx := context.Background()
	inProgress := "in-progress"

	ur, err := svc.SetResourceState(ctx, "u1", models.ResourceInteractionRequest{ResourceID: "g1", Saved: boolPtr(true)})
	require.NoError(t, err)
	assert.True(t, ur.Saved)
	assert.Equal(t, recommend.StatusNotStarted, ur.Status)

	ur, err = svc.SetResourceState(ctx, "u1", models.ResourceInteractionRequest{
		ResourceID: "g1", Status: &inProgress,
		Feedback: models.OptionalFeedback{Set: true, Value: recommend.FeedbackUp},
	})
	require.NoError(t, err)
	assert.True(t, ur.Saved, "saved must survive an update that omits it")
	assert.Equal(t, recommend.StatusInProgress, ur.Status)
	assert.Equal(t, recommend.FeedbackUp, ur.Feedback)

	ur, err = svc.SetResourceState(ctx, "u1", models.ResourceInteractionRequest{
		ResourceID: "g1", Feedback: models.OptionalFeedback{Set: true},
	})
	require.NoError(t, err)
	assert.Equal(t, recommend.FeedbackNone, ur.Feedback)
	assert.Equal(t, recommend.StatusInProgress, ur.Status)

	all, err := users.ListUserResources(ctx, "u1", nil)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSetResourceState_Invalid(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	_, err := svc.SetResourceState(ctx, "u1", models.ResourceInteractionRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.SetResourceState(ctx, "u1", models.ResourceInteractionRequest{
		ResourceID: "g1", Feedback: models.OptionalFeedback{Set: true, Value: "sideways"},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.SetResourceState(ctx, "u1", models.ResourceInteractionRequest{ResourceID: "missing", Saved: boolPtr(true)})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClearResourceState(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	_, err := svc.SetResourceState(ctx, "u1", models.ResourceInteractionRequest{ResourceID: "g1", Saved: boolPtr(true)})
	require.NoError(t, err)

	require.NoError(t, svc.ClearResourceState(ctx, "u1", "g1"))
	assert.ErrorIs(t, svc.ClearResourceState(ctx, "u1", "g1"), ErrNotFound)
}

func TestHobbies_CountsResources(t *testing.T) {
	svc, _ := newUserService(t)
	hobbies, err := svc.Hobbies(context.Background())
	require.NoError(t, err)
	require.Len(t, hobbies, 2)
	assert.Equal(t, 6, hobbies[0].ResourceCount)
	assert.Equal(t, 1, hobbies[1].ResourceCount)
}
