package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hobby-discovery-service/internal/middleware"
	"hobby-discovery-service/internal/models"
	"hobby-discovery-service/internal/recommend"
	"hobby-discovery-service/internal/service"
	"hobby-discovery-service/internal/service/servicetest"
)

type testServer struct {
	app   *fiber.App
	users *servicetest.UserStore
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	users := servicetest.NewUserStore()
	catalog := servicetest.FixtureCatalog()

	recs := service.NewRecommendationService(users, catalog, nil, time.Minute)
	resources := service.NewResourceService(users, catalog)
	userSvc := service.NewUserService(users, catalog, recs)

	app := fiber.New()
	RegisterRoutes(app,
		NewUserHandler(userSvc, 30*24*time.Hour),
		NewRecommendationHandler(recs, resources),
	)
	RegisterSwagger(app, []byte("openapi: 3.0.3\n"))
	return &testServer{app: app, users: users}
}

func (s *testServer) do(t *testing.T, method, path, body, userID string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: userID})
	}
	resp, err := s.app.Test(req)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func (s *testServer) login(t *testing.T, email string) string {
	t.Helper()
	resp := s.do(t, http.MethodPost, "/api/v1/auth/login", `{"email":"`+email+`","name":"Ana"}`, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return decode[models.User](t, resp).ID
}

const gardenerProfileJSON = `{
	"motivations": ["stress-relief", "mindfulness"],
	"timeAvailabilityMinutes": 180,
	"schedulePreference": "weekend",
	"skillLevel": "beginner",
	"learningStyle": "projects",
	"budget": "low",
	"environment": "house",
	"socialPreference": "solo",
	"intensity": "gentle",
	"commitmentHorizon": "ongoing"
}`

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	resp := s.do(t, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLogin(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(t, http.MethodPost, "/api/v1/auth/login", `{"email":"ana@example.com"}`, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	user := decode[models.User](t, resp)
	assert.Equal(t, "User", user.Name)

	var cookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == middleware.SessionCookie {
			cookie = c
		}
	}
	require.NotNil(t, cookie)
	assert.Equal(t, user.ID, cookie.Value)

	resp = s.do(t, http.MethodPost, "/api/v1/auth/login", `{"email":"not-an-email"}`, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = s.do(t, http.MethodPost, "/api/v1/auth/login", `{`, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	s := newTestServer(t)
	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/api/v1/profile"},
		{http.MethodPost, "/api/v1/profile"},
		{http.MethodGet, "/api/v1/hobby-recommendations"},
		{http.MethodPost, "/api/v1/onboarding"},
		{http.MethodGet, "/api/v1/saved"},
		{http.MethodPost, "/api/v1/resources"},
	} {
		resp := s.do(t, route.method, route.path, "", "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "%s %s", route.method, route.path)
	}
}

func TestProfileAndHobbyRecommendations(t *testing.T) {
	s := newTestServer(t)
	userID := s.login(t, "ana@example.com")

	resp := s.do(t, http.MethodGet, "/api/v1/hobby-recommendations", "", userID)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = s.do(t, http.MethodPost, "/api/v1/profile", strings.Replace(gardenerProfileJSON, `"low"`, `"lavish"`, 1), userID)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decode[ErrorResponse](t, resp).Error, "Budget")

	resp = s.do(t, http.MethodPost, "/api/v1/profile", gardenerProfileJSON, userID)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = s.do(t, http.MethodGet, "/api/v1/profile", "", userID)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	stored := decode[models.StoredProfile](t, resp)
	assert.Equal(t, recommend.BudgetLow, stored.Budget)

	resp = s.do(t, http.MethodGet, "/api/v1/hobby-recommendations?limit=2", "", userID)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	recs := decode[models.HobbyRecommendationResponse](t, resp)
	require.Len(t, recs.Recommendations, 2)
	assert.Equal(t, "gardening", recs.Recommendations[0].Slug)
	assert.Equal(t, 100, recs.Recommendations[0].Score)
	assert.Equal(t, recommend.MaxHobbyScore, recs.Recommendations[0].MaxScore)
}

func TestResourceRecommendations(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(t, http.MethodGet, "/api/v1/recommendations", "", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = s.do(t, http.MethodGet, "/api/v1/recommendations?hobby=knitting", "", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = s.do(t, http.MethodGet, "/api/v1/recommendations?hobby=gardening&type=podcast", "", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = s.do(t, http.MethodGet, "/api/v1/recommendations?hobby=gardening&timeMin=abc", "", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = s.do(t, http.MethodGet, "/api/v1/recommendations?hobby=gardening", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	all := decode[[]recommend.ScoredResource](t, resp)
	require.Len(t, all, 6)
	assert.Equal(t, "g1", all[0].ID)

	resp = s.do(t, http.MethodGet, "/api/v1/recommendations?hobby=gardening&type=video&timeMax=20", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	videos := decode[[]recommend.ScoredResource](t, resp)
	require.Len(t, videos, 1)
	assert.Equal(t, "g2", videos[0].ID)

	resp = s.do(t, http.MethodGet, "/api/v1/recommendations?hobby=gardening&type=course&level=beginner", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(body))
}

func TestResourceInteractions(t *testing.T) {
	s := newTestServer(t)
	userID := s.login(t, "ana@example.com")

	resp := s.do(t, http.MethodPost, "/api/v1/resources", `{"resourceId":"g2","saved":true,"feedback":"up"}`, userID)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = s.do(t, http.MethodPost, "/api/v1/resources", `{"resourceId":"g2","status":"done"}`, userID)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	ur := decode[models.UserResource](t, resp)
	assert.True(t, ur.Saved)
	assert.Equal(t, recommend.StatusDone, ur.Status)
	assert.Equal(t, recommend.FeedbackUp, ur.Feedback)

	resp = s.do(t, http.MethodGet, "/api/v1/saved", "", userID)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	saved := decode[[]recommend.ScoredResource](t, resp)
	require.Len(t, saved, 1)
	assert.Equal(t, "g2", saved[0].ID)

	resp = s.do(t, http.MethodPost, "/api/v1/resources", `{"resourceId":"g2","feedback":null}`, userID)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, recommend.FeedbackNone, decode[models.UserResource](t, resp).Feedback)

	resp = s.do(t, http.MethodPost, "/api/v1/resources", `{"resourceId":"g2","status":"paused"}`, userID)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = s.do(t, http.MethodPost, "/api/v1/resources", `{"resourceId":"nope","saved":true}`, userID)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = s.do(t, http.MethodDelete, "/api/v1/resources/g2", "", userID)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp = s.do(t, http.MethodDelete, "/api/v1/resources/g2", "", userID)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestOnboardingAndDashboard(t *testing.T) {
	s := newTestServer(t)
	userID := s.login(t, "ana@example.com")

	resp := s.do(t, http.MethodPost, "/api/v1/onboarding", `{"hobbyIds":[]}`, userID)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = s.do(t, http.MethodPost, "/api/v1/onboarding", `{"hobbyIds":["h-garden"],"levels":["intermediate"]}`, userID)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = s.do(t, http.MethodPost, "/api/v1/dashboard-hobby", `{"hobbyId":"h-music"}`, userID)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = s.do(t, http.MethodGet, "/api/v1/dashboard", "", userID)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	hobbies := decode[[]models.UserHobby](t, resp)
	require.Len(t, hobbies, 2)
	assert.Equal(t, recommend.LevelIntermediate, hobbies[0].Level)

	// an intermediate gardener sees intermediate material first
	resp = s.do(t, http.MethodGet, "/api/v1/recommendations?hobby=gardening", "", userID)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "g3", decode[[]recommend.ScoredResource](t, resp)[0].ID)

	resp = s.do(t, http.MethodGet, "/api/v1/hobbies", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[[]models.Hobby](t, resp), 2)
}

func TestPersonalizedRecommendations(t *testing.T) {
	s := newTestServer(t)
	userID := s.login(t, "ana@example.com")

	resp := s.do(t, http.MethodGet, "/api/v1/recommendations/personalized?hobby=gardening", "", userID)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = s.do(t, http.MethodPost, "/api/v1/profile", gardenerProfileJSON, userID)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = s.do(t, http.MethodGet, "/api/v1/recommendations/personalized?hobby=gardening", "", userID)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode[[]recommend.ScoredResource](t, resp)
	// projects learners on a low budget get free or freemium beginner videos
	require.Len(t, got, 1)
	assert.Equal(t, "g2", got[0].ID)
}

func TestSwagger(t *testing.T) {
	s := newTestServer(t)
	resp := s.do(t, http.MethodGet, "/swagger/doc.yaml", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/yaml", resp.Header.Get("Content-Type"))
}
