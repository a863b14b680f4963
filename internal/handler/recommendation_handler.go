package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v3"

	"hobby-discovery-service/internal/middleware"
	"hobby-discovery-service/internal/models"
	"hobby-discovery-service/internal/recommend"
	"hobby-discovery-service/internal/service"
)

type RecommendationHandler struct {
	recs      *service.RecommendationService
	resources *service.ResourceService
}

func NewRecommendationHandler(recs *service.RecommendationService, resources *service.ResourceService) *RecommendationHandler {
	return &RecommendationHandler{recs: recs, resources: resources}
}

// resourceQueryParams mirrors the query string of GET /recommendations.
type resourceQueryParams struct {
	Hobby string `validate:"required"`
	Type  string `validate:"omitempty,oneof=video article community course"`
	Level string `validate:"omitempty,oneof=beginner intermediate advanced"`
}

// HobbyRecommendations returns the caller's top hobbies.
// @Summary Rank hobbies for the caller's profile
// @Tags hobbies
// @Produce json
// @Param limit query int false "Number of hobbies" default(3)
// @Success 200 {object} models.HobbyRecommendationResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /hobby-recommendations [get]
func (h *RecommendationHandler) HobbyRecommendations(c fiber.Ctx) error {
	limit := fiber.Query(c, "limit", 3)
	resp, err := h.recs.HobbyRecommendations(c.Context(), middleware.UserID(c), limit)
	if err != nil {
		return respondError(c, err, "Failed to generate recommendations")
	}
	return c.JSON(resp)
}

// Resources returns ranked resources for a hobby. Anonymous callers are
// scored as beginners.
// @Summary List ranked resources for a hobby
// @Tags resources
// @Produce json
// @Param hobby query string true "Hobby slug"
// @Param type query string false "Resource type" Enums(video,article,community,course)
// @Param level query string false "Resource level" Enums(beginner,intermediate,advanced)
// @Param timeMin query int false "Minimum minutes"
// @Param timeMax query int false "Maximum minutes"
// @Param saved query bool false "Only saved resources"
// @Success 200 {array} recommend.ScoredResource
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /recommendations [get]
func (h *RecommendationHandler) Resources(c fiber.Ctx) error {
	params := resourceQueryParams{
		Hobby: c.Query("hobby"),
		Type:  c.Query("type"),
		Level: c.Query("level"),
	}
	if err := models.Validate(params); err != nil {
		return respondInvalid(c, err)
	}

	q := models.ResourceQuery{
		HobbySlug: params.Hobby,
		Type:      params.Type,
		Level:     params.Level,
		SavedOnly: fiber.Query(c, "saved", false),
	}
	var err error
	if q.TimeMin, err = optionalInt(c, "timeMin"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "timeMin must be a non-negative integer"})
	}
	if q.TimeMax, err = optionalInt(c, "timeMax"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "timeMax must be a non-negative integer"})
	}

	items, err := h.resources.Recommend(c.Context(), middleware.UserID(c), q)
	if err != nil {
		return respondError(c, err, "Failed to fetch recommendations")
	}
	return c.JSON(resourceList(items))
}

// Personalized returns the profile-driven shortlist for a hobby.
func (h *RecommendationHandler) Personalized(c fiber.Ctx) error {
	slug := c.Query("hobby")
	if slug == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "hobby is required"})
	}
	items, err := h.resources.Personalized(c.Context(), middleware.UserID(c), slug)
	if err != nil {
		return respondError(c, err, "Failed to fetch recommendations")
	}
	return c.JSON(resourceList(items))
}

// Saved returns the caller's saved resources across hobbies.
func (h *RecommendationHandler) Saved(c fiber.Ctx) error {
	items, err := h.resources.Saved(c.Context(), middleware.UserID(c))
	if err != nil {
		return respondError(c, err, "Failed to fetch saved resources")
	}
	return c.JSON(resourceList(items))
}

func optionalInt(c fiber.Ctx, key string) (*int, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return nil, strconv.ErrSyntax
	}
	return &n, nil
}

func resourceList(items []recommend.ScoredResource) []recommend.ScoredResource {
	if items == nil {
		return []recommend.ScoredResource{}
	}
	return items
}
