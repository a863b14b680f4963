package handler

import (
	"github.com/gofiber/fiber/v3"

	"hobby-discovery-service/internal/middleware"
)

// RegisterRoutes mounts the API. Session is resolved for every /api/v1
// request; routes that need a user reject anonymous callers.
func RegisterRoutes(app *fiber.App, users *UserHandler, recs *RecommendationHandler) {
	app.Get("/health", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "hobby-discovery-service",
		})
	})

	api := app.Group("/api/v1", middleware.Session())
	auth := middleware.RequireSession()

	api.Post("/auth/login", users.Login)
	api.Post("/auth/logout", users.Logout)

	// Profile
	api.Get("/profile", auth, users.GetProfile)
	api.Post("/profile", auth, users.SaveProfile)

	// Hobbies
	api.Get("/hobbies", users.Hobbies)
	api.Get("/hobby-recommendations", auth, recs.HobbyRecommendations)
	api.Post("/onboarding", auth, users.Onboarding)
	api.Post("/dashboard-hobby", auth, users.DashboardHobby)
	api.Get("/dashboard", auth, users.Dashboard)

	// Resources
	api.Get("/recommendations", recs.Resources)
	api.Get("/recommendations/personalized", auth, recs.Personalized)
	api.Get("/saved", auth, recs.Saved)
	api.Post("/resources", auth, users.SetResource)
	api.Delete("/resources/:id", auth, users.ClearResource)
}
