package handler

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"hobby-discovery-service/internal/middleware"
	"hobby-discovery-service/internal/models"
	"hobby-discovery-service/internal/service"
)

type UserHandler struct {
	svc           *service.UserService
	sessionMaxAge time.Duration
}

func NewUserHandler(svc *service.UserService, sessionMaxAge time.Duration) *UserHandler {
	return &UserHandler{svc: svc, sessionMaxAge: sessionMaxAge}
}

// Login finds or creates the user and starts a session.
func (h *UserHandler) Login(c fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.Bind().JSON(&req); err != nil {
		return respondInvalid(c, err)
	}
	if err := models.Validate(req); err != nil {
		return respondInvalid(c, err)
	}

	user, err := h.svc.Login(c.Context(), req)
	if err != nil {
		return respondError(c, err, "Failed to login")
	}

	middleware.StartSession(c, user.ID, h.sessionMaxAge)
	return c.JSON(user)
}

// Logout ends the session.
func (h *UserHandler) Logout(c fiber.Ctx) error {
	middleware.EndSession(c)
	return c.JSON(fiber.Map{"success": true})
}

// GetProfile returns the caller's profile.
func (h *UserHandler) GetProfile(c fiber.Ctx) error {
	p, err := h.svc.GetProfile(c.Context(), middleware.UserID(c))
	if err != nil {
		return respondError(c, err, "Failed to fetch profile")
	}
	return c.JSON(p)
}

// SaveProfile creates or replaces the caller's profile.
func (h *UserHandler) SaveProfile(c fiber.Ctx) error {
	var req models.ProfileRequest
	if err := c.Bind().JSON(&req); err != nil {
		return respondInvalid(c, err)
	}
	if err := models.Validate(req); err != nil {
		return respondInvalid(c, err)
	}

	p, err := h.svc.SaveProfile(c.Context(), middleware.UserID(c), req.Profile())
	if err != nil {
		return respondError(c, err, "Failed to save profile")
	}
	return c.JSON(p)
}

// Hobbies lists every hobby with its resource count.
func (h *UserHandler) Hobbies(c fiber.Ctx) error {
	hobbies, err := h.svc.Hobbies(c.Context())
	if err != nil {
		return respondError(c, err, "Failed to fetch hobbies")
	}
	return c.JSON(hobbies)
}

// Onboarding replaces the caller's hobbies.
func (h *UserHandler) Onboarding(c fiber.Ctx) error {
	var req models.OnboardingRequest
	if err := c.Bind().JSON(&req); err != nil {
		return respondInvalid(c, err)
	}
	if err := models.Validate(req); err != nil {
		return respondInvalid(c, err)
	}

	hobbies, err := h.svc.Onboard(c.Context(), middleware.UserID(c), req)
	if err != nil {
		return respondError(c, err, "Failed to complete onboarding")
	}
	return c.JSON(hobbies)
}

// DashboardHobby adds one hobby without touching the others.
func (h *UserHandler) DashboardHobby(c fiber.Ctx) error {
	var req models.DashboardHobbyRequest
	if err := c.Bind().JSON(&req); err != nil {
		return respondInvalid(c, err)
	}
	if err := models.Validate(req); err != nil {
		return respondInvalid(c, err)
	}

	uh, err := h.svc.AddHobby(c.Context(), middleware.UserID(c), req)
	if err != nil {
		return respondError(c, err, "Failed to add hobby")
	}
	return c.JSON(uh)
}

// Dashboard lists the caller's hobbies.
func (h *UserHandler) Dashboard(c fiber.Ctx) error {
	hobbies, err := h.svc.ListHobbies(c.Context(), middleware.UserID(c))
	if err != nil {
		return respondError(c, err, "Failed to fetch dashboard")
	}
	return c.JSON(hobbies)
}

// SetResource updates the caller's saved, status and feedback state for a
// resource.
func (h *UserHandler) SetResource(c fiber.Ctx) error {
	var req models.ResourceInteractionRequest
	if err := c.Bind().JSON(&req); err != nil {
		return respondInvalid(c, err)
	}
	if err := models.Validate(req); err != nil {
		return respondInvalid(c, err)
	}

	ur, err := h.svc.SetResourceState(c.Context(), middleware.UserID(c), req)
	if err != nil {
		return respondError(c, err, "Failed to update resource")
	}
	return c.JSON(ur)
}

// ClearResource forgets the caller's state for a resource.
func (h *UserHandler) ClearResource(c fiber.Ctx) error {
	if err := h.svc.ClearResourceState(c.Context(), middleware.UserID(c), c.Params("id")); err != nil {
		return respondError(c, err, "Failed to clear resource")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
