package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"
)

const (
	// SessionCookie holds the ID of the logged-in user.
	SessionCookie = "hobbyspring_user_id"
	userIDKey     = "user_id"
)

// Session copies the session cookie into c.Locals so handlers can read it
// with UserID. Requests without the cookie pass through anonymously.
func Session() fiber.Handler {
	return func(c fiber.Ctx) error {
		if id := c.Cookies(SessionCookie); id != "" {
			c.Locals(userIDKey, id)
		}
		return c.Next()
	}
}

// RequireSession rejects requests that have no session.
func RequireSession() fiber.Handler {
	return func(c fiber.Ctx) error {
		if UserID(c) == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Not authenticated",
			})
		}
		return c.Next()
	}
}

// UserID returns the session user or "" for anonymous requests.
func UserID(c fiber.Ctx) string {
	id, _ := c.Locals(userIDKey).(string)
	return id
}

// StartSession sets the session cookie for userID.
func StartSession(c fiber.Ctx, userID string, maxAge time.Duration) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    userID,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// EndSession expires the session cookie.
func EndSession(c fiber.Ctx) {
	c.ClearCookie(SessionCookie)
}
