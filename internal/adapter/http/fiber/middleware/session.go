package middleware

import (
	"regexp"

	"github.com/gofiber/fiber/v2"
)

// Session tokens are generated client-side: "kl-" plus 64 hex characters.
var sessionPattern = regexp.MustCompile(`^kl-[a-f0-9]{64}$`)

// SessionRequired extracts the anonymous session token from the X-Session-ID
// header and rejects requests with a missing or malformed one. The token is
// stored in the request locals as "session_id".
func SessionRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID := c.Get("X-Session-ID")
		if sessionID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing session header"})
		}
		if !sessionPattern.MatchString(sessionID) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid session format"})
		}

		c.Locals("session_id", sessionID)
		return c.Next()
	}
}
