package middleware

import (
	"log"
	"strings"

	"lapak/pkg/auth"

	"github.com/gofiber/fiber/v2"
)

// AuthRequired is a Fiber middleware that resolves the Bearer token to a
// signed-in identity before letting the request through.
func AuthRequired(sessions auth.SessionProvider) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header is required",
			})
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header format must be 'Bearer <token>'",
			})
		}

		identity, err := sessions.CurrentUser(parts[1])
		if err != nil {
			log.Printf("Session validation failed: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired token",
				"error":   err.Error(),
			})
		}

		// Store the identity in the Fiber context for subsequent handlers
		c.Locals("identity_id", identity.ID)
		c.Locals("identity_email", identity.Email)

		return c.Next()
	}
}
