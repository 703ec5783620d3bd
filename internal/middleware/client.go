package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// EnsureClientID resolves the caller's client id from the X-Client-ID header
// or the clientId query parameter and stores it in Locals("clientID").
func EnsureClientID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Locals("clientID") != nil {
			return c.Next()
		}

		clientID := c.Get("X-Client-ID")
		if clientID == "" {
			clientID = c.Query("clientId")
		}
		if clientID == "" {
			log.Debugf("rejecting %s %s: no client id", c.Method(), c.Path())
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Client ID is required. Please ensure client is properly initialized.",
			})
		}

		c.Locals("clientID", clientID)
		return c.Next()
	}
}
