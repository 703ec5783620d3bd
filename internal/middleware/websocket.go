package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// WebSocketUpgrade ensures that requests to WebSocket endpoints are valid WebSocket connection attempts.
// It also checks that the board and client ids are present before allowing the upgrade.
func WebSocketUpgrade() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}

		boardID := c.Params("boardId")
		if boardID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "board ID is required",
			})
		}

		// Set by EnsureClientID
		clientID := c.Locals("clientID")
		if clientID == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "client ID is required",
			})
		}

		// The connection context is different from the upgrade context,
		// so carry the ids over in locals.
		c.Locals("wsBoardID", boardID)
		c.Locals("wsClientID", clientID)

		return c.Next()
	}
}
