package controller

import (
	"github.com/benbeisheim/movegen-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// RegisterRoutes mounts the REST API under /api and the board socket under /ws.
func RegisterRoutes(app *fiber.App, bc *BoardController, wsc *WebSocketController) {
	app.Get("/ws/board/:boardId", middleware.EnsureClientID(), middleware.WebSocketUpgrade(), websocket.New(wsc.HandleConnection, websocket.Config{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}))

	api := app.Group("/api")
	api.Get("/health", bc.Health)

	boardRoutes := api.Group("/board")
	boardRoutes.Post("/create", bc.CreateBoard)
	boardRoutes.Get("/:boardId", bc.GetBoard)
	boardRoutes.Delete("/:boardId", bc.DeleteBoard)
	boardRoutes.Post("/:boardId/reset", bc.ResetBoard)
	boardRoutes.Put("/:boardId/square", bc.PlacePiece)
	boardRoutes.Get("/:boardId/square/:row/:column", bc.GetSquare)
	boardRoutes.Delete("/:boardId/square/:row/:column", bc.ClearSquare)
	boardRoutes.Get("/:boardId/moves", bc.GetTeamMoves)
	boardRoutes.Get("/:boardId/moves/:row/:column", bc.GetMoves)
}
