package main

import (
	"os"

	"github.com/benbeisheim/movegen-backend/internal/config"
	"github.com/benbeisheim/movegen-backend/internal/controller"
	"github.com/benbeisheim/movegen-backend/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.Debug {
		log.SetLevel(log.LevelDebug)
	}

	app := fiber.New()

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.OriginList(),
		AllowHeaders: "Origin, Content-Type, Accept, X-Client-ID",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))

	// Initialize services
	boardManager := service.NewBoardManager()
	boardService := service.NewBoardService(boardManager)

	// Initialize controllers
	boardController := controller.NewBoardController(boardService)
	wsController := controller.NewWebSocketController(boardService)

	controller.RegisterRoutes(app, boardController, wsController)

	log.Infof("listening on %s", cfg.Addr)
	log.Fatal(app.Listen(cfg.Addr))
}
