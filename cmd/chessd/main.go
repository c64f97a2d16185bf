// chessd serves chess games over HTTP and websocket: create a game, ask
// for legal destinations, attempt moves, and watch state pushes.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/websocket/v2"

	"chessd/internal/controller"
	"chessd/internal/middleware"
	"chessd/internal/service"
)

var (
	addr    = flag.String("addr", envOr("CHESSD_ADDR", ":3000"), "listen address")
	origins = flag.String("origins", envOr("CHESSD_ORIGINS", "*"), "comma-separated allowed CORS origins")
)

func main() {
	flag.Parse()

	app := fiber.New(fiber.Config{
		AppName: "chessd",
	})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: *origins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, OPTIONS",
	}))

	gameManager := service.NewGameManager()
	gameService := service.NewGameService(gameManager)

	gameController := controller.NewGameController(gameService)
	wsController := controller.NewWebSocketController(gameService)

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	gameController.RegisterRoutes(app.Group("/api/game"))

	app.Use("/ws/game/:gameId", middleware.WebSocketUpgrade())
	app.Get("/ws/game/:gameId", websocket.New(wsController.HandleConnection))

	log.Fatal(app.Listen(*addr))
}

// envOr reads an environment variable with a fallback, so flags carry
// env-provided defaults.
func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
