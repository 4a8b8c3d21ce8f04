package main

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/jack-barr3tt/railchat/src/common/utils"
	"github.com/jack-barr3tt/railchat/src/http-api/api"
	"github.com/joho/godotenv"
)

func main() {
	// Missing .env is fine in environments that set real env vars.
	_ = godotenv.Load()

	utils.InitLogger()
	defer utils.SyncLogger()
	log := utils.GetLogger()

	app := fiber.New()

	app.Use(requestid.New())

	app.Use(func(c *fiber.Ctx) error {
		path := c.Path()
		method := c.Method()

		if path != "/health" {
			log.Infow("request", "method", method, "path", path, "status", c.Response().StatusCode())
		}

		return c.Next()
	})

	app.Use(cors.New())

	server, err := api.NewServer()
	if err != nil {
		log.Fatalw("failed to start http api server", "error", err)
		return
	}

	app.Get("/health", server.GetHealth)
	app.Post("/api/rail-query", server.PostRailQuery)
	app.Static("/", "./static")
	app.Static("/static", "./static")

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	if err := app.Listen(":" + port); err != nil {
		log.Fatalw("fiber listen failed", "error", err)
	}
}
