package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type Options struct {
	AppName string
	// ClientURL — origin фронтенда; cookie сессии ходит cross-site, поэтому credentials
	ClientURL string
}

func NewServer(opts Options, modules ...Module) *fiber.App {
	app := fiber.New(fiber.Config{AppName: opts.AppName})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     opts.ClientURL,
		AllowCredentials: true,
	}))

	api := app.Group("/api")

	// регистрация модулей
	for _, m := range modules {
		m.Register(api)
	}

	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("OneLoginLink Backend is running") })
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"status": "ok"}) })
	return app
}
