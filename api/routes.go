package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler SchedulerHandler, limiter fiber.Handler) {
	app.Get("/health", handler.Health)

	api := app.Group("/api")
	v1 := api.Group("/v1", limiter)
	{
		v1.Get("/algorithms", handler.Algorithms)
		v1.Get("/presets", handler.Presets)
		v1.Get("/random", handler.Random)
		v1.Post("/schedule/:algorithm?", handler.Schedule)
		v1.Post("/compare", handler.Compare)
	}
}
