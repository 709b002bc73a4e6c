package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tomasgiraldo/serconn/handlers"
)

func SearchRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/search", handlers.SearchProviders)
	api.Get("/categories", handlers.GetCategories)
	api.Get("/providers/:providerId", handlers.GetProviderDetail)
}
