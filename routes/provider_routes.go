package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tomasgiraldo/serconn/handlers"
	"github.com/tomasgiraldo/serconn/middleware"
)

func ProviderRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	provider := api.Group("/provider", middleware.Protected(), middleware.ProviderRequired())
	provider.Get("/me", handlers.GetMyProviderProfile)
	provider.Put("/me", handlers.UpdateMyProviderProfile)

	provider.Get("/services", handlers.GetMyServices)
	provider.Post("/services", handlers.AddService)
	provider.Delete("/services/:serviceId", handlers.DeleteService)

	provider.Get("/experiences", handlers.GetMyExperiences)
	provider.Post("/experiences", handlers.AddExperience)

	provider.Get("/availability", handlers.GetMyAvailability)
	provider.Post("/availability", handlers.CreateAvailability)
	provider.Delete("/availability/:availabilityId", handlers.DeleteAvailability)
}
