package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tomasgiraldo/serconn/handlers"
	"github.com/tomasgiraldo/serconn/middleware"
)

func RequestRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	requests := api.Group("/requests", middleware.Protected())
	requests.Get("/open", middleware.ProviderRequired(), handlers.GetOpenServiceRequests)
	requests.Get("/me", middleware.SeekerRequired(), handlers.GetMyServiceRequests)
	requests.Post("", middleware.SeekerRequired(), handlers.CreateServiceRequest)
	requests.Post("/:requestId/cancel", middleware.SeekerRequired(), handlers.CancelServiceRequest)
}
