package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tomasgiraldo/serconn/handlers"
	"github.com/tomasgiraldo/serconn/middleware"
)

func BookingRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	booking := api.Group("/bookings", middleware.Protected())
	booking.Post("", middleware.SeekerRequired(), handlers.CreateBooking)
	booking.Post("/:bookingId/cancel", middleware.SeekerRequired(), handlers.CancelBooking)

	providerBooking := api.Group("/provider/bookings", middleware.Protected(), middleware.ProviderRequired())
	providerBooking.Post("/:bookingId/respond", handlers.RespondToBooking)
	providerBooking.Post("/:bookingId/complete", handlers.CompleteBooking)
}
