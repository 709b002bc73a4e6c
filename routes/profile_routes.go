package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tomasgiraldo/serconn/handlers"
	"github.com/tomasgiraldo/serconn/middleware"
)

func ProfileRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	profile := api.Group("/profile/me", middleware.Protected())
	profile.Get("", handlers.GetProfile)
	profile.Put("", handlers.UpdateProfile)

	api.Get("/dashboard", middleware.Protected(), handlers.Dashboard)
	api.Get("/users/:userId", middleware.Protected(), handlers.GetUserProfile)
}
