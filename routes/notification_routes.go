package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tomasgiraldo/serconn/handlers"
	"github.com/tomasgiraldo/serconn/middleware"
)

func NotificationRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	notifications := api.Group("/notifications", middleware.Protected())
	notifications.Get("", handlers.GetNotifications)
	notifications.Get("/unread-count", handlers.GetUnreadCount)
}
