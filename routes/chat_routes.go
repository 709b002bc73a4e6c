package routes

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/tomasgiraldo/serconn/handlers"
	"github.com/tomasgiraldo/serconn/middleware"
)

func ChatRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	chats := api.Group("/chats", middleware.Protected())
	chats.Get("", handlers.GetMyChats)
	chats.Post("/with/:providerId", middleware.SeekerRequired(), handlers.StartChat)
	chats.Get("/:chatId/messages", handlers.GetChatMessages)
	chats.Post("/:chatId/messages", handlers.SendMessage)
	chats.Delete("/:chatId/messages", handlers.ClearChat)
	chats.Get("/:chatId/bookings", handlers.GetChatBookings)

	api.Use("/ws", func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		return c.Next()
	})
	api.Get("/ws", websocket.New(handlers.ServeWs))
}
