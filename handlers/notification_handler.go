package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tomasgiraldo/serconn/database"
	"github.com/tomasgiraldo/serconn/services"
)

// GetNotifications returns the caller's notifications, newest first. Opening
// the list marks everything as read, so the unread badge resets.
func GetNotifications(c *fiber.Ctx) error {
	items, err := services.ListNotifications(database.DB, currentUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch notifications"})
	}
	return c.JSON(items)
}

func GetUnreadCount(c *fiber.Ctx) error {
	count, err := services.UnreadCount(database.DB, currentUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to count notifications"})
	}
	return c.JSON(fiber.Map{"unread_count": count})
}
