package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/tomasgiraldo/serconn/database"
	"github.com/tomasgiraldo/serconn/models"
	"github.com/tomasgiraldo/serconn/notifications"
	"github.com/tomasgiraldo/serconn/services"
	"github.com/tomasgiraldo/serconn/utils"
)

type CreateBookingRequest struct {
	ChatID    string `json:"chat_id" validate:"required,uuid"`
	ServiceID string `json:"service_id" validate:"required,uuid"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
	Notes     string `json:"notes"`
}

// CreateBooking lets the seeker of a chat request one of the provider's
// services for a time window. The booking starts out pending.
func CreateBooking(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": utils.FieldErrors(err)})
	}

	chatID, _ := uuid.Parse(req.ChatID)
	serviceID, _ := uuid.Parse(req.ServiceID)

	startTime, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "start_time must be RFC3339"})
	}
	endTime, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "end_time must be RFC3339"})
	}

	booking, err := services.CreateBooking(database.DB, chatID, serviceID, userID, startTime, endTime, req.Notes)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(booking)
}

type BookingDecisionRequest struct {
	Decision string `json:"decision" validate:"required,oneof=accept reject"`
}

// RespondToBooking records the provider's accept or reject decision and
// notifies the seeker.
func RespondToBooking(c *fiber.Ctx) error {
	userID := currentUserID(c)

	bookingID, err := uuid.Parse(c.Params("bookingId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking id"})
	}

	var req BookingDecisionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": utils.FieldErrors(err)})
	}

	booking, err := services.RespondToBooking(database.DB, bookingID, userID, req.Decision)
	if err != nil {
		return mapServiceError(c, err)
	}

	go func(b *models.Booking, accepted bool) {
		subject, body := notifications.BookingDecisionEmail(b.Service.Name, accepted)
		notifications.SendEmail(b.Chat.Seeker.FullName(), b.Chat.Seeker.Email, subject, body)
	}(booking, req.Decision == services.DecisionAccept)

	return c.JSON(booking)
}

// CancelBooking lets the seeker withdraw a pending or confirmed booking.
func CancelBooking(c *fiber.Ctx) error {
	userID := currentUserID(c)

	bookingID, err := uuid.Parse(c.Params("bookingId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking id"})
	}

	booking, err := services.CancelBooking(database.DB, bookingID, userID)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(booking)
}

// CompleteBooking lets the provider close out a confirmed booking.
func CompleteBooking(c *fiber.Ctx) error {
	userID := currentUserID(c)

	bookingID, err := uuid.Parse(c.Params("bookingId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking id"})
	}

	booking, err := services.CompleteBooking(database.DB, bookingID, userID)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.JSON(booking)
}

// GetChatBookings lists the bookings attached to a chat, newest first.
func GetChatBookings(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var chat models.Chat
	if err := database.DB.First(&chat, "id = ?", c.Params("chatId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Chat not found"})
	}
	if !chat.Participant(userID) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "No tienes permiso para realizar esta acción."})
	}

	var bookings []models.Booking
	if err := database.DB.
		Preload("Service").
		Where("chat_id = ?", chat.ID).
		Order("created_at desc").
		Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch bookings"})
	}
	return c.JSON(bookings)
}
