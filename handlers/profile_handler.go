package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tomasgiraldo/serconn/database"
	"github.com/tomasgiraldo/serconn/models"
	"github.com/tomasgiraldo/serconn/utils"
)

func GetProfile(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}
	return c.JSON(user)
}

type UpdateProfileRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email" validate:"omitempty,email"`
	City      *string `json:"city" validate:"omitempty,metro_city"`
	Address   *string `json:"address" validate:"omitempty,max=100"`
	Phone     *string `json:"phone" validate:"omitempty,phone_digits"`
}

// UpdateProfile edits the mutable profile fields. The role is fixed at
// registration and cannot be changed here.
func UpdateProfile(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": utils.FieldErrors(err)})
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.City != nil {
		user.City = *req.City
	}
	if req.Address != nil {
		user.Address = *req.Address
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}

	if err := database.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update profile"})
	}
	return c.JSON(user)
}

// GetUserProfile is the public view of another user.
func GetUserProfile(c *fiber.Ctx) error {
	userID := c.Params("userId")

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	return c.JSON(fiber.Map{
		"id":           user.ID,
		"first_name":   user.FirstName,
		"last_name":    user.LastName,
		"city":         user.City,
		"verification": user.Verification,
		"score":        user.Score,
		"role":         user.Role,
	})
}

// Dashboard lists the caller's bookings through their side of the chats,
// newest start time first.
func Dashboard(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	side := "chats.seeker_id"
	if user.Role == models.RoleProvider {
		side = "chats.provider_id"
	}

	var bookings []models.Booking
	err := database.DB.
		Preload("Chat.Seeker").
		Preload("Chat.Provider").
		Preload("Service").
		Joins("JOIN chats ON chats.id = bookings.chat_id").
		Where(side+" = ?", userID).
		Order("bookings.start_time desc").
		Find(&bookings).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load bookings"})
	}

	return c.JSON(fiber.Map{
		"role":     user.Role,
		"bookings": bookings,
	})
}
