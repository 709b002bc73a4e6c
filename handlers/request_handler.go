package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tomasgiraldo/serconn/database"
	"github.com/tomasgiraldo/serconn/models"
	"github.com/tomasgiraldo/serconn/utils"
)

type CreateServiceRequestRequest struct {
	Description string `json:"description" validate:"required,min=10"`
}

// CreateServiceRequest publishes an open request so providers can reach out
// instead of waiting to be found through search.
func CreateServiceRequest(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req CreateServiceRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": utils.FieldErrors(err)})
	}

	request := models.ServiceRequest{
		SeekerID:    userID,
		Description: req.Description,
		Status:      models.RequestPending,
	}
	if err := database.DB.Create(&request).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create request"})
	}
	return c.Status(fiber.StatusCreated).JSON(request)
}

func GetMyServiceRequests(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var requests []models.ServiceRequest
	if err := database.DB.
		Where("seeker_id = ?", userID).
		Order("created_at desc").
		Find(&requests).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch requests"})
	}
	return c.JSON(requests)
}

// GetOpenServiceRequests lists pending requests for providers to browse.
func GetOpenServiceRequests(c *fiber.Ctx) error {
	var requests []models.ServiceRequest
	if err := database.DB.
		Preload("Seeker").
		Where("status = ?", models.RequestPending).
		Order("created_at desc").
		Find(&requests).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch requests"})
	}
	return c.JSON(requests)
}

// CancelServiceRequest withdraws a pending request. Only the owner can cancel
// and only while it is still pending.
func CancelServiceRequest(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var request models.ServiceRequest
	if err := database.DB.First(&request, "id = ? AND seeker_id = ?", c.Params("requestId"), userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Request not found"})
	}
	if request.Status != models.RequestPending {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "La solicitud ya no admite esta acción."})
	}

	request.Status = models.RequestCancelled
	if err := database.DB.Save(&request).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to cancel request"})
	}
	return c.JSON(request)
}
