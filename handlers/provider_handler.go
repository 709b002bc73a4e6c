package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tomasgiraldo/serconn/database"
	"github.com/tomasgiraldo/serconn/models"
	"github.com/tomasgiraldo/serconn/utils"
)

// providerProfile fetches the caller's provider profile, creating it lazily
// on first provider action if registration somehow skipped it.
func providerProfile(userID uuid.UUID) (*models.ServiceProvider, error) {
	var profile models.ServiceProvider
	err := database.DB.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = models.ServiceProvider{UserID: userID}
		err = database.DB.Create(&profile).Error
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func GetMyProviderProfile(c *fiber.Ctx) error {
	profile, err := providerProfile(currentUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load provider profile"})
	}

	var full models.ServiceProvider
	err = database.DB.
		Preload("User").
		Preload("Services.Category").
		Preload("Experiences.Categories").
		Preload("Availabilities").
		First(&full, "id = ?", profile.ID).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load provider profile"})
	}
	return c.JSON(full)
}

type UpdateProviderProfileRequest struct {
	Description string `json:"description" validate:"required"`
}

func UpdateMyProviderProfile(c *fiber.Ctx) error {
	var req UpdateProviderProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": utils.FieldErrors(err)})
	}

	profile, err := providerProfile(currentUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load provider profile"})
	}

	profile.Description = req.Description
	if err := database.DB.Save(profile).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update provider profile"})
	}
	return c.JSON(profile)
}

type AddServiceRequest struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Description string  `json:"description" validate:"required"`
	Rate        float64 `json:"rate" validate:"gte=0"`
	CategoryID  *string `json:"category_id" validate:"omitempty,uuid"`
}

func AddService(c *fiber.Ctx) error {
	var req AddServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": utils.FieldErrors(err)})
	}

	profile, err := providerProfile(currentUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load provider profile"})
	}

	service := models.Service{
		ProviderID:  profile.ID,
		Name:        req.Name,
		Description: req.Description,
		Rate:        req.Rate,
	}
	if req.CategoryID != nil {
		categoryID, _ := uuid.Parse(*req.CategoryID)
		var category models.ServiceCategory
		if err := database.DB.First(&category, "id = ?", categoryID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Category not found"})
		}
		service.CategoryID = &category.ID
	}

	if err := database.DB.Create(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create service"})
	}
	return c.Status(fiber.StatusCreated).JSON(service)
}

func GetMyServices(c *fiber.Ctx) error {
	profile, err := providerProfile(currentUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load provider profile"})
	}

	var services []models.Service
	database.DB.Preload("Category").Where("provider_id = ?", profile.ID).Order("created_at desc").Find(&services)
	return c.JSON(services)
}

func DeleteService(c *fiber.Ctx) error {
	profile, err := providerProfile(currentUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load provider profile"})
	}

	var service models.Service
	if err := database.DB.First(&service, "id = ? AND provider_id = ?", c.Params("serviceId"), profile.ID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Service not found"})
	}

	database.DB.Delete(&service)
	return c.SendStatus(fiber.StatusNoContent)
}

type AddExperienceRequest struct {
	Name        string   `json:"name" validate:"required,max=100"`
	Months      float64  `json:"months" validate:"required,gt=0"`
	Company     string   `json:"company" validate:"max=100"`
	CategoryIDs []string `json:"category_ids" validate:"dive,uuid"`
}

func AddExperience(c *fiber.Ctx) error {
	var req AddExperienceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": utils.FieldErrors(err)})
	}

	profile, err := providerProfile(currentUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load provider profile"})
	}

	var categories []*models.ServiceCategory
	if len(req.CategoryIDs) > 0 {
		if err := database.DB.Where("id IN ?", req.CategoryIDs).Find(&categories).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load categories"})
		}
	}

	experience := models.ProviderExperience{
		ProviderID: profile.ID,
		Name:       req.Name,
		Months:     req.Months,
		Company:    req.Company,
		Categories: categories,
	}
	if err := database.DB.Create(&experience).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create experience"})
	}
	return c.Status(fiber.StatusCreated).JSON(experience)
}

func GetMyExperiences(c *fiber.Ctx) error {
	profile, err := providerProfile(currentUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load provider profile"})
	}

	var experiences []models.ProviderExperience
	database.DB.Preload("Categories").Where("provider_id = ?", profile.ID).Find(&experiences)
	return c.JSON(experiences)
}

type CreateAvailabilityRequest struct {
	StartTime string `json:"start_time" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	EndTime   string `json:"end_time" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
}

func CreateAvailability(c *fiber.Ctx) error {
	var req CreateAvailabilityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": utils.FieldErrors(err)})
	}

	startTime, _ := time.Parse(time.RFC3339, req.StartTime)
	endTime, _ := time.Parse(time.RFC3339, req.EndTime)
	if !startTime.Before(endTime) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Start time must be before end time"})
	}

	profile, err := providerProfile(currentUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load provider profile"})
	}

	availability := models.Availability{
		ProviderID: profile.ID,
		StartTime:  startTime,
		EndTime:    endTime,
	}
	if err := database.DB.Create(&availability).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create availability"})
	}
	return c.Status(fiber.StatusCreated).JSON(availability)
}

func GetMyAvailability(c *fiber.Ctx) error {
	profile, err := providerProfile(currentUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load provider profile"})
	}

	var availabilities []models.Availability
	database.DB.Where("provider_id = ?", profile.ID).Order("start_time asc").Find(&availabilities)
	return c.JSON(availabilities)
}

func DeleteAvailability(c *fiber.Ctx) error {
	profile, err := providerProfile(currentUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load provider profile"})
	}

	var availability models.Availability
	if err := database.DB.First(&availability, "id = ? AND provider_id = ?", c.Params("availabilityId"), profile.ID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Availability not found"})
	}

	database.DB.Delete(&availability)
	return c.SendStatus(fiber.StatusNoContent)
}
