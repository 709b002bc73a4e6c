package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tomasgiraldo/serconn/database"
	"github.com/tomasgiraldo/serconn/models"
	"github.com/tomasgiraldo/serconn/services"
)

// SearchProviders is the main catalog view. All filters come from the query
// string and apply together; see services.SearchProviders for the matching
// rules.
func SearchProviders(c *fiber.Ctx) error {
	filters := services.SearchFilters{
		Query:             c.Query("query"),
		Category:          c.Query("category"),
		City:              c.Query("city"),
		AvailabilityStart: c.Query("availability_start"),
		AvailabilityEnd:   c.Query("availability_end"),
	}

	providers, err := services.SearchProviders(database.DB, filters)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to search providers"})
	}

	var categories []models.ServiceCategory
	database.DB.Order("name asc").Find(&categories)

	return c.JSON(fiber.Map{
		"providers":  providers,
		"categories": categories,
		"cities":     models.Cities,
		"filters": fiber.Map{
			"query":              filters.Query,
			"category":           filters.Category,
			"city":               filters.City,
			"availability_start": filters.AvailabilityStart,
			"availability_end":   filters.AvailabilityEnd,
		},
	})
}

func GetCategories(c *fiber.Ctx) error {
	var categories []models.ServiceCategory
	if err := database.DB.Order("name asc").Find(&categories).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load categories"})
	}
	return c.JSON(categories)
}

// GetProviderDetail is the public provider page: profile plus offered services.
func GetProviderDetail(c *fiber.Ctx) error {
	providerID := c.Params("providerId")

	var provider models.ServiceProvider
	err := database.DB.
		Preload("User").
		Preload("Experiences.Categories").
		Preload("Availabilities").
		First(&provider, "id = ?", providerID).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Provider not found"})
	}

	var offered []models.Service
	database.DB.Preload("Category").Where("provider_id = ?", provider.ID).Find(&offered)

	return c.JSON(fiber.Map{
		"provider":         provider,
		"services_offered": offered,
	})
}
