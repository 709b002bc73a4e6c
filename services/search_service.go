package services

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tomasgiraldo/serconn/models"
)

// SearchFilters carries the recognized catalog filter options, raw from the
// query string. Empty fields are not applied.
type SearchFilters struct {
	Query             string
	Category          string
	City              string
	AvailabilityStart string
	AvailabilityEnd   string
}

// Accepted timestamp layouts for the availability window. The second one is
// what datetime-local form inputs submit.
var windowLayouts = []string{time.RFC3339, "2006-01-02T15:04"}

// SearchProviders applies the catalog filters over providers that offer at
// least one service. Filters combine with AND; the free-text filter matches
// any of its sub-fields (provider description, user name, service name and
// description, case-insensitive substring). The availability filter keeps
// providers with a declared interval fully containing the requested window
// and is skipped silently when the timestamps do not parse. A provider
// matching through several services still appears once.
func SearchProviders(db *gorm.DB, filters SearchFilters) ([]models.ServiceProvider, error) {
	q := db.Model(&models.ServiceProvider{}).
		Joins("JOIN users ON users.id = service_providers.user_id").
		Joins("JOIN services ON services.provider_id = service_providers.id")

	if filters.Query != "" {
		like := "%" + strings.ToLower(filters.Query) + "%"
		q = q.Where(
			"LOWER(service_providers.description) LIKE ? OR LOWER(users.first_name) LIKE ? OR LOWER(users.last_name) LIKE ? OR LOWER(services.name) LIKE ? OR LOWER(services.description) LIKE ?",
			like, like, like, like, like,
		)
	}
	if filters.Category != "" {
		q = q.Joins("JOIN service_categories ON service_categories.id = services.category_id").
			Where("service_categories.name = ?", filters.Category)
	}
	if filters.City != "" {
		q = q.Where("users.city = ?", filters.City)
	}
	if start, end, ok := parseWindow(filters.AvailabilityStart, filters.AvailabilityEnd); ok {
		q = q.Joins("JOIN availabilities ON availabilities.provider_id = service_providers.id").
			Where("availabilities.start_time <= ? AND availabilities.end_time >= ?", start, end)
	}

	var ids []uuid.UUID
	if err := q.Distinct("service_providers.id").Pluck("service_providers.id", &ids).Error; err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []models.ServiceProvider{}, nil
	}

	var providers []models.ServiceProvider
	err := db.Preload("User").Preload("Services.Category").
		Where("id IN ?", ids).
		Find(&providers).Error
	return providers, err
}

func parseWindow(startStr, endStr string) (time.Time, time.Time, bool) {
	if startStr == "" || endStr == "" {
		return time.Time{}, time.Time{}, false
	}
	start, ok := parseTimestamp(startStr)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	end, ok := parseTimestamp(endStr)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

func parseTimestamp(s string) (time.Time, bool) {
	for _, layout := range windowLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
