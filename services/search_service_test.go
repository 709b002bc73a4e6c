package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/tomasgiraldo/serconn/models"
)

func providerIDs(providers []models.ServiceProvider) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(providers))
	for _, p := range providers {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestSearchExcludesProvidersWithoutServices(t *testing.T) {
	db := setupTestDB(t)
	_, withService := createProvider(t, db, "Andres", "medellin", "Plomero")
	createService(t, db, withService, nil, "Reparación de tuberías")
	_, empty := createProvider(t, db, "Julian", "medellin", "Perfil sin servicios")

	results, err := SearchProviders(db, SearchFilters{})
	require.NoError(t, err)
	ids := providerIDs(results)
	assert.Contains(t, ids, withService.ID)
	assert.NotContains(t, ids, empty.ID)

	// Even if every other filter matches the empty profile.
	results, err = SearchProviders(db, SearchFilters{City: "medellin", Query: "sin servicios"})
	require.NoError(t, err)
	assert.NotContains(t, providerIDs(results), empty.ID)
}

func TestSearchCategoryAndCityScenario(t *testing.T) {
	db := setupTestDB(t)
	plumbing := createCategory(t, db, "Plomería")
	electrical := createCategory(t, db, "Electricidad")

	_, medellinPlumber := createProvider(t, db, "Andres", "medellin", "Plomero en Medellín")
	createService(t, db, medellinPlumber, plumbing, "Reparación de tuberías")

	_, belloPlumber := createProvider(t, db, "Julian", "bello", "Plomero en Bello")
	createService(t, db, belloPlumber, plumbing, "Destape de cañerías")

	_, medellinElectrician := createProvider(t, db, "Pedro", "medellin", "Electricista")
	createService(t, db, medellinElectrician, electrical, "Instalación eléctrica")

	results, err := SearchProviders(db, SearchFilters{Category: "Plomería", City: "medellin"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, medellinPlumber.ID, results[0].ID)
}

func TestSearchFreeTextMatchesAnySubField(t *testing.T) {
	db := setupTestDB(t)
	_, byDescription := createProvider(t, db, "Andres", "medellin", "Experto en jardines verticales")
	createService(t, db, byDescription, nil, "Poda")
	_, byName := createProvider(t, db, "Jardinelia", "bello", "Profesional")
	createService(t, db, byName, nil, "Mantenimiento")
	_, byService := createProvider(t, db, "Pedro", "itagui", "Profesional")
	createService(t, db, byService, nil, "Diseño de jardines")
	_, unrelated := createProvider(t, db, "Mario", "caldas", "Cerrajero")
	createService(t, db, unrelated, nil, "Apertura de puertas")

	results, err := SearchProviders(db, SearchFilters{Query: "JARDIN"})
	require.NoError(t, err)
	ids := providerIDs(results)
	assert.Contains(t, ids, byDescription.ID)
	assert.Contains(t, ids, byName.ID)
	assert.Contains(t, ids, byService.ID)
	assert.NotContains(t, ids, unrelated.ID)
}

func TestSearchFiltersCombineWithAnd(t *testing.T) {
	db := setupTestDB(t)
	cleaning := createCategory(t, db, "Limpieza")

	_, match := createProvider(t, db, "Andres", "medellin", "Limpieza profesional de hogares")
	createService(t, db, match, cleaning, "Aseo general")

	_, wrongCity := createProvider(t, db, "Julian", "bello", "Limpieza profesional")
	createService(t, db, wrongCity, cleaning, "Aseo general")

	results, err := SearchProviders(db, SearchFilters{Query: "limpieza", Category: "Limpieza", City: "medellin"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, match.ID, results[0].ID)
}

func TestSearchDeduplicatesMultiServiceMatches(t *testing.T) {
	db := setupTestDB(t)
	_, profile := createProvider(t, db, "Andres", "medellin", "Plomero")
	createService(t, db, profile, nil, "Reparación de tuberías")
	createService(t, db, profile, nil, "Instalación de tuberías")

	results, err := SearchProviders(db, SearchFilters{Query: "tuberías"})
	require.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Len(t, results[0].Services, 2)
}

func addAvailability(t *testing.T, db *gorm.DB, profile *models.ServiceProvider, start, end time.Time) {
	t.Helper()
	require.NoError(t, db.Create(&models.Availability{ProviderID: profile.ID, StartTime: start, EndTime: end}).Error)
}

func TestSearchAvailabilityRequiresContainment(t *testing.T) {
	db := setupTestDB(t)
	day := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	_, contains := createProvider(t, db, "Andres", "medellin", "Plomero")
	createService(t, db, contains, nil, "Reparación")
	addAvailability(t, db, contains, day.Add(8*time.Hour), day.Add(18*time.Hour))

	_, overlaps := createProvider(t, db, "Julian", "medellin", "Plomero")
	createService(t, db, overlaps, nil, "Reparación")
	addAvailability(t, db, overlaps, day.Add(11*time.Hour), day.Add(13*time.Hour))

	filters := SearchFilters{
		AvailabilityStart: day.Add(10 * time.Hour).Format(time.RFC3339),
		AvailabilityEnd:   day.Add(14 * time.Hour).Format(time.RFC3339),
	}
	results, err := SearchProviders(db, filters)
	require.NoError(t, err)
	ids := providerIDs(results)
	assert.Contains(t, ids, contains.ID)
	assert.NotContains(t, ids, overlaps.ID, "mere overlap is not containment")
}

func TestSearchMalformedWindowIsIgnored(t *testing.T) {
	db := setupTestDB(t)
	_, profile := createProvider(t, db, "Andres", "medellin", "Plomero")
	createService(t, db, profile, nil, "Reparación")

	// No availability rows at all: a valid window would exclude the provider,
	// a malformed one must leave the filter out entirely.
	results, err := SearchProviders(db, SearchFilters{
		AvailabilityStart: "no es una fecha",
		AvailabilityEnd:   "tampoco",
	})
	require.NoError(t, err)
	assert.Contains(t, providerIDs(results), profile.ID)
}

func TestSearchAcceptsDatetimeLocalInput(t *testing.T) {
	db := setupTestDB(t)
	day := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	_, profile := createProvider(t, db, "Andres", "medellin", "Plomero")
	createService(t, db, profile, nil, "Reparación")
	addAvailability(t, db, profile, day.Add(8*time.Hour), day.Add(18*time.Hour))

	results, err := SearchProviders(db, SearchFilters{
		AvailabilityStart: "2026-09-14T10:00",
		AvailabilityEnd:   "2026-09-14T12:00",
	})
	require.NoError(t, err)
	assert.Contains(t, providerIDs(results), profile.ID)
}
