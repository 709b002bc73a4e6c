package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tomasgiraldo/serconn/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// A single connection keeps every session on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.ServiceProvider{},
		&models.ProviderExperience{},
		&models.ServiceCategory{},
		&models.Service{},
		&models.Availability{},
		&models.Chat{},
		&models.Message{},
		&models.Booking{},
		&models.Notification{},
		&models.ServiceRequest{},
	))
	return db
}

func createUser(t *testing.T, db *gorm.DB, role models.Role, firstName, city string) *models.User {
	t.Helper()
	user := models.User{
		FirstName: firstName,
		LastName:  "Giraldo",
		Email:     firstName + "-" + uuid.NewString()[:8] + "@example.com",
		Password:  "x",
		Role:      role,
		City:      city,
		Birthdate: time.Date(1990, 5, 10, 0, 0, 0, 0, time.UTC),
		Phone:     "3001234567",
		Address:   "Calle 10 # 20-30",
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createProvider(t *testing.T, db *gorm.DB, firstName, city, description string) (*models.User, *models.ServiceProvider) {
	t.Helper()
	user := createUser(t, db, models.RoleProvider, firstName, city)
	profile := models.ServiceProvider{UserID: user.ID, Description: description}
	require.NoError(t, db.Create(&profile).Error)
	return user, &profile
}

func createCategory(t *testing.T, db *gorm.DB, name string) *models.ServiceCategory {
	t.Helper()
	category := models.ServiceCategory{Name: name}
	require.NoError(t, db.Create(&category).Error)
	return &category
}

func createService(t *testing.T, db *gorm.DB, provider *models.ServiceProvider, category *models.ServiceCategory, name string) *models.Service {
	t.Helper()
	service := models.Service{
		ProviderID:  provider.ID,
		Name:        name,
		Description: "Servicio de " + name,
		Rate:        50000,
	}
	if category != nil {
		service.CategoryID = &category.ID
	}
	require.NoError(t, db.Create(&service).Error)
	return &service
}

func createChat(t *testing.T, db *gorm.DB, seeker, provider *models.User) *models.Chat {
	t.Helper()
	chat, err := StartOrGetChat(db, seeker.ID, provider.ID)
	require.NoError(t, err)
	return chat
}

func createPendingBooking(t *testing.T, db *gorm.DB, chat *models.Chat, service *models.Service) *models.Booking {
	t.Helper()
	start := time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC)
	booking, err := CreateBooking(db, chat.ID, service.ID, chat.SeekerID, start, start.Add(2*time.Hour), "traer herramientas")
	require.NoError(t, err)
	return booking
}

func notificationsFor(t *testing.T, db *gorm.DB, userID uuid.UUID) []models.Notification {
	t.Helper()
	var notes []models.Notification
	require.NoError(t, db.Where("recipient_id = ?", userID).Order("created_at desc").Find(&notes).Error)
	return notes
}
