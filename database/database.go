package database

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	config "github.com/tomasgiraldo/serconn/configs"
	"github.com/tomasgiraldo/serconn/models"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	dsn := config.Config("DATABASE_URL")

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}

	fmt.Println("✅ Database connected successfully")
}

func Migrate() {
	err := DB.AutoMigrate(
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
	)
	if err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}
	fmt.Println("✅ Database migration successful")
}

// SeedCategories inserts the default service categories once.
func SeedCategories() {
	names := []string{
		"Plomería",
		"Electricidad",
		"Carpintería",
		"Limpieza",
		"Jardinería",
		"Pintura",
		"Cerrajería",
		"Clases particulares",
		"Cuidado de mascotas",
		"Mudanzas",
	}

	for _, name := range names {
		category := models.ServiceCategory{Name: name}
		if err := DB.Where("name = ?", name).FirstOrCreate(&category).Error; err != nil {
			log.Fatalf("🔥 Failed to seed category %q: %v", name, err)
		}
	}
	log.Println("✅ Service categories seeded")
}
