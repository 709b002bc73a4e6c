package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleSeeker   Role = "service_seeker"
	RoleProvider Role = "service_provider"
)

const (
	VerificationVerified   = "verificado"
	VerificationUnverified = "no_verificado"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	FirstName    string    `gorm:"size:150;not null" json:"first_name"`
	LastName     string    `gorm:"size:150;not null" json:"last_name"`
	Email        string    `gorm:"size:255;not null;unique" json:"email"`
	Password     string    `gorm:"not null" json:"-"`
	Role         Role      `gorm:"size:20;not null" json:"role"`
	City         string    `gorm:"size:20;not null" json:"city"`
	Verification string    `gorm:"size:20;not null;default:'no_verificado'" json:"verification"`
	Birthdate    time.Time `gorm:"not null" json:"birthdate"`
	Phone        string    `gorm:"size:20;not null" json:"phone"`
	Address      string    `gorm:"size:100;not null" json:"address"`
	Score        float64   `gorm:"default:5.0" json:"score"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// FullName as shown in notifications and chat headers.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// Cities of the Medellin metropolitan area accepted at registration.
var Cities = []string{
	"medellin",
	"envigado",
	"bello",
	"sabaneta",
	"itagui",
	"la_estrella",
	"caldas",
	"copacabana",
	"girardota",
	"barbosa",
}

func ValidCity(city string) bool {
	for _, c := range Cities {
		if c == city {
			return true
		}
	}
	return false
}
