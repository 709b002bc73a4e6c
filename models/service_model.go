package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service survives the deletion of its category: the foreign key is nulled,
// never cascaded.
type Service struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	ProviderID  uuid.UUID  `gorm:"type:uuid;not null" json:"-"`
	CategoryID  *uuid.UUID `gorm:"type:uuid" json:"category_id"`
	Name        string     `gorm:"size:200;not null" json:"name"`
	Description string     `gorm:"type:text;not null" json:"description"`
	Rate        float64    `gorm:"type:numeric(10,2);not null" json:"rate"`

	Provider ServiceProvider  `gorm:"foreignkey:ProviderID;constraint:OnDelete:CASCADE" json:"-"`
	Category *ServiceCategory `gorm:"foreignkey:CategoryID;constraint:OnDelete:SET NULL" json:"category,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
