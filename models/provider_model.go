package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ServiceProvider is the 1:1 profile a provider user publishes in the catalog.
type ServiceProvider struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;unique" json:"user_id"`
	Description string    `gorm:"type:text" json:"description"`

	User           User                 `gorm:"foreignkey:UserID;constraint:OnDelete:CASCADE" json:"user"`
	Services       []Service            `gorm:"foreignkey:ProviderID" json:"services,omitempty"`
	Experiences    []ProviderExperience `gorm:"foreignkey:ProviderID" json:"experiences,omitempty"`
	Availabilities []Availability       `gorm:"foreignkey:ProviderID" json:"availabilities,omitempty"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (p *ServiceProvider) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
