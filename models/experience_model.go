package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProviderExperience is a past work entry a provider lists on their profile.
type ProviderExperience struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ProviderID uuid.UUID `gorm:"type:uuid;not null" json:"-"`
	Name       string    `gorm:"size:100;not null" json:"name"`
	Months     float64   `gorm:"not null" json:"months"`
	Company    string    `gorm:"size:100" json:"company"`

	Provider   ServiceProvider    `gorm:"foreignkey:ProviderID;constraint:OnDelete:CASCADE" json:"-"`
	Categories []*ServiceCategory `gorm:"many2many:experience_categories;" json:"categories,omitempty"`

	CreatedAt time.Time `json:"-"`
}

func (e *ProviderExperience) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
