package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RequestStatus string

const (
	RequestPending    RequestStatus = "pending"
	RequestInProgress RequestStatus = "in_progress"
	RequestCompleted  RequestStatus = "completed"
	RequestCancelled  RequestStatus = "cancelled"
)

// ServiceRequest is an open request a seeker publishes without targeting a
// specific provider. Both sides confirm completion independently.
type ServiceRequest struct {
	ID                uuid.UUID     `gorm:"type:uuid;primary_key" json:"id"`
	SeekerID          uuid.UUID     `gorm:"type:uuid;not null" json:"seeker_id"`
	Description       string        `gorm:"type:text;not null" json:"description"`
	Status            RequestStatus `gorm:"size:20;not null;default:'pending'" json:"status"`
	SeekerConfirmed   bool          `gorm:"not null;default:false" json:"seeker_confirmed"`
	ProviderConfirmed bool          `gorm:"not null;default:false" json:"provider_confirmed"`

	Seeker User `gorm:"foreignkey:SeekerID;constraint:OnDelete:CASCADE" json:"seeker,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (r *ServiceRequest) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
