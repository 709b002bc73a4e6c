package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Notification records a booking status change for the counterparty.
// It is created inside the same transaction as the status change and is
// never mutated afterwards except for the read flag.
type Notification struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	RecipientID uuid.UUID  `gorm:"type:uuid;not null" json:"recipient_id"`
	BookingID   *uuid.UUID `gorm:"type:uuid" json:"booking_id"`
	Message     string     `gorm:"size:255;not null" json:"message"`
	IsRead      bool       `gorm:"not null;default:false" json:"is_read"`

	Recipient User     `gorm:"foreignkey:RecipientID;constraint:OnDelete:CASCADE" json:"-"`
	Booking   *Booking `gorm:"foreignkey:BookingID;constraint:OnDelete:CASCADE" json:"booking,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}
