package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
	BookingRejected  BookingStatus = "rejected"
)

// Terminal reports whether no further transition is defined out of s.
func (s BookingStatus) Terminal() bool {
	return s == BookingCompleted || s == BookingCancelled || s == BookingRejected
}

// Booking is a time-boxed service request created by the seeker side of a
// chat. Once decided it is never hard-deleted, only transitioned.
type Booking struct {
	ID        uuid.UUID     `gorm:"type:uuid;primary_key" json:"id"`
	ChatID    uuid.UUID     `gorm:"type:uuid;not null" json:"chat_id"`
	ServiceID uuid.UUID     `gorm:"type:uuid;not null" json:"service_id"`
	StartTime time.Time     `gorm:"not null" json:"start_time"`
	EndTime   time.Time     `gorm:"not null" json:"end_time"`
	Status    BookingStatus `gorm:"size:20;not null;default:'pending'" json:"status"`
	Notes     string        `gorm:"type:text" json:"notes"`

	Chat    Chat    `gorm:"foreignkey:ChatID;constraint:OnDelete:CASCADE" json:"chat,omitempty"`
	Service Service `gorm:"foreignkey:ServiceID" json:"service,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
