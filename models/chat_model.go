package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Chat is the single conversation between one seeker and one provider.
// The pair is unique: first contact creates it, later contacts reuse it.
type Chat struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SeekerID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_chat_pair" json:"seeker_id"`
	ProviderID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_chat_pair" json:"provider_id"`

	Seeker   User      `gorm:"foreignkey:SeekerID;constraint:OnDelete:CASCADE" json:"seeker,omitempty"`
	Provider User      `gorm:"foreignkey:ProviderID;constraint:OnDelete:CASCADE" json:"provider,omitempty"`
	Messages []Message `json:"messages,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (c *Chat) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// Participant reports whether userID is one of the two sides of the chat.
func (c *Chat) Participant(userID uuid.UUID) bool {
	return c.SeekerID == userID || c.ProviderID == userID
}

// Counterparty returns the other side of the chat relative to userID.
func (c *Chat) Counterparty(userID uuid.UUID) uuid.UUID {
	if c.SeekerID == userID {
		return c.ProviderID
	}
	return c.SeekerID
}
