package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tomasgiraldo/serconn/models"
)

// StartOrGetChat returns the chat between seeker and provider, creating it on
// first contact. Calling it again for the same pair returns the same chat.
func StartOrGetChat(db *gorm.DB, seekerID, providerID uuid.UUID) (*models.Chat, error) {
	var provider models.User
	if err := db.First(&provider, "id = ? AND role = ?", providerID, models.RoleProvider).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var chat models.Chat
	err := db.Where("seeker_id = ? AND provider_id = ?", seekerID, providerID).First(&chat).Error
	if err == nil {
		return &chat, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	chat = models.Chat{SeekerID: seekerID, ProviderID: providerID}
	if err := db.Create(&chat).Error; err != nil {
		// A concurrent first contact can win the insert between the lookup
		// and here; the unique pair index reports it as a duplicate.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			var existing models.Chat
			if ferr := db.Where("seeker_id = ? AND provider_id = ?", seekerID, providerID).First(&existing).Error; ferr == nil {
				return &existing, nil
			}
		}
		return nil, err
	}
	return &chat, nil
}

// PostMessage appends a message to the chat with a server-assigned timestamp.
func PostMessage(db *gorm.DB, chatID, senderID uuid.UUID, content string) (*models.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyMessage
	}

	var chat models.Chat
	if err := db.First(&chat, "id = ?", chatID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !chat.Participant(senderID) {
		return nil, ErrPermissionDenied
	}

	message := models.Message{ChatID: chat.ID, SenderID: senderID, Content: content}
	if err := db.Create(&message).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

// ClearMessages hard-deletes every message in the chat. Not reversible.
// Only a participant of the chat may do it.
func ClearMessages(db *gorm.DB, chatID, actorID uuid.UUID) error {
	var chat models.Chat
	if err := db.First(&chat, "id = ?", chatID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if !chat.Participant(actorID) {
		return ErrPermissionDenied
	}
	return db.Where("chat_id = ?", chat.ID).Delete(&models.Message{}).Error
}
