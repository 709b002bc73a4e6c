package services

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tomasgiraldo/serconn/models"
)

// ListNotifications returns the recipient's notifications newest first.
// Opening the list marks every unread one as read; the update and the fetch
// run in one transaction and the returned items carry the post-read state.
func ListNotifications(db *gorm.DB, recipientID uuid.UUID) ([]models.Notification, error) {
	var items []models.Notification
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Notification{}).
			Where("recipient_id = ? AND is_read = ?", recipientID, false).
			Update("is_read", true).Error; err != nil {
			return err
		}
		return tx.Where("recipient_id = ?", recipientID).
			Order("created_at desc").
			Find(&items).Error
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// UnreadCount reports how many notifications the recipient has not opened
// yet. Only listing resets it; reads by other users never touch it.
func UnreadCount(db *gorm.DB, recipientID uuid.UUID) (int64, error) {
	var count int64
	err := db.Model(&models.Notification{}).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Count(&count).Error
	return count, err
}
