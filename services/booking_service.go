package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tomasgiraldo/serconn/models"
)

const (
	DecisionAccept = "accept"
	DecisionReject = "reject"
)

// CreateBooking registers a pending booking request on the chat. Only the
// seeker side of the chat may create one, and the service must belong to the
// provider side. Creation itself does not notify anyone; notifications are
// emitted on status transitions.
func CreateBooking(db *gorm.DB, chatID, serviceID, actorID uuid.UUID, start, end time.Time, notes string) (*models.Booking, error) {
	if !start.Before(end) {
		return nil, ErrInvalidTimeRange
	}

	var chat models.Chat
	if err := db.First(&chat, "id = ?", chatID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if chat.SeekerID != actorID {
		return nil, ErrPermissionDenied
	}

	var service models.Service
	if err := db.Preload("Provider").First(&service, "id = ?", serviceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if service.Provider.UserID != chat.ProviderID {
		return nil, ErrPermissionDenied
	}

	booking := models.Booking{
		ChatID:    chat.ID,
		ServiceID: service.ID,
		StartTime: start,
		EndTime:   end,
		Status:    models.BookingPending,
		Notes:     notes,
	}
	if err := db.Create(&booking).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// RespondToBooking lets the provider of the booking's chat accept or reject a
// pending request. The status change and the seeker's notification commit in
// one transaction; a racing second response loses the guarded update and sees
// ErrInvalidTransition.
func RespondToBooking(db *gorm.DB, bookingID, actorID uuid.UUID, decision string) (*models.Booking, error) {
	booking, err := loadBooking(db, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Chat.ProviderID != actorID {
		return nil, ErrPermissionDenied
	}

	var next models.BookingStatus
	var text string
	switch decision {
	case DecisionAccept:
		next = models.BookingConfirmed
		text = fmt.Sprintf("Tu reserva de %s ha sido confirmada.", booking.Service.Name)
	case DecisionReject:
		next = models.BookingRejected
		text = fmt.Sprintf("Tu solicitud de reserva de %s ha sido rechazada.", booking.Service.Name)
	default:
		return nil, ErrInvalidDecision
	}

	err = transition(db, booking, []models.BookingStatus{models.BookingPending}, next, booking.Chat.SeekerID, text)
	if err != nil {
		return nil, err
	}
	booking.Status = next
	return booking, nil
}

// CancelBooking lets the seeker cancel a booking that is still open, whether
// the provider has confirmed it or not. The provider is notified atomically
// with the status change.
func CancelBooking(db *gorm.DB, bookingID, actorID uuid.UUID) (*models.Booking, error) {
	booking, err := loadBooking(db, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Chat.SeekerID != actorID {
		return nil, ErrPermissionDenied
	}

	text := fmt.Sprintf("%s ha cancelado la reserva de %s.", booking.Chat.Seeker.FullName(), booking.Service.Name)
	err = transition(db, booking,
		[]models.BookingStatus{models.BookingPending, models.BookingConfirmed},
		models.BookingCancelled, booking.Chat.ProviderID, text)
	if err != nil {
		return nil, err
	}
	booking.Status = models.BookingCancelled
	return booking, nil
}

// CompleteBooking lets the provider close out a confirmed booking once the
// work is done. The seeker is notified atomically with the status change.
func CompleteBooking(db *gorm.DB, bookingID, actorID uuid.UUID) (*models.Booking, error) {
	booking, err := loadBooking(db, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Chat.ProviderID != actorID {
		return nil, ErrPermissionDenied
	}

	text := fmt.Sprintf("Tu reserva de %s ha sido marcada como completada.", booking.Service.Name)
	err = transition(db, booking,
		[]models.BookingStatus{models.BookingConfirmed},
		models.BookingCompleted, booking.Chat.SeekerID, text)
	if err != nil {
		return nil, err
	}
	booking.Status = models.BookingCompleted
	return booking, nil
}

// AutoCompleteFinished transitions confirmed bookings whose end time has
// passed to completed, with the usual fan-out. Used by the cron job. Returns
// how many bookings were closed.
func AutoCompleteFinished(db *gorm.DB, now time.Time) (int, error) {
	var due []models.Booking
	err := db.Preload("Chat").Preload("Service").
		Where("status = ? AND end_time < ?", models.BookingConfirmed, now).
		Find(&due).Error
	if err != nil {
		return 0, err
	}

	closed := 0
	for i := range due {
		booking := &due[i]
		text := fmt.Sprintf("Tu reserva de %s ha sido marcada como completada.", booking.Service.Name)
		err := transition(db, booking,
			[]models.BookingStatus{models.BookingConfirmed},
			models.BookingCompleted, booking.Chat.SeekerID, text)
		if errors.Is(err, ErrInvalidTransition) {
			// Someone else decided it between the scan and the update.
			continue
		}
		if err != nil {
			return closed, err
		}
		closed++
	}
	return closed, nil
}

func loadBooking(db *gorm.DB, bookingID uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	err := db.Preload("Chat").Preload("Chat.Seeker").Preload("Service").
		First(&booking, "id = ?", bookingID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &booking, nil
}

// transition applies a status change guarded by the set of allowed prior
// statuses and creates the counterparty's notification in the same
// transaction. The conditional UPDATE serializes racing writers: only the
// first one matches a row, the rest get ErrInvalidTransition.
func transition(db *gorm.DB, booking *models.Booking, from []models.BookingStatus, to models.BookingStatus, recipientID uuid.UUID, text string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Booking{}).
			Where("id = ? AND status IN ?", booking.ID, from).
			Update("status", to)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInvalidTransition
		}

		notification := models.Notification{
			RecipientID: recipientID,
			BookingID:   &booking.ID,
			Message:     text,
		}
		return tx.Create(&notification).Error
	})
}
