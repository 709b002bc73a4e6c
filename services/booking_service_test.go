package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/tomasgiraldo/serconn/models"
)

type bookingFixture struct {
	db       *gorm.DB
	seeker   *models.User
	provider *models.User
	service  *models.Service
	chat     *models.Chat
}

func newBookingFixture(t *testing.T) *bookingFixture {
	db := setupTestDB(t)
	seeker := createUser(t, db, models.RoleSeeker, "Camila", "medellin")
	providerUser, profile := createProvider(t, db, "Andres", "medellin", "Plomero con 10 anos de experiencia")
	category := createCategory(t, db, "Plomería")
	service := createService(t, db, profile, category, "Reparación de tuberías")
	chat := createChat(t, db, seeker, providerUser)
	return &bookingFixture{db: db, seeker: seeker, provider: providerUser, service: service, chat: chat}
}

func TestCreateBookingRoundTrip(t *testing.T) {
	f := newBookingFixture(t)

	start := time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC)
	end := start.Add(3 * time.Hour)
	booking, err := CreateBooking(f.db, f.chat.ID, f.service.ID, f.seeker.ID, start, end, "portería del edificio")
	require.NoError(t, err)

	var stored models.Booking
	require.NoError(t, f.db.First(&stored, "id = ?", booking.ID).Error)
	assert.Equal(t, models.BookingPending, stored.Status)
	assert.True(t, stored.StartTime.Equal(start))
	assert.True(t, stored.EndTime.Equal(end))
	assert.Equal(t, "portería del edificio", stored.Notes)

	// Creation alone notifies nobody.
	assert.Empty(t, notificationsFor(t, f.db, f.provider.ID))
	assert.Empty(t, notificationsFor(t, f.db, f.seeker.ID))
}

func TestCreateBookingRejectsBadTimeRange(t *testing.T) {
	f := newBookingFixture(t)

	start := time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC)
	_, err := CreateBooking(f.db, f.chat.ID, f.service.ID, f.seeker.ID, start, start, "")
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	_, err = CreateBooking(f.db, f.chat.ID, f.service.ID, f.seeker.ID, start, start.Add(-time.Hour), "")
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestCreateBookingOnlyBySeekerOfChat(t *testing.T) {
	f := newBookingFixture(t)
	start := time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC)

	_, err := CreateBooking(f.db, f.chat.ID, f.service.ID, f.provider.ID, start, start.Add(time.Hour), "")
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestCreateBookingServiceMustBelongToChatProvider(t *testing.T) {
	f := newBookingFixture(t)
	_, otherProfile := createProvider(t, f.db, "Julian", "bello", "Electricista")
	otherService := createService(t, f.db, otherProfile, nil, "Instalación eléctrica")

	start := time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC)
	_, err := CreateBooking(f.db, f.chat.ID, otherService.ID, f.seeker.ID, start, start.Add(time.Hour), "")
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestRespondToBookingAccept(t *testing.T) {
	f := newBookingFixture(t)
	booking := createPendingBooking(t, f.db, f.chat, f.service)

	updated, err := RespondToBooking(f.db, booking.ID, f.provider.ID, DecisionAccept)
	require.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, updated.Status)

	notes := notificationsFor(t, f.db, f.seeker.ID)
	require.Len(t, notes, 1)
	assert.Contains(t, notes[0].Message, "Reparación de tuberías")
	assert.Contains(t, notes[0].Message, "confirmada")
	assert.False(t, notes[0].IsRead)
	require.NotNil(t, notes[0].BookingID)
	assert.Equal(t, booking.ID, *notes[0].BookingID)
}

func TestRespondToBookingReject(t *testing.T) {
	f := newBookingFixture(t)
	booking := createPendingBooking(t, f.db, f.chat, f.service)

	updated, err := RespondToBooking(f.db, booking.ID, f.provider.ID, DecisionReject)
	require.NoError(t, err)
	assert.Equal(t, models.BookingRejected, updated.Status)

	notes := notificationsFor(t, f.db, f.seeker.ID)
	require.Len(t, notes, 1)
	assert.Contains(t, notes[0].Message, "Reparación de tuberías")
	assert.Contains(t, notes[0].Message, "rechazada")
}

func TestRespondToBookingOnlyByProvider(t *testing.T) {
	f := newBookingFixture(t)
	booking := createPendingBooking(t, f.db, f.chat, f.service)

	for _, actor := range []*models.User{f.seeker, createUser(t, f.db, models.RoleProvider, "Pedro", "itagui")} {
		_, err := RespondToBooking(f.db, booking.ID, actor.ID, DecisionAccept)
		assert.ErrorIs(t, err, ErrPermissionDenied)
	}

	var stored models.Booking
	require.NoError(t, f.db.First(&stored, "id = ?", booking.ID).Error)
	assert.Equal(t, models.BookingPending, stored.Status)
}

func TestRespondToBookingInvalidDecision(t *testing.T) {
	f := newBookingFixture(t)
	booking := createPendingBooking(t, f.db, f.chat, f.service)

	_, err := RespondToBooking(f.db, booking.ID, f.provider.ID, "maybe")
	assert.ErrorIs(t, err, ErrInvalidDecision)
}

func TestTerminalStatesAreFinal(t *testing.T) {
	f := newBookingFixture(t)

	terminal := []models.BookingStatus{models.BookingCompleted, models.BookingCancelled, models.BookingRejected}
	for _, status := range terminal {
		booking := createPendingBooking(t, f.db, f.chat, f.service)
		require.NoError(t, f.db.Model(&models.Booking{}).Where("id = ?", booking.ID).Update("status", status).Error)

		_, err := RespondToBooking(f.db, booking.ID, f.provider.ID, DecisionAccept)
		assert.ErrorIs(t, err, ErrInvalidTransition)

		_, err = CancelBooking(f.db, booking.ID, f.seeker.ID)
		assert.ErrorIs(t, err, ErrInvalidTransition)

		_, err = CompleteBooking(f.db, booking.ID, f.provider.ID)
		assert.ErrorIs(t, err, ErrInvalidTransition)

		var stored models.Booking
		require.NoError(t, f.db.First(&stored, "id = ?", booking.ID).Error)
		assert.Equal(t, status, stored.Status, "terminal status must not move")
	}
}

func TestSecondResponseLosesTheRace(t *testing.T) {
	f := newBookingFixture(t)
	booking := createPendingBooking(t, f.db, f.chat, f.service)

	_, err := RespondToBooking(f.db, booking.ID, f.provider.ID, DecisionAccept)
	require.NoError(t, err)

	_, err = RespondToBooking(f.db, booking.ID, f.provider.ID, DecisionReject)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	var stored models.Booking
	require.NoError(t, f.db.First(&stored, "id = ?", booking.ID).Error)
	assert.Equal(t, models.BookingConfirmed, stored.Status)

	// Only the winning transition fanned out.
	assert.Len(t, notificationsFor(t, f.db, f.seeker.ID), 1)
}

func TestCancelPendingBooking(t *testing.T) {
	f := newBookingFixture(t)
	booking := createPendingBooking(t, f.db, f.chat, f.service)

	updated, err := CancelBooking(f.db, booking.ID, f.seeker.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCancelled, updated.Status)

	notes := notificationsFor(t, f.db, f.provider.ID)
	require.Len(t, notes, 1)
	assert.Contains(t, notes[0].Message, "Camila")
	assert.Contains(t, notes[0].Message, "Reparación de tuberías")
}

func TestCancelConfirmedBooking(t *testing.T) {
	f := newBookingFixture(t)
	booking := createPendingBooking(t, f.db, f.chat, f.service)
	_, err := RespondToBooking(f.db, booking.ID, f.provider.ID, DecisionAccept)
	require.NoError(t, err)

	updated, err := CancelBooking(f.db, booking.ID, f.seeker.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCancelled, updated.Status)

	notes := notificationsFor(t, f.db, f.provider.ID)
	require.Len(t, notes, 1)
	assert.Contains(t, notes[0].Message, "ha cancelado")
}

func TestCancelBookingOnlyBySeeker(t *testing.T) {
	f := newBookingFixture(t)
	booking := createPendingBooking(t, f.db, f.chat, f.service)

	_, err := CancelBooking(f.db, booking.ID, f.provider.ID)
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestCompleteBooking(t *testing.T) {
	f := newBookingFixture(t)
	booking := createPendingBooking(t, f.db, f.chat, f.service)
	_, err := RespondToBooking(f.db, booking.ID, f.provider.ID, DecisionAccept)
	require.NoError(t, err)

	updated, err := CompleteBooking(f.db, booking.ID, f.provider.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCompleted, updated.Status)

	// accept + complete, exactly one notification each
	assert.Len(t, notificationsFor(t, f.db, f.seeker.ID), 2)
}

func TestCompleteBookingRequiresConfirmed(t *testing.T) {
	f := newBookingFixture(t)
	booking := createPendingBooking(t, f.db, f.chat, f.service)

	_, err := CompleteBooking(f.db, booking.ID, f.provider.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestAutoCompleteFinished(t *testing.T) {
	f := newBookingFixture(t)

	confirmed := createPendingBooking(t, f.db, f.chat, f.service)
	_, err := RespondToBooking(f.db, confirmed.ID, f.provider.ID, DecisionAccept)
	require.NoError(t, err)

	stillPending := createPendingBooking(t, f.db, f.chat, f.service)

	after := confirmed.EndTime.Add(time.Hour)
	closed, err := AutoCompleteFinished(f.db, after)
	require.NoError(t, err)
	assert.Equal(t, 1, closed)

	var stored models.Booking
	require.NoError(t, f.db.First(&stored, "id = ?", confirmed.ID).Error)
	assert.Equal(t, models.BookingCompleted, stored.Status)

	// Fresh destination: GORM adds a populated primary key on the dest
	// struct as a query condition, so reusing `stored` would look up the
	// wrong row.
	var storedPending models.Booking
	require.NoError(t, f.db.First(&storedPending, "id = ?", stillPending.ID).Error)
	assert.Equal(t, models.BookingPending, storedPending.Status)
}

func TestRespondToMissingBooking(t *testing.T) {
	f := newBookingFixture(t)
	_, err := RespondToBooking(f.db, f.seeker.ID, f.provider.ID, DecisionAccept)
	assert.ErrorIs(t, err, ErrNotFound)
}
