package jobs

import (
	"log"
	"time"

	"github.com/tomasgiraldo/serconn/database"
	"github.com/tomasgiraldo/serconn/services"
)

// CloseFinishedBookings transitions confirmed bookings whose end time has
// passed to completed, notifying the seeker. Scheduled from main.
func CloseFinishedBookings() {
	closed, err := services.AutoCompleteFinished(database.DB, time.Now())
	if err != nil {
		log.Printf("Error auto-completing bookings: %v", err)
		return
	}
	if closed > 0 {
		log.Printf("Auto-completed %d finished booking(s)", closed)
	}
}
