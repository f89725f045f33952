package jobs

import (
	"log"
	"time"

	"github.com/azizbek-dev/sport_field/database"
	"github.com/azizbek-dev/sport_field/models"
)

// CompleteFinishedBookings transitions confirmed bookings whose end time has
// passed to COMPLETED.
func CompleteFinishedBookings() {
	log.Println("Running job: CompleteFinishedBookings...")

	var finishedBookings []models.Booking
	err := database.DB.
		Where("status = ? AND end_time < ?", models.BookingConfirmed, time.Now()).
		Find(&finishedBookings).Error
	if err != nil {
		log.Printf("Error checking for finished bookings: %v", err)
		return
	}

	if len(finishedBookings) == 0 {
		log.Println("No finished bookings found.")
		return
	}

	for _, booking := range finishedBookings {
		booking.Status = models.BookingCompleted
		if err := database.DB.Save(&booking).Error; err != nil {
			log.Printf("Error completing booking %s: %v", booking.ID, err)
		}
	}

	log.Printf("Marked %d booking(s) as completed.", len(finishedBookings))
}
