package services

import (
	"errors"
	"time"

	"github.com/azizbek-dev/sport_field/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CancellationLeadTime is the minimum interval before a booking's start time
// at which the booking may still be cancelled.
const CancellationLeadTime = 3 * time.Hour

var (
	ErrFieldNotFound    = errors.New("field not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrTimeConflict     = errors.New("the selected time is already booked")
	ErrNotBookingOwner  = errors.New("you are not allowed to modify this booking")
	ErrStatusNotAllowed = errors.New("you are not allowed to update the booking status")
	ErrCancelTooLate    = errors.New("bookings can only be cancelled at least 3 hours before the start time")
)

type CreateBookingInput struct {
	FieldID     uuid.UUID
	BookingDate time.Time
	StartTime   time.Time
	EndTime     time.Time
	Status      string
}

type UpdateBookingInput struct {
	FieldID     *uuid.UUID
	BookingDate *time.Time
	StartTime   *time.Time
	EndTime     *time.Time
	Status      *string
}

// IsBookingTimeAvailable reports whether [startTime, endTime) is free on the
// field. Intervals that only touch at a boundary do not conflict. Cancelled
// bookings release their slot.
func IsBookingTimeAvailable(db *gorm.DB, fieldID uuid.UUID, startTime, endTime time.Time, excludeBookingID *uuid.UUID) (bool, error) {
	q := db.Model(&models.Booking{}).
		Where("field_id = ? AND start_time < ? AND end_time > ?", fieldID, endTime, startTime).
		Where("status <> ?", models.BookingCancelled)
	if excludeBookingID != nil {
		q = q.Where("id <> ?", *excludeBookingID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count == 0, nil
}

func CreateBooking(db *gorm.DB, userID uuid.UUID, in CreateBookingInput) (*models.Booking, error) {
	var booking models.Booking
	err := db.Transaction(func(tx *gorm.DB) error {
		fieldQuery := tx
		if tx.Dialector.Name() == "postgres" {
			// Row lock on the field serializes concurrent availability checks.
			// sqlite has no FOR UPDATE.
			fieldQuery = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var field models.Field
		if err := fieldQuery.First(&field, "id = ?", in.FieldID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrFieldNotFound
			}
			return err
		}

		available, err := IsBookingTimeAvailable(tx, in.FieldID, in.StartTime, in.EndTime, nil)
		if err != nil {
			return err
		}
		if !available {
			return ErrTimeConflict
		}

		status := in.Status
		if status == "" {
			status = models.BookingPending
		}

		booking = models.Booking{
			FieldID:     in.FieldID,
			UserID:      userID,
			BookingDate: in.BookingDate,
			StartTime:   in.StartTime,
			EndTime:     in.EndTime,
			Status:      status,
		}
		return tx.Create(&booking).Error
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func UpdateBooking(db *gorm.DB, id uuid.UUID, userID uuid.UUID, role string, in UpdateBookingInput) (*models.Booking, error) {
	var booking models.Booking
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&booking, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return err
		}

		if booking.UserID != userID {
			var field models.Field
			if err := tx.First(&field, "id = ?", booking.FieldID).Error; err != nil {
				return ErrNotBookingOwner
			}
			if field.OwnerID != userID || role != models.RoleOwner {
				return ErrNotBookingOwner
			}
		}

		if in.Status != nil && role != models.RoleOwner {
			return ErrStatusNotAllowed
		}

		fieldID := booking.FieldID
		if in.FieldID != nil {
			var field models.Field
			if err := tx.First(&field, "id = ?", *in.FieldID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrFieldNotFound
				}
				return err
			}
			fieldID = *in.FieldID
		}

		startTime := booking.StartTime
		endTime := booking.EndTime
		if in.StartTime != nil {
			startTime = *in.StartTime
		}
		if in.EndTime != nil {
			endTime = *in.EndTime
		}

		if in.FieldID != nil || in.StartTime != nil || in.EndTime != nil {
			available, err := IsBookingTimeAvailable(tx, fieldID, startTime, endTime, &booking.ID)
			if err != nil {
				return err
			}
			if !available {
				return ErrTimeConflict
			}
		}

		booking.FieldID = fieldID
		booking.StartTime = startTime
		booking.EndTime = endTime
		if in.BookingDate != nil {
			booking.BookingDate = *in.BookingDate
		}
		if in.Status != nil {
			booking.Status = *in.Status
		}
		return tx.Save(&booking).Error
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// CancelBooking transitions the caller's booking to CANCELLED. The booking
// record is kept so booking history stays queryable.
func CancelBooking(db *gorm.DB, id uuid.UUID, userID uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	if err := db.First(&booking, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if booking.UserID != userID {
		return nil, ErrNotBookingOwner
	}

	if !time.Now().Before(booking.StartTime.Add(-CancellationLeadTime)) {
		return nil, ErrCancelTooLate
	}

	booking.Status = models.BookingCancelled
	if err := db.Save(&booking).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}
