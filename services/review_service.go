package services

import (
	"errors"

	"github.com/azizbek-dev/sport_field/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrReviewNotFound     = errors.New("review not found")
	ErrNoConfirmedBooking = errors.New("you can only review fields you have booked with a confirmed booking")
	ErrNotReviewAuthor    = errors.New("you are not allowed to modify this review")
)

type UpdateReviewInput struct {
	Rating  *int
	Comment *string
}

func CreateReview(db *gorm.DB, userID uuid.UUID, fieldID uuid.UUID, rating int, comment string) (*models.Review, error) {
	var review models.Review
	err := db.Transaction(func(tx *gorm.DB) error {
		var field models.Field
		if err := tx.First(&field, "id = ?", fieldID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrFieldNotFound
			}
			return err
		}

		// COMPLETED still counts: the completion job moves confirmed
		// bookings there once they end.
		var confirmed int64
		err := tx.Model(&models.Booking{}).
			Where("user_id = ? AND field_id = ? AND status IN ?",
				userID, fieldID, []string{models.BookingConfirmed, models.BookingCompleted}).
			Count(&confirmed).Error
		if err != nil {
			return err
		}
		if confirmed == 0 {
			return ErrNoConfirmedBooking
		}

		review = models.Review{
			FieldID: fieldID,
			UserID:  userID,
			Rating:  rating,
			Comment: comment,
		}
		if err := tx.Create(&review).Error; err != nil {
			return err
		}

		_, err = RecomputeFieldRating(tx, fieldID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func UpdateReview(db *gorm.DB, id uuid.UUID, userID uuid.UUID, in UpdateReviewInput) (*models.Review, error) {
	var review models.Review
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&review, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrReviewNotFound
			}
			return err
		}

		if review.UserID != userID {
			return ErrNotReviewAuthor
		}

		if in.Rating != nil {
			review.Rating = *in.Rating
		}
		if in.Comment != nil {
			review.Comment = *in.Comment
		}
		if err := tx.Save(&review).Error; err != nil {
			return err
		}

		_, err := RecomputeFieldRating(tx, review.FieldID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func RemoveReview(db *gorm.DB, id uuid.UUID, userID uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var review models.Review
		if err := tx.First(&review, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrReviewNotFound
			}
			return err
		}

		if review.UserID != userID {
			return ErrNotReviewAuthor
		}

		if err := tx.Delete(&review).Error; err != nil {
			return err
		}

		_, err := RecomputeFieldRating(tx, review.FieldID)
		return err
	})
}
