package services

import (
	"math"

	"github.com/azizbek-dev/sport_field/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecomputeFieldRating rewrites the field's cached average rating from its
// live reviews: the arithmetic mean rounded half-up to 2 decimal places, or 0
// when the field has no reviews left. Callers mutating reviews must invoke it
// in the same transaction as the mutation.
func RecomputeFieldRating(tx *gorm.DB, fieldID uuid.UUID) (float64, error) {
	var result struct {
		Avg float64
	}
	err := tx.Model(&models.Review{}).
		Where("field_id = ?", fieldID).
		Select("coalesce(avg(rating), 0) as avg").
		Scan(&result).Error
	if err != nil {
		return 0, err
	}

	rating := math.Round(result.Avg*100) / 100

	if err := tx.Model(&models.Field{}).Where("id = ?", fieldID).Update("avg_rating", rating).Error; err != nil {
		return 0, err
	}
	return rating, nil
}
