package services

import (
	"errors"
	"testing"
	"time"

	"github.com/azizbek-dev/sport_field/database"
	"github.com/azizbek-dev/sport_field/jobs"
	"github.com/azizbek-dev/sport_field/models"
	"gorm.io/gorm"
)

func confirmBooking(t *testing.T, db *gorm.DB, field models.Field, user models.User) {
	t.Helper()

	start := time.Now().Add(-48 * time.Hour)
	booking := models.Booking{
		FieldID:     field.ID,
		UserID:      user.ID,
		BookingDate: start,
		StartTime:   start,
		EndTime:     start.Add(time.Hour),
		Status:      models.BookingConfirmed,
	}
	if err := db.Create(&booking).Error; err != nil {
		t.Fatalf("failed to create confirmed booking: %v", err)
	}
}

func fieldRating(t *testing.T, db *gorm.DB, field models.Field) float64 {
	t.Helper()

	var reloaded models.Field
	if err := db.First(&reloaded, "id = ?", field.ID).Error; err != nil {
		t.Fatalf("failed to reload field: %v", err)
	}
	return reloaded.AvgRating
}

func TestCreateReviewRequiresConfirmedBooking(t *testing.T) {
	db := setupTestDB(t)
	owner := createTestUser(t, db, models.RoleOwner)
	user := createTestUser(t, db, models.RoleUser)
	field := createTestField(t, db, owner.ID)

	_, err := CreateReview(db, user.ID, field.ID, 5, "great pitch")
	if !errors.Is(err, ErrNoConfirmedBooking) {
		t.Fatalf("expected ErrNoConfirmedBooking without any booking, got %v", err)
	}

	start := time.Now().Add(24 * time.Hour)
	if _, err := CreateBooking(db, user.ID, CreateBookingInput{
		FieldID: field.ID, BookingDate: start, StartTime: start, EndTime: start.Add(time.Hour),
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = CreateReview(db, user.ID, field.ID, 5, "great pitch")
	if !errors.Is(err, ErrNoConfirmedBooking) {
		t.Fatalf("expected ErrNoConfirmedBooking with only a pending booking, got %v", err)
	}

	confirmBooking(t, db, field, user)

	review, err := CreateReview(db, user.ID, field.ID, 5, "great pitch")
	if err != nil {
		t.Fatalf("review with confirmed booking should succeed, got %v", err)
	}
	if review.Rating != 5 {
		t.Fatalf("expected rating 5, got %d", review.Rating)
	}

	// Single-review case: cached rating equals the review's rating.
	if got := fieldRating(t, db, field); got != 5 {
		t.Fatalf("expected cached rating 5, got %v", got)
	}
}

func TestCreateReviewAfterBookingCompleted(t *testing.T) {
	db := setupTestDB(t)
	owner := createTestUser(t, db, models.RoleOwner)
	user := createTestUser(t, db, models.RoleUser)
	field := createTestField(t, db, owner.ID)

	start := time.Now().Add(-3 * time.Hour)
	booking := models.Booking{
		FieldID:     field.ID,
		UserID:      user.ID,
		BookingDate: start,
		StartTime:   start,
		EndTime:     start.Add(time.Hour),
		Status:      models.BookingConfirmed,
	}
	if err := db.Create(&booking).Error; err != nil {
		t.Fatalf("failed to create confirmed booking: %v", err)
	}

	database.DB = db
	jobs.CompleteFinishedBookings()

	var completed models.Booking
	if err := db.First(&completed, "id = ?", booking.ID).Error; err != nil {
		t.Fatalf("failed to reload booking: %v", err)
	}
	if completed.Status != models.BookingCompleted {
		t.Fatalf("expected status %q after completion job, got %q", models.BookingCompleted, completed.Status)
	}

	if _, err := CreateReview(db, user.ID, field.ID, 5, "great game"); err != nil {
		t.Fatalf("review after booking completion should succeed, got %v", err)
	}
	if got := fieldRating(t, db, field); got != 5 {
		t.Fatalf("expected cached rating 5, got %v", got)
	}
}

func TestRecomputeFieldRating(t *testing.T) {
	db := setupTestDB(t)
	owner := createTestUser(t, db, models.RoleOwner)
	field := createTestField(t, db, owner.ID)

	var reviews []models.Review
	for _, rating := range []int{5, 3, 4} {
		user := createTestUser(t, db, models.RoleUser)
		review := models.Review{FieldID: field.ID, UserID: user.ID, Rating: rating, Comment: "ok"}
		if err := db.Create(&review).Error; err != nil {
			t.Fatalf("failed to create review: %v", err)
		}
		reviews = append(reviews, review)
	}

	rating, err := RecomputeFieldRating(db, field.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rating != 4.00 {
		t.Fatalf("expected 4.00 for {5,3,4}, got %v", rating)
	}
	if got := fieldRating(t, db, field); got != 4.00 {
		t.Fatalf("expected cached rating 4.00, got %v", got)
	}

	// Soft-deleting the rating=3 review lifts the average to 4.50.
	if err := db.Delete(&reviews[1]).Error; err != nil {
		t.Fatalf("failed to soft delete review: %v", err)
	}
	rating, err = RecomputeFieldRating(db, field.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rating != 4.50 {
		t.Fatalf("expected 4.50 after removing the 3, got %v", rating)
	}
}

func TestRecomputeFieldRatingRounding(t *testing.T) {
	db := setupTestDB(t)
	owner := createTestUser(t, db, models.RoleOwner)
	field := createTestField(t, db, owner.ID)

	for _, rating := range []int{5, 5, 4} {
		user := createTestUser(t, db, models.RoleUser)
		review := models.Review{FieldID: field.ID, UserID: user.ID, Rating: rating, Comment: "ok"}
		if err := db.Create(&review).Error; err != nil {
			t.Fatalf("failed to create review: %v", err)
		}
	}

	rating, err := RecomputeFieldRating(db, field.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rating != 4.67 {
		t.Fatalf("expected 14/3 rounded half-up to 4.67, got %v", rating)
	}
}

func TestRecomputeFieldRatingEmptySet(t *testing.T) {
	db := setupTestDB(t)
	owner := createTestUser(t, db, models.RoleOwner)
	field := createTestField(t, db, owner.ID)

	if err := db.Model(&models.Field{}).Where("id = ?", field.ID).Update("avg_rating", 3.5).Error; err != nil {
		t.Fatalf("failed to preset rating: %v", err)
	}

	rating, err := RecomputeFieldRating(db, field.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rating != 0 {
		t.Fatalf("expected 0 for an empty review set, got %v", rating)
	}
	if got := fieldRating(t, db, field); got != 0 {
		t.Fatalf("expected cached rating 0, got %v", got)
	}
}

func TestUpdateReviewByNonAuthorRejected(t *testing.T) {
	db := setupTestDB(t)
	owner := createTestUser(t, db, models.RoleOwner)
	author := createTestUser(t, db, models.RoleUser)
	other := createTestUser(t, db, models.RoleUser)
	field := createTestField(t, db, owner.ID)
	confirmBooking(t, db, field, author)

	review, err := CreateReview(db, author.ID, field.ID, 4, "decent")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	newRating := 1
	if _, err := UpdateReview(db, review.ID, other.ID, UpdateReviewInput{Rating: &newRating}); !errors.Is(err, ErrNotReviewAuthor) {
		t.Fatalf("expected ErrNotReviewAuthor, got %v", err)
	}
	if err := RemoveReview(db, review.ID, other.ID); !errors.Is(err, ErrNotReviewAuthor) {
		t.Fatalf("expected ErrNotReviewAuthor on remove, got %v", err)
	}
}

func TestUpdateReviewRecomputesRating(t *testing.T) {
	db := setupTestDB(t)
	owner := createTestUser(t, db, models.RoleOwner)
	author := createTestUser(t, db, models.RoleUser)
	field := createTestField(t, db, owner.ID)
	confirmBooking(t, db, field, author)

	review, err := CreateReview(db, author.ID, field.ID, 2, "muddy")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := fieldRating(t, db, field); got != 2 {
		t.Fatalf("expected cached rating 2, got %v", got)
	}

	newRating := 4
	updated, err := UpdateReview(db, review.ID, author.ID, UpdateReviewInput{Rating: &newRating})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Rating != 4 {
		t.Fatalf("expected rating 4, got %d", updated.Rating)
	}
	if got := fieldRating(t, db, field); got != 4 {
		t.Fatalf("expected cached rating 4 after update, got %v", got)
	}
}

func TestRemoveReviewSoftDeletesAndRecomputes(t *testing.T) {
	db := setupTestDB(t)
	owner := createTestUser(t, db, models.RoleOwner)
	author := createTestUser(t, db, models.RoleUser)
	field := createTestField(t, db, owner.ID)
	confirmBooking(t, db, field, author)

	review, err := CreateReview(db, author.ID, field.ID, 5, "perfect")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := RemoveReview(db, review.ID, author.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var live int64
	db.Model(&models.Review{}).Where("field_id = ?", field.ID).Count(&live)
	if live != 0 {
		t.Fatalf("soft-deleted review still visible in default scope")
	}

	var total int64
	db.Unscoped().Model(&models.Review{}).Where("field_id = ?", field.ID).Count(&total)
	if total != 1 {
		t.Fatalf("soft delete should keep the row, found %d", total)
	}

	if got := fieldRating(t, db, field); got != 0 {
		t.Fatalf("expected cached rating reset to 0, got %v", got)
	}
}
