package services

import (
	"errors"
	"testing"
	"time"

	"github.com/azizbek-dev/sport_field/models"
	"github.com/google/uuid"
)

func TestCreateBookingOverlapDetection(t *testing.T) {
	db := setupTestDB(t)
	owner := createTestUser(t, db, models.RoleOwner)
	user := createTestUser(t, db, models.RoleUser)
	field := createTestField(t, db, owner.ID)

	day := time.Date(2024, 9, 8, 0, 0, 0, 0, time.UTC)
	at := func(hour, min int) time.Time {
		return time.Date(2024, 9, 8, hour, min, 0, 0, time.UTC)
	}

	if _, err := CreateBooking(db, user.ID, CreateBookingInput{
		FieldID: field.ID, BookingDate: day, StartTime: at(9, 0), EndTime: at(10, 0),
	}); err != nil {
		t.Fatalf("first booking on empty field should succeed, got %v", err)
	}

	_, err := CreateBooking(db, user.ID, CreateBookingInput{
		FieldID: field.ID, BookingDate: day, StartTime: at(9, 30), EndTime: at(10, 30),
	})
	if !errors.Is(err, ErrTimeConflict) {
		t.Fatalf("overlapping booking should fail with ErrTimeConflict, got %v", err)
	}

	// Touching boundary is not an overlap.
	if _, err := CreateBooking(db, user.ID, CreateBookingInput{
		FieldID: field.ID, BookingDate: day, StartTime: at(10, 0), EndTime: at(11, 0),
	}); err != nil {
		t.Fatalf("boundary-touching booking should succeed, got %v", err)
	}
}

func TestCreateBookingFieldNotFound(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, models.RoleUser)

	_, err := CreateBooking(db, user.ID, CreateBookingInput{
		FieldID:     uuid.New(),
		BookingDate: time.Now(),
		StartTime:   time.Now(),
		EndTime:     time.Now().Add(time.Hour),
	})
	if !errors.Is(err, ErrFieldNotFound) {
		t.Fatalf("expected ErrFieldNotFound, got %v", err)
	}
}

func TestCreateBookingDefaultsToPending(t *testing.T) {
	db := setupTestDB(t)
	owner := createTestUser(t, db, models.RoleOwner)
	user := createTestUser(t, db, models.RoleUser)
	field := createTestField(t, db, owner.ID)

	booking, err := CreateBooking(db, user.ID, CreateBookingInput{
		FieldID:     field.ID,
		BookingDate: time.Now(),
		StartTime:   time.Now().Add(24 * time.Hour),
		EndTime:     time.Now().Add(25 * time.Hour),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if booking.Status != models.BookingPending {
		t.Fatalf("expected status %q, got %q", models.BookingPending, booking.Status)
	}
}

func TestIsBookingTimeAvailableExcludesOwnBooking(t *testing.T) {
	db := setupTestDB(t)
	owner := createTestUser(t, db, models.RoleOwner)
	user := createTestUser(t, db, models.RoleUser)
	field := createTestField(t, db, owner.ID)

	start := time.Date(2024, 9, 8, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)
	booking, err := CreateBooking(db, user.ID, CreateBookingInput{
		FieldID: field.ID, BookingDate: start, StartTime: start, EndTime: end,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	available, err := IsBookingTimeAvailable(db, field.ID, start.Add(30*time.Minute), end.Add(30*time.Minute), &booking.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !available {
		t.Fatal("shifting a booking over its own slot should be available when excluded")
	}

	available, err = IsBookingTimeAvailable(db, field.ID, start.Add(30*time.Minute), end.Add(30*time.Minute), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if available {
		t.Fatal("overlapping slot should not be available without exclusion")
	}
}

func TestUpdateBookingStatusByUserRejected(t *testing.T) {
	db := setupTestDB(t)
	owner := createTestUser(t, db, models.RoleOwner)
	user := createTestUser(t, db, models.RoleUser)
	field := createTestField(t, db, owner.ID)

	start := time.Now().Add(24 * time.Hour)
	booking, err := CreateBooking(db, user.ID, CreateBookingInput{
		FieldID: field.ID, BookingDate: start, StartTime: start, EndTime: start.Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	confirmed := models.BookingConfirmed
	_, err = UpdateBooking(db, booking.ID, user.ID, models.RoleUser, UpdateBookingInput{Status: &confirmed})
	if !errors.Is(err, ErrStatusNotAllowed) {
		t.Fatalf("expected ErrStatusNotAllowed for USER status update, got %v", err)
	}
}

func TestUpdateBookingStatusByFieldOwner(t *testing.T) {
	db := setupTestDB(t)
	owner := createTestUser(t, db, models.RoleOwner)
	user := createTestUser(t, db, models.RoleUser)
	field := createTestField(t, db, owner.ID)

	start := time.Now().Add(24 * time.Hour)
	booking, err := CreateBooking(db, user.ID, CreateBookingInput{
		FieldID: field.ID, BookingDate: start, StartTime: start, EndTime: start.Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	confirmed := models.BookingConfirmed
	updated, err := UpdateBooking(db, booking.ID, owner.ID, models.RoleOwner, UpdateBookingInput{Status: &confirmed})
	if err != nil {
		t.Fatalf("field owner should be able to update status, got %v", err)
	}
	if updated.Status != models.BookingConfirmed {
		t.Fatalf("expected status %q, got %q", models.BookingConfirmed, updated.Status)
	}
}

func TestUpdateBookingByStrangerRejected(t *testing.T) {
	db := setupTestDB(t)
	owner := createTestUser(t, db, models.RoleOwner)
	user := createTestUser(t, db, models.RoleUser)
	stranger := createTestUser(t, db, models.RoleOwner)
	field := createTestField(t, db, owner.ID)

	start := time.Now().Add(24 * time.Hour)
	booking, err := CreateBooking(db, user.ID, CreateBookingInput{
		FieldID: field.ID, BookingDate: start, StartTime: start, EndTime: start.Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	confirmed := models.BookingConfirmed
	_, err = UpdateBooking(db, booking.ID, stranger.ID, models.RoleOwner, UpdateBookingInput{Status: &confirmed})
	if !errors.Is(err, ErrNotBookingOwner) {
		t.Fatalf("expected ErrNotBookingOwner for stranger, got %v", err)
	}
}

func TestUpdateBookingTimeRechecksAvailability(t *testing.T) {
	db := setupTestDB(t)
	owner := createTestUser(t, db, models.RoleOwner)
	user := createTestUser(t, db, models.RoleUser)
	field := createTestField(t, db, owner.ID)

	at := func(hour int) time.Time {
		return time.Date(2024, 9, 8, hour, 0, 0, 0, time.UTC)
	}
	first, err := CreateBooking(db, user.ID, CreateBookingInput{
		FieldID: field.ID, BookingDate: at(0), StartTime: at(9), EndTime: at(10),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err = CreateBooking(db, user.ID, CreateBookingInput{
		FieldID: field.ID, BookingDate: at(0), StartTime: at(12), EndTime: at(13),
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Move onto the other booking's slot.
	newStart, newEnd := at(12), at(13)
	_, err = UpdateBooking(db, first.ID, user.ID, models.RoleUser, UpdateBookingInput{StartTime: &newStart, EndTime: &newEnd})
	if !errors.Is(err, ErrTimeConflict) {
		t.Fatalf("expected ErrTimeConflict when moving onto a taken slot, got %v", err)
	}

	// Shift within own slot.
	newStart, newEnd = at(9).Add(30*time.Minute), at(10).Add(30*time.Minute)
	updated, err := UpdateBooking(db, first.ID, user.ID, models.RoleUser, UpdateBookingInput{StartTime: &newStart, EndTime: &newEnd})
	if err != nil {
		t.Fatalf("shifting over own slot should succeed, got %v", err)
	}
	if !updated.StartTime.Equal(newStart) || !updated.EndTime.Equal(newEnd) {
		t.Fatalf("time range was not persisted: %v - %v", updated.StartTime, updated.EndTime)
	}
}

func TestCancelBookingLeadTime(t *testing.T) {
	db := setupTestDB(t)
	owner := createTestUser(t, db, models.RoleOwner)
	user := createTestUser(t, db, models.RoleUser)
	field := createTestField(t, db, owner.ID)

	soonStart := time.Now().Add(2 * time.Hour)
	soon, err := CreateBooking(db, user.ID, CreateBookingInput{
		FieldID: field.ID, BookingDate: soonStart, StartTime: soonStart, EndTime: soonStart.Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = CancelBooking(db, soon.ID, user.ID)
	if !errors.Is(err, ErrCancelTooLate) {
		t.Fatalf("cancelling inside the 3-hour window should fail, got %v", err)
	}

	laterStart := time.Now().Add(4 * time.Hour)
	later, err := CreateBooking(db, user.ID, CreateBookingInput{
		FieldID: field.ID, BookingDate: laterStart, StartTime: laterStart, EndTime: laterStart.Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cancelled, err := CancelBooking(db, later.ID, user.ID)
	if err != nil {
		t.Fatalf("cancelling outside the window should succeed, got %v", err)
	}
	if cancelled.Status != models.BookingCancelled {
		t.Fatalf("expected status %q, got %q", models.BookingCancelled, cancelled.Status)
	}
}

func TestCancelBookingByNonOwnerRejected(t *testing.T) {
	db := setupTestDB(t)
	owner := createTestUser(t, db, models.RoleOwner)
	user := createTestUser(t, db, models.RoleUser)
	other := createTestUser(t, db, models.RoleUser)
	field := createTestField(t, db, owner.ID)

	start := time.Now().Add(24 * time.Hour)
	booking, err := CreateBooking(db, user.ID, CreateBookingInput{
		FieldID: field.ID, BookingDate: start, StartTime: start, EndTime: start.Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := CancelBooking(db, booking.ID, other.ID); !errors.Is(err, ErrNotBookingOwner) {
		t.Fatalf("expected ErrNotBookingOwner, got %v", err)
	}
}

func TestCancelledBookingReleasesSlot(t *testing.T) {
	db := setupTestDB(t)
	owner := createTestUser(t, db, models.RoleOwner)
	user := createTestUser(t, db, models.RoleUser)
	field := createTestField(t, db, owner.ID)

	start := time.Now().Add(24 * time.Hour)
	booking, err := CreateBooking(db, user.ID, CreateBookingInput{
		FieldID: field.ID, BookingDate: start, StartTime: start, EndTime: start.Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := CancelBooking(db, booking.ID, user.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := CreateBooking(db, user.ID, CreateBookingInput{
		FieldID: field.ID, BookingDate: start, StartTime: start, EndTime: start.Add(time.Hour),
	}); err != nil {
		t.Fatalf("cancelled booking should release its slot, got %v", err)
	}
}
