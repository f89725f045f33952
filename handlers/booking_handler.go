package handlers

import (
	"errors"
	"time"

	"github.com/azizbek-dev/sport_field/database"
	"github.com/azizbek-dev/sport_field/middleware"
	"github.com/azizbek-dev/sport_field/models"
	"github.com/azizbek-dev/sport_field/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	FieldID     string `json:"field_id" validate:"required,uuid"`
	BookingDate string `json:"booking_date" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	StartTime   string `json:"start_time" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	EndTime     string `json:"end_time" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	Status      string `json:"status,omitempty" validate:"omitempty,oneof=PENDING CONFIRMED COMPLETED CANCELLED"`
}

type UpdateBookingRequest struct {
	FieldID     *string `json:"field_id,omitempty" validate:"omitempty,uuid"`
	BookingDate *string `json:"booking_date,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	StartTime   *string `json:"start_time,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	EndTime     *string `json:"end_time,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Status      *string `json:"status,omitempty" validate:"omitempty,oneof=PENDING CONFIRMED COMPLETED CANCELLED"`
}

func bookingErrorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrFieldNotFound), errors.Is(err, services.ErrBookingNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrTimeConflict), errors.Is(err, services.ErrCancelTooLate):
		return fiber.StatusBadRequest
	case errors.Is(err, services.ErrNotBookingOwner), errors.Is(err, services.ErrStatusNotAllowed):
		return fiber.StatusForbidden
	default:
		return fiber.StatusInternalServerError
	}
}

func CreateBooking(c *fiber.Ctx) error {
	userID, _ := middleware.CallerIdentity(c)

	var req CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	fieldID, _ := uuid.Parse(req.FieldID)
	bookingDate, _ := time.Parse(time.RFC3339, req.BookingDate)
	startTime, _ := time.Parse(time.RFC3339, req.StartTime)
	endTime, _ := time.Parse(time.RFC3339, req.EndTime)

	if !endTime.After(startTime) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "end_time must be after start_time"})
	}

	booking, err := services.CreateBooking(database.DB, userID, services.CreateBookingInput{
		FieldID:     fieldID,
		BookingDate: bookingDate,
		StartTime:   startTime,
		EndTime:     endTime,
		Status:      req.Status,
	})
	if err != nil {
		return c.Status(bookingErrorStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Booking created successfully", "data": booking})
}

func GetBookings(c *fiber.Ctx) error {
	var bookings []models.Booking
	database.DB.Preload("Field").Preload("User").Order("start_time desc").Find(&bookings)
	return c.JSON(fiber.Map{"message": "All bookings retrieved", "data": bookings})
}

func GetMyBookings(c *fiber.Ctx) error {
	userID, _ := middleware.CallerIdentity(c)

	var bookings []models.Booking
	database.DB.Preload("Field").Where("user_id = ?", userID).Order("start_time desc").Find(&bookings)
	return c.JSON(fiber.Map{"message": "Your bookings retrieved", "data": bookings})
}

// GetOwnerBookings lists bookings made against any field the caller owns.
func GetOwnerBookings(c *fiber.Ctx) error {
	ownerID, _ := middleware.CallerIdentity(c)

	var bookings []models.Booking
	database.DB.Preload("Field").Preload("User").
		Joins("JOIN fields ON fields.id = bookings.field_id").
		Where("fields.owner_id = ?", ownerID).
		Order("bookings.start_time desc").
		Find(&bookings)
	return c.JSON(fiber.Map{"message": "Bookings for your fields retrieved", "data": bookings})
}

func GetBooking(c *fiber.Ctx) error {
	var booking models.Booking
	if err := database.DB.Preload("Field").Preload("User").First(&booking, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}
	return c.JSON(fiber.Map{"message": "Booking found", "data": booking})
}

func UpdateBooking(c *fiber.Ctx) error {
	userID, role := middleware.CallerIdentity(c)
	bookingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking id"})
	}

	var req UpdateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var in services.UpdateBookingInput
	if req.FieldID != nil {
		fieldID, _ := uuid.Parse(*req.FieldID)
		in.FieldID = &fieldID
	}
	if req.BookingDate != nil {
		bookingDate, _ := time.Parse(time.RFC3339, *req.BookingDate)
		in.BookingDate = &bookingDate
	}
	if req.StartTime != nil {
		startTime, _ := time.Parse(time.RFC3339, *req.StartTime)
		in.StartTime = &startTime
	}
	if req.EndTime != nil {
		endTime, _ := time.Parse(time.RFC3339, *req.EndTime)
		in.EndTime = &endTime
	}
	in.Status = req.Status

	booking, err := services.UpdateBooking(database.DB, bookingID, userID, role, in)
	if err != nil {
		return c.Status(bookingErrorStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Booking updated successfully", "data": booking})
}

func CancelBooking(c *fiber.Ctx) error {
	userID, _ := middleware.CallerIdentity(c)
	bookingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking id"})
	}

	booking, err := services.CancelBooking(database.DB, bookingID, userID)
	if err != nil {
		return c.Status(bookingErrorStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Booking canceled successfully", "data": booking})
}
