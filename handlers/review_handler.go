package handlers

import (
	"errors"

	"github.com/azizbek-dev/sport_field/database"
	"github.com/azizbek-dev/sport_field/middleware"
	"github.com/azizbek-dev/sport_field/models"
	"github.com/azizbek-dev/sport_field/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	FieldID string `json:"field_id" validate:"required,uuid"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"required"`
}

type UpdateReviewRequest struct {
	Rating  *int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Comment *string `json:"comment,omitempty"`
}

func reviewErrorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrFieldNotFound), errors.Is(err, services.ErrReviewNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrNoConfirmedBooking), errors.Is(err, services.ErrNotReviewAuthor):
		return fiber.StatusForbidden
	default:
		return fiber.StatusInternalServerError
	}
}

func CreateReview(c *fiber.Ctx) error {
	userID, _ := middleware.CallerIdentity(c)

	var req CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	fieldID, _ := uuid.Parse(req.FieldID)

	review, err := services.CreateReview(database.DB, userID, fieldID, req.Rating, req.Comment)
	if err != nil {
		return c.Status(reviewErrorStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Review created successfully", "data": review})
}

func GetReviews(c *fiber.Ctx) error {
	var reviews []models.Review
	q := database.DB.Preload("Field").Preload("User").Order("created_at desc")
	if fieldID := c.Query("field_id"); fieldID != "" {
		q = q.Where("field_id = ?", fieldID)
	}
	q.Find(&reviews)
	return c.JSON(fiber.Map{"message": "All reviews", "data": reviews})
}

func GetReview(c *fiber.Ctx) error {
	var review models.Review
	if err := database.DB.Preload("Field").Preload("User").First(&review, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Review not found"})
	}
	return c.JSON(fiber.Map{"message": "Review found", "data": review})
}

func UpdateReview(c *fiber.Ctx) error {
	userID, _ := middleware.CallerIdentity(c)
	reviewID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid review id"})
	}

	var req UpdateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	review, err := services.UpdateReview(database.DB, reviewID, userID, services.UpdateReviewInput{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return c.Status(reviewErrorStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Review updated successfully", "data": review})
}

func DeleteReview(c *fiber.Ctx) error {
	userID, _ := middleware.CallerIdentity(c)
	reviewID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid review id"})
	}

	if err := services.RemoveReview(database.DB, reviewID, userID); err != nil {
		return c.Status(reviewErrorStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Review soft deleted successfully"})
}
