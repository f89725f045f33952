package handlers

import (
	"time"

	"github.com/azizbek-dev/sport_field/database"
	"github.com/azizbek-dev/sport_field/middleware"
	"github.com/azizbek-dev/sport_field/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type LocationRequest struct {
	Latitude  float64 `json:"latitude" validate:"required,latitude"`
	Longitude float64 `json:"longitude" validate:"required,longitude"`
}

type CreateFieldRequest struct {
	Name        string          `json:"name" validate:"required,min=2,max=255"`
	Description string          `json:"description" validate:"required"`
	Images      []string        `json:"images" validate:"required,min=1,dive,required"`
	OpeningTime string          `json:"opening_time" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	ClosingTime string          `json:"closing_time" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	PitchType   string          `json:"pitch_type" validate:"required,oneof=NATURAL_GRASS ARTIFICIAL_GRASS"`
	VenueType   string          `json:"venue_type" validate:"required,oneof=INDOOR OUTDOOR"`
	Location    LocationRequest `json:"location" validate:"required"`
	CategoryID  string          `json:"category_id" validate:"required,uuid"`
	DistrictID  string          `json:"district_id" validate:"required,uuid"`
}

type UpdateFieldRequest struct {
	Name        *string          `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	Description *string          `json:"description,omitempty"`
	Images      []string         `json:"images,omitempty" validate:"omitempty,min=1,dive,required"`
	OpeningTime *string          `json:"opening_time,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	ClosingTime *string          `json:"closing_time,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	PitchType   *string          `json:"pitch_type,omitempty" validate:"omitempty,oneof=NATURAL_GRASS ARTIFICIAL_GRASS"`
	VenueType   *string          `json:"venue_type,omitempty" validate:"omitempty,oneof=INDOOR OUTDOOR"`
	Location    *LocationRequest `json:"location,omitempty"`
	CategoryID  *string          `json:"category_id,omitempty" validate:"omitempty,uuid"`
	DistrictID  *string          `json:"district_id,omitempty" validate:"omitempty,uuid"`
}

func CreateField(c *fiber.Ctx) error {
	ownerID, _ := middleware.CallerIdentity(c)

	var req CreateFieldRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	districtID, _ := uuid.Parse(req.DistrictID)
	categoryID, _ := uuid.Parse(req.CategoryID)

	var district models.District
	if err := database.DB.First(&district, "id = ?", districtID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "District not found"})
	}
	var category models.SportCategory
	if err := database.DB.First(&category, "id = ?", categoryID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Sport category not found"})
	}

	openingTime, _ := time.Parse(time.RFC3339, req.OpeningTime)
	closingTime, _ := time.Parse(time.RFC3339, req.ClosingTime)

	field := models.Field{
		Name:        req.Name,
		Description: req.Description,
		Images:      req.Images,
		OpeningTime: openingTime,
		ClosingTime: closingTime,
		PitchType:   req.PitchType,
		VenueType:   req.VenueType,
		Location:    models.Location{Latitude: req.Location.Latitude, Longitude: req.Location.Longitude},
		OwnerID:     ownerID,
		DistrictID:  districtID,
		CategoryID:  categoryID,
	}
	if err := database.DB.Create(&field).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create field"})
	}

	database.DB.Preload("District").Preload("Category").First(&field, "id = ?", field.ID)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Field created successfully", "data": field})
}

func GetFields(c *fiber.Ctx) error {
	var fields []models.Field
	q := database.DB.Preload("District").Preload("Category")
	if districtID := c.Query("district_id"); districtID != "" {
		q = q.Where("district_id = ?", districtID)
	}
	if categoryID := c.Query("category_id"); categoryID != "" {
		q = q.Where("category_id = ?", categoryID)
	}
	q.Find(&fields)
	return c.JSON(fiber.Map{"message": "All fields", "data": fields})
}

func GetMyFields(c *fiber.Ctx) error {
	ownerID, _ := middleware.CallerIdentity(c)

	var fields []models.Field
	database.DB.Preload("District").Preload("Category").Where("owner_id = ?", ownerID).Find(&fields)
	return c.JSON(fiber.Map{"message": "Your fields", "data": fields})
}

func GetField(c *fiber.Ctx) error {
	var field models.Field
	if err := database.DB.Preload("District").Preload("Category").First(&field, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Field not found"})
	}
	return c.JSON(fiber.Map{"message": "Field found", "data": field})
}

func UpdateField(c *fiber.Ctx) error {
	ownerID, _ := middleware.CallerIdentity(c)

	var req UpdateFieldRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var field models.Field
	if err := database.DB.First(&field, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Field not found"})
	}
	if field.OwnerID != ownerID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You are not allowed to update this field"})
	}

	if req.Name != nil {
		field.Name = *req.Name
	}
	if req.Description != nil {
		field.Description = *req.Description
	}
	if req.Images != nil {
		field.Images = req.Images
	}
	if req.OpeningTime != nil {
		openingTime, _ := time.Parse(time.RFC3339, *req.OpeningTime)
		field.OpeningTime = openingTime
	}
	if req.ClosingTime != nil {
		closingTime, _ := time.Parse(time.RFC3339, *req.ClosingTime)
		field.ClosingTime = closingTime
	}
	if req.PitchType != nil {
		field.PitchType = *req.PitchType
	}
	if req.VenueType != nil {
		field.VenueType = *req.VenueType
	}
	if req.Location != nil {
		field.Location = models.Location{Latitude: req.Location.Latitude, Longitude: req.Location.Longitude}
	}
	if req.DistrictID != nil {
		districtID, _ := uuid.Parse(*req.DistrictID)
		var district models.District
		if err := database.DB.First(&district, "id = ?", districtID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "District not found"})
		}
		field.DistrictID = districtID
	}
	if req.CategoryID != nil {
		categoryID, _ := uuid.Parse(*req.CategoryID)
		var category models.SportCategory
		if err := database.DB.First(&category, "id = ?", categoryID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Sport category not found"})
		}
		field.CategoryID = categoryID
	}

	if err := database.DB.Save(&field).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update field"})
	}

	database.DB.Preload("District").Preload("Category").First(&field, "id = ?", field.ID)
	return c.JSON(fiber.Map{"message": "Field updated successfully", "data": field})
}

func DeleteField(c *fiber.Ctx) error {
	ownerID, _ := middleware.CallerIdentity(c)

	var field models.Field
	if err := database.DB.First(&field, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Field not found"})
	}
	if field.OwnerID != ownerID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You are not allowed to delete this field"})
	}

	if err := database.DB.Delete(&field).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete field"})
	}

	return c.JSON(fiber.Map{"message": "Field soft deleted successfully", "data": field})
}
