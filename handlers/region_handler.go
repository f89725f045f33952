package handlers

import (
	"github.com/azizbek-dev/sport_field/database"
	"github.com/azizbek-dev/sport_field/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type RegionRequest struct {
	Name      string `json:"name" validate:"required,min=2,max=100"`
	CountryID string `json:"country_id" validate:"required,uuid"`
}

func CreateRegion(c *fiber.Ctx) error {
	var req RegionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	countryID, _ := uuid.Parse(req.CountryID)

	var country models.Country
	if err := database.DB.First(&country, "id = ?", countryID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Country not found"})
	}

	var count int64
	database.DB.Model(&models.Region{}).Where("name = ? AND country_id = ?", req.Name, countryID).Count(&count)
	if count > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Region already exists in this country"})
	}

	region := models.Region{Name: req.Name, CountryID: countryID}
	if err := database.DB.Create(&region).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create region"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Region created successfully", "data": region})
}

func GetRegions(c *fiber.Ctx) error {
	var regions []models.Region
	q := database.DB.Preload("Country").Order("name asc")
	if countryID := c.Query("country_id"); countryID != "" {
		q = q.Where("country_id = ?", countryID)
	}
	q.Find(&regions)
	return c.JSON(fiber.Map{"message": "All regions", "data": regions})
}

func GetRegion(c *fiber.Ctx) error {
	var region models.Region
	if err := database.DB.Preload("Country").First(&region, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Region not found"})
	}
	return c.JSON(fiber.Map{"message": "Region found", "data": region})
}

func UpdateRegion(c *fiber.Ctx) error {
	var req RegionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	countryID, _ := uuid.Parse(req.CountryID)

	var region models.Region
	if err := database.DB.First(&region, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Region not found"})
	}

	var country models.Country
	if err := database.DB.First(&country, "id = ?", countryID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Country not found"})
	}

	var count int64
	database.DB.Model(&models.Region{}).
		Where("name = ? AND country_id = ? AND id <> ?", req.Name, countryID, region.ID).
		Count(&count)
	if count > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Region already exists in this country"})
	}

	region.Name = req.Name
	region.CountryID = countryID
	if err := database.DB.Save(&region).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update region"})
	}

	return c.JSON(fiber.Map{"message": "Region updated successfully", "data": region})
}

func DeleteRegion(c *fiber.Ctx) error {
	var region models.Region
	if err := database.DB.First(&region, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Region not found"})
	}

	if err := database.DB.Delete(&region).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete region"})
	}

	return c.JSON(fiber.Map{"message": "Region soft deleted successfully", "data": region})
}
