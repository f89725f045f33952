package handlers

import (
	"github.com/azizbek-dev/sport_field/database"
	"github.com/azizbek-dev/sport_field/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type DistrictRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	RegionID string `json:"region_id" validate:"required,uuid"`
}

func CreateDistrict(c *fiber.Ctx) error {
	var req DistrictRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	regionID, _ := uuid.Parse(req.RegionID)

	var region models.Region
	if err := database.DB.First(&region, "id = ?", regionID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Region not found"})
	}

	var count int64
	database.DB.Model(&models.District{}).Where("name = ? AND region_id = ?", req.Name, regionID).Count(&count)
	if count > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "District already exists in this region"})
	}

	district := models.District{Name: req.Name, RegionID: regionID}
	if err := database.DB.Create(&district).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create district"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "District created successfully", "data": district})
}

func GetDistricts(c *fiber.Ctx) error {
	var districts []models.District
	q := database.DB.Preload("Region").Order("name asc")
	if regionID := c.Query("region_id"); regionID != "" {
		q = q.Where("region_id = ?", regionID)
	}
	q.Find(&districts)
	return c.JSON(fiber.Map{"message": "All districts", "data": districts})
}

func GetDistrict(c *fiber.Ctx) error {
	var district models.District
	if err := database.DB.Preload("Region").First(&district, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "District not found"})
	}
	return c.JSON(fiber.Map{"message": "District found", "data": district})
}

func UpdateDistrict(c *fiber.Ctx) error {
	var req DistrictRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	regionID, _ := uuid.Parse(req.RegionID)

	var district models.District
	if err := database.DB.First(&district, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "District not found"})
	}

	var region models.Region
	if err := database.DB.First(&region, "id = ?", regionID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Region not found"})
	}

	var count int64
	database.DB.Model(&models.District{}).
		Where("name = ? AND region_id = ? AND id <> ?", req.Name, regionID, district.ID).
		Count(&count)
	if count > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "District already exists in this region"})
	}

	district.Name = req.Name
	district.RegionID = regionID
	if err := database.DB.Save(&district).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update district"})
	}

	return c.JSON(fiber.Map{"message": "District updated successfully", "data": district})
}

func DeleteDistrict(c *fiber.Ctx) error {
	var district models.District
	if err := database.DB.First(&district, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "District not found"})
	}

	if err := database.DB.Delete(&district).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete district"})
	}

	return c.JSON(fiber.Map{"message": "District soft deleted successfully", "data": district})
}
