package handlers

import (
	"github.com/azizbek-dev/sport_field/database"
	"github.com/azizbek-dev/sport_field/models"
	"github.com/gofiber/fiber/v2"
)

type CountryRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

func CreateCountry(c *fiber.Ctx) error {
	var req CountryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var count int64
	database.DB.Model(&models.Country{}).Where("name = ?", req.Name).Count(&count)
	if count > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Country already exists"})
	}

	country := models.Country{Name: req.Name}
	if err := database.DB.Create(&country).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create country"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Country created successfully", "data": country})
}

func GetCountries(c *fiber.Ctx) error {
	var countries []models.Country
	database.DB.Order("name asc").Find(&countries)
	return c.JSON(fiber.Map{"message": "All countries", "data": countries})
}

func GetCountry(c *fiber.Ctx) error {
	var country models.Country
	if err := database.DB.First(&country, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Country not found"})
	}
	return c.JSON(fiber.Map{"message": "Country found", "data": country})
}

func UpdateCountry(c *fiber.Ctx) error {
	var req CountryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var country models.Country
	if err := database.DB.First(&country, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Country not found"})
	}

	var count int64
	database.DB.Model(&models.Country{}).Where("name = ? AND id <> ?", req.Name, country.ID).Count(&count)
	if count > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Country already exists"})
	}

	country.Name = req.Name
	if err := database.DB.Save(&country).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update country"})
	}

	return c.JSON(fiber.Map{"message": "Country updated successfully", "data": country})
}

func DeleteCountry(c *fiber.Ctx) error {
	var country models.Country
	if err := database.DB.First(&country, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Country not found"})
	}

	if err := database.DB.Delete(&country).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete country"})
	}

	return c.JSON(fiber.Map{"message": "Country soft deleted successfully", "data": country})
}
