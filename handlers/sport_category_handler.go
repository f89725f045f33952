package handlers

import (
	"github.com/azizbek-dev/sport_field/database"
	"github.com/azizbek-dev/sport_field/models"
	"github.com/gofiber/fiber/v2"
)

type SportCategoryRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

func CreateSportCategory(c *fiber.Ctx) error {
	var req SportCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var count int64
	database.DB.Model(&models.SportCategory{}).Where("name = ?", req.Name).Count(&count)
	if count > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Sport category already exists"})
	}

	category := models.SportCategory{Name: req.Name}
	if err := database.DB.Create(&category).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create sport category"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Sport category created successfully", "data": category})
}

func GetSportCategories(c *fiber.Ctx) error {
	var categories []models.SportCategory
	database.DB.Order("name asc").Find(&categories)
	return c.JSON(fiber.Map{"message": "All sport categories", "data": categories})
}

func GetSportCategory(c *fiber.Ctx) error {
	var category models.SportCategory
	if err := database.DB.First(&category, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Sport category not found"})
	}
	return c.JSON(fiber.Map{"message": "Sport category found", "data": category})
}

func UpdateSportCategory(c *fiber.Ctx) error {
	var req SportCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var category models.SportCategory
	if err := database.DB.First(&category, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Sport category not found"})
	}

	var count int64
	database.DB.Model(&models.SportCategory{}).Where("name = ? AND id <> ?", req.Name, category.ID).Count(&count)
	if count > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Sport category already exists"})
	}

	category.Name = req.Name
	if err := database.DB.Save(&category).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update sport category"})
	}

	return c.JSON(fiber.Map{"message": "Sport category updated successfully", "data": category})
}

func DeleteSportCategory(c *fiber.Ctx) error {
	var category models.SportCategory
	if err := database.DB.First(&category, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Sport category not found"})
	}

	if err := database.DB.Delete(&category).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete sport category"})
	}

	return c.JSON(fiber.Map{"message": "Sport category soft deleted successfully", "data": category})
}
