package handlers

import (
	"github.com/azizbek-dev/sport_field/database"
	"github.com/azizbek-dev/sport_field/models"
	"github.com/gofiber/fiber/v2"
)

type UpdateUserRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=USER OWNER ADMIN"`
}

func GetUsers(c *fiber.Ctx) error {
	var users []models.User
	database.DB.Order("created_at desc").Find(&users)

	responses := make([]UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, userResponse(user))
	}
	return c.JSON(fiber.Map{"message": "All users", "data": responses})
}

func GetUser(c *fiber.Ctx) error {
	var user models.User
	if err := database.DB.First(&user, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}
	return c.JSON(fiber.Map{"message": "User found", "data": userResponse(user)})
}

// UpdateUserRole promotes or demotes an account. SUPERADMIN accounts cannot
// be reassigned through this endpoint.
func UpdateUserRole(c *fiber.Ctx) error {
	var req UpdateUserRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}
	if user.Role == models.RoleSuperAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Superadmin role cannot be changed"})
	}

	user.Role = req.Role
	if err := database.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update user role"})
	}

	return c.JSON(fiber.Map{"message": "User role updated successfully", "data": userResponse(user)})
}

func DeleteUser(c *fiber.Ctx) error {
	var user models.User
	if err := database.DB.First(&user, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}
	if user.Role == models.RoleSuperAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Superadmin cannot be deleted"})
	}

	if err := database.DB.Delete(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete user"})
	}

	return c.JSON(fiber.Map{"message": "User soft deleted successfully"})
}
