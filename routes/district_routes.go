package routes

import (
	"github.com/azizbek-dev/sport_field/handlers"
	"github.com/azizbek-dev/sport_field/middleware"
	"github.com/azizbek-dev/sport_field/models"
	"github.com/gofiber/fiber/v2"
)

func DistrictRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	district := api.Group("/district")
	district.Get("", handlers.GetDistricts)
	district.Post("", middleware.Protected(), middleware.RolesRequired(models.RoleAdmin, models.RoleSuperAdmin), handlers.CreateDistrict)
	district.Patch("/:id", middleware.Protected(), middleware.RolesRequired(models.RoleAdmin, models.RoleSuperAdmin), handlers.UpdateDistrict)
	district.Delete("/:id", middleware.Protected(), middleware.RolesRequired(models.RoleAdmin, models.RoleSuperAdmin), handlers.DeleteDistrict)
	district.Get("/:id", handlers.GetDistrict)
}
