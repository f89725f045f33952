package routes

import (
	"github.com/azizbek-dev/sport_field/handlers"
	"github.com/azizbek-dev/sport_field/middleware"
	"github.com/azizbek-dev/sport_field/models"
	"github.com/gofiber/fiber/v2"
)

func SportCategoryRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	category := api.Group("/sport-category")
	category.Get("", handlers.GetSportCategories)
	category.Post("", middleware.Protected(), middleware.RolesRequired(models.RoleAdmin, models.RoleSuperAdmin), handlers.CreateSportCategory)
	category.Patch("/:id", middleware.Protected(), middleware.RolesRequired(models.RoleAdmin, models.RoleSuperAdmin), handlers.UpdateSportCategory)
	category.Delete("/:id", middleware.Protected(), middleware.RolesRequired(models.RoleAdmin, models.RoleSuperAdmin), handlers.DeleteSportCategory)
	category.Get("/:id", handlers.GetSportCategory)
}
