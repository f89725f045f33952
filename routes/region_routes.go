package routes

import (
	"github.com/azizbek-dev/sport_field/handlers"
	"github.com/azizbek-dev/sport_field/middleware"
	"github.com/azizbek-dev/sport_field/models"
	"github.com/gofiber/fiber/v2"
)

func RegionRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	region := api.Group("/region")
	region.Get("", handlers.GetRegions)
	region.Post("", middleware.Protected(), middleware.RolesRequired(models.RoleAdmin, models.RoleSuperAdmin), handlers.CreateRegion)
	region.Patch("/:id", middleware.Protected(), middleware.RolesRequired(models.RoleAdmin, models.RoleSuperAdmin), handlers.UpdateRegion)
	region.Delete("/:id", middleware.Protected(), middleware.RolesRequired(models.RoleAdmin, models.RoleSuperAdmin), handlers.DeleteRegion)
	region.Get("/:id", handlers.GetRegion)
}
