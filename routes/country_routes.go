package routes

import (
	"github.com/azizbek-dev/sport_field/handlers"
	"github.com/azizbek-dev/sport_field/middleware"
	"github.com/azizbek-dev/sport_field/models"
	"github.com/gofiber/fiber/v2"
)

func CountryRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	country := api.Group("/country")
	country.Get("", handlers.GetCountries)
	country.Post("", middleware.Protected(), middleware.RolesRequired(models.RoleAdmin, models.RoleSuperAdmin), handlers.CreateCountry)
	country.Patch("/:id", middleware.Protected(), middleware.RolesRequired(models.RoleAdmin, models.RoleSuperAdmin), handlers.UpdateCountry)
	country.Delete("/:id", middleware.Protected(), middleware.RolesRequired(models.RoleAdmin, models.RoleSuperAdmin), handlers.DeleteCountry)
	country.Get("/:id", handlers.GetCountry)
}
