package routes

import (
	"github.com/azizbek-dev/sport_field/handlers"
	"github.com/azizbek-dev/sport_field/middleware"
	"github.com/azizbek-dev/sport_field/models"
	"github.com/gofiber/fiber/v2"
)

func FieldRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	field := api.Group("/field")
	field.Get("", handlers.GetFields)
	field.Post("", middleware.Protected(), middleware.RolesRequired(models.RoleOwner), handlers.CreateField)
	field.Get("/me", middleware.Protected(), middleware.RolesRequired(models.RoleOwner), handlers.GetMyFields)
	field.Patch("/:id", middleware.Protected(), middleware.RolesRequired(models.RoleOwner), handlers.UpdateField)
	field.Delete("/:id", middleware.Protected(), middleware.RolesRequired(models.RoleOwner), handlers.DeleteField)
	field.Get("/:id", handlers.GetField)
}
