package routes

import (
	"github.com/azizbek-dev/sport_field/handlers"
	"github.com/azizbek-dev/sport_field/middleware"
	"github.com/azizbek-dev/sport_field/models"
	"github.com/gofiber/fiber/v2"
)

func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(), middleware.RolesRequired(models.RoleAdmin, models.RoleSuperAdmin))
	admin.Get("/users", handlers.GetUsers)
	admin.Get("/users/:id", handlers.GetUser)
	admin.Patch("/users/:id/role", handlers.UpdateUserRole)
	admin.Delete("/users/:id", handlers.DeleteUser)
}
