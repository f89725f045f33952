package routes

import (
	"github.com/azizbek-dev/sport_field/handlers"
	"github.com/azizbek-dev/sport_field/middleware"
	"github.com/azizbek-dev/sport_field/models"
	"github.com/gofiber/fiber/v2"
)

func ReviewRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	review := api.Group("/reviews", middleware.Protected())
	review.Get("", handlers.GetReviews)
	review.Post("", middleware.RolesRequired(models.RoleUser), handlers.CreateReview)
	review.Patch("/:id", middleware.RolesRequired(models.RoleUser), handlers.UpdateReview)
	review.Delete("/:id", middleware.RolesRequired(models.RoleUser), handlers.DeleteReview)
	review.Get("/:id", handlers.GetReview)
}
