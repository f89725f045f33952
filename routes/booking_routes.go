package routes

import (
	"github.com/azizbek-dev/sport_field/handlers"
	"github.com/azizbek-dev/sport_field/middleware"
	"github.com/azizbek-dev/sport_field/models"
	"github.com/gofiber/fiber/v2"
)

func BookingRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	booking := api.Group("/booking")
	booking.Get("", handlers.GetBookings)

	booking.Post("", middleware.Protected(), middleware.RolesRequired(models.RoleUser), handlers.CreateBooking)
	booking.Get("/me", middleware.Protected(), middleware.RolesRequired(models.RoleUser), handlers.GetMyBookings)
	booking.Get("/owner/me", middleware.Protected(), middleware.RolesRequired(models.RoleOwner), handlers.GetOwnerBookings)
	booking.Patch("/:id", middleware.Protected(), middleware.RolesRequired(models.RoleUser, models.RoleOwner), handlers.UpdateBooking)
	booking.Put("/:id/cancel", middleware.Protected(), middleware.RolesRequired(models.RoleUser), handlers.CancelBooking)

	booking.Get("/:id", handlers.GetBooking)
}
