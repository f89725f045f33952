package main

import (
	"log"
	"time"

	"github.com/azizbek-dev/sport_field/database"
	"github.com/azizbek-dev/sport_field/jobs"
	"github.com/azizbek-dev/sport_field/routes"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"
)

func main() {
	database.ConnectDB()
	database.Migrate()
	database.SeedSuperAdmin()

	c := cron.New()
	c.AddFunc("*/10 * * * *", jobs.CompleteFinishedBookings)
	go c.Start()
	log.Println("✅ Cron job for booking completion scheduled successfully.")

	app := fiber.New(fiber.Config{
		AppName:       "Sport Field Booking",
		CaseSensitive: true,
		StrictRouting: true,
		ReadTimeout:   15 * time.Second,
		WriteTimeout:  15 * time.Second,
		IdleTimeout:   60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{
				"status":  "error",
				"code":    code,
				"message": err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		AllowMethods:  "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, Authorization",
		MaxAge:        86400,
	}))

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "success",
			"message": "Welcome to Sport Field Booking API",
		})
	})

	routes.AuthRoutes(app)
	routes.ProfileRoutes(app)
	routes.AdminRoutes(app)
	routes.CountryRoutes(app)
	routes.RegionRoutes(app)
	routes.DistrictRoutes(app)
	routes.SportCategoryRoutes(app)
	routes.FieldRoutes(app)
	routes.BookingRoutes(app)
	routes.ReviewRoutes(app)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})

	log.Println("✅ Server is running on port 8080")
	err := app.Listen(":8080")
	if err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
