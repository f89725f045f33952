package database

import (
	"fmt"
	"log"

	config "github.com/azizbek-dev/sport_field/configs"
	"github.com/azizbek-dev/sport_field/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	dsn := config.Config("DATABASE_URL")

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}

	fmt.Println("✅ Database connected successfully")
}

func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Country{},
		&models.Region{},
		&models.District{},
		&models.SportCategory{},
		&models.Field{},
		&models.Booking{},
		&models.Review{},
	)
	if err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}
	fmt.Println("✅ Database migration successful")
}

func SeedSuperAdmin() {
	adminPhone := config.Config("SUPERADMIN_PHONE_NUMBER")
	adminPassword := config.Config("SUPERADMIN_PASSWORD")

	var count int64
	err := DB.Model(&models.User{}).Where("phone_number = ?", adminPhone).Count(&count).Error
	if err != nil {
		log.Fatalf("🔥 Failed to check for superadmin user: %v", err)
	}

	if count > 0 {
		log.Println("Superadmin user already exists.")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("🔥 Failed to hash superadmin password: %v", err)
	}

	adminUser := models.User{
		FullName:    config.Config("SUPERADMIN_FULL_NAME"),
		PhoneNumber: adminPhone,
		Password:    string(hashedPassword),
		Role:        models.RoleSuperAdmin,
	}

	if err := DB.Create(&adminUser).Error; err != nil {
		log.Fatalf("🔥 Failed to seed superadmin user: %v", err)
	}

	log.Println("✅ Superadmin user seeded successfully")
}
