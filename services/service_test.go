package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/azizbek-dev/sport_field/models"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
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
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, role string) models.User {
	t.Helper()

	user := models.User{
		FullName:    "Test " + role,
		PhoneNumber: "+99890" + uuid.NewString()[:7],
		Password:    "hashed",
		Role:        role,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

func createTestField(t *testing.T, db *gorm.DB, ownerID uuid.UUID) models.Field {
	t.Helper()

	country := models.Country{Name: "Country " + uuid.NewString()[:8]}
	if err := db.Create(&country).Error; err != nil {
		t.Fatalf("failed to create test country: %v", err)
	}
	region := models.Region{Name: "Region", CountryID: country.ID}
	if err := db.Create(&region).Error; err != nil {
		t.Fatalf("failed to create test region: %v", err)
	}
	district := models.District{Name: "District", RegionID: region.ID}
	if err := db.Create(&district).Error; err != nil {
		t.Fatalf("failed to create test district: %v", err)
	}
	category := models.SportCategory{Name: "Football " + uuid.NewString()[:8]}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}

	field := models.Field{
		Name:        "Central Stadium",
		Description: "A test field",
		Images:      []string{"image1.jpg"},
		OpeningTime: time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC),
		ClosingTime: time.Date(2024, 1, 1, 22, 0, 0, 0, time.UTC),
		PitchType:   models.PitchTypeNaturalGrass,
		VenueType:   models.VenueTypeOutdoor,
		Location:    models.Location{Latitude: 41.31, Longitude: 69.24},
		OwnerID:     ownerID,
		DistrictID:  district.ID,
		CategoryID:  category.ID,
	}
	if err := db.Create(&field).Error; err != nil {
		t.Fatalf("failed to create test field: %v", err)
	}
	return field
}
