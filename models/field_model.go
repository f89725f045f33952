package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PitchTypeNaturalGrass    = "NATURAL_GRASS"
	PitchTypeArtificialGrass = "ARTIFICIAL_GRASS"

	VenueTypeIndoor  = "INDOOR"
	VenueTypeOutdoor = "OUTDOOR"
)

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Field struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Images      []string  `gorm:"serializer:json" json:"images"`
	OpeningTime time.Time `gorm:"not null" json:"opening_time"`
	ClosingTime time.Time `gorm:"not null" json:"closing_time"`
	PitchType   string    `gorm:"size:30;not null" json:"pitch_type"`
	VenueType   string    `gorm:"size:30;not null" json:"venue_type"`
	Location    Location  `gorm:"serializer:json" json:"location"`
	AvgRating   float64   `gorm:"type:numeric(3,2);not null;default:0" json:"avg_rating"`

	OwnerID    uuid.UUID `gorm:"type:uuid;not null" json:"owner_id"`
	DistrictID uuid.UUID `gorm:"type:uuid;not null" json:"district_id"`
	CategoryID uuid.UUID `gorm:"type:uuid;not null" json:"category_id"`

	Owner    User          `gorm:"foreignkey:OwnerID" json:"-"`
	District District      `gorm:"foreignkey:DistrictID" json:"district,omitempty"`
	Category SportCategory `gorm:"foreignkey:CategoryID" json:"category,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (f *Field) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
