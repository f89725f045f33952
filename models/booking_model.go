package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	BookingPending   = "PENDING"
	BookingConfirmed = "CONFIRMED"
	BookingCompleted = "COMPLETED"
	BookingCancelled = "CANCELLED"
)

type Booking struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	FieldID     uuid.UUID `gorm:"type:uuid;not null;index" json:"field_id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	BookingDate time.Time `gorm:"not null" json:"booking_date"`
	StartTime   time.Time `gorm:"not null" json:"start_time"`
	EndTime     time.Time `gorm:"not null" json:"end_time"`
	Status      string    `gorm:"size:20;not null;default:'PENDING'" json:"status"`

	Field Field `gorm:"foreignkey:FieldID" json:"field,omitempty"`
	User  User  `gorm:"foreignkey:UserID" json:"user,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
