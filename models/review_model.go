package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Review struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	FieldID uuid.UUID `gorm:"type:uuid;not null;index" json:"field_id"`
	UserID  uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Rating  int       `gorm:"not null" json:"rating"`
	Comment string    `gorm:"type:text" json:"comment"`

	Field Field `gorm:"foreignkey:FieldID" json:"field,omitempty"`
	User  User  `gorm:"foreignkey:UserID" json:"user,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
