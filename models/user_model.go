package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleUser       = "USER"
	RoleOwner      = "OWNER"
	RoleAdmin      = "ADMIN"
	RoleSuperAdmin = "SUPERADMIN"
)

type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	FullName    string    `gorm:"size:255;not null" json:"full_name"`
	PhoneNumber string    `gorm:"size:20;not null;unique" json:"phone_number"`
	Password    string    `gorm:"not null" json:"-"`
	Role        string    `gorm:"size:20;not null;default:'USER'" json:"role"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
