package models

import (
	"time"
)

// Building is a physical building where organizations are located.
type Building struct {
	ID        int       `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Address   string    `json:"address" gorm:"size:512;not null"`
	Latitude  float64   `json:"latitude" gorm:"not null"`
	Longitude float64   `json:"longitude" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Organizations []Organization `json:"-" gorm:"foreignKey:BuildingID;constraint:OnDelete:CASCADE"`
}
