package models

import (
	"time"
)

// Organization is a catalog entry located in exactly one building and linked
// to any number of activities through organization_activities.
type Organization struct {
	ID          int       `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:255;not null;index"`
	Description string    `json:"description" gorm:"size:1024"`
	BuildingID  int       `json:"building_id" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	Building   *Building           `json:"building,omitempty" gorm:"foreignKey:BuildingID;constraint:OnDelete:CASCADE"`
	Phones     []OrganizationPhone `json:"phones" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Activities []Activity          `json:"activities" gorm:"many2many:organization_activities;constraint:OnDelete:CASCADE"`
}

// OrganizationPhone stores a single phone number of an organization.
// The same number cannot be registered twice for one organization.
type OrganizationPhone struct {
	ID             int    `json:"id" gorm:"primaryKey"`
	OrganizationID int    `json:"organization_id" gorm:"not null;uniqueIndex:uq_organization_phone_number"`
	Number         string `json:"number" gorm:"size:32;not null;uniqueIndex:uq_organization_phone_number"`
	Label          string `json:"label" gorm:"size:64"`
}
