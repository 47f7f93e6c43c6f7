package models

// Activity is a node in the hierarchical business activity classification.
// Activities form a forest: rows with a nil ParentID are roots.
type Activity struct {
	ID       int    `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"size:255;uniqueIndex;not null"`
	ParentID *int   `json:"parent_id" gorm:"index"`

	// Relations
	Parent        *Activity      `json:"-" gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE"`
	Children      []Activity     `json:"-" gorm:"foreignKey:ParentID"`
	Organizations []Organization `json:"-" gorm:"many2many:organization_activities;constraint:OnDelete:CASCADE"`
}
