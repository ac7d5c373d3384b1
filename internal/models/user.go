package models

import (
	"gorm.io/datatypes"
)

// CustomField is one user-defined profile entry. Labels and values are
// opaque to the system; duplicate labels are allowed and order is kept.
type CustomField struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type User struct {
	BaseModel
	Name         string                           `gorm:"not null" json:"name"`
	Email        string                           `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string                           `gorm:"not null" json:"-"`
	CustomFields datatypes.JSONSlice[CustomField] `json:"customFields"`

	Jobs []Job `gorm:"foreignKey:CreatedBy" json:"-"`
}
