package models

import "time"

// Duration is in minutes, Price in whole currency units (COP).
type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`
	Category    string `gorm:"size:50" json:"category"`

	Duration int `json:"duration"`
	Price    int `json:"price"`

	// Set explicitly on create; a gorm default would make false
	// unstorable on insert.
	IsActive bool `json:"isActive"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
