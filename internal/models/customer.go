package models

import "time"

type Customer struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name     string `gorm:"size:100;not null" json:"name"`
	LastName string `gorm:"size:100;not null" json:"lastName"`
	Email    string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone    string `gorm:"size:20;not null" json:"phone"`

	Address   *string    `gorm:"size:255" json:"address"`
	BirthDate *time.Time `json:"birthDate"`
	Notes     *string    `gorm:"size:500" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
