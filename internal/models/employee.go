package models

import "time"

type Employee struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name     string `gorm:"size:100;not null" json:"name"`
	LastName string `gorm:"size:100;not null" json:"lastName"`
	Email    string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone    string `gorm:"size:20" json:"phone"`
	Address  string `gorm:"size:255" json:"address"`

	BirthDate time.Time `json:"birthDate"`
	HireDate  time.Time `json:"hireDate"`

	Specialty string `gorm:"size:100" json:"specialty"`
	Active    bool   `json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
