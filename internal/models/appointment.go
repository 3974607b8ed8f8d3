package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerID uint     `json:"customerId"`
	Customer   Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"customer"`

	EmployeeID uint     `json:"employeeId"`
	Employee   Employee `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"employee"`

	ServiceID uint    `json:"serviceId"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"service"`

	Date      time.Time `json:"date"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`

	Status string `gorm:"size:20;default:'PROGRAMADA'" json:"status"`

	// Snapshot of Service.Price at creation time; never recomputed.
	TotalPrice int `json:"totalPrice"`

	Notes *string `gorm:"size:500" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
