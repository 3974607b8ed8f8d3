package appointment

import (
	"context"
	"time"

	"github.com/divinasnails/salon-manager/internal/models"
)

// ListFilter narrows a listing. Zero values mean "no filter".
type ListFilter struct {
	Status string

	// Inclusive calendar-day window, precomputed by the caller.
	DayStart time.Time
	DayEnd   time.Time

	// Safety cap on returned rows.
	Limit int
}

type Repository interface {
	// -------- Service --------
	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// -------- Appointment --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		id uint,
	) error

	ListAppointments(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Appointment, error)
}
