package appointment

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/divinasnails/salon-manager/internal/audit"
	domain "github.com/divinasnails/salon-manager/internal/domain/appointment"
	"github.com/divinasnails/salon-manager/internal/httperr"
	"github.com/divinasnails/salon-manager/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	CustomerID uint
	EmployeeID uint
	ServiceID  uint

	Date      string
	StartTime string
	Notes     *string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	loc   *time.Location
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	loc *time.Location,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
		loc:   loc,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Servicio: única referencia verificada al crear
	// --------------------------------------------------
	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("service_not_found")
		}
		return nil, err
	}

	// --------------------------------------------------
	// 2. Cálculo: fin y precio congelado
	// --------------------------------------------------
	draft, err := domain.Plan(svc, in.Date, in.StartTime, uc.loc)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Persistencia
	// --------------------------------------------------
	ap := &models.Appointment{
		CustomerID: in.CustomerID,
		EmployeeID: in.EmployeeID,
		ServiceID:  svc.ID,
		Date:       draft.Date,
		StartTime:  draft.StartTime,
		EndTime:    draft.EndTime,
		Status:     string(draft.Status),
		TotalPrice: draft.TotalPrice,
		Notes:      in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4. Auditoría
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return uc.repo.GetAppointment(ctx, ap.ID)
}
