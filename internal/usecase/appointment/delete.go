package appointment

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/divinasnails/salon-manager/internal/audit"
	domain "github.com/divinasnails/salon-manager/internal/domain/appointment"
	"github.com/divinasnails/salon-manager/internal/httperr"
)

type DeleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteAppointment) Execute(ctx context.Context, id uint) error {
	if _, err := uc.repo.GetAppointment(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.ErrBusiness("appointment_not_found")
		}
		return err
	}

	if err := uc.repo.DeleteAppointment(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &id,
	})

	return nil
}
