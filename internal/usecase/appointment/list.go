package appointment

import (
	"context"
	"time"

	domain "github.com/divinasnails/salon-manager/internal/domain/appointment"
	"github.com/divinasnails/salon-manager/internal/httperr"
	"github.com/divinasnails/salon-manager/internal/models"
)

// Hard cap on rows per listing; the source had none.
const maxListResults = 500

type ListAppointmentsInput struct {
	Status string
	Date   string
}

type ListAppointments struct {
	repo domain.Repository
	loc  *time.Location
}

func NewListAppointments(
	repo domain.Repository,
	loc *time.Location,
) *ListAppointments {
	return &ListAppointments{
		repo: repo,
		loc:  loc,
	}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	in ListAppointmentsInput,
) ([]models.Appointment, error) {

	filter := domain.ListFilter{
		Limit: maxListResults,
	}

	if in.Status != "" {
		if !domain.IsValidStatus(in.Status) {
			return nil, httperr.ErrBusiness("invalid_status")
		}
		filter.Status = in.Status
	}

	if in.Date != "" {
		day, err := time.ParseInLocation("2006-01-02", in.Date, uc.loc)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_date")
		}

		filter.DayStart = day
		filter.DayEnd = day.Add(24 * time.Hour)
	}

	return uc.repo.ListAppointments(ctx, filter)
}
