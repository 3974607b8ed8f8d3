package appointment

import (
	"time"

	"github.com/divinasnails/salon-manager/internal/httperr"
	"github.com/divinasnails/salon-manager/internal/models"
)

// ===============================
// Scheduling computation
// ===============================

// Draft is a fully computed appointment before it is persisted.
type Draft struct {
	Date       time.Time
	StartTime  time.Time
	EndTime    time.Time
	TotalPrice int
	Status     Status
}

// Plan combines a calendar date and a time of day into an absolute
// start instant and derives the rest of the appointment from the
// service: EndTime = StartTime + Duration minutes, TotalPrice frozen
// at the service's current price.
//
// When the duration pushes past midnight, EndTime advances into the
// next calendar day while Date keeps the requested day.
func Plan(
	svc *models.Service,
	dateStr string,
	timeStr string,
	loc *time.Location,
) (Draft, error) {

	date, err := time.ParseInLocation("2006-01-02", dateStr, loc)
	if err != nil {
		return Draft{}, httperr.ErrBusiness("invalid_date")
	}

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		dateStr+" "+timeStr,
		loc,
	)
	if err != nil {
		return Draft{}, httperr.ErrBusiness("invalid_time")
	}

	end := start.Add(time.Duration(svc.Duration) * time.Minute)

	return Draft{
		Date:       date,
		StartTime:  start,
		EndTime:    end,
		TotalPrice: svc.Price,
		Status:     InitialStatus(),
	}, nil
}
