package appointment_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/divinasnails/salon-manager/internal/audit"
	domain "github.com/divinasnails/salon-manager/internal/domain/appointment"
	"github.com/divinasnails/salon-manager/internal/httperr"
	infraRepo "github.com/divinasnails/salon-manager/internal/infra/repository"
	"github.com/divinasnails/salon-manager/internal/models"
	"github.com/divinasnails/salon-manager/internal/testutil"
	"github.com/divinasnails/salon-manager/internal/timezone"
	ucAppointment "github.com/divinasnails/salon-manager/internal/usecase/appointment"
)

func setupCreate(t *testing.T) (*gorm.DB, *ucAppointment.CreateAppointment) {
	t.Helper()

	db := testutil.NewTestDB(t)
	repo := infraRepo.NewAppointmentGormRepository(db)
	dispatcher := audit.NewDispatcher(audit.New(db), zap.NewNop())
	loc := timezone.Location("America/Bogota")

	return db, ucAppointment.NewCreateAppointment(repo, dispatcher, loc)
}

func seedReferences(t *testing.T, db *gorm.DB, svc *models.Service) (models.Customer, models.Employee) {
	t.Helper()

	customer := models.Customer{
		Name: "Claudia", LastName: "López",
		Email: "claled@gmail.com", Phone: "60228402",
	}
	require.NoError(t, db.Create(&customer).Error)

	employee := models.Employee{
		Name: "Camila", LastName: "Vargas",
		Email: "camila.vargas@email.com", Specialty: "Manicura",
	}
	require.NoError(t, db.Create(&employee).Error)

	if svc != nil {
		require.NoError(t, db.Create(svc).Error)
	}

	return customer, employee
}

func TestCreateAppointment(t *testing.T) {
	ctx := context.Background()

	t.Run("computes end time and freezes the price", func(t *testing.T) {
		db, uc := setupCreate(t)

		svc := &models.Service{Name: "Tratamiento Fortalecedor", Duration: 45, Price: 25000, IsActive: true}
		customer, employee := seedReferences(t, db, svc)

		ap, err := uc.Execute(ctx, ucAppointment.CreateAppointmentInput{
			CustomerID: customer.ID,
			EmployeeID: employee.ID,
			ServiceID:  svc.ID,
			Date:       "2025-11-28",
			StartTime:  "10:00",
		})
		require.NoError(t, err)

		loc := timezone.Location("America/Bogota")
		wantEnd := time.Date(2025, 11, 28, 10, 45, 0, 0, loc)
		assert.True(t, ap.EndTime.Equal(wantEnd), ap.EndTime.String())
		assert.Equal(t, 25000, ap.TotalPrice)
		assert.Equal(t, string(domain.StatusScheduled), ap.Status)
		assert.Equal(t, customer.ID, ap.Customer.ID)
		assert.Equal(t, svc.ID, ap.Service.ID)
	})

	t.Run("total price survives a later service price change", func(t *testing.T) {
		db, uc := setupCreate(t)

		svc := &models.Service{Name: "Manicura Clásica", Duration: 45, Price: 25000, IsActive: true}
		customer, employee := seedReferences(t, db, svc)

		ap, err := uc.Execute(ctx, ucAppointment.CreateAppointmentInput{
			CustomerID: customer.ID,
			EmployeeID: employee.ID,
			ServiceID:  svc.ID,
			Date:       "2025-11-28",
			StartTime:  "10:00",
		})
		require.NoError(t, err)

		require.NoError(t, db.Model(svc).Update("price", 40000).Error)

		var stored models.Appointment
		require.NoError(t, db.First(&stored, ap.ID).Error)
		assert.Equal(t, 25000, stored.TotalPrice)
	})

	t.Run("unknown service fails and persists nothing", func(t *testing.T) {
		db, uc := setupCreate(t)
		customer, employee := seedReferences(t, db, nil)

		_, err := uc.Execute(ctx, ucAppointment.CreateAppointmentInput{
			CustomerID: customer.ID,
			EmployeeID: employee.ID,
			ServiceID:  999,
			Date:       "2025-11-28",
			StartTime:  "10:00",
		})
		assert.True(t, httperr.IsBusiness(err, "service_not_found"))

		var count int64
		require.NoError(t, db.Model(&models.Appointment{}).Count(&count).Error)
		assert.Zero(t, count)
	})

	t.Run("malformed time fails and persists nothing", func(t *testing.T) {
		db, uc := setupCreate(t)

		svc := &models.Service{Name: "Pedicura Clásica", Duration: 60, Price: 30000, IsActive: true}
		customer, employee := seedReferences(t, db, svc)

		_, err := uc.Execute(ctx, ucAppointment.CreateAppointmentInput{
			CustomerID: customer.ID,
			EmployeeID: employee.ID,
			ServiceID:  svc.ID,
			Date:       "2025-11-28",
			StartTime:  "mediodía",
		})
		assert.True(t, httperr.IsBusiness(err, "invalid_time"))

		var count int64
		require.NoError(t, db.Model(&models.Appointment{}).Count(&count).Error)
		assert.Zero(t, count)
	})
}
