package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/divinasnails/salon-manager/internal/models"
	"github.com/divinasnails/salon-manager/internal/testutil"
	"github.com/divinasnails/salon-manager/internal/timezone"
)

type fixture struct {
	db       *gorm.DB
	router   *gin.Engine
	customer models.Customer
	employee models.Employee
	service  models.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := testutil.NewTestDB(t)
	router := testutil.NewTestRouter(t, db)

	f := &fixture{db: db, router: router}

	f.customer = models.Customer{
		Name: "María", LastName: "González",
		Email: "maria.gonzalez@email.com", Phone: "3001234567",
	}
	require.NoError(t, db.Create(&f.customer).Error)

	f.employee = models.Employee{
		Name: "Camila", LastName: "Vargas",
		Email: "camila.vargas@email.com", Specialty: "Manicura",
		Active: true,
	}
	require.NoError(t, db.Create(&f.employee).Error)

	f.service = models.Service{
		Name: "Tratamiento Fortalecedor", Category: "manos",
		Duration: 45, Price: 25000, IsActive: true,
	}
	require.NoError(t, db.Create(&f.service).Error)

	return f
}

func TestAppointmentLifecycle(t *testing.T) {
	f := newFixture(t)

	// Create: service{45min, 25000} at 10:00 → ends 10:45, price frozen.
	w := doJSON(t, f.router, http.MethodPost, "/appointments", gin.H{
		"customerId": f.customer.ID,
		"employeeId": f.employee.ID,
		"serviceId":  f.service.ID,
		"date":       "2025-11-28",
		"startTime":  "10:00",
	})
	requireStatus(t, w, http.StatusCreated)

	loc := timezone.Location("America/Bogota")
	wantStart := time.Date(2025, 11, 28, 10, 0, 0, 0, loc)
	wantEnd := time.Date(2025, 11, 28, 10, 45, 0, 0, loc)

	created := decode[models.Appointment](t, w)
	assert.True(t, created.StartTime.Equal(wantStart), created.StartTime.String())
	assert.True(t, created.EndTime.Equal(wantEnd), created.EndTime.String())
	assert.Equal(t, 45*time.Minute, created.EndTime.Sub(created.StartTime))
	assert.Equal(t, 25000, created.TotalPrice)
	assert.Equal(t, "PROGRAMADA", created.Status)
	assert.Equal(t, f.customer.ID, created.Customer.ID)
	assert.Equal(t, f.employee.ID, created.Employee.ID)
	assert.Equal(t, f.service.ID, created.Service.ID)

	// Update status to COMPLETADA.
	w = doJSON(t, f.router, http.MethodPut, "/appointments/1", gin.H{
		"status": "COMPLETADA",
	})
	requireStatus(t, w, http.StatusOK)
	assert.Equal(t, "COMPLETADA", decode[models.Appointment](t, w).Status)

	// Status filters: COMPLETADA includes it, PROGRAMADA excludes it.
	w = doJSON(t, f.router, http.MethodGet, "/appointments?status=COMPLETADA", nil)
	requireStatus(t, w, http.StatusOK)
	assert.Len(t, decode[[]models.Appointment](t, w), 1)

	w = doJSON(t, f.router, http.MethodGet, "/appointments?status=PROGRAMADA", nil)
	requireStatus(t, w, http.StatusOK)
	assert.Len(t, decode[[]models.Appointment](t, w), 0)

	// Day filter.
	w = doJSON(t, f.router, http.MethodGet, "/appointments?date=2025-11-28", nil)
	requireStatus(t, w, http.StatusOK)
	assert.Len(t, decode[[]models.Appointment](t, w), 1)

	w = doJSON(t, f.router, http.MethodGet, "/appointments?date=2025-11-29", nil)
	requireStatus(t, w, http.StatusOK)
	assert.Len(t, decode[[]models.Appointment](t, w), 0)

	// Delete.
	w = doJSON(t, f.router, http.MethodDelete, "/appointments/1", nil)
	requireStatus(t, w, http.StatusOK)

	var count int64
	require.NoError(t, f.db.Model(&models.Appointment{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestAppointmentCreateUnknownService(t *testing.T) {
	f := newFixture(t)

	w := doJSON(t, f.router, http.MethodPost, "/appointments", gin.H{
		"customerId": f.customer.ID,
		"employeeId": f.employee.ID,
		"serviceId":  999,
		"date":       "2025-11-28",
		"startTime":  "10:00",
	})
	requireStatus(t, w, http.StatusNotFound)

	var count int64
	require.NoError(t, f.db.Model(&models.Appointment{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestAppointmentUpdateRejectsUnknownStatus(t *testing.T) {
	f := newFixture(t)

	w := doJSON(t, f.router, http.MethodPost, "/appointments", gin.H{
		"customerId": f.customer.ID,
		"employeeId": f.employee.ID,
		"serviceId":  f.service.ID,
		"date":       "2025-11-28",
		"startTime":  "10:00",
	})
	requireStatus(t, w, http.StatusCreated)

	w = doJSON(t, f.router, http.MethodPut, "/appointments/1", gin.H{
		"status": "TERMINADA",
	})
	requireStatus(t, w, http.StatusBadRequest)

	var stored models.Appointment
	require.NoError(t, f.db.First(&stored, 1).Error)
	assert.Equal(t, "PROGRAMADA", stored.Status)
}

func TestAppointmentUpdateMissing(t *testing.T) {
	f := newFixture(t)

	w := doJSON(t, f.router, http.MethodPut, "/appointments/42", gin.H{
		"status": "CANCELADA",
	})
	requireStatus(t, w, http.StatusNotFound)
}

func TestAppointmentAnyTransitionAllowed(t *testing.T) {
	f := newFixture(t)

	w := doJSON(t, f.router, http.MethodPost, "/appointments", gin.H{
		"customerId": f.customer.ID,
		"employeeId": f.employee.ID,
		"serviceId":  f.service.ID,
		"date":       "2025-11-28",
		"startTime":  "10:00",
	})
	requireStatus(t, w, http.StatusCreated)

	// The lifecycle has no guards: CANCELADA may become COMPLETADA,
	// COMPLETADA may go back to PROGRAMADA.
	for _, status := range []string{"CANCELADA", "COMPLETADA", "NO_ASISTIO", "PROGRAMADA"} {
		w = doJSON(t, f.router, http.MethodPut, "/appointments/1", gin.H{
			"status": status,
		})
		requireStatus(t, w, http.StatusOK)
		assert.Equal(t, status, decode[models.Appointment](t, w).Status)
	}
}
