package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/divinasnails/salon-manager/internal/models"
	"github.com/divinasnails/salon-manager/internal/testutil"
)

func seedServices(t *testing.T, db *gorm.DB) {
	t.Helper()

	services := []models.Service{
		{Name: "Manicura Clásica", Category: "manos", Duration: 45, Price: 25000, IsActive: true},
		{Name: "Pedicura Clásica", Category: "pies", Duration: 60, Price: 30000, IsActive: true},
		{Name: "Relleno Acrílico", Category: "manos", Duration: 90, Price: 50000, IsActive: false},
	}
	for i := range services {
		require.NoError(t, db.Create(&services[i]).Error)
	}
}

func TestServiceList(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := testutil.NewTestRouter(t, db)
	seedServices(t, db)

	t.Run("no filters returns everything", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/services", nil)
		requireStatus(t, w, http.StatusOK)
		assert.Len(t, decode[[]models.Service](t, w), 3)
	})

	t.Run("category filter", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/services?category=manos", nil)
		requireStatus(t, w, http.StatusOK)
		assert.Len(t, decode[[]models.Service](t, w), 2)
	})

	t.Run("active filter", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/services?active=false", nil)
		requireStatus(t, w, http.StatusOK)

		got := decode[[]models.Service](t, w)
		require.Len(t, got, 1)
		assert.Equal(t, "Relleno Acrílico", got[0].Name)
	})

	t.Run("filters combine", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/services?category=manos&active=true", nil)
		requireStatus(t, w, http.StatusOK)

		got := decode[[]models.Service](t, w)
		require.Len(t, got, 1)
		assert.Equal(t, "Manicura Clásica", got[0].Name)
	})
}

func TestServiceCreate(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := testutil.NewTestRouter(t, db)

	t.Run("accepts numeric duration and price", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/services", gin.H{
			"name":        "Manicura Semipermanente",
			"description": "Esmaltado de larga duración",
			"category":    "manos",
			"duration":    60,
			"price":       35000,
		})
		requireStatus(t, w, http.StatusCreated)

		created := decode[models.Service](t, w)
		assert.Equal(t, 60, created.Duration)
		assert.Equal(t, 35000, created.Price)
		assert.True(t, created.IsActive)
	})

	t.Run("coerces string duration and price", func(t *testing.T) {
		// As submitted by the dashboard forms.
		w := doJSON(t, router, http.MethodPost, "/services", gin.H{
			"name":     "Pedicura Spa",
			"category": "pies",
			"duration": "75",
			"price":    "45000",
		})
		requireStatus(t, w, http.StatusCreated)

		created := decode[models.Service](t, w)
		assert.Equal(t, 75, created.Duration)
		assert.Equal(t, 45000, created.Price)
	})
}

func TestServiceUpdateKeepsPriceSnapshots(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := testutil.NewTestRouter(t, db)
	seedServices(t, db)

	require.NoError(t, db.Create(&models.Customer{
		Name: "María", LastName: "González",
		Email: "maria.gonzalez@email.com", Phone: "3001234567",
	}).Error)
	require.NoError(t, db.Create(&models.Employee{
		Name: "Camila", LastName: "Vargas",
		Email: "camila.vargas@email.com", Active: true,
	}).Error)

	w := doJSON(t, router, http.MethodPost, "/appointments", gin.H{
		"customerId": 1,
		"employeeId": 1,
		"serviceId":  1,
		"date":       "2025-11-28",
		"startTime":  "10:00",
	})
	requireStatus(t, w, http.StatusCreated)

	w = doJSON(t, router, http.MethodPut, "/services/1", gin.H{
		"price": 40000,
	})
	requireStatus(t, w, http.StatusOK)
	assert.Equal(t, 40000, decode[models.Service](t, w).Price)

	// The booked appointment keeps the price it was created with.
	var stored models.Appointment
	require.NoError(t, db.First(&stored, 1).Error)
	assert.Equal(t, 25000, stored.TotalPrice)
}
