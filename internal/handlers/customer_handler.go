package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/divinasnails/salon-manager/internal/audit"
	"github.com/divinasnails/salon-manager/internal/models"
)

type CustomerHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewCustomerHandler(db *gorm.DB, audit *audit.Dispatcher) *CustomerHandler {
	return &CustomerHandler{db: db, audit: audit}
}

// --------- Requests ---------

type CustomerRequest struct {
	Name     string `json:"name" binding:"required"`
	LastName string `json:"lastName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`

	Address   string `json:"address"`
	BirthDate string `json:"birthDate"`
	Notes     string `json:"notes"`
}

// Optionals arrive as empty strings from the dashboard forms and are
// stored as NULL.
func (r *CustomerRequest) apply(customer *models.Customer) error {
	customer.Name = r.Name
	customer.LastName = r.LastName
	customer.Email = strings.ToLower(strings.TrimSpace(r.Email))
	customer.Phone = r.Phone

	customer.Address = nilIfEmpty(r.Address)
	customer.Notes = nilIfEmpty(r.Notes)

	customer.BirthDate = nil
	if r.BirthDate != "" {
		bd, err := time.Parse("2006-01-02", r.BirthDate)
		if err != nil {
			return err
		}
		customer.BirthDate = &bd
	}

	return nil
}

func nilIfEmpty(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

// ======================================================
// LIST
// ======================================================

func (h *CustomerHandler) List(c *gin.Context) {
	search := strings.ToLower(strings.TrimSpace(c.Query("search")))

	q := h.db.Session(&gorm.Session{})

	if search != "" {
		like := "%" + search + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ? OR phone LIKE ?",
			like, like, like, like,
		)
	}

	var customers []models.Customer
	if err := q.
		Order("name ASC").
		Find(&customers).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_customers"})
		return
	}

	c.JSON(http.StatusOK, customers)
}

// ======================================================
// CREATE
// ======================================================

func (h *CustomerHandler) Create(c *gin.Context) {
	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var customer models.Customer
	if err := req.apply(&customer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_birth_date"})
		return
	}

	if err := h.db.Create(&customer).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_customer"})
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "customer_created",
		Entity:   "customer",
		EntityID: &customer.ID,
	})

	c.JSON(http.StatusCreated, customer)
}

// ======================================================
// UPDATE
// ======================================================

func (h *CustomerHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var customer models.Customer
	if err := h.db.First(&customer, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "customer_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_customer"})
		return
	}

	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if err := req.apply(&customer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_birth_date"})
		return
	}

	if err := h.db.Save(&customer).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_customer"})
		return
	}

	c.JSON(http.StatusOK, customer)
}

// ======================================================
// DELETE
// ======================================================

// Delete refuses to remove a customer that still has appointments.
// The FK is RESTRICT as well; the pre-check turns the driver error
// into a clean 409.
func (h *CustomerHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var customer models.Customer
	if err := h.db.First(&customer, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "customer_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_customer"})
		return
	}

	var referenced int64
	if err := h.db.Model(&models.Appointment{}).
		Where("customer_id = ?", customer.ID).
		Count(&referenced).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_customer"})
		return
	}

	if referenced > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "customer_has_appointments"})
		return
	}

	if err := h.db.Delete(&customer).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_customer"})
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "customer_deleted",
		Entity:   "customer",
		EntityID: &customer.ID,
	})

	c.JSON(http.StatusOK, gin.H{"success": true})
}
