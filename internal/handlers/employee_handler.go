package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/divinasnails/salon-manager/internal/models"
)

type EmployeeHandler struct {
	db *gorm.DB
}

func NewEmployeeHandler(db *gorm.DB) *EmployeeHandler {
	return &EmployeeHandler{db: db}
}

// --------- Requests ---------

type CreateEmployeeRequest struct {
	Name      string `json:"name" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required"`
	Address   string `json:"address" binding:"required"`
	BirthDate string `json:"birthDate" binding:"required"`
	HireDate  string `json:"hireDate" binding:"required"`
	Specialty string `json:"specialty" binding:"required"`
}

type UpdateEmployeeRequest struct {
	Name      *string `json:"name,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Address   *string `json:"address,omitempty"`
	Specialty *string `json:"specialty,omitempty"`
	Active    *bool   `json:"active,omitempty"`
}

// ======================================================
// LIST
// ======================================================

func (h *EmployeeHandler) List(c *gin.Context) {
	var employees []models.Employee
	if err := h.db.
		Order("name ASC").
		Find(&employees).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_employees"})
		return
	}

	c.JSON(http.StatusOK, employees)
}

// ======================================================
// CREATE
// ======================================================

func (h *EmployeeHandler) Create(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_birth_date"})
		return
	}

	hireDate, err := time.Parse("2006-01-02", req.HireDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_hire_date"})
		return
	}

	employee := models.Employee{
		Name:      req.Name,
		LastName:  req.LastName,
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:     req.Phone,
		Address:   req.Address,
		BirthDate: birthDate,
		HireDate:  hireDate,
		Specialty: req.Specialty,
		Active:    true,
	}

	if err := h.db.Create(&employee).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_employee"})
		return
	}

	c.JSON(http.StatusCreated, employee)
}

// ======================================================
// UPDATE
// ======================================================

func (h *EmployeeHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var employee models.Employee
	if err := h.db.First(&employee, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "employee_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_employee"})
		return
	}

	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		employee.Name = *req.Name
	}
	if req.LastName != nil {
		employee.LastName = *req.LastName
	}
	if req.Phone != nil {
		employee.Phone = *req.Phone
	}
	if req.Address != nil {
		employee.Address = *req.Address
	}
	if req.Specialty != nil {
		employee.Specialty = *req.Specialty
	}
	if req.Active != nil {
		employee.Active = *req.Active
	}

	if err := h.db.Save(&employee).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_employee"})
		return
	}

	c.JSON(http.StatusOK, employee)
}
