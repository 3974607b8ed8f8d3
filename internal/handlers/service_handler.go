package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/divinasnails/salon-manager/internal/models"
)

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

// --------- Requests ---------

// IntValue accepts both JSON numbers and numeric strings; the
// dashboard forms submit duration and price as strings.
type IntValue int

func (v *IntValue) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*v = 0
		return nil
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return err
	}

	*v = IntValue(n)
	return nil
}

type CreateServiceRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Duration    IntValue `json:"duration"`
	Price       IntValue `json:"price"`
}

type UpdateServiceRequest struct {
	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
	Category    *string   `json:"category,omitempty"`
	Duration    *IntValue `json:"duration,omitempty"`
	Price       *IntValue `json:"price,omitempty"`
	IsActive    *bool     `json:"isActive,omitempty"`
}

var _ json.Unmarshaler = (*IntValue)(nil)

// ======================================================
// LIST
// ======================================================

func (h *ServiceHandler) List(c *gin.Context) {
	category := strings.TrimSpace(c.Query("category"))
	activeStr := strings.TrimSpace(c.Query("active"))

	q := h.db.Session(&gorm.Session{})

	if category != "" {
		q = q.Where("category = ?", category)
	}

	if activeStr != "" {
		if activeStr == "true" {
			q = q.Where("is_active = ?", true)
		} else if activeStr == "false" {
			q = q.Where("is_active = ?", false)
		}
	}

	var services []models.Service
	if err := q.
		Order("name ASC").
		Find(&services).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_services"})
		return
	}

	c.JSON(http.StatusOK, services)
}

// ======================================================
// CREATE
// ======================================================

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	service := models.Service{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Duration:    int(req.Duration),
		Price:       int(req.Price),
		IsActive:    true,
	}

	if err := h.db.Create(&service).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_service"})
		return
	}

	c.JSON(http.StatusCreated, service)
}

// ======================================================
// UPDATE
// ======================================================

func (h *ServiceHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var service models.Service
	if err := h.db.First(&service, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "service_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_service"})
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.Category != nil {
		service.Category = *req.Category
	}
	if req.Duration != nil {
		service.Duration = int(*req.Duration)
	}
	if req.Price != nil {
		service.Price = int(*req.Price)
	}
	if req.IsActive != nil {
		service.IsActive = *req.IsActive
	}

	// Price edits never touch existing appointments: TotalPrice is a
	// snapshot taken at booking time.
	if err := h.db.Save(&service).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_service"})
		return
	}

	c.JSON(http.StatusOK, service)
}
