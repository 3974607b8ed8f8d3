package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/divinasnails/salon-manager/internal/httperr"
	"github.com/divinasnails/salon-manager/internal/httpresp"
	ucAppointment "github.com/divinasnails/salon-manager/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC *ucAppointment.CreateAppointment
	listUC   *ucAppointment.ListAppointments
	statusUC *ucAppointment.UpdateAppointmentStatus
	deleteUC *ucAppointment.DeleteAppointment
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	listUC *ucAppointment.ListAppointments,
	statusUC *ucAppointment.UpdateAppointmentStatus,
	deleteUC *ucAppointment.DeleteAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC: createUC,
		listUC:   listUC,
		statusUC: statusUC,
		deleteUC: deleteUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	CustomerID uint    `json:"customerId" binding:"required"`
	EmployeeID uint    `json:"employeeId" binding:"required"`
	ServiceID  uint    `json:"serviceId" binding:"required"`
	Date       string  `json:"date" binding:"required"`
	StartTime  string  `json:"startTime" binding:"required"`
	Notes      *string `json:"notes"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		CustomerID: req.CustomerID,
		EmployeeID: req.EmployeeID,
		ServiceID:  req.ServiceID,
		Date:       req.Date,
		StartTime:  req.StartTime,
		Notes:      req.Notes,
	})
	if err != nil {
		switch httperr.BusinessCode(err) {
		case "service_not_found":
			httperr.NotFound(c, "service_not_found", "Servicio no encontrado.")
		case "invalid_date", "invalid_time":
			httperr.BadRequest(c, "invalid_date_or_time", "Fecha u hora inválida.")
		default:
			httperr.Internal(c, "failed_to_create_appointment", "Error al crear la cita.")
		}
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	aps, err := h.listUC.Execute(c.Request.Context(), ucAppointment.ListAppointmentsInput{
		Status: c.Query("status"),
		Date:   c.Query("date"),
	})
	if err != nil {
		switch httperr.BusinessCode(err) {
		case "invalid_status":
			httperr.BadRequest(c, "invalid_status", "Estado desconocido.")
		case "invalid_date":
			httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
		default:
			httperr.Internal(c, "failed_to_list_appointments", "Error al listar las citas.")
		}
		return
	}

	httpresp.OK(c, aps)
}

// ======================================================
// UPDATE STATUS
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateAppointmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	ap, err := h.statusUC.Execute(c.Request.Context(), id, req.Status)
	if err != nil {
		switch httperr.BusinessCode(err) {
		case "appointment_not_found":
			httperr.NotFound(c, "appointment_not_found", "Cita no encontrada.")
		case "invalid_status":
			httperr.BadRequest(c, "invalid_status", "Estado desconocido.")
		default:
			httperr.Internal(c, "failed_to_update_appointment", "Error al actualizar la cita.")
		}
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id); err != nil {
		if httperr.IsBusiness(err, "appointment_not_found") {
			httperr.NotFound(c, "appointment_not_found", "Cita no encontrada.")
			return
		}
		httperr.Internal(c, "failed_to_delete_appointment", "Error al eliminar la cita.")
		return
	}

	httpresp.Success(c)
}

// ======================================================
// HELPERS
// ======================================================

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}
