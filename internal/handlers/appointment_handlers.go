package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/petsphere/petsphere-api/internal/models"
)

//
// --- Appointment Handlers (Login Required) ---
//

// GetAppointments is the handler for GET /api/appointments.
func (h *Handlers) GetAppointments(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.GetAppointmentsByUser(currentUser(c).ID))
}

// GetAppointment is the handler for GET /api/appointments/:id. Only the
// booking's owner may read it.
func (h *Handlers) GetAppointment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appointment id"})
		return
	}

	appointment := h.Store.GetAppointment(id)
	if appointment == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		return
	}
	if appointment.UserID != currentUser(c).ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	c.JSON(http.StatusOK, appointment)
}

// CreateAppointmentInput holds the payload for booking a service.
type CreateAppointmentInput struct {
	ServiceType     string    `json:"serviceType" binding:"required"`
	PetType         string    `json:"petType" binding:"required"`
	PetBreed        *string   `json:"petBreed"`
	AppointmentDate time.Time `json:"appointmentDate" binding:"required"`
	AppointmentTime string    `json:"appointmentTime" binding:"required"`
	Notes           *string   `json:"notes"`
	Status          string    `json:"status"`
}

// CreateAppointment is the handler for POST /api/appointments.
func (h *Handlers) CreateAppointment(c *gin.Context) {
	var input CreateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	status := input.Status
	if status == "" {
		status = "pending"
	}

	appointment := h.Store.CreateAppointment(models.Appointment{
		UserID:          currentUser(c).ID,
		ServiceType:     input.ServiceType,
		PetType:         input.PetType,
		PetBreed:        input.PetBreed,
		AppointmentDate: input.AppointmentDate,
		AppointmentTime: input.AppointmentTime,
		Notes:           input.Notes,
		Status:          status,
	})

	c.JSON(http.StatusCreated, appointment)
}

// UpdateAppointmentStatusInput defines the JSON for
// PUT /api/appointments/:id/status.
type UpdateAppointmentStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// UpdateAppointmentStatus is the handler for PUT /api/appointments/:id/status.
func (h *Handlers) UpdateAppointmentStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appointment id"})
		return
	}

	var input UpdateAppointmentStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	appointment := h.Store.GetAppointment(id)
	if appointment == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		return
	}
	if appointment.UserID != currentUser(c).ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	c.JSON(http.StatusOK, h.Store.UpdateAppointmentStatus(id, input.Status))
}
