package handler

import (
	"time"

	"hospital-booking-api/internal/middleware"
	"hospital-booking-api/internal/models"
	"hospital-booking-api/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	appointmentService AppointmentServicer
}

func NewAppointmentHandler(appointmentService AppointmentServicer) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentService: appointmentService,
	}
}

type BookAppointmentRequest struct {
	ApptDate time.Time `json:"apptDate"`
}

// GetAppointments lists all appointments for admins and own ones otherwise
func (h *AppointmentHandler) GetAppointments(c *gin.Context) {
	appts, err := h.appointmentService.GetAppointments(c.Request.Context(),
		c.GetString(middleware.ContextUserID), c.GetString(middleware.ContextRole))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"appointments": nonNil(appts),
		"count":        len(appts),
	})
}

// GetHospitalAppointments lists the appointments of the hospital in :id
func (h *AppointmentHandler) GetHospitalAppointments(c *gin.Context) {
	appts, err := h.appointmentService.GetHospitalAppointments(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"appointments": nonNil(appts),
		"count":        len(appts),
	})
}

// BookAppointment books the caller into the hospital in :id
func (h *AppointmentHandler) BookAppointment(c *gin.Context) {
	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	appt, err := h.appointmentService.BookAppointment(c.Request.Context(), c.Param("id"),
		c.GetString(middleware.ContextUserID), req.ApptDate)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, appt)
}

// GetAppointment returns the appointment loaded by the access middleware
func (h *AppointmentHandler) GetAppointment(c *gin.Context) {
	appt, ok := c.Get(middleware.ContextAppointment)
	if !ok {
		loaded, err := h.appointmentService.GetAppointment(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		appt = loaded
	}

	utils.SuccessResponse(c, appt)
}

// CancelAppointment deletes the appointment in :id
func (h *AppointmentHandler) CancelAppointment(c *gin.Context) {
	if err := h.appointmentService.CancelAppointment(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{})
}

func nonNil(appts []models.Appointment) []models.Appointment {
	if appts == nil {
		return []models.Appointment{}
	}
	return appts
}
