package middleware

import (
	"context"
	"errors"
	"net/http"

	"hospital-booking-api/internal/models"
	"hospital-booking-api/pkg/apperrors"
	"hospital-booking-api/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ContextAppointment holds the appointment loaded by AppointmentAccess
const ContextAppointment = "appointment"

// AppointmentGetter loads one appointment by id
type AppointmentGetter interface {
	GetAppointment(ctx context.Context, id string) (*models.Appointment, error)
}

// AccessControlMiddleware guards per-record access to appointments
type AccessControlMiddleware struct {
	appointments AppointmentGetter
}

func NewAccessControlMiddleware(appointments AppointmentGetter) *AccessControlMiddleware {
	return &AccessControlMiddleware{appointments: appointments}
}

// CheckAppointmentAccess lets the owner of the appointment in :id, or an
// admin, through. The loaded appointment is stored under ContextAppointment.
func (m *AccessControlMiddleware) CheckAppointmentAccess() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(ContextUserID)
		if userID == "" {
			abortUnauthorized(c, "User not authenticated")
			return
		}

		appt, err := m.appointments.GetAppointment(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				utils.KindErrorResponse(c, http.StatusNotFound, string(apperrors.KindNotFound),
					"No appointment with the id of "+c.Param("id"), nil)
			} else {
				utils.KindErrorResponse(c, http.StatusInternalServerError, string(apperrors.KindPersistence),
					"Failed to verify access", nil)
			}
			c.Abort()
			return
		}

		if c.GetString(ContextRole) != models.RoleAdmin && !appt.OwnedBy(userID) {
			utils.KindErrorResponse(c, http.StatusForbidden, string(apperrors.KindForbidden),
				"Access denied: you don't have permission to access this appointment", nil)
			c.Abort()
			return
		}

		c.Set(ContextAppointment, appt)
		c.Next()
	}
}
