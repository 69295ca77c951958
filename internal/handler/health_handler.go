package handler

import (
	"net/http"

	"hospital-booking-api/pkg/utils"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	service string
	ping    func() error
}

// NewHealthHandler reports liveness; ping checks the database
func NewHealthHandler(service string, ping func() error) *HealthHandler {
	return &HealthHandler{service: service, ping: ping}
}

func (h *HealthHandler) Health(c *gin.Context) {
	if h.ping != nil {
		if err := h.ping(); err != nil {
			_ = c.Error(err)
			utils.ErrorResponse(c, http.StatusServiceUnavailable, "Database unavailable")
			return
		}
	}

	utils.SuccessResponse(c, gin.H{
		"status":  "healthy",
		"service": h.service,
	})
}
