package handler

import (
	"errors"
	"net/http"

	"hospital-booking-api/pkg/apperrors"
	"hospital-booking-api/pkg/utils"

	"github.com/gin-gonic/gin"
)

var kindStatus = map[apperrors.Kind]int{
	apperrors.KindValidation:   http.StatusBadRequest,
	apperrors.KindConflict:     http.StatusConflict,
	apperrors.KindNotFound:     http.StatusNotFound,
	apperrors.KindUnauthorized: http.StatusUnauthorized,
	apperrors.KindForbidden:    http.StatusForbidden,
	apperrors.KindCascade:      http.StatusInternalServerError,
	apperrors.KindPersistence:  http.StatusInternalServerError,
}

// respondError writes err with the status of its kind. Server-side
// failures keep their detail out of the body and in the request log.
func respondError(c *gin.Context, err error) {
	kind := apperrors.KindOf(err)
	status, ok := kindStatus[kind]
	if !ok {
		status = http.StatusInternalServerError
	}

	message := err.Error()
	var fields interface{}
	var verr *apperrors.ValidationError
	if errors.As(err, &verr) {
		fields = verr.Fields
	}

	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
		message = "Internal server error"
		if kind == apperrors.KindCascade {
			message = "Failed to remove dependent appointments"
		}
	}

	utils.KindErrorResponse(c, status, string(kind), message, fields)
}

// badRequest reports a body that could not be decoded
func badRequest(c *gin.Context, err error) {
	_ = c.Error(err)
	utils.KindErrorResponse(c, http.StatusBadRequest, string(apperrors.KindValidation), "Invalid request body", nil)
}
