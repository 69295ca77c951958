package handler

import (
	"net/http"
	"net/url"

	"hospital-booking-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	icsContentType  = "text/calendar; charset=utf-8"
)

type ExportHandler struct {
	exportService ExportServicer
}

func NewExportHandler(exportService ExportServicer) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// ExportHospitals downloads the hospital directory as a workbook (admin only)
func (h *ExportHandler) ExportHospitals(c *gin.Context) {
	buf, filename, err := h.exportService.ExportHospitals(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+url.QueryEscape(filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// ExportCalendar downloads the caller's appointments as iCalendar
func (h *ExportHandler) ExportCalendar(c *gin.Context) {
	body, err := h.exportService.ExportCalendar(c.Request.Context(),
		c.GetString(middleware.ContextUserID), c.GetString(middleware.ContextRole))
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="appointments.ics"`)
	c.Data(http.StatusOK, icsContentType, []byte(body))
}
