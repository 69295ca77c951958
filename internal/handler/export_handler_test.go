package handler_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hospital-booking-api/internal/handler"
	"hospital-booking-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeExportService struct {
	hospitals func(ctx context.Context) (*bytes.Buffer, string, error)
	calendar  func(ctx context.Context, userID, role string) (string, error)
}

func (f *fakeExportService) ExportHospitals(ctx context.Context) (*bytes.Buffer, string, error) {
	return f.hospitals(ctx)
}
func (f *fakeExportService) ExportCalendar(ctx context.Context, userID, role string) (string, error) {
	return f.calendar(ctx, userID, role)
}

var _ handler.ExportServicer = (*fakeExportService)(nil)

func exportRouter(svc handler.ExportServicer) *gin.Engine {
	h := handler.NewExportHandler(svc)
	r := gin.New()
	r.Use(asUser("u1", models.RoleUser))
	r.GET("/hospitals/export", h.ExportHospitals)
	r.GET("/appointments/calendar.ics", h.ExportCalendar)
	return r
}

func TestExportHospitals(t *testing.T) {
	svc := &fakeExportService{
		hospitals: func(context.Context) (*bytes.Buffer, string, error) {
			return bytes.NewBufferString("xlsx-bytes"), "hospitals-20261017.xlsx", nil
		},
	}

	w := httptest.NewRecorder()
	exportRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/hospitals/export", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "spreadsheetml")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "hospitals-20261017.xlsx")
	assert.Equal(t, "xlsx-bytes", w.Body.String())
}

func TestExportCalendar(t *testing.T) {
	svc := &fakeExportService{
		calendar: func(_ context.Context, userID, role string) (string, error) {
			if userID != "u1" || role != models.RoleUser {
				return "", errors.New("wrong identity")
			}
			return "BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n", nil
		},
	}

	w := httptest.NewRecorder()
	exportRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/appointments/calendar.ics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/calendar")
	assert.Contains(t, w.Body.String(), "BEGIN:VCALENDAR")
}

func TestExportCalendar_Error(t *testing.T) {
	svc := &fakeExportService{
		calendar: func(context.Context, string, string) (string, error) {
			return "", errors.New("db down")
		},
	}

	w := httptest.NewRecorder()
	exportRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/appointments/calendar.ics", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
