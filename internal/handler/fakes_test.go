package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hospital-booking-api/internal/handler"
	"hospital-booking-api/internal/models"
	"hospital-booking-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// Test doubles: set only the method fields the test needs.

type fakeHospitalService struct {
	getAll     func(ctx context.Context, include bool) ([]models.Hospital, error)
	vacCenters func(ctx context.Context, include bool) ([]models.Hospital, error)
	getByID    func(ctx context.Context, id string, include bool) (*models.Hospital, error)
	create     func(ctx context.Context, h *models.Hospital, actorID string) error
	update     func(ctx context.Context, id string, patch service.HospitalPatch, actorID string) (*models.Hospital, error)
	delete     func(ctx context.Context, id, actorID string) error
}

func (f *fakeHospitalService) GetAllHospitals(ctx context.Context, include bool) ([]models.Hospital, error) {
	return f.getAll(ctx, include)
}
func (f *fakeHospitalService) GetVacCenters(ctx context.Context, include bool) ([]models.Hospital, error) {
	return f.vacCenters(ctx, include)
}
func (f *fakeHospitalService) GetHospitalByID(ctx context.Context, id string, include bool) (*models.Hospital, error) {
	return f.getByID(ctx, id, include)
}
func (f *fakeHospitalService) CreateHospital(ctx context.Context, h *models.Hospital, actorID string) error {
	return f.create(ctx, h, actorID)
}
func (f *fakeHospitalService) UpdateHospital(ctx context.Context, id string, patch service.HospitalPatch, actorID string) (*models.Hospital, error) {
	return f.update(ctx, id, patch, actorID)
}
func (f *fakeHospitalService) DeleteHospital(ctx context.Context, id, actorID string) error {
	return f.delete(ctx, id, actorID)
}

type fakeAppointmentService struct {
	list       func(ctx context.Context, userID, role string) ([]models.Appointment, error)
	byHospital func(ctx context.Context, hospitalID string) ([]models.Appointment, error)
	get        func(ctx context.Context, id string) (*models.Appointment, error)
	book       func(ctx context.Context, hospitalID, userID string, when time.Time) (*models.Appointment, error)
	cancel     func(ctx context.Context, id string) error
}

func (f *fakeAppointmentService) GetAppointments(ctx context.Context, userID, role string) ([]models.Appointment, error) {
	return f.list(ctx, userID, role)
}
func (f *fakeAppointmentService) GetHospitalAppointments(ctx context.Context, hospitalID string) ([]models.Appointment, error) {
	return f.byHospital(ctx, hospitalID)
}
func (f *fakeAppointmentService) GetAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	return f.get(ctx, id)
}
func (f *fakeAppointmentService) BookAppointment(ctx context.Context, hospitalID, userID string, when time.Time) (*models.Appointment, error) {
	return f.book(ctx, hospitalID, userID, when)
}
func (f *fakeAppointmentService) CancelAppointment(ctx context.Context, id string) error {
	return f.cancel(ctx, id)
}

type fakeAuthService struct {
	login    func(ctx context.Context, username, password string) (*service.LoginResponse, error)
	register func(ctx context.Context, username, password string) (*service.LoginResponse, error)
	refresh  func(ctx context.Context, token string) (string, error)
	logout   func(ctx context.Context, token string) error
	me       func(ctx context.Context, userID string) (*service.UserResponse, error)
}

func (f *fakeAuthService) Login(ctx context.Context, username, password string) (*service.LoginResponse, error) {
	return f.login(ctx, username, password)
}
func (f *fakeAuthService) Register(ctx context.Context, username, password string) (*service.LoginResponse, error) {
	return f.register(ctx, username, password)
}
func (f *fakeAuthService) RefreshAccessToken(ctx context.Context, token string) (string, error) {
	return f.refresh(ctx, token)
}
func (f *fakeAuthService) Logout(ctx context.Context, token string) error {
	return f.logout(ctx, token)
}
func (f *fakeAuthService) GetCurrentUser(ctx context.Context, userID string) (*service.UserResponse, error) {
	return f.me(ctx, userID)
}

var (
	_ handler.HospitalServicer    = (*fakeHospitalService)(nil)
	_ handler.AppointmentServicer = (*fakeAppointmentService)(nil)
	_ handler.AuthServicer        = (*fakeAuthService)(nil)
)

// asUser stands in for the auth middleware
func asUser(userID, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Set("role", role)
		c.Next()
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Kind    string          `json:"kind"`
	Fields  []struct {
		Field string `json:"field"`
		Rule  string `json:"rule"`
	} `json:"fields"`
}

func do(t *testing.T, r http.Handler, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if s, ok := body.(string); ok {
		buf.WriteString(s)
	} else if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}
