package handler

import (
	"bytes"
	"context"
	"time"

	"hospital-booking-api/internal/models"
	"hospital-booking-api/internal/service"
)

// HospitalServicer is the hospital use-case surface the handlers call
type HospitalServicer interface {
	GetAllHospitals(ctx context.Context, includeAppointments bool) ([]models.Hospital, error)
	GetVacCenters(ctx context.Context, includeAppointments bool) ([]models.Hospital, error)
	GetHospitalByID(ctx context.Context, id string, includeAppointments bool) (*models.Hospital, error)
	CreateHospital(ctx context.Context, hospital *models.Hospital, actorID string) error
	UpdateHospital(ctx context.Context, id string, patch service.HospitalPatch, actorID string) (*models.Hospital, error)
	DeleteHospital(ctx context.Context, id string, actorID string) error
}

type AppointmentServicer interface {
	GetAppointments(ctx context.Context, userID, role string) ([]models.Appointment, error)
	GetHospitalAppointments(ctx context.Context, hospitalID string) ([]models.Appointment, error)
	GetAppointment(ctx context.Context, id string) (*models.Appointment, error)
	BookAppointment(ctx context.Context, hospitalID, userID string, apptDate time.Time) (*models.Appointment, error)
	CancelAppointment(ctx context.Context, id string) error
}

type AuthServicer interface {
	Login(ctx context.Context, username, password string) (*service.LoginResponse, error)
	Register(ctx context.Context, username, password string) (*service.LoginResponse, error)
	RefreshAccessToken(ctx context.Context, refreshToken string) (string, error)
	Logout(ctx context.Context, refreshToken string) error
	GetCurrentUser(ctx context.Context, userID string) (*service.UserResponse, error)
}

type ExportServicer interface {
	ExportHospitals(ctx context.Context) (*bytes.Buffer, string, error)
	ExportCalendar(ctx context.Context, userID, role string) (string, error)
}

var (
	_ ExportServicer      = (*service.ExportService)(nil)
	_ HospitalServicer    = (*service.HospitalService)(nil)
	_ AppointmentServicer = (*service.AppointmentService)(nil)
	_ AuthServicer        = (*service.AuthService)(nil)
)
