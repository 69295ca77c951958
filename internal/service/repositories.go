package service

//go:generate mockgen -source=repositories.go -destination=mocks/mock_repositories.go -package=mocks

import (
	"context"
	"time"

	"hospital-booking-api/internal/models"
	"hospital-booking-api/internal/repository"
)

// HospitalRepository is the persistence used by HospitalService
type HospitalRepository interface {
	List(ctx context.Context, filter repository.HospitalFilter) ([]models.Hospital, error)
	GetByID(ctx context.Context, id string, includeAppointments bool) (*models.Hospital, error)
	GetByName(ctx context.Context, name string) (*models.Hospital, error)
	Create(ctx context.Context, hospital *models.Hospital) error
	Update(ctx context.Context, id string, apply func(*models.Hospital) error) (*models.Hospital, error)
	Delete(ctx context.Context, id string) (*models.Hospital, error)
}

// AppointmentRepository is the persistence used by AppointmentService
type AppointmentRepository interface {
	ListAll(ctx context.Context) ([]models.Appointment, error)
	ListByUser(ctx context.Context, userID string) ([]models.Appointment, error)
	ListByHospital(ctx context.Context, hospitalID string) ([]models.Appointment, error)
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	Create(ctx context.Context, appt *models.Appointment) error
	Delete(ctx context.Context, id string) error
}

// UserRepository is the persistence used by AuthService and the token worker
type UserRepository interface {
	FindUserByUsername(ctx context.Context, username string) (*models.User, error)
	FindUserByID(ctx context.Context, id string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	CreateRefreshToken(ctx context.Context, token *models.RefreshToken) error
	FindRefreshTokenByHash(ctx context.Context, hash string) (*models.RefreshToken, error)
	RevokeRefreshTokenByHash(ctx context.Context, hash string) error
	DeleteStaleRefreshTokens(ctx context.Context, now time.Time) (int64, error)
}

// AuditRepository records admin actions
type AuditRepository interface {
	CreateAuditLog(ctx context.Context, userID *string, action string, details string) error
}

var (
	_ HospitalRepository    = (*repository.HospitalRepository)(nil)
	_ AppointmentRepository = (*repository.AppointmentRepository)(nil)
	_ UserRepository        = (*repository.UserRepository)(nil)
	_ AuditRepository       = (*repository.AuditRepository)(nil)
)
