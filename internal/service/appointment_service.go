package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hospital-booking-api/internal/models"
	"hospital-booking-api/pkg/apperrors"

	"go.uber.org/zap"
)

type AppointmentService struct {
	appointmentRepo AppointmentRepository
	hospitalRepo    HospitalRepository
	logger          *zap.Logger
}

func NewAppointmentService(appointmentRepo AppointmentRepository, hospitalRepo HospitalRepository, logger *zap.Logger) *AppointmentService {
	return &AppointmentService{
		appointmentRepo: appointmentRepo,
		hospitalRepo:    hospitalRepo,
		logger:          logger,
	}
}

// GetAppointments retrieves appointments based on user role
// Admin users see all appointments, regular users see only their own
func (s *AppointmentService) GetAppointments(ctx context.Context, userID, role string) ([]models.Appointment, error) {
	if role == models.RoleAdmin {
		return s.appointmentRepo.ListAll(ctx)
	}
	return s.appointmentRepo.ListByUser(ctx, userID)
}

// GetHospitalAppointments retrieves the appointments of one hospital
func (s *AppointmentService) GetHospitalAppointments(ctx context.Context, hospitalID string) ([]models.Appointment, error) {
	if _, err := s.hospitalRepo.GetByID(ctx, hospitalID, false); err != nil {
		return nil, err
	}
	return s.appointmentRepo.ListByHospital(ctx, hospitalID)
}

// GetAppointment retrieves one appointment
func (s *AppointmentService) GetAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	return s.appointmentRepo.GetByID(ctx, id)
}

// BookAppointment books an appointment for userID at a hospital. The
// repository checks the hospital exists in the insert's transaction.
func (s *AppointmentService) BookAppointment(ctx context.Context, hospitalID, userID string, apptDate time.Time) (*models.Appointment, error) {
	if apptDate.IsZero() {
		return nil, &apperrors.ValidationError{Fields: []apperrors.FieldError{{
			Field:   "apptDate",
			Rule:    "required",
			Message: "please add an apptDate",
		}}}
	}

	appt := &models.Appointment{
		ApptDate:   apptDate.UTC(),
		UserID:     userID,
		HospitalID: hospitalID,
	}
	if err := s.appointmentRepo.Create(ctx, appt); err != nil {
		if errors.Is(err, apperrors.ErrHospitalNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	s.logger.Info("Appointment booked",
		zap.String("appointment_id", appt.ID),
		zap.String("hospital_id", hospitalID),
		zap.String("user_id", userID),
	)
	return appt, nil
}

// CancelAppointment deletes one appointment
func (s *AppointmentService) CancelAppointment(ctx context.Context, id string) error {
	return s.appointmentRepo.Delete(ctx, id)
}
