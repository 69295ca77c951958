package repository

import (
	"context"
	"errors"

	"hospital-booking-api/internal/models"
	"hospital-booking-api/pkg/apperrors"

	"gorm.io/gorm"
)

type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepo(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

// ListAll retrieves every appointment
func (r *AppointmentRepository) ListAll(ctx context.Context) ([]models.Appointment, error) {
	var appts []models.Appointment
	err := r.db.WithContext(ctx).Order("appt_date ASC").Find(&appts).Error
	return appts, err
}

// ListByUser retrieves the appointments booked by one user
func (r *AppointmentRepository) ListByUser(ctx context.Context, userID string) ([]models.Appointment, error) {
	var appts []models.Appointment
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("appt_date ASC").
		Find(&appts).Error
	return appts, err
}

// ListByHospital retrieves the appointments at one hospital
func (r *AppointmentRepository) ListByHospital(ctx context.Context, hospitalID string) ([]models.Appointment, error) {
	var appts []models.Appointment
	err := r.db.WithContext(ctx).
		Where("hospital_id = ?", hospitalID).
		Order("appt_date ASC").
		Find(&appts).Error
	return appts, err
}

// GetByID retrieves an appointment by ID
func (r *AppointmentRepository) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	var appt models.Appointment
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&appt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAppointmentNotFound
		}
		return nil, err
	}
	return &appt, nil
}

// Create inserts a new appointment. The hospital is read under a shared
// lock in the same transaction, so a hospital delete either waits for the
// insert and cascades over it or commits first and the insert fails with
// ErrHospitalNotFound.
func (r *AppointmentRepository) Create(ctx context.Context, appt *models.Appointment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var hospital models.Hospital
		err := forShare(tx).Select("id").Where("id = ?", appt.HospitalID).First(&hospital).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrHospitalNotFound
			}
			return err
		}
		return tx.Create(appt).Error
	})
}

// Delete removes one appointment
func (r *AppointmentRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Appointment{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrAppointmentNotFound
	}
	return nil
}
