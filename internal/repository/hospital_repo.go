package repository

import (
	"context"
	"errors"
	"fmt"

	"hospital-booking-api/internal/models"
	"hospital-booking-api/pkg/apperrors"

	"gorm.io/gorm"
)

// HospitalFilter narrows a hospital listing
type HospitalFilter struct {
	VacCentersOnly      bool
	IncludeAppointments bool
}

type HospitalRepository struct {
	db *gorm.DB
}

func NewHospitalRepo(db *gorm.DB) *HospitalRepository {
	return &HospitalRepository{db: db}
}

func withAppointments(q *gorm.DB, include bool) *gorm.DB {
	if include {
		return q.Preload("Appointments")
	}
	return q
}

// List retrieves hospitals ordered by name
func (r *HospitalRepository) List(ctx context.Context, filter HospitalFilter) ([]models.Hospital, error) {
	var hospitals []models.Hospital
	q := r.db.WithContext(ctx)
	if filter.VacCentersOnly {
		q = q.Where("vac_center = ?", true)
	}
	err := withAppointments(q, filter.IncludeAppointments).Order("name ASC").Find(&hospitals).Error
	return hospitals, err
}

// GetByID retrieves a hospital, resolving its appointments when asked
func (r *HospitalRepository) GetByID(ctx context.Context, id string, includeAppointments bool) (*models.Hospital, error) {
	var hospital models.Hospital
	err := withAppointments(r.db.WithContext(ctx), includeAppointments).
		Where("id = ?", id).
		First(&hospital).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrHospitalNotFound
		}
		return nil, err
	}
	return &hospital, nil
}

// GetByName retrieves a hospital by its exact name
func (r *HospitalRepository) GetByName(ctx context.Context, name string) (*models.Hospital, error) {
	var hospital models.Hospital
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&hospital).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrHospitalNotFound
		}
		return nil, err
	}
	return &hospital, nil
}

// Create inserts a new hospital
func (r *HospitalRepository) Create(ctx context.Context, hospital *models.Hospital) error {
	err := r.db.WithContext(ctx).Omit("Appointments").Create(hospital).Error
	if err != nil && isDuplicateKey(err) {
		return fmt.Errorf("hospital %q: %w", hospital.Name, apperrors.ErrDuplicateName)
	}
	return err
}

// Update loads the hospital under a row lock, lets apply change it and
// saves it in the same transaction
func (r *HospitalRepository) Update(ctx context.Context, id string, apply func(*models.Hospital) error) (*models.Hospital, error) {
	var hospital models.Hospital
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := forUpdate(tx).Where("id = ?", id).First(&hospital).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrHospitalNotFound
			}
			return err
		}

		if err := apply(&hospital); err != nil {
			return err
		}
		hospital.ID = id

		if err := tx.Omit("Appointments").Save(&hospital).Error; err != nil {
			if isDuplicateKey(err) {
				return fmt.Errorf("hospital %q: %w", hospital.Name, apperrors.ErrDuplicateName)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &hospital, nil
}

// Delete loads the hospital under a row lock and deletes that instance.
// The model's BeforeDelete hook removes its appointments in the same
// transaction; if the hook fails nothing is deleted.
func (r *HospitalRepository) Delete(ctx context.Context, id string) (*models.Hospital, error) {
	var hospital models.Hospital
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := forUpdate(tx).Where("id = ?", id).First(&hospital).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrHospitalNotFound
			}
			return err
		}
		return tx.Delete(&hospital).Error
	})
	if err != nil {
		return nil, err
	}
	return &hospital, nil
}
