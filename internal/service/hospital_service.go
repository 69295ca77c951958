package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hospital-booking-api/internal/models"
	"hospital-booking-api/internal/repository"
	"hospital-booking-api/pkg/apperrors"

	"go.uber.org/zap"
)

// HospitalPatch carries the fields of an update; nil means "leave as is"
type HospitalPatch struct {
	Name       *string
	Address    *string
	District   *string
	Province   *string
	PostalCode *string
	Tel        *string
	Region     *string
	VacCenter  *bool
}

// ApplyTo copies every provided field onto h
func (p HospitalPatch) ApplyTo(h *models.Hospital) {
	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	setString(&h.Name, p.Name)
	setString(&h.Address, p.Address)
	setString(&h.District, p.District)
	setString(&h.Province, p.Province)
	setString(&h.PostalCode, p.PostalCode)
	setString(&h.Tel, p.Tel)
	setString(&h.Region, p.Region)
	if p.VacCenter != nil {
		h.VacCenter = *p.VacCenter
	}
}

type HospitalService struct {
	hospitalRepo HospitalRepository
	auditRepo    AuditRepository
	logger       *zap.Logger
}

func NewHospitalService(hospitalRepo HospitalRepository, auditRepo AuditRepository, logger *zap.Logger) *HospitalService {
	return &HospitalService{
		hospitalRepo: hospitalRepo,
		auditRepo:    auditRepo,
		logger:       logger,
	}
}

// GetAllHospitals lists every hospital
func (s *HospitalService) GetAllHospitals(ctx context.Context, includeAppointments bool) ([]models.Hospital, error) {
	return s.hospitalRepo.List(ctx, repository.HospitalFilter{IncludeAppointments: includeAppointments})
}

// GetVacCenters lists the hospitals flagged as vaccination centers
func (s *HospitalService) GetVacCenters(ctx context.Context, includeAppointments bool) ([]models.Hospital, error) {
	return s.hospitalRepo.List(ctx, repository.HospitalFilter{
		VacCentersOnly:      true,
		IncludeAppointments: includeAppointments,
	})
}

// GetHospitalByID retrieves one hospital
func (s *HospitalService) GetHospitalByID(ctx context.Context, id string, includeAppointments bool) (*models.Hospital, error) {
	return s.hospitalRepo.GetByID(ctx, id, includeAppointments)
}

// CreateHospital validates and stores a new hospital (admin only)
func (s *HospitalService) CreateHospital(ctx context.Context, hospital *models.Hospital, actorID string) error {
	hospital.ID = ""
	hospital.Normalize()
	if err := hospital.Validate(); err != nil {
		return err
	}

	if err := s.ensureNameAvailable(ctx, hospital.Name, ""); err != nil {
		return err
	}

	if err := s.hospitalRepo.Create(ctx, hospital); err != nil {
		return fmt.Errorf("failed to create hospital: %w", err)
	}

	s.audit(ctx, actorID, models.ActionHospitalCreate,
		fmt.Sprintf("Created hospital: %s (ID: %s)", hospital.Name, hospital.ID))

	return nil
}

// UpdateHospital applies patch to an existing hospital (admin only)
func (s *HospitalService) UpdateHospital(ctx context.Context, id string, patch HospitalPatch, actorID string) (*models.Hospital, error) {
	// Verify hospital exists
	existing, err := s.hospitalRepo.GetByID(ctx, id, false)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		patch.Name = &name
		if name != existing.Name {
			if err := s.ensureNameAvailable(ctx, name, id); err != nil {
				return nil, err
			}
		}
	}

	updated, err := s.hospitalRepo.Update(ctx, id, func(h *models.Hospital) error {
		patch.ApplyTo(h)
		h.Normalize()
		return h.Validate()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update hospital: %w", err)
	}

	s.audit(ctx, actorID, models.ActionHospitalUpdate,
		fmt.Sprintf("Updated hospital: %s (ID: %s, old name: %s)", updated.Name, id, existing.Name))

	return updated, nil
}

// DeleteHospital deletes a hospital and, through the model hook, its
// appointments (admin only)
func (s *HospitalService) DeleteHospital(ctx context.Context, id string, actorID string) error {
	hospital, err := s.hospitalRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete hospital: %w", err)
	}

	s.logger.Info("Hospital deleted with its appointments",
		zap.String("hospital_id", id),
		zap.String("actor_id", actorID),
	)
	s.audit(ctx, actorID, models.ActionHospitalDelete,
		fmt.Sprintf("Deleted hospital: %s (ID: %s)", hospital.Name, id))

	return nil
}

func (s *HospitalService) ensureNameAvailable(ctx context.Context, name, selfID string) error {
	other, err := s.hospitalRepo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check hospital name: %w", err)
	}
	if other.ID == selfID {
		return nil
	}
	return fmt.Errorf("hospital %q: %w", name, apperrors.ErrDuplicateName)
}

func (s *HospitalService) audit(ctx context.Context, actorID, action, details string) {
	var userID *string
	if actorID != "" {
		userID = &actorID
	}
	if err := s.auditRepo.CreateAuditLog(ctx, userID, action, details); err != nil {
		s.logger.Warn("Failed to write audit log",
			zap.String("action", action),
			zap.Error(err),
		)
	}
}
