package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"hospital-booking-api/internal/models"
	"hospital-booking-api/internal/repository"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const (
	hospitalSheet = "Hospitals"
	// appointments carry no end time; calendar entries get a fixed slot
	appointmentSlot = 30 * time.Minute
	calendarProdID  = "-//hospital-booking-api//appointments//EN"
)

var hospitalColumns = []interface{}{
	"ID", "Name", "Address", "District", "Province", "Postal code", "Tel", "Region", "Vaccination center",
}

// ExportService renders hospitals and appointments as downloadable files
type ExportService struct {
	hospitalRepo    HospitalRepository
	appointmentRepo AppointmentRepository
	logger          *zap.Logger
}

func NewExportService(hospitalRepo HospitalRepository, appointmentRepo AppointmentRepository, logger *zap.Logger) *ExportService {
	return &ExportService{
		hospitalRepo:    hospitalRepo,
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// ExportHospitals writes every hospital to a one-sheet workbook and returns
// it with a suggested file name
func (s *ExportService) ExportHospitals(ctx context.Context) (*bytes.Buffer, string, error) {
	hospitals, err := s.hospitalRepo.List(ctx, repository.HospitalFilter{})
	if err != nil {
		return nil, "", fmt.Errorf("failed to list hospitals: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", hospitalSheet); err != nil {
		return nil, "", fmt.Errorf("failed to name sheet: %w", err)
	}
	if err := f.SetSheetRow(hospitalSheet, "A1", &hospitalColumns); err != nil {
		return nil, "", fmt.Errorf("failed to write header: %w", err)
	}

	for i, h := range hospitals {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, "", err
		}
		vac := "no"
		if h.VacCenter {
			vac = "yes"
		}
		row := []interface{}{h.ID, h.Name, h.Address, h.District, h.Province, h.PostalCode, h.Tel, h.Region, vac}
		if err := f.SetSheetRow(hospitalSheet, cell, &row); err != nil {
			return nil, "", fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to render workbook: %w", err)
	}

	s.logger.Info("Exported hospitals", zap.Int("count", len(hospitals)))
	return buf, fmt.Sprintf("hospitals-%s.xlsx", time.Now().UTC().Format("20060102")), nil
}

// ExportCalendar renders the appointments visible to the caller as an
// iCalendar feed. Admins get every appointment.
func (s *ExportService) ExportCalendar(ctx context.Context, userID, role string) (string, error) {
	var (
		appts []models.Appointment
		err   error
	)
	if role == models.RoleAdmin {
		appts, err = s.appointmentRepo.ListAll(ctx)
	} else {
		appts, err = s.appointmentRepo.ListByUser(ctx, userID)
	}
	if err != nil {
		return "", fmt.Errorf("failed to list appointments: %w", err)
	}

	hospitals, err := s.hospitalRepo.List(ctx, repository.HospitalFilter{})
	if err != nil {
		return "", fmt.Errorf("failed to list hospitals: %w", err)
	}
	byID := make(map[string]models.Hospital, len(hospitals))
	for _, h := range hospitals {
		byID[h.ID] = h
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(calendarProdID)

	now := time.Now().UTC()
	for _, a := range appts {
		event := cal.AddEvent(a.ID)
		event.SetDtStampTime(now)
		event.SetCreatedTime(a.CreatedAt)
		event.SetStartAt(a.ApptDate)
		event.SetEndAt(a.ApptDate.Add(appointmentSlot))

		summary := "Hospital appointment"
		if h, ok := byID[a.HospitalID]; ok {
			summary = "Appointment at " + h.Name
			event.SetLocation(fmt.Sprintf("%s, %s, %s %s", h.Address, h.District, h.Province, h.PostalCode))
		}
		event.SetSummary(summary)
	}

	return cal.Serialize(), nil
}
