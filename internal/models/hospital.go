package models

import (
	"fmt"
	"strings"

	"hospital-booking-api/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Hospital represents a healthcare facility. Appointments is a virtual
// relation: it is never written by this model and is filled only when the
// caller asks the repository to preload it.
type Hospital struct {
	ID         string `gorm:"primaryKey;size:36" json:"id"`
	Name       string `gorm:"size:50;not null;uniqueIndex" json:"name" validate:"required,max=50"`
	Address    string `gorm:"size:255;not null" json:"address" validate:"required"`
	District   string `gorm:"size:100;not null" json:"district" validate:"required"`
	Province   string `gorm:"size:100;not null" json:"province" validate:"required"`
	PostalCode string `gorm:"column:postalcode;size:5;not null" json:"postalcode" validate:"required,max=5"`
	Tel        string `gorm:"size:30" json:"tel,omitempty"`
	Region     string `gorm:"size:100;not null" json:"region" validate:"required"`
	VacCenter  bool   `gorm:"not null;default:false;index" json:"vacCenter"`

	Appointments []Appointment `gorm:"foreignKey:HospitalID;references:ID" json:"-"`
}

// TableName specifies the table name for Hospital model
func (Hospital) TableName() string {
	return "hospitals"
}

// Normalize applies the field transforms that run before validation
func (h *Hospital) Normalize() {
	h.Name = strings.TrimSpace(h.Name)
}

// Validate evaluates the hospital rule set and reports every failing field
func (h *Hospital) Validate() error {
	return validateStruct(h)
}

// BeforeCreate assigns the id
func (h *Hospital) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	return nil
}

// BeforeSave runs on both insert and update so no write path skips the rules
func (h *Hospital) BeforeSave(tx *gorm.DB) error {
	h.Normalize()
	return h.Validate()
}

// BeforeDelete removes the hospital's appointments in the delete's own
// transaction. Bulk deletes pass a zero-value model and are left alone.
func (h *Hospital) BeforeDelete(tx *gorm.DB) error {
	if h.ID == "" {
		return nil
	}

	if err := tx.Where("hospital_id = ?", h.ID).Delete(&Appointment{}).Error; err != nil {
		return fmt.Errorf("%w for hospital %s: %v", apperrors.ErrCascadeFailed, h.ID, err)
	}
	return nil
}
