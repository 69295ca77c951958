package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Appointment is a booking made by a user at a hospital
type Appointment struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	ApptDate   time.Time `gorm:"not null" json:"apptDate"`
	UserID     string    `gorm:"size:36;not null;index" json:"user"`
	HospitalID string    `gorm:"size:36;not null;index" json:"hospital"`
	CreatedAt  time.Time `json:"createdAt"`
}

// TableName specifies the table name for Appointment model
func (Appointment) TableName() string {
	return "appointments"
}

// BeforeCreate assigns the id
func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// OwnedBy reports whether the appointment was booked by userID
func (a *Appointment) OwnedBy(userID string) bool {
	return a.UserID == userID
}
