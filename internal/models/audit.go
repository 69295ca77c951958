package models

import "time"

// Audited actions
const (
	ActionHospitalCreate   = "hospital_create"
	ActionHospitalUpdate   = "hospital_update"
	ActionHospitalDelete   = "hospital_delete"
	ActionUserLogin        = "user_login"
	ActionUserRegistration = "user_registration"
	ActionAdminCreate      = "admin_create"
)

// AuditLog records who changed what. UserID is nil for actions run from
// the command line.
type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    *string   `gorm:"size:36;index" json:"user_id"`
	Action    string    `gorm:"size:100;not null;index" json:"action"`
	Details   string    `gorm:"type:text" json:"details"`
	CreatedAt time.Time `json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
