package models

import (
	"time"
)

// AuditLog records a status change made through the API
type AuditLog struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	BusinessID uint      `gorm:"not null;index" json:"business_id"`
	UserID     uint      `gorm:"not null" json:"user_id"`
	Action     string    `gorm:"size:50;not null" json:"action"` // confirm, check_in, check_out, cancel, mark_paid
	Entity     string    `gorm:"size:50;not null" json:"entity"`
	EntityID   uint      `json:"entity_id"`
	Details    string    `gorm:"type:text" json:"details"`
	IPAddress  string    `gorm:"size:45" json:"ip_address"`
	UserAgent  string    `gorm:"size:255" json:"user_agent"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
}

// TableName specifies the table name for AuditLog
func (AuditLog) TableName() string {
	return "audit_logs"
}

// EntityReservation is the audited entity of reservation transitions
const EntityReservation = "reservation"
