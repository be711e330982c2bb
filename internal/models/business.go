package models

import (
	"time"
)

// Business represents a hotel tenant
type Business struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"not null" json:"name"`
	CurrencySymbol string    `gorm:"default:$" json:"currency_symbol"`
	Active         bool      `gorm:"default:true;index" json:"active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Associations
	Rooms []Room `gorm:"foreignKey:BusinessID" json:"rooms,omitempty"`
}

// TableName specifies the table name for Business
func (Business) TableName() string {
	return "businesses"
}
