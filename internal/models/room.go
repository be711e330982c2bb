package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Room represents a sellable room of a business
type Room struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	BusinessID    uint            `gorm:"not null;index" json:"business_id"`
	RoomNumber    string          `gorm:"not null" json:"room_number"`
	RoomType      string          `gorm:"not null;index" json:"room_type"`
	PricePerNight decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price_per_night"`
	Status        string          `gorm:"default:available;not null" json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// TableName specifies the table name for Room
func (Room) TableName() string {
	return "rooms"
}

// Room status constants
const (
	RoomStatusAvailable    = "available"
	RoomStatusOccupied     = "occupied"
	RoomStatusMaintenance  = "maintenance"
	RoomStatusOutOfService = "out_of_service"
)
