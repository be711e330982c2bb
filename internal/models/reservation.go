package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Reservation represents a room booking
type Reservation struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	BusinessID    uint            `gorm:"not null;index" json:"business_id"`
	RoomID        uint            `gorm:"not null;index" json:"room_id"`
	GuestName     string          `json:"guest_name"`
	CheckInDate   time.Time       `gorm:"type:date;not null;index" json:"check_in_date"`
	CheckOutDate  time.Time       `gorm:"type:date;not null;index" json:"check_out_date"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_amount"`
	Status        string          `gorm:"default:pending;not null;index" json:"status"`
	PaymentStatus string          `gorm:"default:pending;not null;index" json:"payment_status"`
	Source        *string         `gorm:"index" json:"source"`
	GuestCount    int             `gorm:"default:1" json:"guest_count"`
	CreatedAt     time.Time       `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`

	// Associations
	Room Room `gorm:"foreignKey:RoomID" json:"-"`
}

// TableName specifies the table name for Reservation
func (Reservation) TableName() string {
	return "reservations"
}

// Reservation status constants
const (
	ReservationStatusPending    = "pending"
	ReservationStatusConfirmed  = "confirmed"
	ReservationStatusCheckedIn  = "checked_in"
	ReservationStatusCheckedOut = "checked_out"
	ReservationStatusCancelled  = "cancelled"
)

// Payment status constants
const (
	PaymentStatusPending   = "pending"
	PaymentStatusPaid      = "paid"
	PaymentStatusCancelled = "cancelled"
)

// DefaultSource is the channel assigned to reservations without a source
const DefaultSource = "direct"

// IsEligible reports whether the reservation holds inventory (confirmed or checked in)
func (r *Reservation) IsEligible() bool {
	return r.Status == ReservationStatusConfirmed || r.Status == ReservationStatusCheckedIn
}

// IsPaid reports whether the reservation is eligible and fully paid
func (r *Reservation) IsPaid() bool {
	return r.IsEligible() && r.PaymentStatus == PaymentStatusPaid
}

// IsCancelled returns true if the reservation was cancelled
func (r *Reservation) IsCancelled() bool {
	return r.Status == ReservationStatusCancelled
}

// EffectiveSource returns the booking channel, "direct" when absent
func (r *Reservation) EffectiveSource() string {
	if r.Source == nil {
		return DefaultSource
	}
	source := strings.TrimSpace(*r.Source)
	if source == "" {
		return DefaultSource
	}
	return source
}

// MayConfirm returns true if reservation can transition to confirmed
func (r *Reservation) MayConfirm() bool {
	return r.Status == ReservationStatusPending
}

// MayCheckIn returns true if the guest can be checked in
func (r *Reservation) MayCheckIn() bool {
	return r.Status == ReservationStatusConfirmed
}

// MayCheckOut returns true if the guest can be checked out
func (r *Reservation) MayCheckOut() bool {
	return r.Status == ReservationStatusCheckedIn
}

// MayCancel returns true if reservation can be cancelled
func (r *Reservation) MayCancel() bool {
	return r.Status == ReservationStatusPending || r.Status == ReservationStatusConfirmed
}

// MayMarkPaid returns true if the payment can be registered
func (r *Reservation) MayMarkPaid() bool {
	return r.PaymentStatus == PaymentStatusPending && !r.IsCancelled()
}
