package repository

import (
	"gorm.io/gorm"
)

// Repositories holds all repository instances
type Repositories struct {
	Business    BusinessRepository
	Room        RoomRepository
	Reservation ReservationRepository
	Audit       AuditRepository
}

// NewRepositories creates all repository instances
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Business:    NewBusinessRepository(db),
		Room:        NewRoomRepository(db),
		Reservation: NewReservationRepository(db),
		Audit:       NewAuditRepository(db),
	}
}
