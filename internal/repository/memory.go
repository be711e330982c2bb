package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/sjperalta/hotel-analytics-api/internal/models"
	"gorm.io/gorm"
)

// MemoryStore serves rooms and reservations from memory with the same
// filtering rules as the SQL repositories. Used by the offline CLI.
type MemoryStore struct {
	mu           sync.RWMutex
	rooms        []models.Room
	reservations []models.Reservation
}

func NewMemoryStore(rooms []models.Room, reservations []models.Reservation) *MemoryStore {
	return &MemoryStore{rooms: rooms, reservations: reservations}
}

func (s *MemoryStore) FindByBusiness(ctx context.Context, businessID uint) ([]models.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var rooms []models.Room
	for _, r := range s.rooms {
		if r.BusinessID == businessID {
			rooms = append(rooms, r)
		}
	}
	sort.SliceStable(rooms, func(i, j int) bool { return rooms[i].RoomNumber < rooms[j].RoomNumber })
	return rooms, nil
}

func (s *MemoryStore) FindForPeriod(ctx context.Context, businessID uint, start, end time.Time) ([]models.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Reservation
	for _, r := range s.reservations {
		if r.BusinessID != businessID {
			continue
		}
		if r.CheckInDate.After(end) || !r.CheckOutDate.After(start) {
			continue
		}
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CheckInDate.Equal(out[j].CheckInDate) {
			return out[i].CheckInDate.Before(out[j].CheckInDate)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *MemoryStore) FindByID(ctx context.Context, businessID, id uint) (*models.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.reservations {
		if r.ID == id && r.BusinessID == businessID {
			found := r
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *MemoryStore) UpdateStatus(ctx context.Context, reservation *models.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.reservations {
		r := &s.reservations[i]
		if r.ID == reservation.ID && r.BusinessID == reservation.BusinessID {
			r.Status = reservation.Status
			r.PaymentStatus = reservation.PaymentStatus
			r.UpdatedAt = time.Now()
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}
