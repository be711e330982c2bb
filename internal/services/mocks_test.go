package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sjperalta/hotel-analytics-api/internal/analytics"
	"github.com/sjperalta/hotel-analytics-api/internal/models"
	"github.com/sjperalta/hotel-analytics-api/internal/repository"
)

// Mock ReservationRepository
type mockReservationRepository struct {
	repository.ReservationRepository
	reservations     []models.Reservation
	mockFindByID     func(ctx context.Context, businessID, id uint) (*models.Reservation, error)
	mockUpdateStatus func(ctx context.Context, r *models.Reservation) error
	err              error

	calls    int
	lastFrom time.Time
	lastTo   time.Time
	deadline bool
}

func (m *mockReservationRepository) FindForPeriod(ctx context.Context, businessID uint, start, end time.Time) ([]models.Reservation, error) {
	m.calls++
	m.lastFrom, m.lastTo = start, end
	_, m.deadline = ctx.Deadline()
	if m.err != nil {
		return nil, m.err
	}
	return m.reservations, nil
}

func (m *mockReservationRepository) FindByID(ctx context.Context, businessID, id uint) (*models.Reservation, error) {
	if m.mockFindByID != nil {
		return m.mockFindByID(ctx, businessID, id)
	}
	return nil, nil
}

func (m *mockReservationRepository) UpdateStatus(ctx context.Context, r *models.Reservation) error {
	if m.mockUpdateStatus != nil {
		return m.mockUpdateStatus(ctx, r)
	}
	return nil
}

// Mock RoomRepository
type mockRoomRepository struct {
	rooms []models.Room
	err   error
}

func (m *mockRoomRepository) FindByBusiness(ctx context.Context, businessID uint) ([]models.Room, error) {
	return m.rooms, m.err
}

// Mock BusinessRepository
type mockBusinessRepository struct {
	repository.BusinessRepository
	businesses []models.Business
	err        error
}

func (m *mockBusinessRepository) FindActive(ctx context.Context) ([]models.Business, error) {
	return m.businesses, m.err
}

func day(s string) time.Time {
	t, err := time.Parse(models.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func testRooms(types ...string) []models.Room {
	rooms := make([]models.Room, len(types))
	for i, t := range types {
		rooms[i] = models.Room{ID: uint(i + 1), RoomType: t, PricePerNight: decimal.NewFromInt(100)}
	}
	return rooms
}

func paidStay(id, roomID uint, in, out string, amount int64) models.Reservation {
	return models.Reservation{
		ID:            id,
		BusinessID:    7,
		RoomID:        roomID,
		CheckInDate:   day(in),
		CheckOutDate:  day(out),
		TotalAmount:   decimal.NewFromInt(amount),
		Status:        models.ReservationStatusConfirmed,
		PaymentStatus: models.PaymentStatusPaid,
	}
}

func newTestAnalyticsService(reservations *mockReservationRepository, rooms *mockRoomRepository) *AnalyticsService {
	return NewAnalyticsService(reservations, rooms, analytics.DefaultForecastOptions(), time.Second)
}
