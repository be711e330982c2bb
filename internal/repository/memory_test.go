package repository

import (
	"context"
	"testing"

	"github.com/sjperalta/hotel-analytics-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMemoryStore_FindForPeriod(t *testing.T) {
	store := NewMemoryStore(nil, []models.Reservation{
		{ID: 3, BusinessID: 7, CheckInDate: day("2024-01-10"), CheckOutDate: day("2024-01-12")},
		{ID: 1, BusinessID: 7, CheckInDate: day("2023-12-30"), CheckOutDate: day("2024-01-01")}, // leaves on start
		{ID: 2, BusinessID: 7, CheckInDate: day("2023-12-31"), CheckOutDate: day("2024-01-02")},
		{ID: 4, BusinessID: 7, CheckInDate: day("2024-02-01"), CheckOutDate: day("2024-02-03")},
		{ID: 5, BusinessID: 8, CheckInDate: day("2024-01-05"), CheckOutDate: day("2024-01-06")},
		{ID: 6, BusinessID: 7, CheckInDate: day("2024-01-31"), CheckOutDate: day("2024-02-02")}, // arrives on end
	})

	got, err := store.FindForPeriod(context.Background(), 7, day("2024-01-01"), day("2024-01-31"))
	require.NoError(t, err)

	ids := make([]uint, len(got))
	for i, r := range got {
		ids[i] = r.ID
	}
	assert.Equal(t, []uint{2, 3, 6}, ids)
}

func TestMemoryStore_Rooms(t *testing.T) {
	store := NewMemoryStore([]models.Room{
		{ID: 2, BusinessID: 7, RoomNumber: "102"},
		{ID: 1, BusinessID: 7, RoomNumber: "101"},
		{ID: 3, BusinessID: 9, RoomNumber: "201"},
	}, nil)

	rooms, err := store.FindByBusiness(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, "101", rooms[0].RoomNumber)
}

func TestMemoryStore_UpdateStatus(t *testing.T) {
	store := NewMemoryStore(nil, []models.Reservation{
		{ID: 1, BusinessID: 7, Status: models.ReservationStatusPending, PaymentStatus: models.PaymentStatusPending},
	})
	ctx := context.Background()

	r, err := store.FindByID(ctx, 7, 1)
	require.NoError(t, err)
	r.Status = models.ReservationStatusConfirmed
	require.NoError(t, store.UpdateStatus(ctx, r))

	again, err := store.FindByID(ctx, 7, 1)
	require.NoError(t, err)
	assert.Equal(t, models.ReservationStatusConfirmed, again.Status)

	_, err = store.FindByID(ctx, 8, 1)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.ErrorIs(t, store.UpdateStatus(ctx, &models.Reservation{ID: 42, BusinessID: 7}), gorm.ErrRecordNotFound)
}
