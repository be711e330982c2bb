package statemachine

import (
	"context"
	"testing"

	"github.com/sjperalta/hotel-analytics-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservationFSM_Lifecycle(t *testing.T) {
	ctx := context.Background()
	r := &models.Reservation{Status: models.ReservationStatusPending}
	m := NewReservationFSM(r)

	require.NoError(t, m.Confirm(ctx))
	assert.Equal(t, models.ReservationStatusConfirmed, r.Status)

	require.NoError(t, m.CheckIn(ctx))
	assert.Equal(t, models.ReservationStatusCheckedIn, r.Status)
	assert.False(t, m.Can(EventCancel))

	require.NoError(t, m.CheckOut(ctx))
	assert.Equal(t, models.ReservationStatusCheckedOut, r.Status)
	assert.Equal(t, models.ReservationStatusCheckedOut, m.Current())
}

func TestReservationFSM_InvalidTransitions(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		status string
		event  func(*ReservationFSM) error
	}{
		{"confirm twice", models.ReservationStatusConfirmed, func(m *ReservationFSM) error { return m.Confirm(ctx) }},
		{"check in pending", models.ReservationStatusPending, func(m *ReservationFSM) error { return m.CheckIn(ctx) }},
		{"check out confirmed", models.ReservationStatusConfirmed, func(m *ReservationFSM) error { return m.CheckOut(ctx) }},
		{"cancel checked in", models.ReservationStatusCheckedIn, func(m *ReservationFSM) error { return m.Cancel(ctx) }},
		{"cancel cancelled", models.ReservationStatusCancelled, func(m *ReservationFSM) error { return m.Cancel(ctx) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &models.Reservation{Status: tt.status}
			err := tt.event(NewReservationFSM(r))
			assert.Error(t, err)
			assert.Equal(t, tt.status, r.Status)
		})
	}
}

func TestReservationFSM_Cancel(t *testing.T) {
	for _, status := range []string{models.ReservationStatusPending, models.ReservationStatusConfirmed} {
		r := &models.Reservation{Status: status}
		require.NoError(t, NewReservationFSM(r).Cancel(context.Background()))
		assert.Equal(t, models.ReservationStatusCancelled, r.Status)
	}
}

func TestPaymentFSM(t *testing.T) {
	ctx := context.Background()

	r := &models.Reservation{Status: models.ReservationStatusConfirmed, PaymentStatus: models.PaymentStatusPending}
	p := NewPaymentFSM(r)
	require.NoError(t, p.MarkPaid(ctx))
	assert.Equal(t, models.PaymentStatusPaid, r.PaymentStatus)
	assert.Error(t, p.MarkPaid(ctx))

	cancelled := &models.Reservation{Status: models.ReservationStatusCancelled, PaymentStatus: models.PaymentStatusPending}
	assert.Error(t, NewPaymentFSM(cancelled).MarkPaid(ctx))

	require.NoError(t, NewPaymentFSM(cancelled).Void(ctx))
	assert.Equal(t, models.PaymentStatusCancelled, cancelled.PaymentStatus)
}
