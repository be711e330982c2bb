package statemachine

import (
	"context"
	"fmt"

	"github.com/looplab/fsm"
	"github.com/sjperalta/hotel-analytics-api/internal/models"
)

// Reservation lifecycle events
const (
	EventConfirm  = "confirm"
	EventCheckIn  = "check_in"
	EventCheckOut = "check_out"
	EventCancel   = "cancel"
)

// ReservationFSM wraps a reservation with its lifecycle state machine
type ReservationFSM struct {
	reservation *models.Reservation
	fsm         *fsm.FSM
}

// NewReservationFSM creates a new reservation state machine
func NewReservationFSM(reservation *models.Reservation) *ReservationFSM {
	rfsm := &ReservationFSM{
		reservation: reservation,
	}

	rfsm.fsm = fsm.NewFSM(
		reservation.Status,
		fsm.Events{
			// pending → confirmed
			{Name: EventConfirm, Src: []string{models.ReservationStatusPending}, Dst: models.ReservationStatusConfirmed},

			// confirmed → checked_in
			{Name: EventCheckIn, Src: []string{models.ReservationStatusConfirmed}, Dst: models.ReservationStatusCheckedIn},

			// checked_in → checked_out
			{Name: EventCheckOut, Src: []string{models.ReservationStatusCheckedIn}, Dst: models.ReservationStatusCheckedOut},

			// pending/confirmed → cancelled
			{Name: EventCancel, Src: []string{models.ReservationStatusPending, models.ReservationStatusConfirmed}, Dst: models.ReservationStatusCancelled},
		},
		fsm.Callbacks{},
	)

	return rfsm
}

// Confirm transitions reservation to confirmed state
func (r *ReservationFSM) Confirm(ctx context.Context) error {
	if !r.reservation.MayConfirm() {
		return fmt.Errorf("reservation cannot be confirmed in current state: %s", r.reservation.Status)
	}
	return r.fire(ctx, EventConfirm)
}

// CheckIn transitions reservation to checked_in state
func (r *ReservationFSM) CheckIn(ctx context.Context) error {
	if !r.reservation.MayCheckIn() {
		return fmt.Errorf("reservation cannot be checked in from state: %s", r.reservation.Status)
	}
	return r.fire(ctx, EventCheckIn)
}

// CheckOut transitions reservation to checked_out state
func (r *ReservationFSM) CheckOut(ctx context.Context) error {
	if !r.reservation.MayCheckOut() {
		return fmt.Errorf("reservation cannot be checked out from state: %s", r.reservation.Status)
	}
	return r.fire(ctx, EventCheckOut)
}

// Cancel transitions reservation to cancelled state
func (r *ReservationFSM) Cancel(ctx context.Context) error {
	if !r.reservation.MayCancel() {
		return fmt.Errorf("reservation cannot be cancelled in current state: %s", r.reservation.Status)
	}
	return r.fire(ctx, EventCancel)
}

func (r *ReservationFSM) fire(ctx context.Context, event string) error {
	if err := r.fsm.Event(ctx, event); err != nil {
		return fmt.Errorf("failed to %s reservation: %w", event, err)
	}
	r.reservation.Status = r.fsm.Current()
	return nil
}

// Current returns the current state
func (r *ReservationFSM) Current() string {
	return r.fsm.Current()
}

// Can checks if a transition is possible
func (r *ReservationFSM) Can(event string) bool {
	return r.fsm.Can(event)
}
