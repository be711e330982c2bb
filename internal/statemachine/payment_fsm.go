package statemachine

import (
	"context"
	"fmt"

	"github.com/looplab/fsm"
	"github.com/sjperalta/hotel-analytics-api/internal/models"
)

// Payment events
const (
	EventPay         = "pay"
	EventVoidPayment = "void"
)

// PaymentFSM tracks the payment status of a reservation
type PaymentFSM struct {
	reservation *models.Reservation
	fsm         *fsm.FSM
}

// NewPaymentFSM creates a new payment state machine
func NewPaymentFSM(reservation *models.Reservation) *PaymentFSM {
	pfsm := &PaymentFSM{
		reservation: reservation,
	}

	pfsm.fsm = fsm.NewFSM(
		reservation.PaymentStatus,
		fsm.Events{
			// pending → paid
			{Name: EventPay, Src: []string{models.PaymentStatusPending}, Dst: models.PaymentStatusPaid},

			// pending → cancelled
			{Name: EventVoidPayment, Src: []string{models.PaymentStatusPending}, Dst: models.PaymentStatusCancelled},
		},
		fsm.Callbacks{},
	)

	return pfsm
}

// MarkPaid transitions payment to paid state
func (p *PaymentFSM) MarkPaid(ctx context.Context) error {
	if !p.reservation.MayMarkPaid() {
		return fmt.Errorf("payment cannot be marked paid: reservation %s, payment %s", p.reservation.Status, p.reservation.PaymentStatus)
	}

	if err := p.fsm.Event(ctx, EventPay); err != nil {
		return fmt.Errorf("failed to mark payment paid: %w", err)
	}

	p.reservation.PaymentStatus = p.fsm.Current()
	return nil
}

// Void cancels a pending payment. Used when the reservation is cancelled.
func (p *PaymentFSM) Void(ctx context.Context) error {
	if err := p.fsm.Event(ctx, EventVoidPayment); err != nil {
		return fmt.Errorf("failed to void payment: %w", err)
	}

	p.reservation.PaymentStatus = p.fsm.Current()
	return nil
}

// Current returns the current state
func (p *PaymentFSM) Current() string {
	return p.fsm.Current()
}

// Can checks if a transition is possible
func (p *PaymentFSM) Can(event string) bool {
	return p.fsm.Can(event)
}
