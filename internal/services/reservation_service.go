package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sjperalta/hotel-analytics-api/internal/metrics"
	"github.com/sjperalta/hotel-analytics-api/internal/models"
	"github.com/sjperalta/hotel-analytics-api/internal/repository"
	"github.com/sjperalta/hotel-analytics-api/internal/statemachine"
	"github.com/sjperalta/hotel-analytics-api/pkg/logger"
	"gorm.io/gorm"
)

// EventMarkPaid registers the payment of a reservation
const EventMarkPaid = "mark_paid"

// ReservationService applies lifecycle transitions; the analytics only ever
// read the resulting statuses
type ReservationService struct {
	repo  repository.ReservationRepository
	audit *AuditService
}

func NewReservationService(repo repository.ReservationRepository, audit *AuditService) *ReservationService {
	return &ReservationService{repo: repo, audit: audit}
}

// Transition applies event (confirm, check_in, check_out, cancel, mark_paid)
// to a reservation of the business, persists the new status and records it
// in the audit trail
func (s *ReservationService) Transition(ctx context.Context, actor Actor, businessID, reservationID uint, event string) (*models.Reservation, error) {
	reservation, err := s.repo.FindByID(ctx, businessID, reservationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, &DataUnavailableError{Resource: "reservation", Err: err}
	}

	if err := s.apply(ctx, reservation, event); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateStatus(ctx, reservation); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update reservation: %w", err)
	}

	metrics.ReservationTransitionsTotal.WithLabelValues(event).Inc()
	s.audit.Log(ctx, businessID, actor, event, models.EntityReservation, reservation.ID)
	logger.FromContext(ctx).Info("reservation transitioned",
		"reservation_id", reservation.ID,
		"event", event,
		"status", reservation.Status,
		"payment_status", reservation.PaymentStatus,
	)
	return reservation, nil
}

func (s *ReservationService) apply(ctx context.Context, r *models.Reservation, event string) error {
	lifecycle := statemachine.NewReservationFSM(r)
	payment := statemachine.NewPaymentFSM(r)

	var err error
	switch event {
	case statemachine.EventConfirm:
		err = lifecycle.Confirm(ctx)
	case statemachine.EventCheckIn:
		err = lifecycle.CheckIn(ctx)
	case statemachine.EventCheckOut:
		err = lifecycle.CheckOut(ctx)
	case statemachine.EventCancel:
		err = lifecycle.Cancel(ctx)
		if err == nil && payment.Can(statemachine.EventVoidPayment) {
			err = payment.Void(ctx)
		}
	case EventMarkPaid:
		err = payment.MarkPaid(ctx)
	default:
		return fmt.Errorf("%w: evento desconocido %q", ErrInvalidState, event)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidState, err)
	}
	return nil
}
