package services

import (
	"context"
	"errors"
	"testing"

	"github.com/sjperalta/hotel-analytics-api/internal/models"
	"github.com/sjperalta/hotel-analytics-api/internal/statemachine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockAuditRepository struct {
	entries   []models.AuditLog
	createErr error
	listErr   error
}

func (m *mockAuditRepository) Create(ctx context.Context, entry *models.AuditLog) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.entries = append(m.entries, *entry)
	return nil
}

func (m *mockAuditRepository) ListByBusiness(ctx context.Context, businessID uint, limit, offset int) ([]models.AuditLog, int64, error) {
	if m.listErr != nil {
		return nil, 0, m.listErr
	}
	return m.entries, int64(len(m.entries)), nil
}

func TestReservationService_RecordsAudit(t *testing.T) {
	r := &models.Reservation{ID: 5, BusinessID: 7, Status: models.ReservationStatusPending, PaymentStatus: models.PaymentStatusPending}
	repo, _ := reservationRepoWith(r)
	audits := &mockAuditRepository{}
	svc := NewReservationService(repo, NewAuditService(audits))

	actor := Actor{UserID: 3, IPAddress: "10.1.2.3", UserAgent: "curl/8", Note: "late arrival"}
	_, err := svc.Transition(context.Background(), actor, 7, 5, statemachine.EventConfirm)
	require.NoError(t, err)

	require.Len(t, audits.entries, 1)
	entry := audits.entries[0]
	assert.Equal(t, uint(7), entry.BusinessID)
	assert.Equal(t, uint(3), entry.UserID)
	assert.Equal(t, statemachine.EventConfirm, entry.Action)
	assert.Equal(t, uint(5), entry.EntityID)
	assert.Equal(t, "late arrival", entry.Details)
	assert.Equal(t, "10.1.2.3", entry.IPAddress)

	// rejected transitions leave no trace
	_, err = svc.Transition(context.Background(), actor, 7, 5, statemachine.EventCheckOut)
	assert.ErrorIs(t, err, ErrInvalidState)
	assert.Len(t, audits.entries, 1)
}

func TestAuditService_WriteFailureIsNotFatal(t *testing.T) {
	r := &models.Reservation{ID: 5, BusinessID: 7, Status: models.ReservationStatusPending, PaymentStatus: models.PaymentStatusPending}
	repo, saved := reservationRepoWith(r)
	svc := NewReservationService(repo, NewAuditService(&mockAuditRepository{createErr: errors.New("disk full")}))

	updated, err := svc.Transition(context.Background(), Actor{UserID: 1}, 7, 5, statemachine.EventConfirm)
	require.NoError(t, err)
	assert.Equal(t, models.ReservationStatusConfirmed, updated.Status)
	assert.Len(t, *saved, 1)
}

func TestAuditService_List(t *testing.T) {
	svc := NewAuditService(&mockAuditRepository{entries: []models.AuditLog{{ID: 1, BusinessID: 7}}})
	logs, total, err := svc.List(context.Background(), 7, 50, 0)
	require.NoError(t, err)
	assert.Len(t, logs, 1)
	assert.Equal(t, int64(1), total)

	svc = NewAuditService(&mockAuditRepository{listErr: errors.New("timeout")})
	_, _, err = svc.List(context.Background(), 7, 50, 0)
	assert.ErrorIs(t, err, ErrDataUnavailable)
}
