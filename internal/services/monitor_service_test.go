package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sjperalta/hotel-analytics-api/internal/jobs"
	"github.com/sjperalta/hotel-analytics-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingReporter struct {
	alerts []OverbookingAlert
}

func (r *recordingReporter) ReportOverbooking(alert OverbookingAlert) {
	r.alerts = append(r.alerts, alert)
}

func TestMonitorService_CheckOverbooking(t *testing.T) {
	// two stays in the only room overlap on June 2nd and 3rd
	reservations := &mockReservationRepository{
		reservations: []models.Reservation{
			paidStay(1, 1, "2024-06-01", "2024-06-04", 300),
			paidStay(2, 1, "2024-06-02", "2024-06-05", 300),
		},
	}
	analyticsSvc := newTestAnalyticsService(reservations, &mockRoomRepository{rooms: testRooms("A")})
	businesses := &mockBusinessRepository{businesses: []models.Business{{ID: 7, Name: "Hotel Sol"}}}
	reporter := &recordingReporter{}

	svc := NewMonitorService(businesses, analyticsSvc, reporter, 10)
	svc.now = func() time.Time { return day("2024-06-01") }

	require.NoError(t, svc.CheckOverbooking(context.Background()))

	assert.Equal(t, day("2024-06-01"), reservations.lastFrom)
	assert.Equal(t, day("2024-06-10"), reservations.lastTo)

	require.Len(t, reporter.alerts, 1)
	alert := reporter.alerts[0]
	assert.Equal(t, uint(7), alert.BusinessID)
	require.Len(t, alert.Days, 2)
	assert.Equal(t, "2024-06-02", alert.Days[0].Date)
	assert.Equal(t, 200.0, alert.Days[0].OccupancyRate)

	run := svc.LastRun()
	require.NotNil(t, run)
	assert.Equal(t, 1, run.Businesses)
	assert.Equal(t, 1, run.OverbookedBusinesses)
	assert.Equal(t, 2, run.OverbookedDays)
	assert.Zero(t, run.Failures)
}

func TestMonitorService_NoAlertWhenWithinInventory(t *testing.T) {
	reservations := &mockReservationRepository{
		reservations: []models.Reservation{paidStay(1, 1, "2024-06-01", "2024-06-04", 300)},
	}
	analyticsSvc := newTestAnalyticsService(reservations, &mockRoomRepository{rooms: testRooms("A")})
	reporter := &recordingReporter{}

	svc := NewMonitorService(&mockBusinessRepository{businesses: []models.Business{{ID: 7}}}, analyticsSvc, reporter, 10)
	svc.now = func() time.Time { return day("2024-06-01") }

	require.NoError(t, svc.CheckOverbooking(context.Background()))
	assert.Empty(t, reporter.alerts)
}

func TestMonitorService_Errors(t *testing.T) {
	analyticsSvc := newTestAnalyticsService(&mockReservationRepository{err: errors.New("down")}, &mockRoomRepository{})
	businesses := &mockBusinessRepository{businesses: []models.Business{{ID: 1}, {ID: 2}}}

	svc := NewMonitorService(businesses, analyticsSvc, nil, 10)
	assert.Nil(t, svc.LastRun())
	err := svc.CheckOverbooking(context.Background())
	assert.ErrorIs(t, err, ErrDataUnavailable)
	assert.Contains(t, err.Error(), "business 1")
	assert.Contains(t, err.Error(), "business 2")
	require.NotNil(t, svc.LastRun())
	assert.Equal(t, 2, svc.LastRun().Failures)

	svc = NewMonitorService(&mockBusinessRepository{err: errors.New("down")}, analyticsSvc, nil, 10)
	assert.ErrorIs(t, svc.CheckOverbooking(context.Background()), ErrDataUnavailable)
}

func TestJobService_Status(t *testing.T) {
	worker := jobs.NewWorker(2)
	t.Cleanup(worker.Shutdown)

	reservations := &mockReservationRepository{
		reservations: []models.Reservation{
			paidStay(1, 1, "2024-06-01", "2024-06-04", 300),
			paidStay(2, 1, "2024-06-02", "2024-06-05", 300),
		},
	}
	analyticsSvc := newTestAnalyticsService(reservations, &mockRoomRepository{rooms: testRooms("A")})
	monitor := NewMonitorService(&mockBusinessRepository{businesses: []models.Business{{ID: 7}}}, analyticsSvc, nil, 10)
	monitor.now = func() time.Time { return day("2024-06-01") }

	svc := NewJobService(worker, monitor)
	status := svc.Status()
	assert.Equal(t, 2, status.MaxConcurrent)
	assert.Nil(t, status.Monitor)

	done := make(chan struct{})
	worker.Enqueue("overbooking_monitor", func(ctx context.Context) error {
		defer close(done)
		return monitor.CheckOverbooking(ctx)
	})
	<-done

	assert.Eventually(t, func() bool {
		s := svc.Status()
		return s.CompletedJobs == 1 && s.SucceededJobs == 1 && s.ActiveJobs == 0
	}, time.Second, 10*time.Millisecond)

	status = svc.Status()
	require.NotNil(t, status.Monitor)
	assert.Equal(t, 1, status.Monitor.OverbookedBusinesses)
	assert.Equal(t, 2, status.Monitor.OverbookedDays)
}
