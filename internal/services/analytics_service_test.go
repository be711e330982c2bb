package services

import (
	"context"
	"errors"
	"testing"

	"github.com/sjperalta/hotel-analytics-api/internal/analytics"
	"github.com/sjperalta/hotel-analytics-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func query(start, end string) ReportQuery {
	return ReportQuery{BusinessID: 7, Period: models.ReportPeriod{Start: day(start), End: day(end)}}
}

func TestAnalyticsService_KPIs(t *testing.T) {
	reservations := &mockReservationRepository{
		reservations: []models.Reservation{paidStay(1, 1, "2024-01-01", "2024-01-03", 200)},
	}
	svc := newTestAnalyticsService(reservations, &mockRoomRepository{rooms: testRooms("A", "A")})

	kpis, err := svc.KPIs(context.Background(), query("2024-01-01", "2024-01-03"))
	require.NoError(t, err)

	assert.Equal(t, 50.0, kpis.OccupancyRate)
	assert.Equal(t, 100.0, kpis.ADR)
	assert.Equal(t, 50.0, kpis.RevPAR)
	assert.Equal(t, 4, kpis.AvailableRoomNights)

	assert.Equal(t, 1, reservations.calls)
	assert.Equal(t, day("2024-01-01"), reservations.lastFrom)
	assert.Equal(t, day("2024-01-03"), reservations.lastTo)
	assert.True(t, reservations.deadline, "fetch should run under the report timeout")
}

func TestAnalyticsService_RepositoryFailure(t *testing.T) {
	dbErr := errors.New("connection refused")

	svc := newTestAnalyticsService(&mockReservationRepository{}, &mockRoomRepository{err: dbErr})
	_, err := svc.KPIs(context.Background(), query("2024-01-01", "2024-01-31"))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDataUnavailable)
	assert.ErrorIs(t, err, dbErr)
	var unavailable *DataUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, "rooms", unavailable.Resource)

	svc = newTestAnalyticsService(&mockReservationRepository{err: dbErr}, &mockRoomRepository{})
	points, err := svc.Occupancy(context.Background(), query("2024-01-01", "2024-01-31"))
	assert.ErrorIs(t, err, ErrDataUnavailable)
	assert.Nil(t, points)
}

func TestAnalyticsService_InvalidInputSkipsFetch(t *testing.T) {
	reservations := &mockReservationRepository{}
	svc := newTestAnalyticsService(reservations, &mockRoomRepository{})

	_, err := svc.KPIs(context.Background(), query("2024-02-01", "2024-01-01"))
	assert.ErrorIs(t, err, analytics.ErrInvalidPeriod)

	q := query("2024-01-01", "2024-01-31")
	q.Granularity = "quarter"
	_, err = svc.TimeSeries(context.Background(), q)
	assert.ErrorIs(t, err, analytics.ErrInvalidGranularity)

	_, err = svc.Forecast(context.Background(), 7, day("2024-04-01"), MaxForecastHorizon+1)
	assert.ErrorIs(t, err, analytics.ErrInvalidHorizon)

	assert.Equal(t, 0, reservations.calls)
}

func TestAnalyticsService_DataIntegrity(t *testing.T) {
	reservations := &mockReservationRepository{
		reservations: []models.Reservation{paidStay(9, 1, "2024-01-05", "2024-01-05", 100)},
	}
	svc := newTestAnalyticsService(reservations, &mockRoomRepository{rooms: testRooms("A")})

	_, err := svc.KPIs(context.Background(), query("2024-01-01", "2024-01-31"))
	assert.ErrorIs(t, err, analytics.ErrDataIntegrity)
}

func TestAnalyticsService_CompareFetchesOnce(t *testing.T) {
	reservations := &mockReservationRepository{
		reservations: []models.Reservation{
			paidStay(1, 1, "2024-03-02", "2024-03-04", 200),
			paidStay(2, 1, "2024-03-12", "2024-03-15", 300),
		},
	}
	svc := newTestAnalyticsService(reservations, &mockRoomRepository{rooms: testRooms("A")})

	cmp, err := svc.Compare(context.Background(), query("2024-03-11", "2024-03-20"))
	require.NoError(t, err)

	assert.Equal(t, 1, reservations.calls)
	assert.Equal(t, day("2024-03-01"), reservations.lastFrom)
	assert.Equal(t, day("2024-03-20"), reservations.lastTo)

	assert.Equal(t, 300.0, cmp.Current.TotalRevenue)
	assert.Equal(t, 200.0, cmp.Previous.TotalRevenue)
	assert.Equal(t, 50.0, cmp.DeltaPct[analytics.MetricTotalRevenue])
	assert.Equal(t, models.DirectionUp, cmp.Direction[analytics.MetricTotalRevenue])
}

func TestAnalyticsService_Forecast(t *testing.T) {
	reservations := &mockReservationRepository{}
	svc := newTestAnalyticsService(reservations, &mockRoomRepository{rooms: testRooms("A")})

	points, err := svc.Forecast(context.Background(), 7, day("2024-04-01"), 0)
	require.NoError(t, err)

	assert.Len(t, points, 30)
	assert.Equal(t, day("2024-01-02"), reservations.lastFrom)
	assert.Equal(t, day("2024-03-31"), reservations.lastTo)

	points, err = svc.Forecast(context.Background(), 7, day("2024-04-01"), 10)
	require.NoError(t, err)
	assert.Len(t, points, 10)
	assert.Equal(t, models.ConfidenceMedium, points[9].Confidence)
}

func TestAnalyticsService_Dashboard(t *testing.T) {
	reservations := &mockReservationRepository{
		reservations: []models.Reservation{
			paidStay(1, 1, "2024-01-02", "2024-01-04", 200),
			paidStay(2, 2, "2024-01-10", "2024-01-11", 150),
		},
	}
	svc := newTestAnalyticsService(reservations, &mockRoomRepository{rooms: testRooms("double", "suite", "single")})

	q := query("2024-01-01", "2024-01-14")
	q.Granularity = "week"
	dash, err := svc.Dashboard(context.Background(), q)
	require.NoError(t, err)

	assert.Equal(t, 1, reservations.calls)
	assert.Equal(t, "week", dash.Granularity)
	require.NotNil(t, dash.Comparison)
	assert.Equal(t, dash.Comparison.Current, dash.KPIs)
	assert.Equal(t, 350.0, dash.KPIs.TotalRevenue)
	assert.Len(t, dash.Occupancy, 14)
	assert.Len(t, dash.RoomTypes, 3)
	require.Len(t, dash.Channels, 1)
	assert.Equal(t, models.DefaultSource, dash.Channels[0].Key)

	var seriesRevenue float64
	for _, p := range dash.TimeSeries {
		seriesRevenue += p.Revenue
	}
	assert.Equal(t, dash.KPIs.TotalRevenue, seriesRevenue)
}

func TestAnalyticsService_Report(t *testing.T) {
	reservations := &mockReservationRepository{
		reservations: []models.Reservation{paidStay(1, 1, "2024-01-02", "2024-01-04", 200)},
	}
	svc := newTestAnalyticsService(reservations, &mockRoomRepository{rooms: testRooms("double", "suite")})
	q := query("2024-01-01", "2024-01-10")

	table, err := svc.Report(context.Background(), analytics.ReportRoomTypes, q, day("2024-01-11"), 0)
	require.NoError(t, err)
	assert.Equal(t, analytics.ReportRoomTypes, table.Name)
	assert.Len(t, table.Rows, 2)

	_, err = svc.Report(context.Background(), "guests", q, day("2024-01-11"), 0)
	assert.ErrorIs(t, err, ErrInvalidReport)
}
