package analytics

import (
	"testing"

	"github.com/sjperalta/hotel-analytics-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfidenceFor(t *testing.T) {
	tests := []struct {
		daysOut int
		want    string
	}{
		{1, models.ConfidenceHigh},
		{7, models.ConfidenceHigh},
		{8, models.ConfidenceMedium},
		{14, models.ConfidenceMedium},
		{15, models.ConfidenceLow},
		{30, models.ConfidenceLow},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ConfidenceFor(tt.daysOut), "days out %d", tt.daysOut)
	}
}

func TestForecast_SteadyHistory(t *testing.T) {
	rooms := []models.Room{room(1, "A")}
	// one room booked every night of the 90 days before April 1st at 100/night
	history := []models.Reservation{reservation(1, 1, "2024-01-02", "2024-04-01", 9000)}

	points, err := Forecast(history, rooms, date("2024-04-01"), DefaultForecastOptions())
	require.NoError(t, err)
	require.Len(t, points, 30)

	assert.Equal(t, "2024-04-01", points[0].Date)
	assert.Equal(t, 1, points[0].DaysOut)
	assert.Equal(t, "2024-04-30", points[29].Date)
	for _, p := range points {
		assert.Equal(t, 100.0, p.ProjectedOccupancyRate)
		assert.Equal(t, 100.0, p.ProjectedRevenue)
		assert.Equal(t, ConfidenceFor(p.DaysOut), p.Confidence)
	}
}

func TestForecast_RisingTrendIsClamped(t *testing.T) {
	rooms := []models.Room{room(1, "A")}
	// empty for the first 45 days of the window, full for the last 45
	history := []models.Reservation{reservation(1, 1, "2024-02-16", "2024-04-01", 4500)}

	points, err := Forecast(history, rooms, date("2024-04-01"), DefaultForecastOptions())
	require.NoError(t, err)

	for _, p := range points {
		assert.GreaterOrEqual(t, p.ProjectedOccupancyRate, 0.0)
		assert.LessOrEqual(t, p.ProjectedOccupancyRate, 100.0)
		assert.Greater(t, p.ProjectedRevenue, 0.0)
	}
	assert.Equal(t, 100.0, points[0].ProjectedOccupancyRate)
}

func TestForecast_EmptyHistory(t *testing.T) {
	points, err := Forecast(nil, nil, date("2024-04-01"), ForecastOptions{HistoryDays: 90, HorizonDays: 10})
	require.NoError(t, err)
	require.Len(t, points, 10)
	for _, p := range points {
		assert.Equal(t, 0.0, p.ProjectedOccupancyRate)
		assert.Equal(t, 0.0, p.ProjectedRevenue)
	}
}

func TestForecast_InvalidInput(t *testing.T) {
	_, err := Forecast(nil, nil, date("2024-04-01"), ForecastOptions{HistoryDays: 0, HorizonDays: 30})
	assert.ErrorIs(t, err, ErrInvalidHorizon)

	bad := []models.Reservation{reservation(1, 1, "2024-03-02", "2024-03-02", 100)}
	_, err = Forecast(bad, []models.Room{room(1, "A")}, date("2024-04-01"), DefaultForecastOptions())
	assert.ErrorIs(t, err, ErrDataIntegrity)
}
