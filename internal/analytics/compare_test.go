package analytics

import (
	"testing"

	"github.com/sjperalta/hotel-analytics-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreviousPeriod(t *testing.T) {
	prev, err := PreviousPeriod(period("2024-01-11", "2024-01-20"))
	require.NoError(t, err)

	assert.Equal(t, date("2024-01-01"), prev.Start)
	assert.Equal(t, date("2024-01-10"), prev.End)
	assert.Equal(t, PeriodNights(period("2024-01-11", "2024-01-20")), PeriodNights(prev))
}

func TestPercentChange(t *testing.T) {
	assert.Equal(t, 50.0, PercentChange(150, 100))
	assert.Equal(t, -25.0, PercentChange(75, 100))
	assert.Equal(t, 0.0, PercentChange(500, 0))
	assert.Equal(t, 0.0, PercentChange(0, 0))
}

func TestComparePeriods_ZeroPreviousRevenue(t *testing.T) {
	rooms := []models.Room{room(1, "A")}
	current := []models.Reservation{reservation(1, 1, "2024-02-12", "2024-02-14", 500)}

	cmp, err := ComparePeriods(current, nil, rooms, period("2024-02-11", "2024-02-20"))
	require.NoError(t, err)

	assert.Equal(t, 500.0, cmp.Current.TotalRevenue)
	assert.Equal(t, 0.0, cmp.Previous.TotalRevenue)
	assert.Equal(t, 0.0, cmp.DeltaPct[MetricTotalRevenue])
	assert.Equal(t, models.DirectionUp, cmp.Direction[MetricTotalRevenue])
	assert.Equal(t, models.DirectionFlat, cmp.Direction[MetricAvailableRoomNights])
}

func TestComparePeriods_Deltas(t *testing.T) {
	rooms := []models.Room{room(1, "A"), room(2, "A")}
	p := period("2024-03-11", "2024-03-20")
	previous := []models.Reservation{
		reservation(1, 1, "2024-03-02", "2024-03-04", 200),
		reservation(2, 2, "2024-03-05", "2024-03-07", 200),
	}
	current := []models.Reservation{
		reservation(3, 1, "2024-03-12", "2024-03-15", 300),
	}

	cmp, err := ComparePeriods(current, previous, rooms, p)
	require.NoError(t, err)

	assert.Equal(t, date("2024-03-01"), cmp.PreviousPeriod.Start)
	assert.Equal(t, date("2024-03-10"), cmp.PreviousPeriod.End)
	assert.Equal(t, -25.0, cmp.DeltaPct[MetricTotalRevenue])
	assert.Equal(t, models.DirectionDown, cmp.Direction[MetricTotalRevenue])
	assert.Equal(t, -50.0, cmp.DeltaPct[MetricTotalBookings])
	assert.Equal(t, 50.0, cmp.DeltaPct[MetricAvgLengthOfStay])
	assert.Equal(t, models.DirectionUp, cmp.Direction[MetricAvgLengthOfStay])
	assert.Len(t, cmp.DeltaPct, len(Metrics))
}

func TestComparePeriods_PropagatesIntegrityErrors(t *testing.T) {
	bad := []models.Reservation{reservation(9, 1, "2024-03-05", "2024-03-01", 100)}

	_, err := ComparePeriods(nil, bad, []models.Room{room(1, "A")}, period("2024-03-11", "2024-03-20"))
	assert.ErrorIs(t, err, ErrDataIntegrity)
}
