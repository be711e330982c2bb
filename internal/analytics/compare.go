package analytics

import (
	"github.com/sjperalta/hotel-analytics-api/internal/models"
)

// Metric names, matching the KpiSnapshot JSON fields
const (
	MetricOccupancyRate       = "occupancy_rate"
	MetricADR                 = "adr"
	MetricRevPAR              = "revpar"
	MetricTotalRevenue        = "total_revenue"
	MetricTotalBookings       = "total_bookings"
	MetricAvgLengthOfStay     = "avg_length_of_stay"
	MetricCancellationRate    = "cancellation_rate"
	MetricTotalRoomNights     = "total_room_nights"
	MetricAvailableRoomNights = "available_room_nights"
)

// Metrics lists every compared metric in display order
var Metrics = []string{
	MetricOccupancyRate,
	MetricADR,
	MetricRevPAR,
	MetricTotalRevenue,
	MetricTotalBookings,
	MetricAvgLengthOfStay,
	MetricCancellationRate,
	MetricTotalRoomNights,
	MetricAvailableRoomNights,
}

// MetricValues flattens a snapshot into metric name -> value
func MetricValues(s models.KpiSnapshot) map[string]float64 {
	return map[string]float64{
		MetricOccupancyRate:       s.OccupancyRate,
		MetricADR:                 s.ADR,
		MetricRevPAR:              s.RevPAR,
		MetricTotalRevenue:        s.TotalRevenue,
		MetricTotalBookings:       float64(s.TotalBookings),
		MetricAvgLengthOfStay:     s.AvgLengthOfStay,
		MetricCancellationRate:    s.CancellationRate,
		MetricTotalRoomNights:     float64(s.TotalRoomNights),
		MetricAvailableRoomNights: float64(s.AvailableRoomNights),
	}
}

// PreviousPeriod returns the period of equal length ending the day before
// period starts
func PreviousPeriod(period models.ReportPeriod) (models.ReportPeriod, error) {
	period, err := normalizePeriod(period)
	if err != nil {
		return period, err
	}
	length := PeriodNights(period)
	prevEnd := period.Start.AddDate(0, 0, -1)
	prevStart := prevEnd.AddDate(0, 0, -length)
	return models.ReportPeriod{Start: prevStart, End: prevEnd}, nil
}

// PercentChange is 0 when previous is 0; the direction carries the sign then
func PercentChange(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return 100 * (current - previous) / previous
}

// DirectionOf compares raw values, not percentages
func DirectionOf(current, previous float64) string {
	switch {
	case current > previous:
		return models.DirectionUp
	case current < previous:
		return models.DirectionDown
	}
	return models.DirectionFlat
}

// ComparePeriods computes the KPIs of period and of its preceding period and
// the per-metric change between them
func ComparePeriods(current, previous []models.Reservation, rooms []models.Room, period models.ReportPeriod) (models.PeriodComparison, error) {
	period, err := normalizePeriod(period)
	if err != nil {
		return models.PeriodComparison{}, err
	}
	prevPeriod, err := PreviousPeriod(period)
	if err != nil {
		return models.PeriodComparison{}, err
	}

	cur, err := ComputeKPIs(current, rooms, period)
	if err != nil {
		return models.PeriodComparison{}, err
	}
	prev, err := ComputeKPIs(previous, rooms, prevPeriod)
	if err != nil {
		return models.PeriodComparison{}, err
	}

	curValues, prevValues := MetricValues(cur), MetricValues(prev)
	deltas := make(map[string]float64, len(Metrics))
	directions := make(map[string]string, len(Metrics))
	for _, m := range Metrics {
		deltas[m] = PercentChange(curValues[m], prevValues[m])
		directions[m] = DirectionOf(curValues[m], prevValues[m])
	}

	return models.PeriodComparison{
		CurrentPeriod:  period,
		PreviousPeriod: prevPeriod,
		Current:        cur,
		Previous:       prev,
		DeltaPct:       deltas,
		Direction:      directions,
	}, nil
}
