// Package analytics turns reservation and room-inventory records into
// hospitality KPIs. Every function is pure: inputs are never mutated and
// nothing is cached between calls, so independent reports can run in parallel.
package analytics

import (
	"github.com/shopspring/decimal"
	"github.com/sjperalta/hotel-analytics-api/internal/models"
)

// ComputeKPIs builds the KPI snapshot of a period. Only reservations checking
// in during the period are counted; rates degrade to 0 on empty input.
func ComputeKPIs(reservations []models.Reservation, rooms []models.Room, period models.ReportPeriod) (models.KpiSnapshot, error) {
	period, err := normalizePeriod(period)
	if err != nil {
		return models.KpiSnapshot{}, err
	}
	if err := ValidateReservations(reservations); err != nil {
		return models.KpiSnapshot{}, err
	}

	var (
		bookings   int
		cancelled  int
		roomNights int
		revenue    = decimal.Zero
	)
	for i := range reservations {
		r := &reservations[i]
		if !checksInDuring(r, period) {
			continue
		}
		switch {
		case r.IsEligible():
			bookings++
			roomNights += Nights(r)
			if r.IsPaid() {
				revenue = revenue.Add(r.TotalAmount)
			}
		case r.IsCancelled():
			cancelled++
		}
	}

	available := len(rooms) * PeriodNights(period)
	totalRevenue := revenue.InexactFloat64()

	// Occupancy is not clamped: values above 100 signal double bookings upstream.
	return models.KpiSnapshot{
		OccupancyRate:       percentage(roomNights, available),
		ADR:                 ratio(totalRevenue, float64(roomNights)),
		RevPAR:              ratio(totalRevenue, float64(available)),
		TotalRevenue:        totalRevenue,
		TotalBookings:       bookings,
		AvgLengthOfStay:     ratio(float64(roomNights), float64(bookings)),
		CancellationRate:    percentage(cancelled, bookings+cancelled),
		TotalRoomNights:     roomNights,
		AvailableRoomNights: available,
	}, nil
}
