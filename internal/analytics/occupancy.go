package analytics

import (
	"github.com/sjperalta/hotel-analytics-api/internal/models"
)

// ProjectDailyOccupancy counts occupied rooms for every day of the period
// (both ends inclusive). A stay occupies [check-in, check-out), clipped to the
// period. Counting uses a difference array, O(reservations + days).
func ProjectDailyOccupancy(reservations []models.Reservation, rooms []models.Room, period models.ReportPeriod) ([]models.DailyOccupancy, error) {
	period, err := normalizePeriod(period)
	if err != nil {
		return nil, err
	}
	if err := ValidateReservations(reservations); err != nil {
		return nil, err
	}

	days := PeriodDays(period)
	diff := make([]int, days+1)
	for i := range reservations {
		r := &reservations[i]
		if !r.IsEligible() {
			continue
		}
		from := max(daysBetween(period.Start, r.CheckInDate), 0)
		to := min(daysBetween(period.Start, r.CheckOutDate), days)
		if from >= to {
			continue
		}
		diff[from]++
		diff[to]--
	}

	totalRooms := len(rooms)
	points := make([]models.DailyOccupancy, 0, days)
	occupied := 0
	for i := 0; i < days; i++ {
		occupied += diff[i]
		points = append(points, models.DailyOccupancy{
			Date:          period.Start.AddDate(0, 0, i).Format(models.DateLayout),
			OccupiedRooms: occupied,
			TotalRooms:    totalRooms,
			OccupancyRate: percentage(occupied, totalRooms),
		})
	}
	return points, nil
}

// Overbooked returns the days whose occupied rooms exceed the inventory
func Overbooked(points []models.DailyOccupancy) []models.DailyOccupancy {
	var out []models.DailyOccupancy
	for _, p := range points {
		if p.OccupiedRooms > p.TotalRooms {
			out = append(out, p)
		}
	}
	return out
}
