package analytics

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sjperalta/hotel-analytics-api/internal/models"
)

// Granularity is the bucket width of a time series
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

// ParseGranularity accepts day, week or month (case-insensitive); empty means day
func ParseGranularity(s string) (Granularity, error) {
	switch Granularity(strings.ToLower(strings.TrimSpace(s))) {
	case "", GranularityDay:
		return GranularityDay, nil
	case GranularityWeek:
		return GranularityWeek, nil
	case GranularityMonth:
		return GranularityMonth, nil
	}
	return "", ErrInvalidGranularity
}

// bucketStart maps a date to the first day of its bucket. Weeks are ISO weeks
// (Monday first).
func (g Granularity) bucketStart(t time.Time) time.Time {
	t = dateOf(t)
	switch g {
	case GranularityWeek:
		offset := (int(t.Weekday()) + 6) % 7
		return t.AddDate(0, 0, -offset)
	case GranularityMonth:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	}
	return t
}

func (g Granularity) next(t time.Time) time.Time {
	switch g {
	case GranularityWeek:
		return t.AddDate(0, 0, 7)
	case GranularityMonth:
		return t.AddDate(0, 1, 0)
	}
	return t.AddDate(0, 0, 1)
}

type bucket struct {
	start      time.Time
	span       int
	revenue    decimal.Decimal
	bookings   int
	roomNights int
}

// AggregateTimeSeries buckets paid reservations by check-in date. Every bucket
// overlapping the period is emitted, empty ones zero-filled. RevPAR and
// occupancy use roomCount and the number of period days inside each bucket.
func AggregateTimeSeries(reservations []models.Reservation, roomCount int, period models.ReportPeriod, granularity Granularity) ([]models.TimeSeriesPoint, error) {
	period, err := normalizePeriod(period)
	if err != nil {
		return nil, err
	}
	granularity, err = ParseGranularity(string(granularity))
	if err != nil {
		return nil, err
	}
	if roomCount < 0 {
		return nil, ErrInvalidRoomCount
	}
	if err := ValidateReservations(reservations); err != nil {
		return nil, err
	}

	var buckets []*bucket
	index := make(map[time.Time]*bucket)
	periodEnd := period.End.AddDate(0, 0, 1)
	for start := granularity.bucketStart(period.Start); !start.After(period.End); start = granularity.next(start) {
		from := start
		if from.Before(period.Start) {
			from = period.Start
		}
		to := granularity.next(start)
		if to.After(periodEnd) {
			to = periodEnd
		}
		b := &bucket{start: start, span: daysBetween(from, to), revenue: decimal.Zero}
		buckets = append(buckets, b)
		index[start] = b
	}

	for i := range reservations {
		r := &reservations[i]
		if !r.IsPaid() || !checksInDuring(r, period) {
			continue
		}
		b := index[granularity.bucketStart(r.CheckInDate)]
		b.revenue = b.revenue.Add(r.TotalAmount)
		b.bookings++
		b.roomNights += Nights(r)
	}

	points := make([]models.TimeSeriesPoint, 0, len(buckets))
	for _, b := range buckets {
		revenue := b.revenue.InexactFloat64()
		available := roomCount * b.span
		points = append(points, models.TimeSeriesPoint{
			Date:          b.start.Format(models.DateLayout),
			Revenue:       revenue,
			Bookings:      b.bookings,
			RoomNights:    b.roomNights,
			ADR:           ratio(revenue, float64(b.roomNights)),
			RevPAR:        ratio(revenue, float64(available)),
			OccupancyRate: percentage(b.roomNights, available),
		})
	}
	return points, nil
}
