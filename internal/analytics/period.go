package analytics

import (
	"time"

	"github.com/sjperalta/hotel-analytics-api/internal/models"
)

const secondsPerDay = 24 * 60 * 60

// MaxPeriodDays bounds the calendar days a report period may span
const MaxPeriodDays = 3660

// dateOf truncates t to its calendar date at UTC midnight
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the whole calendar days from a to b (negative if b is before a)
func daysBetween(a, b time.Time) int {
	return int((dateOf(b).Unix() - dateOf(a).Unix()) / secondsPerDay)
}

// NewPeriod builds a normalized report period of at most MaxPeriodDays days
func NewPeriod(start, end time.Time) (models.ReportPeriod, error) {
	p, err := normalizePeriod(models.ReportPeriod{Start: start, End: end})
	if err != nil {
		return p, err
	}
	if PeriodDays(p) > MaxPeriodDays {
		return p, ErrPeriodTooLong
	}
	return p, nil
}

func normalizePeriod(p models.ReportPeriod) (models.ReportPeriod, error) {
	p = models.ReportPeriod{Start: dateOf(p.Start), End: dateOf(p.End)}
	if p.End.Before(p.Start) {
		return p, ErrInvalidPeriod
	}
	return p, nil
}

// PeriodNights is the night count of the period (end exclusive)
func PeriodNights(p models.ReportPeriod) int {
	return daysBetween(p.Start, p.End)
}

// PeriodDays is the number of calendar days in the period (end inclusive)
func PeriodDays(p models.ReportPeriod) int {
	return daysBetween(p.Start, p.End) + 1
}

// checksInDuring applies the inclusive check-in filter
func checksInDuring(r *models.Reservation, p models.ReportPeriod) bool {
	checkIn := dateOf(r.CheckInDate)
	return !checkIn.Before(p.Start) && !checkIn.After(p.End)
}

// Nights returns the room-nights of a reservation
func Nights(r *models.Reservation) int {
	return daysBetween(r.CheckInDate, r.CheckOutDate)
}

// ValidateReservations rejects any reservation whose check-out is not after its check-in
func ValidateReservations(reservations []models.Reservation) error {
	for i := range reservations {
		r := &reservations[i]
		if Nights(r) <= 0 {
			return &DataIntegrityError{
				ReservationID: r.ID,
				CheckIn:       r.CheckInDate,
				CheckOut:      r.CheckOutDate,
			}
		}
	}
	return nil
}

// ratio divides with the zero-denominator policy: never NaN or Inf, always 0
func ratio(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}

func percentage(part, whole int) float64 {
	return 100 * ratio(float64(part), float64(whole))
}
