package analytics

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sjperalta/hotel-analytics-api/internal/models"
)

// ForecastOptions sizes the trailing history window and the projection horizon
type ForecastOptions struct {
	HistoryDays int
	HorizonDays int
}

// DefaultForecastOptions projects 30 days from the last 90
func DefaultForecastOptions() ForecastOptions {
	return ForecastOptions{HistoryDays: 90, HorizonDays: 30}
}

// ConfidenceFor labels a projected day by its distance from today
func ConfidenceFor(daysOut int) string {
	switch {
	case daysOut <= 7:
		return models.ConfidenceHigh
	case daysOut <= 14:
		return models.ConfidenceMedium
	}
	return models.ConfidenceLow
}

// Forecast projects occupancy and revenue for HorizonDays days starting at
// asOf (days_out 1), from the HistoryDays days before asOf.
//
// Reference model: each series is decomposed into a day-of-week mean plus a
// least-squares linear trend over the window; a projected day is its weekday
// mean shifted by the trend at that distance from the window centre.
// Occupancy is clamped to [0, 100] and revenue floored at 0. Revenue is
// recognised per night (total_amount / nights) for paid stays. Any model with
// the same inputs and outputs may replace this one.
func Forecast(history []models.Reservation, rooms []models.Room, asOf time.Time, opts ForecastOptions) ([]models.ForecastPoint, error) {
	if opts.HistoryDays <= 0 || opts.HorizonDays <= 0 {
		return nil, ErrInvalidHorizon
	}
	asOf = dateOf(asOf)
	window := models.ReportPeriod{
		Start: asOf.AddDate(0, 0, -opts.HistoryDays),
		End:   asOf.AddDate(0, 0, -1),
	}

	daily, err := ProjectDailyOccupancy(history, rooms, window)
	if err != nil {
		return nil, err
	}
	occupancy := make([]float64, len(daily))
	for i, d := range daily {
		occupancy[i] = d.OccupancyRate
	}
	revenue := nightlyRevenue(history, window)

	occModel := fitSeasonal(occupancy, window.Start)
	revModel := fitSeasonal(revenue, window.Start)

	points := make([]models.ForecastPoint, 0, opts.HorizonDays)
	for d := 1; d <= opts.HorizonDays; d++ {
		date := asOf.AddDate(0, 0, d-1)
		t := opts.HistoryDays + d - 1
		points = append(points, models.ForecastPoint{
			Date:                   date.Format(models.DateLayout),
			DaysOut:                d,
			ProjectedOccupancyRate: round2(clamp(occModel.project(date, t), 0, 100)),
			ProjectedRevenue:       round2(math.Max(revModel.project(date, t), 0)),
			Confidence:             ConfidenceFor(d),
		})
	}
	return points, nil
}

// nightlyRevenue spreads each paid stay's amount evenly over its nights and
// sums it per window day
func nightlyRevenue(reservations []models.Reservation, window models.ReportPeriod) []float64 {
	days := PeriodDays(window)
	diff := make([]decimal.Decimal, days+1)
	for i := range diff {
		diff[i] = decimal.Zero
	}
	for i := range reservations {
		r := &reservations[i]
		if !r.IsPaid() {
			continue
		}
		perNight := r.TotalAmount.Div(decimal.NewFromInt(int64(Nights(r))))
		from := max(daysBetween(window.Start, r.CheckInDate), 0)
		to := min(daysBetween(window.Start, r.CheckOutDate), days)
		if from >= to {
			continue
		}
		diff[from] = diff[from].Add(perNight)
		diff[to] = diff[to].Sub(perNight)
	}

	series := make([]float64, days)
	running := decimal.Zero
	for i := 0; i < days; i++ {
		running = running.Add(diff[i])
		series[i] = running.InexactFloat64()
	}
	return series
}

type seasonalModel struct {
	weekday [7]float64
	slope   float64
	centre  float64
}

// fitSeasonal fits weekday means and a linear trend to a daily series whose
// first value falls on start
func fitSeasonal(series []float64, start time.Time) seasonalModel {
	var m seasonalModel
	n := len(series)
	if n == 0 {
		return m
	}

	var sum float64
	var sums [7]float64
	var counts [7]int
	for i, v := range series {
		wd := start.AddDate(0, 0, i).Weekday()
		sums[wd] += v
		counts[wd]++
		sum += v
	}
	mean := sum / float64(n)
	for wd := range m.weekday {
		if counts[wd] == 0 {
			m.weekday[wd] = mean
			continue
		}
		m.weekday[wd] = sums[wd] / float64(counts[wd])
	}

	m.centre = float64(n-1) / 2
	var num, den float64
	for i, v := range series {
		dx := float64(i) - m.centre
		num += dx * (v - mean)
		den += dx * dx
	}
	m.slope = ratio(num, den)
	return m
}

// project evaluates the model for date, t days after the series start
func (m seasonalModel) project(date time.Time, t int) float64 {
	return m.weekday[date.Weekday()] + m.slope*(float64(t)-m.centre)
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
