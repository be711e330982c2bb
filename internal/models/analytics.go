package models

import (
	"time"
)

// DateLayout is the calendar-date format used across analytics payloads
const DateLayout = "2006-01-02"

// ReportPeriod is a calendar-date range. Check-in filtering treats both ends as
// inclusive; night counting treats End as exclusive.
type ReportPeriod struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// KpiSnapshot holds the headline hospitality KPIs of a period
type KpiSnapshot struct {
	OccupancyRate       float64 `json:"occupancy_rate"`
	ADR                 float64 `json:"adr"`
	RevPAR              float64 `json:"revpar"`
	TotalRevenue        float64 `json:"total_revenue"`
	TotalBookings       int     `json:"total_bookings"`
	AvgLengthOfStay     float64 `json:"avg_length_of_stay"`
	CancellationRate    float64 `json:"cancellation_rate"`
	TotalRoomNights     int     `json:"total_room_nights"`
	AvailableRoomNights int     `json:"available_room_nights"`
}

// TimeSeriesPoint is one bucket of the revenue/booking series
type TimeSeriesPoint struct {
	Date          string  `json:"date"`
	Revenue       float64 `json:"revenue"`
	Bookings      int     `json:"bookings"`
	RoomNights    int     `json:"room_nights"`
	ADR           float64 `json:"adr"`
	RevPAR        float64 `json:"revpar"`
	OccupancyRate float64 `json:"occupancy_rate"`
}

// DailyOccupancy is the occupied-room count of a calendar day
type DailyOccupancy struct {
	Date          string  `json:"date"`
	OccupiedRooms int     `json:"occupied_rooms"`
	TotalRooms    int     `json:"total_rooms"`
	OccupancyRate float64 `json:"occupancy_rate"`
}

// BreakdownRow holds the KPIs of one room type or sales channel
type BreakdownRow struct {
	Key           string  `json:"key"`
	Bookings      int     `json:"bookings"`
	Revenue       float64 `json:"revenue"`
	RoomNights    int     `json:"room_nights"`
	AverageRate   float64 `json:"average_rate"`
	OccupancyRate float64 `json:"occupancy_rate"`
}

// Trend direction constants
const (
	DirectionUp   = "up"
	DirectionDown = "down"
	DirectionFlat = "flat"
)

// PeriodComparison contrasts a period with the preceding one of equal length
type PeriodComparison struct {
	CurrentPeriod  ReportPeriod       `json:"current_period"`
	PreviousPeriod ReportPeriod       `json:"previous_period"`
	Current        KpiSnapshot        `json:"current"`
	Previous       KpiSnapshot        `json:"previous"`
	DeltaPct       map[string]float64 `json:"delta_pct"`
	Direction      map[string]string  `json:"direction"`
}

// Forecast confidence constants
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// ForecastPoint is a projected day
type ForecastPoint struct {
	Date                   string  `json:"date"`
	DaysOut                int     `json:"days_out"`
	ProjectedOccupancyRate float64 `json:"projected_occupancy_rate"`
	ProjectedRevenue       float64 `json:"projected_revenue"`
	Confidence             string  `json:"confidence"`
}

// Dashboard bundles every report of a period computed from a single fetch
type Dashboard struct {
	Period      ReportPeriod      `json:"period"`
	Granularity string            `json:"granularity"`
	KPIs        KpiSnapshot       `json:"kpis"`
	Comparison  *PeriodComparison `json:"comparison,omitempty"`
	TimeSeries  []TimeSeriesPoint `json:"time_series"`
	Occupancy   []DailyOccupancy  `json:"occupancy"`
	RoomTypes   []BreakdownRow    `json:"room_types"`
	Channels    []BreakdownRow    `json:"channels"`
}

// ReportTable is the flat record list handed to the exporter. Columns are the
// JSON field names of the source value objects, in display order.
type ReportTable struct {
	Name    string   `json:"name"`
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// Records returns the rows keyed by column name
func (t *ReportTable) Records() []map[string]any {
	records := make([]map[string]any, 0, len(t.Rows))
	for _, row := range t.Rows {
		record := make(map[string]any, len(t.Columns))
		for i, col := range t.Columns {
			if i < len(row) {
				record[col] = row[i]
			}
		}
		records = append(records, record)
	}
	return records
}
