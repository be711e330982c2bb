package analytics

import (
	"github.com/sjperalta/hotel-analytics-api/internal/models"
)

// Report names accepted by the exporter
const (
	ReportKPIs       = "kpis"
	ReportComparison = "comparison"
	ReportTimeSeries = "timeseries"
	ReportOccupancy  = "occupancy"
	ReportRoomTypes  = "room_types"
	ReportChannels   = "channels"
	ReportForecast   = "forecast"
)

// KPITable flattens a snapshot into a single-row table
func KPITable(s models.KpiSnapshot) models.ReportTable {
	values := MetricValues(s)
	row := make([]any, 0, len(Metrics))
	for _, m := range Metrics {
		switch m {
		case MetricTotalBookings, MetricTotalRoomNights, MetricAvailableRoomNights:
			row = append(row, int(values[m]))
		default:
			row = append(row, values[m])
		}
	}
	return models.ReportTable{Name: ReportKPIs, Columns: append([]string(nil), Metrics...), Rows: [][]any{row}}
}

// ComparisonTable has one row per metric
func ComparisonTable(c models.PeriodComparison) models.ReportTable {
	cur, prev := MetricValues(c.Current), MetricValues(c.Previous)
	t := models.ReportTable{
		Name:    ReportComparison,
		Columns: []string{"metric", "current", "previous", "delta_pct", "direction"},
	}
	for _, m := range Metrics {
		t.Rows = append(t.Rows, []any{m, cur[m], prev[m], c.DeltaPct[m], c.Direction[m]})
	}
	return t
}

// TimeSeriesTable has one row per bucket
func TimeSeriesTable(points []models.TimeSeriesPoint) models.ReportTable {
	t := models.ReportTable{
		Name:    ReportTimeSeries,
		Columns: []string{"date", "revenue", "bookings", "room_nights", "adr", "revpar", "occupancy_rate"},
	}
	for _, p := range points {
		t.Rows = append(t.Rows, []any{p.Date, p.Revenue, p.Bookings, p.RoomNights, p.ADR, p.RevPAR, p.OccupancyRate})
	}
	return t
}

// OccupancyTable has one row per day
func OccupancyTable(points []models.DailyOccupancy) models.ReportTable {
	t := models.ReportTable{
		Name:    ReportOccupancy,
		Columns: []string{"date", "occupied_rooms", "total_rooms", "occupancy_rate"},
	}
	for _, p := range points {
		t.Rows = append(t.Rows, []any{p.Date, p.OccupiedRooms, p.TotalRooms, p.OccupancyRate})
	}
	return t
}

// BreakdownTable has one row per group; name is ReportRoomTypes or ReportChannels
func BreakdownTable(name string, rows []models.BreakdownRow) models.ReportTable {
	t := models.ReportTable{
		Name:    name,
		Columns: []string{"key", "bookings", "revenue", "room_nights", "average_rate", "occupancy_rate"},
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []any{r.Key, r.Bookings, r.Revenue, r.RoomNights, r.AverageRate, r.OccupancyRate})
	}
	return t
}

// ForecastTable has one row per projected day
func ForecastTable(points []models.ForecastPoint) models.ReportTable {
	t := models.ReportTable{
		Name:    ReportForecast,
		Columns: []string{"date", "days_out", "projected_occupancy_rate", "projected_revenue", "confidence"},
	}
	for _, p := range points {
		t.Rows = append(t.Rows, []any{p.Date, p.DaysOut, p.ProjectedOccupancyRate, p.ProjectedRevenue, p.Confidence})
	}
	return t
}
