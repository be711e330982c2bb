package handlers

import "github.com/sjperalta/hotel-analytics-api/internal/models"

// OccupancyResponse wraps the daily occupancy series
type OccupancyResponse struct {
	Data []models.DailyOccupancy `json:"data"`
}

// TimeSeriesResponse wraps the bucketed series
type TimeSeriesResponse struct {
	Data []models.TimeSeriesPoint `json:"data"`
}

// BreakdownResponse wraps room type and channel rows
type BreakdownResponse struct {
	Data []models.BreakdownRow `json:"data"`
}

// ForecastResponse wraps the projected days
type ForecastResponse struct {
	Data []models.ForecastPoint `json:"data"`
}
