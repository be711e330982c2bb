package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sjperalta/hotel-analytics-api/internal/analytics"
	"github.com/sjperalta/hotel-analytics-api/internal/middleware"
	"github.com/sjperalta/hotel-analytics-api/internal/services"
)

type AnalyticsHandler struct {
	analyticsSvc *services.AnalyticsService
	exportSvc    *services.ExportService
}

func NewAnalyticsHandler(analyticsSvc *services.AnalyticsService, exportSvc *services.ExportService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsSvc: analyticsSvc,
		exportSvc:    exportSvc,
	}
}

// @Summary Get KPIs
// @Description Occupancy, ADR, RevPAR, revenue, bookings, length of stay and cancellation rate for the period
// @Tags Analytics
// @Produce json
// @Param start_date query string false "Start date (YYYY-MM-DD), default 29 days before end_date"
// @Param end_date query string false "End date (YYYY-MM-DD), default today"
// @Success 200 {object} models.KpiSnapshot
// @Security BearerAuth
// @Router /analytics/kpis [get]
func (h *AnalyticsHandler) KPIs(c *gin.Context) {
	q, err := parseReportQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}
	kpis, err := h.analyticsSvc.KPIs(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, kpis)
}

// @Summary Get daily occupancy
// @Description Occupied rooms per day of the period, both ends inclusive
// @Tags Analytics
// @Produce json
// @Param start_date query string false "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} OccupancyResponse
// @Security BearerAuth
// @Router /analytics/occupancy [get]
func (h *AnalyticsHandler) Occupancy(c *gin.Context) {
	q, err := parseReportQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}
	points, err := h.analyticsSvc.Occupancy(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, OccupancyResponse{Data: points})
}

// @Summary Get time series
// @Description Revenue, bookings and rates per day, week or month, empty buckets included
// @Tags Analytics
// @Produce json
// @Param start_date query string false "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Param granularity query string false "day, week or month" default(day)
// @Success 200 {object} TimeSeriesResponse
// @Security BearerAuth
// @Router /analytics/timeseries [get]
func (h *AnalyticsHandler) TimeSeries(c *gin.Context) {
	q, err := parseReportQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}
	points, err := h.analyticsSvc.TimeSeries(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, TimeSeriesResponse{Data: points})
}

// @Summary Breakdown by room type
// @Tags Analytics
// @Produce json
// @Param start_date query string false "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Param include_empty query bool false "Include room types without reservations"
// @Success 200 {object} BreakdownResponse
// @Security BearerAuth
// @Router /analytics/breakdown/room_types [get]
func (h *AnalyticsHandler) RoomTypes(c *gin.Context) {
	q, err := parseReportQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}
	includeEmpty, _ := strconv.ParseBool(c.DefaultQuery("include_empty", "false"))
	rows, err := h.analyticsSvc.RoomTypeBreakdown(c.Request.Context(), q, includeEmpty)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, BreakdownResponse{Data: rows})
}

// @Summary Breakdown by booking channel
// @Tags Analytics
// @Produce json
// @Param start_date query string false "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} BreakdownResponse
// @Security BearerAuth
// @Router /analytics/breakdown/channels [get]
func (h *AnalyticsHandler) Channels(c *gin.Context) {
	q, err := parseReportQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}
	rows, err := h.analyticsSvc.ChannelBreakdown(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, BreakdownResponse{Data: rows})
}

// @Summary Compare with previous period
// @Description KPIs of the period and of the preceding period of equal length, with percentage deltas
// @Tags Analytics
// @Produce json
// @Param start_date query string false "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} models.PeriodComparison
// @Security BearerAuth
// @Router /analytics/compare [get]
func (h *AnalyticsHandler) Compare(c *gin.Context) {
	q, err := parseReportQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}
	cmp, err := h.analyticsSvc.Compare(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cmp)
}

// @Summary Forecast occupancy and revenue
// @Description Projection from the trailing history window; confidence decays with distance
// @Tags Analytics
// @Produce json
// @Param as_of query string false "First projected day (YYYY-MM-DD), default today"
// @Param horizon query int false "Days to project"
// @Success 200 {object} ForecastResponse
// @Security BearerAuth
// @Router /analytics/forecast [get]
func (h *AnalyticsHandler) Forecast(c *gin.Context) {
	asOf, horizon, err := parseForecastQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}
	points, err := h.analyticsSvc.Forecast(c.Request.Context(), middleware.GetBusinessID(c), asOf, horizon)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ForecastResponse{Data: points})
}

// @Summary Dashboard
// @Description KPIs, comparison, time series, occupancy and breakdowns from a single fetch
// @Tags Analytics
// @Produce json
// @Param start_date query string false "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Param granularity query string false "day, week or month" default(day)
// @Success 200 {object} models.Dashboard
// @Security BearerAuth
// @Router /analytics/dashboard [get]
func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	q, err := parseReportQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}
	dash, err := h.analyticsSvc.Dashboard(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dash)
}

// @Summary Export a report
// @Description Renders a report as CSV, XLSX, PDF or JSON; archive=true also stores a copy
// @Tags Analytics
// @Produce application/octet-stream
// @Param report query string true "kpis, comparison, timeseries, occupancy, room_types, channels or forecast"
// @Param format query string true "csv, xlsx, pdf or json"
// @Param start_date query string false "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Param granularity query string false "day, week or month"
// @Param as_of query string false "Forecast start (YYYY-MM-DD)"
// @Param horizon query int false "Forecast days"
// @Param archive query bool false "Archive a copy"
// @Security BearerAuth
// @Router /analytics/export [get]
func (h *AnalyticsHandler) Export(c *gin.Context) {
	q, err := parseReportQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}
	asOf, horizon, err := parseForecastQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}
	archive, _ := strconv.ParseBool(c.DefaultQuery("archive", "false"))

	result, err := h.exportSvc.Export(c.Request.Context(), services.ExportRequest{
		Report:  c.DefaultQuery("report", analytics.ReportKPIs),
		Format:  c.DefaultQuery("format", services.FormatCSV),
		Query:   q,
		AsOf:    asOf,
		Horizon: horizon,
		Archive: archive,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	if result.Archived {
		c.Header("X-Export-Archived", "queued")
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", result.Filename))
	c.Data(http.StatusOK, result.ContentType, result.Data)
}
