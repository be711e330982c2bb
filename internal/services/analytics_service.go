package services

import (
	"context"
	"errors"
	"time"

	"github.com/sjperalta/hotel-analytics-api/internal/analytics"
	"github.com/sjperalta/hotel-analytics-api/internal/metrics"
	"github.com/sjperalta/hotel-analytics-api/internal/config"
	"github.com/sjperalta/hotel-analytics-api/internal/models"
	"github.com/sjperalta/hotel-analytics-api/internal/repository"
	"github.com/sjperalta/hotel-analytics-api/pkg/logger"
)

// MaxForecastHorizon bounds the horizon a caller may request
const MaxForecastHorizon = config.MaxForecastHorizonDays

// AnalyticsService fetches a business's rooms and reservations once per
// request and runs the engine over them. Nothing is cached between calls.
type AnalyticsService struct {
	reservationRepo repository.ReservationRepository
	roomRepo        repository.RoomRepository
	forecast        analytics.ForecastOptions
	timeout         time.Duration
}

func NewAnalyticsService(
	reservationRepo repository.ReservationRepository,
	roomRepo repository.RoomRepository,
	forecast analytics.ForecastOptions,
	timeout time.Duration,
) *AnalyticsService {
	return &AnalyticsService{
		reservationRepo: reservationRepo,
		roomRepo:        roomRepo,
		forecast:        forecast,
		timeout:         timeout,
	}
}

// ReportQuery scopes a report to a business and period
type ReportQuery struct {
	BusinessID  uint
	Period      models.ReportPeriod
	Granularity string
}

type dataset struct {
	rooms        []models.Room
	reservations []models.Reservation
}

// fetch loads rooms and every reservation whose stay touches [start, end].
// The timeout applies to the fetch only, never to the computation.
func (s *AnalyticsService) fetch(ctx context.Context, businessID uint, start, end time.Time) (*dataset, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	begin := time.Now()
	defer func() { metrics.RepositoryLatency.Observe(time.Since(begin).Seconds()) }()

	rooms, err := s.roomRepo.FindByBusiness(ctx, businessID)
	if err != nil {
		return nil, &DataUnavailableError{Resource: "rooms", Err: err}
	}
	reservations, err := s.reservationRepo.FindForPeriod(ctx, businessID, start, end)
	if err != nil {
		return nil, &DataUnavailableError{Resource: "reservations", Err: err}
	}
	return &dataset{rooms: rooms, reservations: reservations}, nil
}

// observe records the report duration and classifies failures
func (s *AnalyticsService) observe(ctx context.Context, report string, businessID uint, start time.Time, err error) {
	metrics.ObserveReport(report, start)
	if err == nil {
		return
	}

	log := logger.FromContext(ctx)
	var integrity *analytics.DataIntegrityError
	switch {
	case errors.As(err, &integrity):
		metrics.DataIntegrityErrorsTotal.Inc()
		metrics.ReportErrorsTotal.WithLabelValues(report, metrics.ReasonDataIntegrity).Inc()
		log.Warn("reservation rejected by analytics", "report", report, "business_id", businessID,
			"reservation_id", integrity.ReservationID)
	case errors.Is(err, ErrDataUnavailable):
		metrics.ReportErrorsTotal.WithLabelValues(report, metrics.ReasonDataUnavailable).Inc()
		log.Error("analytics data unavailable", "report", report, "business_id", businessID, "error", err)
	default:
		metrics.ReportErrorsTotal.WithLabelValues(report, metrics.ReasonInvalidInput).Inc()
	}
}

// KPIs computes the KPI snapshot of the period
func (s *AnalyticsService) KPIs(ctx context.Context, q ReportQuery) (kpis models.KpiSnapshot, err error) {
	defer func(start time.Time) { s.observe(ctx, analytics.ReportKPIs, q.BusinessID, start, err) }(time.Now())

	period, err := analytics.NewPeriod(q.Period.Start, q.Period.End)
	if err != nil {
		return kpis, err
	}
	data, err := s.fetch(ctx, q.BusinessID, period.Start, period.End)
	if err != nil {
		return kpis, err
	}
	return analytics.ComputeKPIs(data.reservations, data.rooms, period)
}

// Occupancy returns the occupied rooms of every day of the period
func (s *AnalyticsService) Occupancy(ctx context.Context, q ReportQuery) (points []models.DailyOccupancy, err error) {
	defer func(start time.Time) { s.observe(ctx, analytics.ReportOccupancy, q.BusinessID, start, err) }(time.Now())

	period, err := analytics.NewPeriod(q.Period.Start, q.Period.End)
	if err != nil {
		return nil, err
	}
	data, err := s.fetch(ctx, q.BusinessID, period.Start, period.End)
	if err != nil {
		return nil, err
	}
	return analytics.ProjectDailyOccupancy(data.reservations, data.rooms, period)
}

// TimeSeries buckets the period by q.Granularity (day when empty)
func (s *AnalyticsService) TimeSeries(ctx context.Context, q ReportQuery) (points []models.TimeSeriesPoint, err error) {
	defer func(start time.Time) { s.observe(ctx, analytics.ReportTimeSeries, q.BusinessID, start, err) }(time.Now())

	granularity, err := analytics.ParseGranularity(q.Granularity)
	if err != nil {
		return nil, err
	}
	period, err := analytics.NewPeriod(q.Period.Start, q.Period.End)
	if err != nil {
		return nil, err
	}
	data, err := s.fetch(ctx, q.BusinessID, period.Start, period.End)
	if err != nil {
		return nil, err
	}
	return analytics.AggregateTimeSeries(data.reservations, len(data.rooms), period, granularity)
}

// RoomTypeBreakdown groups paid reservations by room type; includeEmpty adds
// catalog room types without reservations
func (s *AnalyticsService) RoomTypeBreakdown(ctx context.Context, q ReportQuery, includeEmpty bool) (rows []models.BreakdownRow, err error) {
	defer func(start time.Time) { s.observe(ctx, analytics.ReportRoomTypes, q.BusinessID, start, err) }(time.Now())

	period, err := analytics.NewPeriod(q.Period.Start, q.Period.End)
	if err != nil {
		return nil, err
	}
	data, err := s.fetch(ctx, q.BusinessID, period.Start, period.End)
	if err != nil {
		return nil, err
	}
	rows, err = analytics.BreakdownByRoomType(data.reservations, data.rooms, period)
	if err != nil {
		return nil, err
	}
	if includeEmpty {
		rows = analytics.WithRoomTypeCatalog(rows, data.rooms)
	}
	return rows, nil
}

// ChannelBreakdown groups paid reservations by booking source
func (s *AnalyticsService) ChannelBreakdown(ctx context.Context, q ReportQuery) (rows []models.BreakdownRow, err error) {
	defer func(start time.Time) { s.observe(ctx, analytics.ReportChannels, q.BusinessID, start, err) }(time.Now())

	period, err := analytics.NewPeriod(q.Period.Start, q.Period.End)
	if err != nil {
		return nil, err
	}
	data, err := s.fetch(ctx, q.BusinessID, period.Start, period.End)
	if err != nil {
		return nil, err
	}
	return analytics.BreakdownByChannel(data.reservations, period)
}

// Compare computes the period against the preceding period of equal length.
// One fetch spans both periods; the check-in filter splits them.
func (s *AnalyticsService) Compare(ctx context.Context, q ReportQuery) (cmp models.PeriodComparison, err error) {
	defer func(start time.Time) { s.observe(ctx, analytics.ReportComparison, q.BusinessID, start, err) }(time.Now())

	period, err := analytics.NewPeriod(q.Period.Start, q.Period.End)
	if err != nil {
		return cmp, err
	}
	previous, err := analytics.PreviousPeriod(period)
	if err != nil {
		return cmp, err
	}
	data, err := s.fetch(ctx, q.BusinessID, previous.Start, period.End)
	if err != nil {
		return cmp, err
	}
	return analytics.ComparePeriods(data.reservations, data.reservations, data.rooms, period)
}

// Forecast projects horizon days from asOf using the configured history
// window; horizon 0 uses the configured horizon
func (s *AnalyticsService) Forecast(ctx context.Context, businessID uint, asOf time.Time, horizon int) (points []models.ForecastPoint, err error) {
	defer func(start time.Time) { s.observe(ctx, analytics.ReportForecast, businessID, start, err) }(time.Now())

	opts := s.forecast
	if horizon != 0 {
		opts.HorizonDays = horizon
	}
	if opts.HorizonDays < 1 || opts.HorizonDays > MaxForecastHorizon || opts.HistoryDays < 1 {
		return nil, analytics.ErrInvalidHorizon
	}

	windowStart := asOf.AddDate(0, 0, -opts.HistoryDays)
	windowEnd := asOf.AddDate(0, 0, -1)
	data, err := s.fetch(ctx, businessID, windowStart, windowEnd)
	if err != nil {
		return nil, err
	}
	return analytics.Forecast(data.reservations, data.rooms, asOf, opts)
}

// Dashboard runs every calculator over a single fetch
func (s *AnalyticsService) Dashboard(ctx context.Context, q ReportQuery) (dash *models.Dashboard, err error) {
	defer func(start time.Time) { s.observe(ctx, "dashboard", q.BusinessID, start, err) }(time.Now())

	granularity, err := analytics.ParseGranularity(q.Granularity)
	if err != nil {
		return nil, err
	}
	period, err := analytics.NewPeriod(q.Period.Start, q.Period.End)
	if err != nil {
		return nil, err
	}
	previous, err := analytics.PreviousPeriod(period)
	if err != nil {
		return nil, err
	}
	data, err := s.fetch(ctx, q.BusinessID, previous.Start, period.End)
	if err != nil {
		return nil, err
	}

	cmp, err := analytics.ComparePeriods(data.reservations, data.reservations, data.rooms, period)
	if err != nil {
		return nil, err
	}
	series, err := analytics.AggregateTimeSeries(data.reservations, len(data.rooms), period, granularity)
	if err != nil {
		return nil, err
	}
	occupancy, err := analytics.ProjectDailyOccupancy(data.reservations, data.rooms, period)
	if err != nil {
		return nil, err
	}
	roomTypes, err := analytics.BreakdownByRoomType(data.reservations, data.rooms, period)
	if err != nil {
		return nil, err
	}
	channels, err := analytics.BreakdownByChannel(data.reservations, period)
	if err != nil {
		return nil, err
	}

	return &models.Dashboard{
		Period:      period,
		Granularity: string(granularity),
		KPIs:        cmp.Current,
		Comparison:  &cmp,
		TimeSeries:  series,
		Occupancy:   occupancy,
		RoomTypes:   analytics.WithRoomTypeCatalog(roomTypes, data.rooms),
		Channels:    channels,
	}, nil
}

// Report builds the named report as a flat table for the exporter
func (s *AnalyticsService) Report(ctx context.Context, name string, q ReportQuery, asOf time.Time, horizon int) (models.ReportTable, error) {
	switch name {
	case analytics.ReportKPIs:
		kpis, err := s.KPIs(ctx, q)
		if err != nil {
			return models.ReportTable{}, err
		}
		return analytics.KPITable(kpis), nil
	case analytics.ReportComparison:
		cmp, err := s.Compare(ctx, q)
		if err != nil {
			return models.ReportTable{}, err
		}
		return analytics.ComparisonTable(cmp), nil
	case analytics.ReportTimeSeries:
		points, err := s.TimeSeries(ctx, q)
		if err != nil {
			return models.ReportTable{}, err
		}
		return analytics.TimeSeriesTable(points), nil
	case analytics.ReportOccupancy:
		points, err := s.Occupancy(ctx, q)
		if err != nil {
			return models.ReportTable{}, err
		}
		return analytics.OccupancyTable(points), nil
	case analytics.ReportRoomTypes:
		rows, err := s.RoomTypeBreakdown(ctx, q, true)
		if err != nil {
			return models.ReportTable{}, err
		}
		return analytics.BreakdownTable(analytics.ReportRoomTypes, rows), nil
	case analytics.ReportChannels:
		rows, err := s.ChannelBreakdown(ctx, q)
		if err != nil {
			return models.ReportTable{}, err
		}
		return analytics.BreakdownTable(analytics.ReportChannels, rows), nil
	case analytics.ReportForecast:
		points, err := s.Forecast(ctx, q.BusinessID, asOf, horizon)
		if err != nil {
			return models.ReportTable{}, err
		}
		return analytics.ForecastTable(points), nil
	}
	return models.ReportTable{}, ErrInvalidReport
}
