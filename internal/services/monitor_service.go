package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/sjperalta/hotel-analytics-api/internal/analytics"
	"github.com/sjperalta/hotel-analytics-api/internal/metrics"
	"github.com/sjperalta/hotel-analytics-api/internal/models"
	"github.com/sjperalta/hotel-analytics-api/internal/repository"
	"github.com/sjperalta/hotel-analytics-api/pkg/logger"
)

// OverbookingAlert lists the days of a business with more occupied rooms than inventory
type OverbookingAlert struct {
	BusinessID   uint
	BusinessName string
	Days         []models.DailyOccupancy
}

// AlertReporter forwards data-quality alerts to an error tracker
type AlertReporter interface {
	ReportOverbooking(alert OverbookingAlert)
}

// SentryReporter sends alerts to Sentry as warning messages
type SentryReporter struct{}

func (SentryReporter) ReportOverbooking(alert OverbookingAlert) {
	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetLevel(sentry.LevelWarning)
		scope.SetTag("business_id", strconv.FormatUint(uint64(alert.BusinessID), 10))
		scope.SetContext("overbooking", sentry.Context{
			"business": alert.BusinessName,
			"days":     len(alert.Days),
			"first":    alert.Days[0].Date,
		})
		sentry.CaptureMessage(fmt.Sprintf("overbooking detected for business %d", alert.BusinessID))
	})
}

// MonitorRun summarizes the latest overbooking check
type MonitorRun struct {
	StartedAt            time.Time `json:"started_at"`
	FinishedAt           time.Time `json:"finished_at"`
	Businesses           int       `json:"businesses"`
	OverbookedBusinesses int       `json:"overbooked_businesses"`
	OverbookedDays       int       `json:"overbooked_days"`
	Failures             int       `json:"failures"`
}

// MonitorService checks the upcoming days of every active business for
// occupancy above 100%. The engine never clamps occupancy; this is where it
// is surfaced.
type MonitorService struct {
	businessRepo repository.BusinessRepository
	analyticsSvc *AnalyticsService
	reporter     AlertReporter
	lookahead    int
	now          func() time.Time

	mu      sync.RWMutex
	lastRun *MonitorRun
}

func NewMonitorService(businessRepo repository.BusinessRepository, analyticsSvc *AnalyticsService, reporter AlertReporter, lookaheadDays int) *MonitorService {
	return &MonitorService{
		businessRepo: businessRepo,
		analyticsSvc: analyticsSvc,
		reporter:     reporter,
		lookahead:    lookaheadDays,
		now:          time.Now,
	}
}

// CheckOverbooking is the scheduled job. A failing business does not stop the others.
func (s *MonitorService) CheckOverbooking(ctx context.Context) error {
	today := s.now()
	run := MonitorRun{StartedAt: today}
	defer func() {
		run.FinishedAt = s.now()
		s.mu.Lock()
		s.lastRun = &run
		s.mu.Unlock()
	}()

	businesses, err := s.businessRepo.FindActive(ctx)
	if err != nil {
		run.Failures++
		return &DataUnavailableError{Resource: "businesses", Err: err}
	}
	run.Businesses = len(businesses)

	period := models.ReportPeriod{Start: today, End: today.AddDate(0, 0, s.lookahead-1)}

	var errs []error
	for _, b := range businesses {
		alert, err := s.checkBusiness(ctx, b, period)
		if err != nil {
			run.Failures++
			errs = append(errs, fmt.Errorf("business %d: %w", b.ID, err))
			continue
		}
		if alert == nil {
			continue
		}
		run.OverbookedBusinesses++
		run.OverbookedDays += len(alert.Days)

		metrics.OverbookedDaysTotal.WithLabelValues(strconv.FormatUint(uint64(b.ID), 10)).Add(float64(len(alert.Days)))
		logger.Warn("overbooking detected",
			"business_id", b.ID,
			"days", len(alert.Days),
			"first_day", alert.Days[0].Date,
			"occupancy_rate", alert.Days[0].OccupancyRate,
		)
		if s.reporter != nil {
			s.reporter.ReportOverbooking(*alert)
		}
	}
	return errors.Join(errs...)
}

// LastRun returns the summary of the most recent check, nil before the first one
func (s *MonitorService) LastRun() *MonitorRun {
	if s == nil {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.lastRun == nil {
		return nil
	}
	run := *s.lastRun
	return &run
}

func (s *MonitorService) checkBusiness(ctx context.Context, b models.Business, period models.ReportPeriod) (*OverbookingAlert, error) {
	points, err := s.analyticsSvc.Occupancy(ctx, ReportQuery{BusinessID: b.ID, Period: period})
	if err != nil {
		return nil, err
	}
	days := analytics.Overbooked(points)
	if len(days) == 0 {
		return nil, nil
	}
	return &OverbookingAlert{BusinessID: b.ID, BusinessName: b.Name, Days: days}, nil
}
