package services

import (
	"github.com/sjperalta/hotel-analytics-api/internal/analytics"
	"github.com/sjperalta/hotel-analytics-api/internal/config"
	"github.com/sjperalta/hotel-analytics-api/internal/jobs"
	"github.com/sjperalta/hotel-analytics-api/internal/repository"
	"github.com/sjperalta/hotel-analytics-api/internal/storage"
)

// Services holds all service instances
type Services struct {
	Analytics   *AnalyticsService
	Export      *ExportService
	Reservation *ReservationService
	Monitor     *MonitorService
	Audit       *AuditService
	Job         *JobService
}

// NewServices creates all service instances
func NewServices(repos *repository.Repositories, worker *jobs.Worker, storage *storage.LocalStorage, cfg *config.Config) *Services {
	forecast := analytics.ForecastOptions{
		HistoryDays: cfg.ForecastHistoryDays,
		HorizonDays: cfg.ForecastHorizonDays,
	}
	analyticsSvc := NewAnalyticsService(repos.Reservation, repos.Room, forecast, cfg.ReportTimeout)

	var reporter AlertReporter
	if cfg.SentryDSN != "" {
		reporter = SentryReporter{}
	}

	auditSvc := NewAuditService(repos.Audit)
	monitorSvc := NewMonitorService(repos.Business, analyticsSvc, reporter, cfg.MonitorLookaheadDays)

	return &Services{
		Analytics:   analyticsSvc,
		Export:      NewExportService(analyticsSvc, storage, worker),
		Reservation: NewReservationService(repos.Reservation, auditSvc),
		Monitor:     monitorSvc,
		Audit:       auditSvc,
		Job:         NewJobService(worker, monitorSvc),
	}
}
