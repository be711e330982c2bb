package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Report computation
	ReportDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "hotel_analytics_report_duration_seconds",
		Help:    "Time spent building an analytics report, fetch included",
		Buckets: prometheus.DefBuckets,
	}, []string{"report"})

	ReportErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hotel_analytics_report_errors_total",
		Help: "Reports that failed, by report and reason",
	}, []string{"report", "reason"})

	RepositoryLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "hotel_analytics_repository_latency_seconds",
		Help:    "Latency of reservation and room fetches",
		Buckets: prometheus.DefBuckets,
	})

	// Data quality
	OverbookedDaysTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hotel_analytics_overbooked_days_total",
		Help: "Days found with more occupied rooms than inventory",
	}, []string{"business_id"})

	DataIntegrityErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hotel_analytics_data_integrity_errors_total",
		Help: "Reservations rejected because check-out is not after check-in",
	})

	// Background jobs
	JobRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hotel_analytics_job_runs_total",
		Help: "Background job executions by job and result",
	}, []string{"job", "result"})

	ReservationTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hotel_analytics_reservation_transitions_total",
		Help: "Reservation status transitions applied",
	}, []string{"event"})
)

// Error reasons
const (
	ReasonDataIntegrity   = "data_integrity"
	ReasonDataUnavailable = "data_unavailable"
	ReasonInvalidInput    = "invalid_input"
)

// ObserveReport records how long report took since start
func ObserveReport(report string, start time.Time) {
	ReportDuration.WithLabelValues(report).Observe(time.Since(start).Seconds())
}
