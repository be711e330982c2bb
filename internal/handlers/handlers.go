package handlers

import (
	"github.com/sjperalta/hotel-analytics-api/internal/services"
)

// Handlers holds all handler instances
type Handlers struct {
	Health      *HealthHandler
	Analytics   *AnalyticsHandler
	Reservation *ReservationHandler
	Audit       *AuditHandler
	Job         *JobHandler
}

// NewHandlers creates all handler instances
func NewHandlers(svcs *services.Services) *Handlers {
	return &Handlers{
		Health:      NewHealthHandler(),
		Analytics:   NewAnalyticsHandler(svcs.Analytics, svcs.Export),
		Reservation: NewReservationHandler(svcs.Reservation),
		Audit:       NewAuditHandler(svcs.Audit),
		Job:         NewJobHandler(svcs.Job),
	}
}
