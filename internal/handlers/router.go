package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sjperalta/hotel-analytics-api/internal/middleware"
)

// RegisterRoutes mounts the /api/v1 surface on router
func RegisterRoutes(router *gin.Engine, h *Handlers, jwtSecret string) {
	v1 := router.Group("/api/v1")
	{
		// Health check (public)
		v1.GET("/health", h.Health.Index)

		// Protected routes (requires authentication)
		protected := v1.Group("")
		protected.Use(middleware.Auth(jwtSecret))
		{
			analytics := protected.Group("/analytics")
			{
				analytics.GET("/kpis", h.Analytics.KPIs)
				analytics.GET("/occupancy", h.Analytics.Occupancy)
				analytics.GET("/timeseries", h.Analytics.TimeSeries)
				analytics.GET("/breakdown/room_types", h.Analytics.RoomTypes)
				analytics.GET("/breakdown/channels", h.Analytics.Channels)
				analytics.GET("/compare", h.Analytics.Compare)
				analytics.GET("/forecast", h.Analytics.Forecast)
				analytics.GET("/dashboard", h.Analytics.Dashboard)
				analytics.GET("/export", h.Analytics.Export)
			}

			// Status changes (admin or manager)
			reservations := protected.Group("/reservations/:reservation_id")
			reservations.Use(middleware.RequireRole(middleware.RoleAdmin, middleware.RoleManager))
			{
				reservations.POST("/confirm", h.Reservation.Confirm)
				reservations.POST("/check_in", h.Reservation.CheckIn)
				reservations.POST("/check_out", h.Reservation.CheckOut)
				reservations.POST("/cancel", h.Reservation.Cancel)
				reservations.POST("/mark_paid", h.Reservation.MarkPaid)
			}

			protected.GET("/audits", middleware.RequireRole(middleware.RoleAdmin, middleware.RoleManager), h.Audit.Index)
			protected.GET("/jobs/status", middleware.RequireRole(middleware.RoleAdmin), h.Job.Status)
		}
	}
}
