package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"islandpulse/handlers"
)

// HandlerBundle groups the handlers the router needs.
type HandlerBundle struct {
	Availability *handlers.AvailabilityHandler
	Appointments *handlers.AppointmentHandler
	Tenants      *handlers.TenantHandler
}

// RegisterRoutes wires CORS, health and all API endpoints.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/tenants")
	{
		api.GET("/slug/:slug", hb.Tenants.GetBySlug)
		api.GET("/:tenantID", hb.Tenants.GetByID)
		api.PUT("/:tenantID/hours", hb.Tenants.UpdateHours)

		api.GET("/:tenantID/availability", hb.Availability.CurrentAvailability)
		api.GET("/:tenantID/slots", hb.Availability.AvailableSlots)
		api.POST("/:tenantID/can-schedule", hb.Availability.CanSchedule)
		api.GET("/:tenantID/week-schedule", hb.Availability.WeekSchedule)
		api.GET("/:tenantID/stats", hb.Availability.DailyStats)

		api.POST("/:tenantID/appointments", hb.Appointments.Create)
		api.GET("/:tenantID/appointments", hb.Appointments.ListByDate)
		api.PATCH("/:tenantID/appointments/:id/status", hb.Appointments.UpdateStatus)
	}
}
