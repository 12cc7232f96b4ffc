package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"islandpulse/cron"
	appointmentRepo "islandpulse/database/repository/appointment"
	"islandpulse/models"
	"islandpulse/services/calendar"
	"islandpulse/utils"
)

// AppointmentHandler manages appointment CRUD for a tenant. Writes that move
// calendar time enqueue a stats rollup for the affected date.
type AppointmentHandler struct {
	Repo     appointmentRepo.AppointmentRepository
	Calendar calendar.CalendarService
	Stats    cron.StatsEnqueuer
}

func NewAppointmentHandler(repo appointmentRepo.AppointmentRepository, svc calendar.CalendarService, stats cron.StatsEnqueuer) *AppointmentHandler {
	return &AppointmentHandler{Repo: repo, Calendar: svc, Stats: stats}
}

// enqueueRollup schedules a stats recomputation for a tenant-day. Rollups are
// best-effort: a queue failure never fails the request that triggered it.
func (h *AppointmentHandler) enqueueRollup(c *gin.Context, tenantID, date string) {
	if h.Stats == nil {
		return
	}
	if err := h.Stats.EnqueueRollup(c.Request.Context(), tenantID, date); err != nil {
		utils.GetLogger().Warn("failed to enqueue stats rollup",
			zap.String("tenantID", tenantID), zap.String("date", date), zap.Error(err))
	}
}

func scheduleFromInput(date, start, end, timezone string) models.AppointmentSchedule {
	return models.AppointmentSchedule{Date: date, Start: start, End: end, Timezone: timezone}
}

// Create handles POST /api/tenants/:tenantID/appointments. The slot is
// re-checked against the calendar before the write; a taken slot is a 409.
func (h *AppointmentHandler) Create(c *gin.Context) {
	tenantID := c.Param("tenantID")

	var input struct {
		Customer models.AppointmentCustomer        `json:"customer" binding:"required"`
		Schedule models.AppointmentSchedule        `json:"schedule" binding:"required"`
		Service  models.AppointmentServiceSnapshot `json:"service" binding:"required"`
		Totals   models.AppointmentTotals          `json:"totals" binding:"required"`
		Source   models.AppointmentSource          `json:"source"`
		Channel  models.AppointmentChannel         `json:"channel"`
		Notes    string                            `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	check, err := h.Calendar.CanSchedule(c.Request.Context(), tenantID, input.Schedule)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to check schedule", err.Error())
		return
	}
	if !check.CanSchedule {
		c.JSON(http.StatusConflict, gin.H{"error": check.Reason})
		return
	}

	appointment := models.NewAppointment(tenantID, input.Customer, input.Schedule, input.Service, input.Totals,
		utils.UnixNow(), &models.AppointmentOptions{
			Source:  input.Source,
			Channel: input.Channel,
			Notes:   input.Notes,
		})

	if err := h.Repo.Create(c.Request.Context(), &appointment); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create appointment", err.Error())
		return
	}
	h.enqueueRollup(c, tenantID, appointment.Schedule.Date)
	c.JSON(http.StatusCreated, appointment)
}

// ListByDate handles GET /api/tenants/:tenantID/appointments?date=YYYY-MM-DD.
func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	tenantID := c.Param("tenantID")
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing 'date'", "expected YYYY-MM-DD")
		return
	}

	appointments, err := h.Repo.GetByDate(c.Request.Context(), tenantID, date)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list appointments", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "appointments": appointments})
}

// UpdateStatus handles PATCH /api/tenants/:tenantID/appointments/:id/status.
func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	tenantID := c.Param("tenantID")
	id := c.Param("id")

	var input struct {
		Status  models.AppointmentStatus `json:"status" binding:"required"`
		ActorID string                   `json:"actorId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if !input.Status.Valid() {
		utils.JSONError(c, http.StatusBadRequest, "invalid status", string(input.Status))
		return
	}

	if err := h.Repo.UpdateStatus(c.Request.Context(), tenantID, id, input.Status, input.ActorID); err != nil {
		utils.JSONError(c, http.StatusNotFound, "appointment not found", err.Error())
		return
	}

	// Status changes shift the day's counters, so refresh that day's stats.
	if apt, err := h.Repo.GetByID(c.Request.Context(), tenantID, id); err == nil {
		h.enqueueRollup(c, tenantID, apt.Schedule.Date)
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "status": input.Status})
}
