package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"islandpulse/services/calendar"
	"islandpulse/utils"
)

// AvailabilityHandler exposes the calendar engine over HTTP.
type AvailabilityHandler struct {
	Calendar calendar.CalendarService
}

func NewAvailabilityHandler(svc calendar.CalendarService) *AvailabilityHandler {
	return &AvailabilityHandler{Calendar: svc}
}

// CurrentAvailability handles GET /api/tenants/:tenantID/availability.
// Optional query param "at" (RFC 3339) overrides the reference instant.
func (h *AvailabilityHandler) CurrentAvailability(c *gin.Context) {
	tenantID := c.Param("tenantID")

	at := time.Now()
	if raw := c.Query("at"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid 'at' timestamp", err.Error())
			return
		}
		at = parsed
	}

	result, err := h.Calendar.CurrentAvailability(c.Request.Context(), tenantID, at)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute availability", err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}

// AvailableSlots handles GET /api/tenants/:tenantID/slots?date=YYYY-MM-DD&duration=60&interval=30.
func (h *AvailabilityHandler) AvailableSlots(c *gin.Context) {
	tenantID := c.Param("tenantID")

	dateStr := c.Query("date")
	date, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid or missing 'date'", "expected YYYY-MM-DD")
		return
	}

	duration, err := strconv.Atoi(c.Query("duration"))
	if err != nil || duration <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid or missing 'duration'", "expected positive minutes")
		return
	}

	interval := calendar.DefaultSlotInterval
	if raw := c.Query("interval"); raw != "" {
		interval, err = strconv.Atoi(raw)
		if err != nil || interval <= 0 {
			utils.JSONError(c, http.StatusBadRequest, "invalid 'interval'", "expected positive minutes")
			return
		}
	}

	slots, err := h.Calendar.AvailableSlots(c.Request.Context(), tenantID, date, duration, interval)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute slots", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": dateStr, "slots": slots})
}

// CanSchedule handles POST /api/tenants/:tenantID/can-schedule with an
// AppointmentSchedule body.
func (h *AvailabilityHandler) CanSchedule(c *gin.Context) {
	tenantID := c.Param("tenantID")

	var input struct {
		Date     string `json:"date" binding:"required"`
		Start    string `json:"start" binding:"required"`
		End      string `json:"end" binding:"required"`
		Timezone string `json:"timezone"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	check, err := h.Calendar.CanSchedule(c.Request.Context(), tenantID, scheduleFromInput(input.Date, input.Start, input.End, input.Timezone))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to check schedule", err.Error())
		return
	}
	c.JSON(http.StatusOK, check)
}

// WeekSchedule handles GET /api/tenants/:tenantID/week-schedule.
func (h *AvailabilityHandler) WeekSchedule(c *gin.Context) {
	schedule, err := h.Calendar.WeekSchedule(c.Request.Context(), c.Param("tenantID"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load week schedule", err.Error())
		return
	}
	c.JSON(http.StatusOK, schedule)
}

// DailyStats handles GET /api/tenants/:tenantID/stats?date=YYYY-MM-DD.
func (h *AvailabilityHandler) DailyStats(c *gin.Context) {
	tenantID := c.Param("tenantID")

	dateStr := c.Query("date")
	date, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid or missing 'date'", "expected YYYY-MM-DD")
		return
	}

	stats, err := h.Calendar.DailyStats(c.Request.Context(), tenantID, date)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute daily stats", err.Error())
		return
	}
	c.JSON(http.StatusOK, stats)
}
