package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	tenantRepo "islandpulse/database/repository/tenant"
	"islandpulse/models"
	"islandpulse/services/calendar"
	"islandpulse/utils"
)

// TenantHandler manages tenant reads and hours configuration.
type TenantHandler struct {
	Repo     tenantRepo.TenantRepository
	Calendar calendar.CalendarService
}

func NewTenantHandler(repo tenantRepo.TenantRepository, svc calendar.CalendarService) *TenantHandler {
	return &TenantHandler{Repo: repo, Calendar: svc}
}

// GetByID handles GET /api/tenants/:tenantID.
func (h *TenantHandler) GetByID(c *gin.Context) {
	tenant, err := h.Repo.GetByID(c.Request.Context(), c.Param("tenantID"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "tenant not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, tenant)
}

// GetBySlug handles GET /api/tenants/slug/:slug.
func (h *TenantHandler) GetBySlug(c *gin.Context) {
	tenant, err := h.Repo.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "tenant not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, tenant)
}

// UpdateHours handles PUT /api/tenants/:tenantID/hours. The configuration is
// validated here, at write time: the calendar read path trusts stored hours.
func (h *TenantHandler) UpdateHours(c *gin.Context) {
	tenantID := c.Param("tenantID")

	var hours models.BusinessHours
	if err := c.ShouldBindJSON(&hours); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := calendar.ValidateHours(hours); err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, "invalid business hours", err.Error())
		return
	}

	if err := h.Repo.UpdateHours(c.Request.Context(), tenantID, hours); err != nil {
		utils.JSONError(c, http.StatusNotFound, "tenant not found", err.Error())
		return
	}

	// The cached week-schedule rendering is stale the moment hours change.
	if h.Calendar != nil {
		if err := h.Calendar.InvalidateWeekSchedule(c.Request.Context(), tenantID); err != nil {
			utils.GetLogger().Warn("failed to invalidate week schedule cache",
				zap.String("tenantID", tenantID), zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, gin.H{"id": tenantID, "hours": hours})
}
