package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"islandpulse/models"
)

type fakeTenantRepo struct {
	updatedHours map[string]models.BusinessHours
}

func (f *fakeTenantRepo) Create(ctx context.Context, tenant *models.Tenant) error { return nil }

func (f *fakeTenantRepo) GetByID(ctx context.Context, id string) (*models.Tenant, error) {
	return &models.Tenant{ID: id}, nil
}

func (f *fakeTenantRepo) GetBySlug(ctx context.Context, slug string) (*models.Tenant, error) {
	return &models.Tenant{ID: "tnt_1", Slug: slug}, nil
}

func (f *fakeTenantRepo) UpdateHours(ctx context.Context, id string, hours models.BusinessHours) error {
	if f.updatedHours == nil {
		f.updatedHours = make(map[string]models.BusinessHours)
	}
	f.updatedHours[id] = hours
	return nil
}

func tenantRouter(h *TenantHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.PUT("/api/tenants/:tenantID/hours", h.UpdateHours)
	return r
}

func TestUpdateHours_InvalidatesWeekScheduleCache(t *testing.T) {
	repo := &fakeTenantRepo{}
	cal := &fakeCalendar{}
	h := NewTenantHandler(repo, cal)

	body := `{"monday": [{"open": "09:00", "close": "17:00"}], "saturday": []}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/tenants/tnt_1/hours", strings.NewReader(body))
	tenantRouter(h).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if _, ok := repo.updatedHours["tnt_1"]; !ok {
		t.Fatal("hours were not persisted")
	}
	if len(cal.invalidated) != 1 || cal.invalidated[0] != "tnt_1" {
		t.Fatalf("week schedule cache not invalidated: %v", cal.invalidated)
	}
}

func TestUpdateHours_RejectsInvalidConfiguration(t *testing.T) {
	repo := &fakeTenantRepo{}
	cal := &fakeCalendar{}
	h := NewTenantHandler(repo, cal)

	// Overlapping intervals must never reach the repository.
	body := `{"monday": [{"open": "09:00", "close": "13:00"}, {"open": "12:00", "close": "17:00"}]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/tenants/tnt_1/hours", strings.NewReader(body))
	tenantRouter(h).ServeHTTP(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if len(repo.updatedHours) != 0 {
		t.Fatalf("invalid hours were persisted: %v", repo.updatedHours)
	}
	if len(cal.invalidated) != 0 {
		t.Fatalf("cache invalidated on a rejected write: %v", cal.invalidated)
	}
}
