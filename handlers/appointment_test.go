package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"islandpulse/models"
)

type fakeAppointmentRepo struct {
	created       []models.Appointment
	byID          map[string]models.Appointment
	statusUpdates []string
}

func (f *fakeAppointmentRepo) Create(ctx context.Context, appointment *models.Appointment) error {
	f.created = append(f.created, *appointment)
	return nil
}

func (f *fakeAppointmentRepo) GetByID(ctx context.Context, tenantID, id string) (*models.Appointment, error) {
	apt, ok := f.byID[id]
	if !ok {
		return nil, fmt.Errorf("appointment %s not found", id)
	}
	return &apt, nil
}

func (f *fakeAppointmentRepo) GetByDate(ctx context.Context, tenantID, date string) ([]models.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentRepo) UpdateStatus(ctx context.Context, tenantID, id string, status models.AppointmentStatus, actorID string) error {
	if _, ok := f.byID[id]; !ok {
		return fmt.Errorf("appointment %s not found", id)
	}
	f.statusUpdates = append(f.statusUpdates, id+":"+string(status))
	return nil
}

func (f *fakeAppointmentRepo) FetchAppointments(ctx context.Context, tenantID string, from, to time.Time) ([]models.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentRepo) EnsureIndexes() error { return nil }

// fakeCalendar satisfies calendar.CalendarService with canned answers.
type fakeCalendar struct {
	check       models.ScheduleCheck
	invalidated []string
}

func (f *fakeCalendar) CurrentAvailability(ctx context.Context, tenantID string, at time.Time) (models.AvailabilityResult, error) {
	return models.AvailabilityResult{}, nil
}

func (f *fakeCalendar) AvailableSlots(ctx context.Context, tenantID string, date time.Time, durationMinutes, intervalMinutes int) ([]models.AvailableSlot, error) {
	return nil, nil
}

func (f *fakeCalendar) CanSchedule(ctx context.Context, tenantID string, schedule models.AppointmentSchedule) (models.ScheduleCheck, error) {
	return f.check, nil
}

func (f *fakeCalendar) DailyStats(ctx context.Context, tenantID string, date time.Time) (models.DailyStats, error) {
	return models.DailyStats{}, nil
}

func (f *fakeCalendar) WeekSchedule(ctx context.Context, tenantID string) (map[models.Weekday]string, error) {
	return nil, nil
}

func (f *fakeCalendar) InvalidateWeekSchedule(ctx context.Context, tenantID string) error {
	f.invalidated = append(f.invalidated, tenantID)
	return nil
}

type rollupCall struct {
	tenantID string
	date     string
}

type fakeStatsQueue struct {
	calls []rollupCall
}

func (f *fakeStatsQueue) EnqueueRollup(ctx context.Context, tenantID, date string) error {
	f.calls = append(f.calls, rollupCall{tenantID: tenantID, date: date})
	return nil
}

func appointmentRouter(h *AppointmentHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/tenants/:tenantID/appointments", h.Create)
	r.PATCH("/api/tenants/:tenantID/appointments/:id/status", h.UpdateStatus)
	return r
}

const createBody = `{
	"customer": {"name": "Ada Mensah"},
	"schedule": {"date": "2024-12-04", "start": "10:00", "end": "11:00", "timezone": "America/New_York"},
	"service": {"serviceId": "svc_1", "serviceName": "Haircut", "duration": "60", "priceType": "fixed", "currency": "USD", "price": 40},
	"totals": {"subtotal": 40, "grandTotal": 40, "currency": "USD"}
}`

func TestCreateAppointment_EnqueuesStatsRollup(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	queue := &fakeStatsQueue{}
	h := NewAppointmentHandler(repo, &fakeCalendar{check: models.ScheduleCheck{CanSchedule: true}}, queue)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/tenants/tnt_1/appointments", strings.NewReader(createBody))
	appointmentRouter(h).ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected 1 created appointment, got %d", len(repo.created))
	}
	if len(queue.calls) != 1 || queue.calls[0] != (rollupCall{tenantID: "tnt_1", date: "2024-12-04"}) {
		t.Fatalf("unexpected rollup calls: %+v", queue.calls)
	}
}

func TestCreateAppointment_ConflictSkipsRollup(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	queue := &fakeStatsQueue{}
	h := NewAppointmentHandler(repo, &fakeCalendar{
		check: models.ScheduleCheck{CanSchedule: false, Reason: "Time slot already booked"},
	}, queue)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/tenants/tnt_1/appointments", strings.NewReader(createBody))
	appointmentRouter(h).ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if len(repo.created) != 0 {
		t.Fatalf("conflicting appointment was persisted: %+v", repo.created)
	}
	if len(queue.calls) != 0 {
		t.Fatalf("rollup enqueued for a rejected booking: %+v", queue.calls)
	}
}

func TestUpdateStatus_EnqueuesRollupForAppointmentDate(t *testing.T) {
	repo := &fakeAppointmentRepo{
		byID: map[string]models.Appointment{
			"apt_1": {
				ID:       "apt_1",
				TenantID: "tnt_1",
				Schedule: models.AppointmentSchedule{Date: "2024-12-06", Start: "09:00", End: "10:00"},
				Status:   models.AppointmentPending,
			},
		},
	}
	queue := &fakeStatsQueue{}
	h := NewAppointmentHandler(repo, &fakeCalendar{}, queue)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/tenants/tnt_1/appointments/apt_1/status",
		strings.NewReader(`{"status": "confirmed"}`))
	appointmentRouter(h).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if len(queue.calls) != 1 || queue.calls[0] != (rollupCall{tenantID: "tnt_1", date: "2024-12-06"}) {
		t.Fatalf("unexpected rollup calls: %+v", queue.calls)
	}
}
