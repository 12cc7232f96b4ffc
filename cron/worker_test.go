package cron

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"islandpulse/models"
	"islandpulse/utils"
)

type fakeCalendarService struct {
	statsCalls []string
}

func (f *fakeCalendarService) CurrentAvailability(ctx context.Context, tenantID string, at time.Time) (models.AvailabilityResult, error) {
	return models.AvailabilityResult{}, nil
}

func (f *fakeCalendarService) AvailableSlots(ctx context.Context, tenantID string, date time.Time, durationMinutes, intervalMinutes int) ([]models.AvailableSlot, error) {
	return nil, nil
}

func (f *fakeCalendarService) CanSchedule(ctx context.Context, tenantID string, schedule models.AppointmentSchedule) (models.ScheduleCheck, error) {
	return models.ScheduleCheck{}, nil
}

func (f *fakeCalendarService) DailyStats(ctx context.Context, tenantID string, date time.Time) (models.DailyStats, error) {
	f.statsCalls = append(f.statsCalls, tenantID+":"+utils.DateString(date))
	return models.DailyStats{}, nil
}

func (f *fakeCalendarService) WeekSchedule(ctx context.Context, tenantID string) (map[models.Weekday]string, error) {
	return nil, nil
}

func (f *fakeCalendarService) InvalidateWeekSchedule(ctx context.Context, tenantID string) error {
	return nil
}

func TestNewStatsRollupTask(t *testing.T) {
	task, err := NewStatsRollupTask("tnt_1", "2024-12-04")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.Type() != TypeStatsRollup {
		t.Fatalf("task type = %q, want %q", task.Type(), TypeStatsRollup)
	}

	var p StatsRollupPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		t.Fatalf("payload does not decode: %v", err)
	}
	if p.TenantID != "tnt_1" || p.Date != "2024-12-04" {
		t.Fatalf("unexpected payload: %+v", p)
	}
}

func TestStatsRollup_SkipsOpenDay(t *testing.T) {
	svc := &fakeCalendarService{}
	handler := handleStatsRollup(svc)

	// A rollup for the current day must not freeze a long-lived snapshot
	// while bookings can still arrive.
	task, err := NewStatsRollupTask("tnt_1", utils.DateString(time.Now()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := handler(context.Background(), task); err != nil {
		t.Fatalf("open-day rollup should be a no-op, got error: %v", err)
	}
	if len(svc.statsCalls) != 0 {
		t.Fatalf("stats were computed for an open day: %v", svc.statsCalls)
	}
}

func TestStatsRollup_RejectsMalformedPayload(t *testing.T) {
	svc := &fakeCalendarService{}
	handler := handleStatsRollup(svc)

	task, err := NewStatsRollupTask("tnt_1", "december 4th")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := handler(context.Background(), task); err == nil {
		t.Fatal("expected an error for an unparseable date")
	}
}
