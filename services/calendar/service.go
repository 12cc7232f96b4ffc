package calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"islandpulse/models"
	"islandpulse/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// AppointmentSource is the injected read model over "appointments for a
// tenant in a date range". Production backs it with the Mongo repository;
// tests inject fixtures. The engine math is identical either way.
type AppointmentSource interface {
	FetchAppointments(ctx context.Context, tenantID string, from, to time.Time) ([]models.Appointment, error)
}

// TenantSource resolves tenants for the service layer.
type TenantSource interface {
	GetByID(ctx context.Context, id string) (*models.Tenant, error)
}

// CalendarService hosts the availability engine behind tenant IDs, snapshotting
// each tenant's appointments per call so concurrent requests never share a
// mutable engine.
type CalendarService interface {
	CurrentAvailability(ctx context.Context, tenantID string, at time.Time) (models.AvailabilityResult, error)
	AvailableSlots(ctx context.Context, tenantID string, date time.Time, durationMinutes, intervalMinutes int) ([]models.AvailableSlot, error)
	CanSchedule(ctx context.Context, tenantID string, schedule models.AppointmentSchedule) (models.ScheduleCheck, error)
	DailyStats(ctx context.Context, tenantID string, date time.Time) (models.DailyStats, error)
	WeekSchedule(ctx context.Context, tenantID string) (map[models.Weekday]string, error)
	InvalidateWeekSchedule(ctx context.Context, tenantID string) error
}

// DefaultCalendarService is the production implementation. CacheClient holds
// short-lived response caches; StatsClient holds daily-stats snapshots and is
// shared with the rollup worker.
type DefaultCalendarService struct {
	Tenants      TenantSource
	Appointments AppointmentSource
	CacheClient  *redis.Client
	StatsClient  *redis.Client
}

const (
	weekScheduleCacheTTL = 10 * time.Minute
	dailyStatsCacheTTL   = 5 * time.Minute
)

// engineFor loads the tenant and a snapshot of its appointments around the
// window of interest, and builds a fresh engine over them.
func (s *DefaultCalendarService) engineFor(ctx context.Context, tenantID string, from, to time.Time) (*Engine, error) {
	tenant, err := s.Tenants.GetByID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tenant %s: %w", tenantID, err)
	}

	appointments, err := s.Appointments.FetchAppointments(ctx, tenantID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load appointments for tenant %s: %w", tenantID, err)
	}

	return NewEngine(tenant, appointments), nil
}

func (s *DefaultCalendarService) CurrentAvailability(ctx context.Context, tenantID string, at time.Time) (models.AvailabilityResult, error) {
	// Availability only reads hours, but the same-day snapshot keeps the
	// engine usable for follow-up slot checks by the handler.
	eng, err := s.engineFor(ctx, tenantID, utils.StartOfDay(at), utils.StartOfDay(at).AddDate(0, 0, 1))
	if err != nil {
		return models.AvailabilityResult{}, err
	}
	return eng.CurrentAvailability(at), nil
}

func (s *DefaultCalendarService) AvailableSlots(ctx context.Context, tenantID string, date time.Time, durationMinutes, intervalMinutes int) ([]models.AvailableSlot, error) {
	day := utils.StartOfDay(date)
	eng, err := s.engineFor(ctx, tenantID, day, day.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	return eng.AvailableSlots(date, durationMinutes, intervalMinutes), nil
}

func (s *DefaultCalendarService) CanSchedule(ctx context.Context, tenantID string, schedule models.AppointmentSchedule) (models.ScheduleCheck, error) {
	day := utils.StartOfDay(utils.ParseDateClock(schedule.Date, "00:00"))
	eng, err := s.engineFor(ctx, tenantID, day, day.AddDate(0, 0, 1))
	if err != nil {
		return models.ScheduleCheck{}, err
	}
	return eng.CanSchedule(schedule), nil
}

// DailyStats computes the day's aggregate, serving from cache when a fresh
// snapshot exists (the rollup worker and this path share the key format).
func (s *DefaultCalendarService) DailyStats(ctx context.Context, tenantID string, date time.Time) (models.DailyStats, error) {
	cacheKey := DailyStatsCacheKey(tenantID, utils.DateString(date))
	if s.StatsClient != nil {
		if cached, err := s.StatsClient.Get(ctx, cacheKey).Result(); err == nil && cached != "" {
			var stats models.DailyStats
			if err := json.Unmarshal([]byte(cached), &stats); err == nil {
				return stats, nil
			}
			// Unreadable snapshot: fall through to re-computation.
		}
	}

	day := utils.StartOfDay(date)
	eng, err := s.engineFor(ctx, tenantID, day, day.AddDate(0, 0, 1))
	if err != nil {
		return models.DailyStats{}, err
	}
	stats := eng.DailyStats(date)

	if s.StatsClient != nil {
		if payload, err := json.Marshal(stats); err == nil {
			if err := s.StatsClient.Set(ctx, cacheKey, payload, dailyStatsCacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("failed to cache daily stats",
					zap.String("tenantID", tenantID), zap.Error(err))
			}
		}
	}
	return stats, nil
}

func (s *DefaultCalendarService) WeekSchedule(ctx context.Context, tenantID string) (map[models.Weekday]string, error) {
	cacheKey := weekScheduleCacheKey(tenantID)
	if s.CacheClient != nil {
		if cached, err := s.CacheClient.Get(ctx, cacheKey).Result(); err == nil && cached != "" {
			var schedule map[models.Weekday]string
			if err := json.Unmarshal([]byte(cached), &schedule); err == nil {
				return schedule, nil
			}
		}
	}

	tenant, err := s.Tenants.GetByID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tenant %s: %w", tenantID, err)
	}
	schedule := NewEngine(tenant, nil).WeekSchedule()

	if s.CacheClient != nil {
		if payload, err := json.Marshal(schedule); err == nil {
			s.CacheClient.Set(ctx, cacheKey, payload, weekScheduleCacheTTL)
		}
	}
	return schedule, nil
}

// InvalidateWeekSchedule drops the cached rendering so the next read reflects
// a just-written hours configuration instead of waiting out the TTL.
func (s *DefaultCalendarService) InvalidateWeekSchedule(ctx context.Context, tenantID string) error {
	if s.CacheClient == nil {
		return nil
	}
	return s.CacheClient.Del(ctx, weekScheduleCacheKey(tenantID)).Err()
}

func weekScheduleCacheKey(tenantID string) string {
	return fmt.Sprintf("weekschedule:%s", tenantID)
}

// DailyStatsCacheKey is shared between the service read path and the rollup
// worker so snapshots land where reads look.
func DailyStatsCacheKey(tenantID, dateStr string) string {
	return fmt.Sprintf("stats:%s:%s", tenantID, dateStr)
}
