package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"islandpulse/config"
	"islandpulse/services/calendar"
	"islandpulse/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// TypeStatsRollup asks the worker to snapshot one tenant's daily stats.
const TypeStatsRollup = "stats:rollup"

// statsSnapshotTTL keeps rolled-up snapshots warm for two days so yesterday's
// numbers survive into end-of-day dashboards.
const statsSnapshotTTL = 48 * time.Hour

// StatsRollupPayload is the task body for TypeStatsRollup tasks.
type StatsRollupPayload struct {
	TenantID string `json:"tenantId"`
	Date     string `json:"date"` // YYYY-MM-DD
}

// NewStatsRollupTask builds an enqueueable rollup task.
func NewStatsRollupTask(tenantID, date string) (*asynq.Task, error) {
	payload, err := json.Marshal(StatsRollupPayload{TenantID: tenantID, Date: date})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeStatsRollup, payload), nil
}

// StatsEnqueuer is the producer side of the rollup queue. Handlers depend on
// the interface so tests can record enqueues without a Redis connection.
type StatsEnqueuer interface {
	EnqueueRollup(ctx context.Context, tenantID, date string) error
}

// StatsQueue enqueues rollup tasks onto the queue InitStatsWorker consumes.
type StatsQueue struct {
	client *asynq.Client
}

// NewStatsQueue connects a producer client to the configured queue Redis DB.
func NewStatsQueue() *StatsQueue {
	return &StatsQueue{client: asynq.NewClient(queueRedisOpt())}
}

func (q *StatsQueue) EnqueueRollup(ctx context.Context, tenantID, date string) error {
	task, err := NewStatsRollupTask(tenantID, date)
	if err != nil {
		return err
	}
	_, err = q.client.EnqueueContext(ctx, task)
	return err
}

func queueRedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// InitStatsWorker runs the async rollup worker in background. Failed startups
// retry with backoff before giving up.
func InitStatsWorker(calendarSvc calendar.CalendarService) {
	srv := asynq.NewServer(
		queueRedisOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeStatsRollup, handleStatsRollup(calendarSvc))

	go func() {
		log.Println("[StatsWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[StatsWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[StatsWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

// handleStatsRollup recomputes and caches one tenant-day snapshot. The
// service's DailyStats path writes through to the shared stats cache, so the
// worker only has to trigger the computation and extend the TTL.
func handleStatsRollup(calendarSvc calendar.CalendarService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p StatsRollupPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("stats rollup: invalid payload", zap.Error(err))
			return err
		}

		date, err := time.ParseInLocation("2006-01-02", p.Date, time.Local)
		if err != nil {
			logger.Error("stats rollup: invalid date",
				zap.String("tenantID", p.TenantID), zap.String("date", p.Date), zap.Error(err))
			return err
		}

		// Only completed days get long-lived snapshots: freezing an open
		// day's numbers would hide same-day bookings until the TTL expires.
		if !date.Before(utils.StartOfDay(time.Now())) {
			logger.Info("stats rollup skipped: day still open",
				zap.String("tenantID", p.TenantID), zap.String("date", p.Date))
			return nil
		}

		stats, err := calendarSvc.DailyStats(ctx, p.TenantID, date)
		if err != nil {
			logger.Error("stats rollup: computation failed",
				zap.String("tenantID", p.TenantID), zap.String("date", p.Date), zap.Error(err))
			return err
		}

		// Re-store under the snapshot TTL so the rollup outlives the short
		// read-path cache window.
		payload, err := json.Marshal(stats)
		if err != nil {
			return err
		}
		key := calendar.DailyStatsCacheKey(p.TenantID, p.Date)
		if err := utils.GetStatsCacheClient().Set(ctx, key, payload, statsSnapshotTTL).Err(); err != nil {
			logger.Error("stats rollup: cache write failed",
				zap.String("tenantID", p.TenantID), zap.Error(err))
			return err
		}

		logger.Info("stats rollup complete",
			zap.String("tenantID", p.TenantID),
			zap.String("date", p.Date),
			zap.Int("appointments", stats.TotalAppointments),
			zap.Float64("revenue", stats.TotalRevenue))
		return nil
	}
}
