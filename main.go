// File: islandpulse/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"islandpulse/config"
	"islandpulse/cron"
	"islandpulse/database"
	appointmentRepo "islandpulse/database/repository/appointment"
	tenantRepo "islandpulse/database/repository/tenant"
	"islandpulse/handlers"
	"islandpulse/middleware"
	"islandpulse/routes"
	"islandpulse/services/calendar"
	"islandpulse/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	// repositories.
	tenants := tenantRepo.NewMongoTenantRepo()
	appointments := appointmentRepo.NewMongoAppointmentRepo()
	if err := appointments.EnsureIndexes(); err != nil {
		logger.Warn("failed to ensure appointment indexes", zap.Error(err))
	}

	// services.
	calendarService := &calendar.DefaultCalendarService{
		Tenants:      tenants,
		Appointments: appointments,
		CacheClient:  utils.GetCacheClient(),
		StatsClient:  utils.GetStatsCacheClient(),
	}

	// handlers.
	statsQueue := cron.NewStatsQueue()
	hb := &routes.HandlerBundle{
		Availability: handlers.NewAvailabilityHandler(calendarService),
		Appointments: handlers.NewAppointmentHandler(appointments, calendarService, statsQueue),
		Tenants:      handlers.NewTenantHandler(tenants, calendarService),
	}
	routes.RegisterRoutes(router, hb)

	// background stats rollup worker.
	cron.InitStatsWorker(calendarService)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Sugar().Infof("islandpulse listening on port %s", config.AppConfig.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("forced shutdown: %v", err)
	}
	logger.Info("server exited")
}
