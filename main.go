// File: slotbook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"slotbook/config"
	"slotbook/database"
	appointmentRepo "slotbook/database/repository/appointment"
	availabilityRepo "slotbook/database/repository/availability"
	providerRepo "slotbook/database/repository/provider"
	serviceRepo "slotbook/database/repository/service"
	"slotbook/handlers"
	"slotbook/middleware"
	"slotbook/routes"
	"slotbook/services/admission"
	"slotbook/services/booking"
	"slotbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitGateCache()
	utils.InitLockCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	provRepo := providerRepo.NewMongoProviderRepo()
	svcRepo := serviceRepo.NewMongoServiceRepo()
	ruleRepo := availabilityRepo.NewMongoAvailabilityRepo()
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()

	for name, ensure := range map[string]func() error{
		"providers":          provRepo.EnsureIndexes,
		"services":           svcRepo.EnsureIndexes,
		"availability_rules": ruleRepo.EnsureIndexes,
		"appointments":       apptRepo.EnsureIndexes,
	} {
		if err := ensure(); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure %s indexes: %v", name, err)
		}
	}

	// services.
	availabilityEngine := &booking.DefaultAvailabilityEngine{
		Providers:    provRepo,
		Services:     svcRepo,
		Rules:        ruleRepo,
		Appointments: apptRepo,
	}
	conflictGuard := &booking.DefaultConflictGuard{Appointments: apptRepo}
	coordinator := &booking.DefaultCoordinator{
		Providers:    provRepo,
		Services:     svcRepo,
		Appointments: apptRepo,
		Guard:        conflictGuard,
		Locks: &booking.RedisProviderLocker{
			Client: utils.GetLockClient(),
			TTL:    utils.BookingLockTTL,
		},
	}

	var gate admission.Gate
	gateWindow := time.Duration(config.AppConfig.GateWindowMins) * time.Minute
	if config.AppConfig.GateUseRedis {
		gate = admission.NewRedisGate(utils.GetGateCacheClient(), config.AppConfig.GateMaxAttempts, gateWindow)
	} else {
		gate = admission.NewMemoryGate(config.AppConfig.GateMaxAttempts, gateWindow)
	}

	// Assemble the handler bundle and register routes.
	handlerBundle := &routes.HandlerBundle{
		Booking:  handlers.NewBookingHandler(availabilityEngine, coordinator, logger),
		Provider: handlers.NewProviderHandler(provRepo, svcRepo, logger),
		Schedule: handlers.NewScheduleHandler(ruleRepo, apptRepo, logger),
		Gate:     gate,
	}
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetGateCacheClient(), utils.GetLockClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
