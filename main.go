// File: agendly/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"agendly/config"
	"agendly/cron"
	"agendly/database"
	appointmentRepo "agendly/database/repository/appointment"
	catalogRepo "agendly/database/repository/catalog"
	scheduleRepo "agendly/database/repository/schedule"
	"agendly/handlers"
	"agendly/middleware"
	"agendly/routes"
	"agendly/services/appointment"
	"agendly/services/availability"
	"agendly/services/catalog"
	"agendly/services/notification"
	"agendly/services/reporting"
	"agendly/services/schedule"
	"agendly/services/tasks"
	"agendly/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	database.InitDB(logger)
	utils.InitCache()
	utils.StartHealthMonitor(rootCtx, time.Minute, utils.CacheClient, database.MongoClient)
	metrics := utils.NewBookingMetrics(nil)
	loc := config.Location()

	// repositories.
	db := database.DB()
	schedRepo := scheduleRepo.NewMongoScheduleRepo(db)
	apptRepo := appointmentRepo.NewMongoAppointmentRepo(db)
	svcRepo := catalogRepo.NewMongoServiceRepo(db)

	indexCtx, cancelIndexes := context.WithTimeout(rootCtx, 30*time.Second)
	for name, ensure := range map[string]func(context.Context) error{
		"schedules":    schedRepo.EnsureIndexes,
		"appointments": apptRepo.EnsureIndexes,
		"services":     svcRepo.EnsureIndexes,
	} {
		if err := ensure(indexCtx); err != nil {
			logger.Fatal("main: failed to ensure indexes", zap.String("collection", name), zap.Error(err))
		}
	}
	cancelIndexes()

	// services.
	scheduleService, err := schedule.NewDefaultScheduleService(schedRepo, logger)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	catalogService, err := catalog.NewDefaultCatalogService(svcRepo, config.AppConfig.DefaultCurrency, logger)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	lifecycle, err := appointment.NewDefaultLifecycle(apptRepo, svcRepo, logger,
		appointment.MetricsObserver{Metrics: metrics})
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}

	statsCache := reporting.NewRedisStatsCache(utils.CacheClient, config.AppConfig.DashboardCacheTTL)
	recomputer, err := reporting.NewRecomputer(apptRepo, statsCache, loc, logger)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	lifecycle.AddObserver(recomputer)

	var (
		asynqClient    *asynq.Client
		reminderWorker *asynq.Server
	)
	if config.AppConfig.RemindersEnabled {
		asynqClient = asynq.NewClient(cron.RedisOpt())
		lifecycle.AddObserver(tasks.NewReminderScheduler(asynqClient, config.AppConfig.ReminderLead, loc, metrics, logger))
		reminderWorker = cron.InitReminderWorker(rootCtx, lifecycle, notification.NewLogNotifier(logger), metrics, logger)
	}

	availabilityService, err := availability.NewDefaultAvailabilityService(
		scheduleService, lifecycle, availability.PolicyFromConfig(), metrics, logger)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	handlerBundle := &handlers.HandlerBundle{
		StoreAuth:  middleware.StoreAuthMiddleware(logger),
		AdminAuth:  middleware.AdminTokenMiddleware(config.AppConfig.AdminToken),
		PublicRate: middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin, logger),

		Schedule:     handlers.NewScheduleHandler(scheduleService),
		Availability: handlers.NewAvailabilityHandler(availabilityService),
		Appointments: handlers.NewAppointmentHandler(lifecycle, availabilityService),
		Catalog:      handlers.NewCatalogHandler(catalogService),
		Dashboard:    handlers.NewDashboardHandler(recomputer),
		Admin:        handlers.NewAdminHandler(lifecycle, scheduleService, logger),
	}
	routes.RegisterRoutes(router, handlerBundle)

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
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	if reminderWorker != nil {
		reminderWorker.Shutdown()
	}
	if asynqClient != nil {
		_ = asynqClient.Close()
	}
	if err := utils.CacheClient.Close(); err != nil {
		logger.Warn("main: failed to close redis", zap.Error(err))
	}
	if err := database.Close(ctx); err != nil {
		logger.Warn("main: failed to disconnect mongo", zap.Error(err))
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
