package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"agenda-service/internal/app/config"
	"agenda-service/internal/app/delivery/http/middlewares"
	"agenda-service/internal/app/delivery/http/routers"
	"agenda-service/internal/app/drivers/database"
	"agenda-service/internal/app/drivers/logger"
	"agenda-service/internal/app/services/core/health"
	"agenda-service/internal/app/services/core/schedules"
	"agenda-service/internal/app/services/shared/locker"
	sharedRedis "agenda-service/internal/app/services/shared/redis"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	chiRouter := chi.NewRouter()

	worker := bootstrapTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	if worker != nil {
		worker.Start(context.Background())
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that were already received by the server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if worker != nil {
		worker.Stop()
	}

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) *schedules.Worker {
	// Redis
	redisRepository := sharedRedis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)

	// Schedules
	grid := schedules.NewGrid(bootstrap.InternalConfig.Schedule)
	slotRepository := schedules.NewScheduleMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	indexCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := slotRepository.EnsureIndexes(indexCtx); err != nil {
		bootstrap.Logger.Fatal("Failed to ensure appointment indexes: " + err.Error())
	}
	scheduleUsecase := schedules.NewScheduleUsecase(slotRepository, lockerService, grid, bootstrap.Logger)
	scheduleController := schedules.NewScheduleController(bootstrap.Logger, scheduleUsecase, bootstrap.InternalConfig)

	// Health
	healthController := health.NewHealthController(bootstrap.Logger, bootstrap.MongoDB, bootstrap.Redis)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, scheduleController, healthController)

	if bootstrap.InternalConfig.Schedule.WorkerEnabled {
		return schedules.NewWorker(
			bootstrap.Logger,
			bootstrap.InternalConfig.Schedule.WorkerCronSpec,
			grid,
			lockerService,
			scheduleUsecase,
		)
	}
	return nil
}
