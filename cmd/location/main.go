package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/buslink/buslink/internal/pkg/config"
	"github.com/buslink/buslink/internal/pkg/database"
	"github.com/buslink/buslink/internal/pkg/health"
	"github.com/buslink/buslink/internal/pkg/logger"
	"github.com/buslink/buslink/internal/pkg/middleware"
	natspkg "github.com/buslink/buslink/internal/pkg/nats"
	nrpkg "github.com/buslink/buslink/internal/pkg/newrelic"
	"github.com/buslink/buslink/internal/pkg/server"
	"github.com/buslink/buslink/services/location/gateway"
	"github.com/buslink/buslink/services/location/handler"
	"github.com/buslink/buslink/services/location/repository"
	"github.com/buslink/buslink/services/location/usecase"
)

func main() {
	appName := "location-service"
	configPath := "config/location.env"
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer natsClient.Close()

	// Initialize repository
	locationRepo := repository.NewLocationRepo(configs, redisClient)

	// Initialize gateway
	locationGW := gateway.NewLocationGW(natspkg.NewProducerFromConn(natsClient.GetConn()))

	// Initialize use case
	locationUC := usecase.NewLocationUC(locationRepo, locationGW, configs)

	// Initialize handlers
	locationHandler := handler.NewHandler(locationUC, natsClient, configs)

	// Initialize NATS consumers
	if err := locationHandler.InitNATSConsumers(); err != nil {
		zapLogger.Fatal("Failed to initialize NATS consumers", zap.Error(err))
	}
	defer locationHandler.Stop()

	// Initialize Echo router
	e := echo.New()

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Register service routes
	locationHandler.RegisterRoutes(e)

	// Start server with graceful shutdown
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server error", zap.Error(err))
	}
}
