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
	"github.com/buslink/buslink/services/tickets/gateway"
	"github.com/buslink/buslink/services/tickets/handler"
	"github.com/buslink/buslink/services/tickets/repository"
	"github.com/buslink/buslink/services/tickets/usecase"
)

func main() {
	appName := "tickets-service"
	configPath := "config/tickets.env"
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

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer natsClient.Close()

	// Initialize repository
	ticketRepo := repository.NewTicketRepo(configs, postgresClient.GetDB())

	// Initialize gateway
	ticketGW := gateway.NewTicketGW(natspkg.NewProducerFromConn(natsClient.GetConn()))

	// Initialize use case
	ticketUC, err := usecase.NewTicketUC(ticketRepo, ticketGW, configs)
	if err != nil {
		zapLogger.Fatal("Failed to initialize ticket use case", zap.Error(err))
	}

	// Scanner builds embed this key for offline verification
	zapLogger.Info("Ticket verification key",
		zap.String("public_key", ticketUC.PublicKeyHex()))

	// Initialize handlers
	ticketHandler := handler.NewHandler(ticketUC, configs)

	// Initialize Echo router
	e := echo.New()

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Register service routes
	ticketHandler.RegisterRoutes(e)

	// Start server with graceful shutdown
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server error", zap.Error(err))
	}
}
