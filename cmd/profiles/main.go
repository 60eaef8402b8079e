package main

import (
	"fmt"
	"log"

	"github.com/labstack/echo/v4"
	"github.com/souqin/souqin/internal/pkg/config"
	"github.com/souqin/souqin/internal/pkg/database"
	"github.com/souqin/souqin/internal/pkg/health"
	"github.com/souqin/souqin/internal/pkg/logger"
	"github.com/souqin/souqin/internal/pkg/middleware"
	natspkg "github.com/souqin/souqin/internal/pkg/nats"
	nrpkg "github.com/souqin/souqin/internal/pkg/newrelic"
	natsHandler "github.com/souqin/souqin/services/profiles/handler/nats"
	"github.com/souqin/souqin/services/profiles/repository"
	"github.com/souqin/souqin/services/profiles/usecase"
	"go.uber.org/zap"
)

func main() {
	appName := "profiles-service"
	configPath := "config/profiles.env"
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	// Set global logger for application-wide access
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
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
	mirrorRepo := repository.NewMirrorRepo(configs, postgresClient.GetDB())

	// Initialize usecase
	profilesUC := usecase.NewProfilesUC(mirrorRepo, configs)

	// Handlers for NATS
	nh := natsHandler.NewNatsHandler(profilesUC, natsClient)
	if err := nh.InitConsumers(); err != nil {
		zapLogger.Fatal("Failed to initialize NATS consumers", zap.Error(err))
	}
	defer nh.Stop()

	// Initialize Echo router for health endpoints
	e := echo.New()
	e.Use(nrpkg.Middleware(nrApp))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Start server
	logger.Info("Starting server",
		logger.String("app", appName),
		logger.Int("port", configs.Server.Port),
	)

	if err := e.Start(fmt.Sprintf(":%d", configs.Server.Port)); err != nil {
		zapLogger.Fatal("Failed to start server",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
}
