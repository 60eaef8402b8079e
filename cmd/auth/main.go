package main

import (
	"fmt"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/souqin/souqin/internal/pkg/config"
	"github.com/souqin/souqin/internal/pkg/database"
	"github.com/souqin/souqin/internal/pkg/health"
	httpclient "github.com/souqin/souqin/internal/pkg/http"
	"github.com/souqin/souqin/internal/pkg/logger"
	"github.com/souqin/souqin/internal/pkg/middleware"
	natspkg "github.com/souqin/souqin/internal/pkg/nats"
	nrpkg "github.com/souqin/souqin/internal/pkg/newrelic"
	"github.com/souqin/souqin/services/auth/challenge"
	"github.com/souqin/souqin/services/auth/gateway"
	"github.com/souqin/souqin/services/auth/handler"
	httpHandler "github.com/souqin/souqin/services/auth/handler/http"
	"github.com/souqin/souqin/services/auth/repository"
	"github.com/souqin/souqin/services/auth/usecase"
	"go.uber.org/zap"
)

func main() {
	appName := "auth-service"
	configPath := "config/auth.env"
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

	// Initialize repositories
	profileRepo := repository.NewProfileRepo(configs, postgresClient.GetDB())
	sessionRepo := repository.NewSessionRepo(configs, redisClient)

	// Initialize gateway
	authGW := gateway.NewAuthGW(natsClient, configs)

	// Initialize challenge lifecycle manager
	challengeClient := httpclient.NewClient(
		configs.Challenge.BaseURL,
		time.Duration(configs.Challenge.TimeoutSeconds)*time.Second,
	).WithHeader("Authorization", "Bearer "+configs.Challenge.Secret)
	challengeMgr := challenge.NewManager(
		challenge.NewAPIFactory(challengeClient, configs.Challenge.Secret),
		challenge.WithSettleDelay(time.Duration(configs.Challenge.SettleDelayMs)*time.Millisecond),
	)

	// Initialize usecase
	authUC := usecase.NewAuthUC(profileRepo, sessionRepo, authGW, challengeMgr, configs)

	// Handlers for HTTP
	authHandler := httpHandler.NewAuthHandler(authUC)
	profileHandler := httpHandler.NewProfileHandler(authUC)

	// Initialize handlers
	h := handler.NewHandler(authHandler, profileHandler, redisClient, configs)

	// Initialize Echo router
	e := echo.New()

	// Add middlewares
	e.Use(nrpkg.Middleware(nrApp))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Register service routes
	h.RegisterRoutes(e)

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
