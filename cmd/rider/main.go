package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/piresc/bikeparts/internal/pkg/config"
	"github.com/piresc/bikeparts/internal/pkg/database"
	"github.com/piresc/bikeparts/internal/pkg/health"
	"github.com/piresc/bikeparts/internal/pkg/logger"
	"github.com/piresc/bikeparts/internal/pkg/middleware"
	natspkg "github.com/piresc/bikeparts/internal/pkg/nats"
	nrpkg "github.com/piresc/bikeparts/internal/pkg/newrelic"
	"github.com/piresc/bikeparts/internal/pkg/outbox"
	"github.com/piresc/bikeparts/internal/pkg/retry"
	"github.com/piresc/bikeparts/internal/pkg/server"
	"github.com/piresc/bikeparts/internal/pkg/storage"
	wspkg "github.com/piresc/bikeparts/internal/pkg/websocket"
	deliveryGateway "github.com/piresc/bikeparts/services/deliveries/gateway"
	deliveryHandler "github.com/piresc/bikeparts/services/deliveries/handler"
	deliveryRepository "github.com/piresc/bikeparts/services/deliveries/repository"
	deliveryUsecase "github.com/piresc/bikeparts/services/deliveries/usecase"
	issueHandler "github.com/piresc/bikeparts/services/issues/handler"
	issueRepository "github.com/piresc/bikeparts/services/issues/repository"
	issueUsecase "github.com/piresc/bikeparts/services/issues/usecase"
	locationGateway "github.com/piresc/bikeparts/services/location/gateway"
	locationHandler "github.com/piresc/bikeparts/services/location/handler"
	locationRepository "github.com/piresc/bikeparts/services/location/repository"
	locationUsecase "github.com/piresc/bikeparts/services/location/usecase"
	payoutHandler "github.com/piresc/bikeparts/services/payouts/handler"
	payoutRepository "github.com/piresc/bikeparts/services/payouts/repository"
	payoutUsecase "github.com/piresc/bikeparts/services/payouts/usecase"
	realtimeHandler "github.com/piresc/bikeparts/services/realtime/handler"
	realtimeNats "github.com/piresc/bikeparts/services/realtime/handler/nats"
	riderGateway "github.com/piresc/bikeparts/services/riders/gateway"
	riderHandler "github.com/piresc/bikeparts/services/riders/handler"
	riderRepository "github.com/piresc/bikeparts/services/riders/repository"
	riderUsecase "github.com/piresc/bikeparts/services/riders/usecase"
	"go.uber.org/zap"
)

func main() {
	appName := "rider-service"
	configPath := flag.String("config", "config/rider.env", "path to the env file used when APP_ENV=local")
	flag.Parse()

	configs := config.InitConfig(*configPath)

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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	startup := retry.New(retry.StartupConfig(), zapLogger)

	// PostgreSQL
	var postgresClient *database.PostgresClient
	err = startup.Execute(ctx, "connect postgres", func(context.Context) error {
		var connErr error
		postgresClient, connErr = database.NewPostgresClient(configs.Database)
		return connErr
	})
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()
	db := postgresClient.GetDB()

	// Redis
	var redisClient *database.RedisClient
	err = startup.Execute(ctx, "connect redis", func(context.Context) error {
		var connErr error
		redisClient, connErr = database.NewRedisClient(configs.Redis)
		return connErr
	})
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// NATS + JetStream
	var natsClient *natspkg.Client
	err = startup.Execute(ctx, "connect nats", func(context.Context) error {
		var connErr error
		natsClient, connErr = natspkg.NewClient(configs.NATS.URL)
		return connErr
	})
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer natsClient.Close()

	if err := natsClient.EnsureStream(ctx, natspkg.RiderEventsStream(configs.NATS.StreamName)); err != nil {
		zapLogger.Fatal("Failed to ensure JetStream stream", zap.Error(err))
	}

	// Object store for proof-of-delivery photos
	proofStore, err := storage.NewS3Store(ctx, configs.Storage)
	if err != nil {
		zapLogger.Fatal("Failed to initialise object store", zap.Error(err))
	}

	// Realtime session registry
	wsManager := wspkg.NewManager()

	// Repositories
	deliveryRepo := deliveryRepository.NewDeliveryRepository(configs, db)
	payoutRepo := payoutRepository.NewPayoutRepository(configs, db)
	locationRepo := locationRepository.NewLocationRepository(configs, db, redisClient)
	riderRepo := riderRepository.NewRiderRepository(configs, db, redisClient)
	issueRepo := issueRepository.NewIssueRepository(configs, db)

	// Gateways
	deliveryGW := deliveryGateway.NewDeliveryGW(proofStore)
	locationGW := locationGateway.NewLocationGW(natsClient, wsManager)
	riderGW := riderGateway.NewRiderGW(natsClient, wsManager)

	// Use cases
	deliveryUC := deliveryUsecase.NewDeliveryUC(configs, deliveryRepo, deliveryGW)
	payoutUC := payoutUsecase.NewPayoutUC(configs, payoutRepo)
	locationUC := locationUsecase.NewLocationUC(configs, locationRepo, locationGW)
	riderUC := riderUsecase.NewRiderUC(configs, riderRepo, riderGW)
	issueUC := issueUsecase.NewIssueUC(configs, issueRepo)

	// Outbox relay
	relay := outbox.NewRelay(db, natsClient, configs.Outbox, zapLogger)
	relayDone := make(chan struct{})
	go func() {
		defer close(relayDone)
		if err := relay.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			zapLogger.Error("Outbox relay stopped", zap.Error(err))
		}
	}()

	// Event fan-out to sockets
	hostname, err := os.Hostname()
	if err != nil {
		zapLogger.Warn("Hostname unavailable, using a random consumer name", zap.Error(err))
	}
	eventHandler := realtimeNats.NewEventHandler(wsManager)
	if err := eventHandler.Start(ctx, natsClient, configs.NATS.StreamName, hostname); err != nil {
		zapLogger.Fatal("Failed to start realtime consumer", zap.Error(err))
	}

	shutdown := server.NewShutdownManager(zapLogger)
	shutdown.Register("outbox relay", func(ctx context.Context) error {
		select {
		case <-relayDone:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})
	shutdown.Register("realtime consumer", func(context.Context) error {
		eventHandler.Stop()
		return nil
	})

	// HTTP
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(echomw.RequestID())
	if nrApp != nil {
		e.Use(nrecho.Middleware(nrApp))
	}
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	healthService := health.NewHealthService(zapLogger)
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))
	health.RegisterEnhancedHealthEndpoints(e, appName, configs.App.Version, healthService)
	e.GET("/ping", health.NewPingHandler(appName))

	rider := e.Group("/rider",
		middleware.RiderAuthMiddleware(configs.JWT),
		middleware.RiderRateLimiter(configs.RateLimit.Requests, configs.RateLimit.Period, redisClient.GetClient()),
	)
	admin := e.Group("/admin", middleware.ValidateAPIKey(configs.APIKeys.BackOffice))

	deliveryHandler.NewHandler(deliveryUC, configs).RegisterRoutes(rider, admin)
	payoutHandler.NewHandler(payoutUC).RegisterRoutes(rider, admin)
	locationHandler.NewHandler(locationUC).RegisterRoutes(rider, admin)
	riderHandler.NewHandler(riderUC).RegisterRoutes(rider)
	issueHandler.NewHandler(issueUC).RegisterRoutes(rider, admin)
	realtimeHandler.NewHandler(configs, wsManager, locationUC, riderUC).RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Host, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Run(ctx); err != nil {
		zapLogger.Error("Server stopped with error", zap.Error(err))
	}

	stop()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := shutdown.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Shutdown finished with errors", zap.Error(err))
	}
	zapLogger.Info("Application stopped", zap.String("app", appName))
}
