// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/renewcart/buyback-be/internal/adapters/db"
	redis_a "github.com/renewcart/buyback-be/internal/adapters/redis_adapter"
	"github.com/renewcart/buyback-be/internal/core/ports"
	"github.com/renewcart/buyback-be/internal/core/services"
	"github.com/renewcart/buyback-be/internal/handlers"
	"github.com/renewcart/buyback-be/internal/handlers/middleware"
	"github.com/renewcart/buyback-be/internal/pkg/config"
	"github.com/renewcart/buyback-be/internal/pkg/logger"
)

// Build information injected at compile time
var (
	Version   = "dev"
	BuildTime = "unknown"
	GoVersion = "unknown"
)

func main() {
	lg := logger.SetupLogger("debug", "json")

	lg.Info("starting buyback catalog service",
		slog.String("version", Version),
		slog.String("build_time", BuildTime),
		slog.String("go_version", GoVersion),
	)

	lg.Info("loading configuration")
	cfg, err := config.Load(lg.Logger)
	if err != nil {
		lg.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Reconfigure logger with loaded settings
	lg = logger.SetupLogger(cfg.App.LogLevel, cfg.App.LogFormat)
	lg.Info("configuration loaded",
		slog.String("environment", cfg.App.Environment),
		slog.String("log_level", cfg.App.LogLevel),
	)

	ctx := context.Background()

	// Pull database credentials from Secrets Manager when enabled
	if cfg.AWS.SecretsManager {
		sm, err := config.NewAWSSecretsManager(cfg.AWS.Region, cfg.AWS.SecretName, lg.Logger)
		if err != nil {
			lg.Error("failed to initialize secrets manager", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if err := config.ApplyDatabaseSecrets(ctx, cfg, sm); err != nil {
			lg.Error("failed to apply database secrets", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	deps, err := initializeDependencies(ctx, cfg, lg)
	if err != nil {
		lg.Error("failed to initialize dependencies", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer deps.cleanup()

	// Run database migrations if enabled
	if !cfg.IsProduction() {
		if err := runMigrations(ctx, cfg, lg.Logger); err != nil {
			lg.Error("failed to run migrations", slog.String("error", err.Error()))
			// Don't exit in development, just warn
		}
	}

	server := setupHTTPServer(cfg, deps, lg)

	serverErrors := make(chan error, 1)
	go func() {
		lg.Info("starting HTTP server",
			slog.String("address", cfg.GetServerAddress()),
		)
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Error("server error", slog.String("error", err.Error()))
		}
	case sig := <-shutdown:
		lg.Info("shutdown signal received",
			slog.String("signal", sig.String()),
		)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.GracefulTimeout)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			lg.Error("failed to gracefully shutdown server", slog.String("error", err.Error()))
			server.Close()
		}

		lg.Info("server shutdown complete")
	}
}

// dependencies holds all application dependencies
type dependencies struct {
	database          ports.Database
	redisClient       *redis.Client
	redisCache        ports.CacheRepository
	asynqInspector    *asynq.Inspector
	stockInService    *services.StockInService
	skuMappingService *services.SkuMappingService
	gradeService      *services.GradeService
	reconcileService  *services.ReconcileService
	stockInHandler    *handlers.StockInHandler
	gradeHandler      *handlers.GradeHandler
	skuMappingHandler *handlers.SkuMappingHandler
	stockHandler      *handlers.StockHandler
	healthHandler     *handlers.HealthHandler
}

func (d *dependencies) cleanup() {
	if d.database != nil {
		d.database.Close()
	}
	if d.redisClient != nil {
		d.redisClient.Close()
	}
	if d.asynqInspector != nil {
		d.asynqInspector.Close()
	}
}

func initializeDependencies(ctx context.Context, cfg *config.Config, lg *logger.Logger) (*dependencies, error) {
	deps := &dependencies{}
	slogger := lg.Logger

	lg.Info("connecting to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Name),
	)

	database, err := db.NewDatabase(ctx, &db.Config{
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		User:               cfg.Database.User,
		Password:           cfg.Database.Password,
		Database:           cfg.Database.Name,
		SSLMode:            cfg.Database.SSLMode,
		MaxConnections:     cfg.Database.MaxConnections,
		MinConnections:     cfg.Database.MinConnections,
		MaxConnLifetime:    cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:    cfg.Database.MaxConnIdleTime,
		HealthCheckPeriod:  cfg.Database.HealthCheckPeriod,
		ConnectTimeout:     cfg.Database.ConnectTimeout,
		EnableQueryLogging: cfg.Database.EnableQueryLogging,
	}, slogger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	deps.database = database

	lg.Info("connecting to Redis",
		slog.String("host", cfg.Redis.Host),
		slog.String("port", cfg.Redis.Port),
	)

	redisClient := redis.NewClient(&redis.Options{
		Addr:         cfg.GetRedisAddress(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		MaxRetries:   cfg.Redis.MaxRetries,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
	})

	if err := redisClient.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	deps.redisClient = redisClient
	deps.redisCache = redis_a.NewCache(redisClient, cfg.Redis.TTL, slogger)

	deps.asynqInspector = asynq.NewInspector(asynq.RedisClientOpt{
		Addr:     cfg.Asynq.RedisAddr,
		Password: cfg.Asynq.RedisPassword,
		DB:       cfg.Asynq.RedisDB,
	})

	// Repositories
	deviceRepo := db.NewDeviceRepository(database)
	gradeRepo := db.NewGradeRepository(database)
	deviceGradeRepo := db.NewDeviceGradeRepository(database)
	skuMappingRepo := db.NewSkuMappingRepository(database)
	stockRepo := db.NewStockRepository(database)
	eventRepo := db.NewDeviceEventRepository(database)
	warehouseRepo := db.NewWarehouseRepository(database)
	actorRepo := db.NewActorRepository(database)
	testResultRepo := db.NewTestResultRepository(database)

	// Services
	deps.skuMappingService = services.NewSkuMappingService(skuMappingRepo, deps.redisCache, slogger)
	deps.gradeService = services.NewGradeService(gradeRepo, slogger)
	deps.reconcileService = services.NewReconcileService(stockRepo, slogger)
	deps.stockInService = services.NewStockInService(
		deviceRepo,
		gradeRepo,
		deviceGradeRepo,
		deps.skuMappingService,
		stockRepo,
		eventRepo,
		warehouseRepo,
		actorRepo,
		testResultRepo,
		database,
		slogger,
	)

	// Handlers
	deps.stockInHandler = handlers.NewStockInHandler(deps.stockInService, slogger)
	deps.gradeHandler = handlers.NewGradeHandler(deps.gradeService, slogger)
	deps.skuMappingHandler = handlers.NewSkuMappingHandler(deps.skuMappingService, slogger)
	deps.stockHandler = handlers.NewStockHandler(stockRepo, deps.reconcileService, slogger)
	deps.healthHandler = handlers.NewHealthHandler(
		database,
		redisClient,
		deps.asynqInspector,
		cfg,
		slogger,
	)

	lg.Info("all dependencies initialized successfully")
	return deps, nil
}

func setupHTTPServer(cfg *config.Config, deps *dependencies, lg *logger.Logger) *http.Server {
	mux := http.NewServeMux()

	// Health endpoints stay outside the tenant-scoped chain
	mux.HandleFunc("GET /health", deps.healthHandler.Health)
	mux.HandleFunc("GET /ready", deps.healthHandler.Readiness)

	// Tenant-scoped API routes
	apiMux := http.NewServeMux()
	registerAPIRoutes(apiMux, deps)

	tenantChain := middleware.TenantContext(cfg.Security.TenantIDHeader, cfg.Security.ActorIDHeader)(apiMux)
	mux.Handle("/api/v1/", tenantChain)

	// Apply middleware in reverse order (innermost first)
	var handler http.Handler = mux

	if len(cfg.Security.AllowedOrigins) > 0 {
		handler = middleware.CORS(cfg.Security.AllowedOrigins)(handler)
	}
	if cfg.Security.RateLimitRequests > 0 {
		handler = middleware.RateLimit(cfg.Security.RateLimitRequests, cfg.Security.RateLimitDuration)(handler)
	}
	handler = middleware.Logger(lg)(handler)
	handler = middleware.RequestID(handler)
	handler = middleware.Recovery(lg.Logger)(handler)

	return &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        handler,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
		ErrorLog:       slog.NewLogLogger(lg.Handler(), slog.LevelError),
	}
}

func registerAPIRoutes(mux *http.ServeMux, deps *dependencies) {
	apiV1 := "/api/v1"

	// Stock-in and device history
	mux.HandleFunc("POST "+apiV1+"/stock-in", deps.stockInHandler.ProcessStockIn)
	mux.HandleFunc("GET "+apiV1+"/devices/{imei}/grades", deps.stockInHandler.GradeHistory)
	mux.HandleFunc("GET "+apiV1+"/devices/{imei}/events", deps.stockInHandler.Events)

	// Grade catalog
	mux.HandleFunc("GET "+apiV1+"/grades", deps.gradeHandler.List)
	mux.HandleFunc("POST "+apiV1+"/grades", deps.gradeHandler.Create)
	mux.HandleFunc("GET "+apiV1+"/grades/{id}", deps.gradeHandler.Get)
	mux.HandleFunc("PUT "+apiV1+"/grades/{id}", deps.gradeHandler.Update)
	mux.HandleFunc("DELETE "+apiV1+"/grades/{id}", deps.gradeHandler.Delete)

	// SKU mappings
	mux.HandleFunc("GET "+apiV1+"/sku-mappings", deps.skuMappingHandler.List)
	mux.HandleFunc("POST "+apiV1+"/sku-mappings", deps.skuMappingHandler.Create)
	mux.HandleFunc("POST "+apiV1+"/sku-mappings/resolve", deps.skuMappingHandler.Resolve)
	mux.HandleFunc("GET "+apiV1+"/sku-mappings/{id}", deps.skuMappingHandler.Get)
	mux.HandleFunc("PUT "+apiV1+"/sku-mappings/{id}", deps.skuMappingHandler.Update)
	mux.HandleFunc("DELETE "+apiV1+"/sku-mappings/{id}", deps.skuMappingHandler.Delete)

	// Stock levels, ledger and reconciliation
	mux.HandleFunc("GET "+apiV1+"/stock/levels", deps.stockHandler.Levels)
	mux.HandleFunc("GET "+apiV1+"/stock/movements", deps.stockHandler.Movements)
	mux.HandleFunc("POST "+apiV1+"/stock/reconcile", deps.stockHandler.Reconcile)
}

func runMigrations(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("running database migrations")

	migrationConfig := &db.MigrationConfig{
		DatabaseURL: cfg.GetDatabaseURL(),
		SourcePath:  cfg.Database.MigrationPath,
		TableName:   "schema_migrations",
		SchemaName:  "public",
	}

	return db.RunMigrationsWithRetry(ctx, migrationConfig, logger, 3)
}
