package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	appledger "github.com/erp/ledgercore/internal/application/ledger"
	apppayroll "github.com/erp/ledgercore/internal/application/payroll"
	"github.com/erp/ledgercore/internal/domain/payroll"
	"github.com/erp/ledgercore/internal/domain/posting"
	"github.com/erp/ledgercore/internal/infrastructure/cache"
	"github.com/erp/ledgercore/internal/infrastructure/config"
	"github.com/erp/ledgercore/internal/infrastructure/logger"
	"github.com/erp/ledgercore/internal/infrastructure/persistence"
	"github.com/erp/ledgercore/internal/infrastructure/persistence/models"
	"github.com/erp/ledgercore/internal/infrastructure/telemetry"
	"github.com/erp/ledgercore/internal/interfaces/http/handler"
	"github.com/erp/ledgercore/internal/interfaces/http/middleware"
	"github.com/erp/ledgercore/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	_ "github.com/erp/ledgercore/docs"
)

//go:generate go run github.com/swaggo/swag/v2/cmd/swag init --dir ../../ --generalInfo cmd/server/main.go --output ../../docs --outputTypes go --overridesFile ../../.swaggo --parseInternal

//	@title			Ledger Core API
//	@version		1.0
//	@description	Double-entry ledger posting engine and Jamaican statutory payroll.
//	@description	Every /api/v1 request is scoped by the X-Company-ID header.

//	@contact.name	Ledger Core maintainers
//	@contact.url	https://github.com/erp/ledgercore

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@host		localhost:8080
//	@BasePath	/api/v1

var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
		Fields:     map[string]string{"service": cfg.App.Name, "version": version},
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	ctx := context.Background()

	// Telemetry. Each provider is a no-op when disabled.
	loggerProvider, err := telemetry.NewLoggerProvider(ctx, telemetry.LogsConfig{
		Enabled:           cfg.Telemetry.Enabled && cfg.Telemetry.LogsEnabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize log exporter", zap.Error(err))
	}
	log = loggerProvider.Bridge(log, zapcore.InfoLevel)

	log.Info("Starting ledger service",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("version", version),
	)

	tracerProvider, err := telemetry.NewTracerProvider(ctx, telemetry.TracerConfig{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		ServiceVersion:    version,
		Environment:       cfg.App.Env,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}

	meterProvider, err := telemetry.NewMeterProvider(ctx, telemetry.MetricsConfig{
		Enabled:           cfg.Telemetry.Enabled && cfg.Telemetry.MetricsEnabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ExportInterval:    cfg.Telemetry.MetricsInterval,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize meter provider", zap.Error(err))
	}
	meter := meterProvider.Meter("ledgercore")

	// Database
	db, err := persistence.NewDatabase(&cfg.Database, log,
		persistence.WithLogLevel(logger.MapGormLogLevel(cfg.Log.Level)),
		persistence.WithSlowQueryThreshold(cfg.Telemetry.DBSlowQueryThresh),
		persistence.WithLogFullSQL(cfg.Telemetry.DBLogFullSQL),
	)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	if cfg.Database.Driver == "sqlite" {
		// PostgreSQL schemas are managed by cmd/migrate.
		if err := db.DB.AutoMigrate(models.All()...); err != nil {
			log.Fatal("Failed to migrate sqlite schema", zap.Error(err))
		}
	}
	log.Info("Database connected", zap.String("driver", cfg.Database.Driver))

	dbInstrumentation, err := telemetry.InstrumentDB(db.DB, telemetry.DBConfig{
		TraceEnabled:    cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled,
		MetricsEnabled:  meterProvider.IsEnabled(),
		LogFullSQL:      cfg.Telemetry.DBLogFullSQL,
		SlowQueryThresh: cfg.Telemetry.DBSlowQueryThresh,
	}, meter, log)
	if err != nil {
		log.Fatal("Failed to instrument database", zap.Error(err))
	}
	dbInstrumentation.StartPoolStatsCollection(ctx)
	defer dbInstrumentation.Stop()

	// Domain configuration
	if err := posting.ValidateExpenseAccounts(); err != nil {
		log.Fatal("Expense category mapping is invalid", zap.Error(err))
	}
	rates, err := cfg.Payroll.RateTable()
	if err != nil {
		log.Fatal("Invalid payroll rate configuration", zap.Error(err))
	}
	calc, err := payroll.NewCalculator(rates)
	if err != nil {
		log.Fatal("Failed to build payroll calculator", zap.Error(err))
	}

	ledgerMetrics, err := telemetry.NewLedgerMetrics(meter)
	if err != nil {
		log.Fatal("Failed to register ledger metrics", zap.Error(err))
	}

	// Application services
	accountRepo := persistence.NewGormAccountRepository(db.DB)
	journalRepo := persistence.NewGormJournalEntryRepository(db.DB)
	payrollScope := persistence.NewGormPayrollTransactionScope(db.DB)

	postingService := appledger.NewPostingService(persistence.NewGormLedgerTransactionScope(db.DB), log,
		appledger.WithMetrics(ledgerMetrics))
	eventPostingService := appledger.NewEventPostingService(postingService)
	accountService := appledger.NewAccountService(accountRepo, log)
	trialBalanceService := appledger.NewTrialBalanceService(accountRepo, journalRepo, log)
	runService := apppayroll.NewRunService(payrollScope, postingService, calc, log,
		apppayroll.WithMetrics(ledgerMetrics))
	remittanceService := apppayroll.NewRemittanceService(payrollScope, postingService, log,
		apppayroll.WithMetrics(ledgerMetrics))
	backPayService := apppayroll.NewBackPayService(calc, log)

	// Health checks
	checks := map[string]handler.Pinger{
		"database": handler.PingerFunc(func(context.Context) error { return db.Ping() }),
	}

	// Idempotency store
	var idempotency *middleware.IdempotencyConfig
	if cfg.Idempotency.Enabled {
		store, err := cache.OpenIdempotencyStore(cfg.Redis, cfg.Idempotency, cache.WithLogger(log))
		if err != nil {
			log.Fatal("Failed to create idempotency store", zap.Error(err))
		}
		defer func() {
			if err := store.Close(); err != nil {
				log.Error("Error closing idempotency store", zap.Error(err))
			}
		}()
		if p, ok := store.(handler.Pinger); ok {
			checks["idempotency_store"] = p
		}
		idempotency = &middleware.IdempotencyConfig{Store: store, TTL: cfg.Idempotency.TTL}
	}

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	cors := middleware.DefaultCORSConfig()
	cors.AllowOrigins = cfg.HTTP.CORSAllowOrigins

	engine := router.New(router.EngineConfig{
		Logger:         log,
		ServiceName:    cfg.Telemetry.ServiceName,
		TracingEnabled: tracerProvider.IsEnabled(),
		MeterProvider:  meterProvider,
		CORS:           cors,
		MaxBodySize:    cfg.HTTP.MaxBodySize,
		RequestTimeout: cfg.HTTP.RequestTimeout,
		TrustedProxies: cfg.HTTP.TrustedProxies,
		Idempotency:    idempotency,
		Swagger:        cfg.HTTP.SwaggerEnabled,
	}, router.Handlers{
		Journal:      handler.NewJournalHandler(postingService, eventPostingService),
		Accounts:     handler.NewAccountHandler(accountService),
		TrialBalance: handler.NewTrialBalanceHandler(trialBalanceService, cfg.Ledger.Currency),
		Payroll:      handler.NewPayrollHandler(runService, backPayService),
		Remittances:  handler.NewRemittanceHandler(remittanceService),
		System:       handler.NewSystemHandler(cfg.App.Name, version, checks),
	})

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	// Flush telemetry once the last request has finished.
	flushCtx, flushCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer flushCancel()
	if err := meterProvider.Shutdown(flushCtx); err != nil {
		log.Warn("Meter provider shutdown failed", zap.Error(err))
	}
	if err := tracerProvider.Shutdown(flushCtx); err != nil {
		log.Warn("Tracer provider shutdown failed", zap.Error(err))
	}
	log.Info("Server exited gracefully")
	if err := loggerProvider.Shutdown(flushCtx); err != nil {
		log.Warn("Logger provider shutdown failed", zap.Error(err))
	}
}
