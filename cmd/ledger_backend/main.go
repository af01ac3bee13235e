package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Triostacksoftware/robobooks-ledger/internal/core/services"
	"github.com/Triostacksoftware/robobooks-ledger/internal/handlers"
	"github.com/Triostacksoftware/robobooks-ledger/internal/middleware"
	"github.com/Triostacksoftware/robobooks-ledger/internal/repositories/database/pgsql"
	"github.com/Triostacksoftware/robobooks-ledger/pkg/config"
	"github.com/Triostacksoftware/robobooks-ledger/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/Triostacksoftware/robobooks-ledger/internal/core/ports/services"
)

// @title Robobooks Ledger API
// @version 1.0
// @description Multi-tenant accounting ledger consistency core.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg.DatabaseURL, logger); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, rate limiting)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid RATE_LIMIT format", slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(limiter.New(memory.NewStore(), rate)))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	serviceContainer := buildServices(dbPool, cfg)
	handlers.RegisterRoutes(r, cfg, serviceContainer)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Wait for interrupt, then drain in-flight requests
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Server exited")
}

// buildServices wires the repository provider into the service container.
func buildServices(dbPool *pgxpool.Pool, cfg *config.Config) *portssvc.ServiceContainer {
	repos := pgsql.NewRepositoryProvider(dbPool)

	sequenceSvc := services.NewSequenceService(repos.SequenceRepo)
	auditSvc := services.NewAuditService(repos.AuditRepo)
	accountSvc := services.NewAccountService(repos.AccountRepo)
	currencySvc := services.NewCurrencyService(repos.ExchangeRateRepo)
	lockSvc := services.NewLockService(repos.LockRepo)
	journalSvc := services.NewJournalService(repos.JournalRepo, accountSvc, sequenceSvc, lockSvc, cfg.BalanceTolerance)
	adjustmentSvc := services.NewAdjustmentService(repos.AdjustmentRepo, currencySvc, accountSvc, sequenceSvc, lockSvc)
	reconciliationSvc := services.NewReconciliationService(repos.ReconciliationRepo, accountSvc, lockSvc, cfg.ReconMatchWindowDays, cfg.BalanceTolerance)

	return &portssvc.ServiceContainer{
		Journal:        journalSvc,
		Adjustment:     adjustmentSvc,
		Lock:           lockSvc,
		Reconciliation: reconciliationSvc,
		Currency:       currencySvc,
		Sequence:       sequenceSvc,
		Audit:          auditSvc,
		Account:        accountSvc,
	}
}

// runMigrations applies all pending "up" migrations over a temporary
// database/sql connection using the pgx stdlib driver.
func runMigrations(databaseURL string, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	upErr := m.Up()
	if upErr != nil && upErr != migrate.ErrNoChange {
		return upErr
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if upErr == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
