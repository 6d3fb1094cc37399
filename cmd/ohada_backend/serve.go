package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/ohada_ledger/internal/core/services"
	"github.com/SscSPs/ohada_ledger/internal/handlers"
	"github.com/SscSPs/ohada_ledger/internal/middleware"
	"github.com/SscSPs/ohada_ledger/internal/platform/config"
	"github.com/SscSPs/ohada_ledger/internal/repositories/database/pgsql"
	"github.com/SscSPs/ohada_ledger/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

// systemUserID stamps audit fields of rows written by CLI commands.
const systemUserID = "system"

func newLogger(cfg *config.Config) *slog.Logger {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	return logger
}

// bootstrap loads config, sets up logging and applies migrations.
func bootstrap(ctx context.Context) (*config.Config, *slog.Logger, *pgxpool.Pool, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	logger := newLogger(cfg)

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return nil, nil, nil, err
	}

	logger.Info("Running database migrations")
	if _, err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		dbPool.Close()
		return nil, nil, nil, err
	}
	return cfg, logger, dbPool, nil
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, dbPool, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer dbPool.Close()

			svcs := services.NewServiceContainer(cfg, pgsql.NewRepositoryProvider(dbPool))

			if cfg.SeedChartOnStart {
				inserted, err := svcs.Account.SeedDefaultChart(cmd.Context(), systemUserID)
				if err != nil {
					return err
				}
				logger.Info("Chart of accounts seeded", slog.Int("inserted", inserted))
			}

			if cfg.IsProduction {
				gin.SetMode(gin.ReleaseMode)
			}
			r := gin.New()

			apiLimiter, err := middleware.NewLimiter(cfg.RateLimit)
			if err != nil {
				return err
			}
			r.Use(
				middleware.StructuredLoggingMiddleware(logger),
				gin.Recovery(),
				cors.New(cors.Config{
					AllowOrigins:     cfg.CORSAllowedOrigins,
					AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "OPTIONS"},
					AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
					ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Remaining"},
					AllowCredentials: true,
					MaxAge:           12 * time.Hour,
				}),
				middleware.RateLimit(apiLimiter),
			)

			if err := r.SetTrustedProxies(nil); err != nil {
				return err
			}
			if err := handlers.RegisterRoutes(r, cfg, svcs); err != nil {
				return err
			}

			logger.Info("Server starting", slog.String("port", cfg.Port))
			return r.Run(":" + cfg.Port)
		},
	}
}

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, _, dbPool, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			dbPool.Close()
			return nil
		},
	}
}

func newSeedChartCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed-chart",
		Short: "Insert the default SYSCOHADA accounts that are missing",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, dbPool, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer dbPool.Close()

			svcs := services.NewServiceContainer(cfg, pgsql.NewRepositoryProvider(dbPool))
			inserted, err := svcs.Account.SeedDefaultChart(cmd.Context(), systemUserID)
			if err != nil {
				return err
			}
			logger.Info("Chart of accounts seeded", slog.Int("inserted", inserted))
			return nil
		},
	}
}
