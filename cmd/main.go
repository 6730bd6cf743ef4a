package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	httpadapter "pacing-radar/internal/adapter/http"
	"pacing-radar/internal/adapter/memory"
	"pacing-radar/internal/adapter/postgres"
	"pacing-radar/internal/adapter/usecase"
	"pacing-radar/internal/config"
	"pacing-radar/internal/config/configs"
	"pacing-radar/internal/core/pacing"
	"pacing-radar/internal/core/port"
	"pacing-radar/internal/dataset"
	"pacing-radar/internal/db"
)

// main is the entry point of the pacing-radar server. It loads
// configuration, opens the configured campaign source (running migrations
// and seeding when asked), then starts the HTTP server. On receiving a
// termination signal it gracefully shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler).With(slog.String("env", cfg.Env))
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo, closeRepo, err := openSource(ctx, cfg, logger)
	if err != nil {
		logger.Error("campaign source error", slog.String("kind", cfg.Source.Kind), slog.Any("error", err))
		return
	}
	defer closeRepo()

	engine := pacing.NewEngine(pacing.Config{
		FeasibleDailySpend: float64(cfg.Risk.FeasibleDailySpend),
		PriorYearRatio:     cfg.Risk.PriorYearRatio,
	})
	svc := usecase.NewRiskUseCase(repo, engine, cfg.Risk.Workers, logger)

	handler := httpadapter.NewHandler(svc, logger, cfg.Risk.Today)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("server listening",
			slog.Int("port", int(cfg.HTTP.Port)),
			slog.String("source", cfg.Source.Kind),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
			cancel()
		}
	}()

	select {
	case value := <-quit:
		exitCode = 128 + int(value.(syscall.Signal))
	case <-ctx.Done():
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
	defer stop()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}

// openSource builds the campaign repository selected by cfg.Source. The
// returned close function releases whatever the source holds open.
func openSource(ctx context.Context, cfg config.Config, logger *slog.Logger) (port.CampaignRepository, func(), error) {
	switch strings.ToLower(cfg.Source.Kind) {
	case configs.SourceFile:
		campaigns, err := dataset.LoadFile(cfg.Source.File)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("campaigns loaded", slog.String("file", cfg.Source.File), slog.Int("count", len(campaigns)))
		return memory.NewCampaignRepository(campaigns), func() {}, nil

	case configs.SourcePostgres:
		// Optionally run migrations if configured. We use the Psql sub-config.
		if cfg.Psql.RunMigrations {
			if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
				return nil, nil, fmt.Errorf("migrate: %w", err)
			}
			logger.Info("migrations applied successfully")
		}

		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return nil, nil, fmt.Errorf("database connection: %w", err)
		}
		if cfg.Psql.Seed {
			if err = seed(ctx, pool, logger); err != nil {
				pool.Close()
				return nil, nil, err
			}
		}
		return postgres.NewCampaignRepository(pool), pool.Close, nil

	default:
		campaigns, err := dataset.Sample()
		if err != nil {
			return nil, nil, err
		}
		return memory.NewCampaignRepository(campaigns), func() {}, nil
	}
}

func seed(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) error {
	campaigns, err := dataset.Sample()
	if err != nil {
		return err
	}
	inserted, err := db.Seed(ctx, pool, campaigns)
	if err != nil {
		return err
	}
	logger.Info("sample campaigns seeded", slog.Int64("inserted", inserted))
	return nil
}
