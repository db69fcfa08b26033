package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"gamesapi/internal/config"
	"gamesapi/internal/database"
	"gamesapi/internal/database/migration"
	"gamesapi/internal/http/server"
	"gamesapi/internal/logging"
	"gamesapi/internal/otel"
	"gamesapi/internal/repository"
	"gamesapi/internal/repository/memory"
	"gamesapi/internal/repository/mongodb"
	"gamesapi/internal/repository/postgres"
	"gamesapi/internal/service"
)

// @title Games API
// @version 1.0
// @description CRUD service for video game records.
// @BasePath /
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "gamesapi: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.New(os.Stdout, logging.LoadLocation(cfg.Timezone), logging.ParseLevel(cfg.LogLevel))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, logger)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			logger.Error("tracing_shutdown_failed", "component", "otel", "error", err.Error())
		}
	}()

	repo, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	app, err := server.New(server.Deps{
		Games:    service.NewGameService(repo),
		Store:    repo,
		Logger:   logger,
		Registry: reg,
	})
	if err != nil {
		return err
	}

	return server.Run(ctx, app, ":"+cfg.Port, cfg.ShutdownTimeout, logger)
}

// openStore connects the backend selected by STORE_DRIVER. The returned func releases it.
func openStore(ctx context.Context, cfg *config.AppConfig, logger *slog.Logger) (repository.GameRepository, func(), error) {
	logger.Info("store_selected", "component", "store", "driver", cfg.Store.Driver)

	switch cfg.Store.Driver {
	case config.DriverPostgres:
		// Initialize PostgreSQL connection (with pooling via database/sql)
		db, err := database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("connect postgres: %w", err)
		}
		if cfg.Database.Migrate {
			if err := migration.EnsureMigrated(ctx, db, logger, cfg.Database.Host); err != nil {
				db.Close()
				return nil, nil, fmt.Errorf("migrate: %w", err)
			}
		}
		return postgres.NewGamePostgres(db), func() { db.Close() }, nil

	case config.DriverMemory:
		return memory.NewGameMemory(), func() {}, nil

	default:
		client, err := database.NewMongo(ctx, cfg.Mongo)
		if err != nil {
			return nil, nil, fmt.Errorf("connect mongo: %w", err)
		}
		release := func() {
			dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := client.Disconnect(dctx); err != nil {
				logger.Error("mongo_disconnect_failed", "component", "store", "error", err.Error())
			}
		}
		return mongodb.NewGameMongo(database.GamesCollection(client, cfg.Mongo)), release, nil
	}
}
