package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
	"github.com/spf13/cobra"

	"qrmenu-backend/config"
	"qrmenu-backend/logging"
	httpapi "qrmenu-backend/menu-svc/internal/api/http"
	"qrmenu-backend/menu-svc/internal/assets"
	"qrmenu-backend/menu-svc/internal/janitor"
	"qrmenu-backend/menu-svc/internal/metrics"
	"qrmenu-backend/menu-svc/internal/service"
	"qrmenu-backend/menu-svc/internal/storage"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	serve := func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	}

	root := &cobra.Command{
		Use:          "menu-svc",
		Short:        "QR menu API: restaurants, categories, dishes and their images",
		SilenceUsage: true,
		RunE:         serve,
	}
	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API (default)",
		RunE:  serve,
	})
	root.AddCommand(&cobra.Command{
		Use:   "janitor",
		Short: "Consume menu events: retry failed image cleanups and drop stale caches",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runJanitor(cmd.Context())
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Create missing tables and indexes, then exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(cmd.Context())
		},
	})
	return root
}

func runMigrate(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logging.Setup("menu-svc", cfg.LogLevel, cfg.LogFormat)

	db := config.MustInitPostgres(cfg)
	defer db.Close()

	if err := storage.NewPostgresRepository(db).EnsureSchema(ctx); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	log.Info().Msg("Schema is up to date")
	return nil
}

func runJanitor(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logging.Setup("menu-janitor", cfg.LogLevel, cfg.LogFormat)

	if !cfg.KafkaEnabled() {
		return errors.New("janitor: KAFKA_BROKER is required")
	}
	reader := config.NewKafkaReader(cfg)
	defer reader.Close()

	var cache janitor.CacheInvalidator
	if cfg.RedisEnabled() {
		rdb := config.MustInitRedis(cfg)
		defer rdb.Close()
		cache = storage.NewRedisCache(rdb, cfg.CacheTTL)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := assets.NewStore(cfg.UploadsRoot, metrics.NewRecorder())
	consumer := janitor.NewConsumer(reader, store, cache)
	return consumer.Start(log.Logger.WithContext(ctx))
}

func runServe(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logging.Setup("menu-svc", cfg.LogLevel, cfg.LogFormat)

	db := config.MustInitPostgres(cfg)
	defer db.Close()

	if err := storage.NewPostgresRepository(db).EnsureSchema(ctx); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}

	var rdb *redis.Client
	if cfg.RedisEnabled() {
		rdb = config.MustInitRedis(cfg)
		defer rdb.Close()
	} else {
		log.Info().Msg("REDIS_HOST not set, menu cache disabled")
	}

	var writer *kafka.Writer
	if cfg.KafkaEnabled() {
		writer = config.NewKafkaWriter(cfg)
		defer func() {
			if err := writer.Close(); err != nil {
				log.Error().Err(err).Msg("Failed to close Kafka writer")
			}
		}()
	} else {
		log.Info().Msg("KAFKA_BROKER not set, menu events disabled")
	}

	srv := &http.Server{
		Addr:              cfg.Address,
		Handler:           buildHandler(cfg, db, rdb, writer),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Address).Msg("Menu service starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info().Msg("Server stopped")
	return nil
}

// buildHandler wires repositories, the image store and services into the
// HTTP router. rdb and writer may be nil.
func buildHandler(cfg config.Config, db *sql.DB, rdb *redis.Client, writer *kafka.Writer) http.Handler {
	recorder := metrics.NewRecorder()
	repo := storage.NewPostgresRepository(db)
	tx := storage.NewTxManager(db)
	store := assets.NewStore(cfg.UploadsRoot, recorder)

	var cache service.MenuCache
	if rdb != nil {
		cache = storage.NewRedisCache(rdb, cfg.CacheTTL)
	}
	var publisher service.MenuPublisher
	if writer != nil {
		publisher = storage.NewKafkaPublisher(writer)
	}

	handler := httpapi.NewHandler(
		service.NewCategoryService(tx, repo, store, cache, publisher),
		service.NewDishService(tx, repo, repo, store, cache, publisher),
		service.NewRestaurantService(tx, repo, service.DefaultQRGenerator{BaseURL: cfg.MenuBaseURL}),
		service.NewAuthService(tx, repo, repo, cfg.JWTSecret, cfg.TokenTTL, cfg.BcryptCost),
		cfg.PublicPort,
	)
	handler.DB = repo
	return httpapi.NewRouter(handler, cfg.UploadsRoot, recorder)
}
