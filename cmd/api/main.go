package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cattery-breeding/internal/adapters/auth/remote"
	"cattery-breeding/internal/adapters/cache/redis"
	pg "cattery-breeding/internal/adapters/storage/postgres"
	"cattery-breeding/internal/platform/config"
	"cattery-breeding/internal/platform/logger"
	"cattery-breeding/internal/router"
)

// @title Cattery Breeding API
// @version 1.0
// @description Registro de camadas: ciclo de vida, logs fechados, roster de gatitos y planilla de pesos.
// @BasePath /
func main() {
	configPath := flag.String("config", "", "path to config file (default configs/config.yaml)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.New(logger.Options{}).Error("config", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.App,
	})

	// único os.Exit: los defers de run ya corrieron
	if err := run(cfg, log); err != nil {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	log.Info("server stopped", nil)
}

func run(cfg *config.Config, log logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := router.Options{Logger: log}

	if cfg.Database.DSN != "" {
		db, err := openDB(ctx, cfg.Database.DSN, cfg.Database.AutoMigrate)
		if err != nil {
			return fmt.Errorf("database: %w", err)
		}
		defer db.Close()
		opts.DB = db
	} else {
		log.Warn("database.dsn empty, using in-memory store", nil)
	}

	if cfg.Redis.Enabled {
		store, err := redis.Open(ctx, redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Prefix:   cfg.App + ":",
		})
		if err != nil {
			// sin caché se sigue funcionando
			log.Warn("redis unavailable, cache disabled", map[string]any{"addr": cfg.Redis.Addr, "error": err.Error()})
		} else {
			defer store.Close()
			opts.Cache = store
			opts.CacheTTL = cfg.Redis.TTL
		}
	}

	if cfg.Auth.BaseURL != "" {
		v, err := remote.NewVerifier(remote.Config{
			BaseURL: cfg.Auth.BaseURL,
			APIKey:  cfg.Auth.APIKey,
			Timeout: cfg.Auth.Timeout,
		})
		if err != nil {
			return fmt.Errorf("auth verifier: %w", err)
		}
		opts.AuthVerifier = v
	} else {
		log.Warn("auth.base_url empty, dev mode with X-Debug-User-ID", nil)
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router.NewRouter(opts),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info("starting server", map[string]any{"addr": srv.Addr})
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func openDB(ctx context.Context, dsn string, autoMigrate bool) (*sql.DB, error) {
	db, err := pg.Open(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if autoMigrate {
		if err := pg.MigrateUp(db); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	return db, nil
}
