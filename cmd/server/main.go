package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/alnoor-academy/institute-api/internal/api"
	"github.com/alnoor-academy/institute-api/internal/core/ports"
	"github.com/alnoor-academy/institute-api/internal/core/service"
	"github.com/alnoor-academy/institute-api/internal/infrastructure/config"
	mongodb "github.com/alnoor-academy/institute-api/internal/infrastructure/db/mongo"
	redisdb "github.com/alnoor-academy/institute-api/internal/infrastructure/db/redis"
	"github.com/alnoor-academy/institute-api/internal/infrastructure/db/sqlite"
	"github.com/alnoor-academy/institute-api/internal/infrastructure/memstore"
	"github.com/alnoor-academy/institute-api/internal/infrastructure/session"
	"github.com/alnoor-academy/institute-api/pkg/logger"
)

func main() {
	// .env is optional; real deployments configure via the environment.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Storage backend ---
	var storage ports.Storage
	switch cfg.StorageDriver {
	case "mongo":
		client, db, err := mongodb.Connect(ctx, mongodb.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("mongo connection failed")
		}
		defer func() { _ = client.Disconnect(context.Background()) }()

		st := mongodb.NewStorage(db)
		if err := st.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("mongo index creation failed")
		}
		storage = st
	case "sqlite":
		db, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			log.Fatal().Err(err).Msg("sqlite open failed")
		}
		defer func() { _ = db.Close() }()
		storage = sqlite.NewStorage(db)
	case "memory":
		storage = memstore.New()
	default:
		log.Fatal().Str("driver", cfg.StorageDriver).Msg("unknown STORAGE_DRIVER (want mongo, sqlite or memory)")
	}

	// --- Session backend ---
	var sessions ports.SessionStore
	switch cfg.SessionBackend {
	case "redis":
		client, err := redisdb.Connect(ctx, redisdb.Config{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer func() { _ = client.Close() }()
		sessions = redisdb.NewSessionStore(client)
	case "memory":
		sessions = session.NewMemoryStore()
	default:
		log.Fatal().Str("backend", cfg.SessionBackend).Msg("unknown SESSION_BACKEND (want redis or memory)")
	}

	// --- Admin bootstrap ---
	authService := service.NewAuthService(storage, sessions, cfg.SessionTTL, log)
	switch {
	case cfg.AdminPassword != "":
		if err := authService.BootstrapAdmin(ctx, cfg.AdminUsername, cfg.AdminPassword); err != nil {
			log.Fatal().Err(err).Msg("admin bootstrap failed")
		}
	case cfg.IsProduction():
		// No silent default credential in production.
		log.Fatal().Msg("ADMIN_PASSWORD must be set when ENV=production")
	default:
		log.Warn().Msg("ADMIN_PASSWORD not set, skipping admin bootstrap")
	}

	e := api.NewRouter(storage, sessions, api.RouterConfig{
		SessionTTL:   cfg.SessionTTL,
		SecureCookie: cfg.IsProduction(),
		Logger:       log,
	})

	go func() {
		addr := fmt.Sprintf(":%s", cfg.Port)
		log.Info().Str("addr", addr).Str("env", cfg.Env).Str("storage", cfg.StorageDriver).Msg("server starting")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
