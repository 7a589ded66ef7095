package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	server "hotel_inventory/internal/adapters/http_server"
	"hotel_inventory/internal/adapters/observability"
	redisad "hotel_inventory/internal/adapters/redis"
	"hotel_inventory/internal/app"
	"hotel_inventory/internal/domain"
	"hotel_inventory/internal/shared"
	"hotel_inventory/internal/storage/memory"
	mysqlrepo "hotel_inventory/internal/storage/mysql"
)

type repository interface {
	domain.HotelRepository
	domain.RoomRepository
}

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	reg := observability.InitRegistry()
	if side := observability.Serve(cfg.MetricsAddr, reg); side != nil {
		defer side.Close()
	}

	// storage
	var repo repository
	switch cfg.Storage {
	case "memory":
		log.Warn().Msg("using in-memory storage; data is lost on exit")
		repo = memory.New()
	default:
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("sql.Open failed")
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			log.Fatal().Err(err).Msg("db.Ping failed")
		}
		db.SetMaxOpenConns(50)
		db.SetMaxIdleConns(10)
		db.SetConnMaxLifetime(time.Hour)
		log.Info().Msg("database connection ok")
		repo = mysqlrepo.New(db)
	}

	// optional guard lock
	var locker domain.Locker
	if cfg.RedisAddr != "" {
		l := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err := l.Ping(context.Background()); err != nil {
			log.Fatal().Err(err).Str("addr", cfg.RedisAddr).Msg("redis ping failed")
		}
		defer l.Close()
		locker = l
		log.Info().Str("addr", cfg.RedisAddr).Msg("room guard lock enabled")
	}

	// deps
	hotels := app.NewHotelService(repo)
	rooms := app.NewRoomService(repo, repo, locker, cfg.LockTTL)

	// http
	srv := server.New(server.Options{
		RequestTimeout: cfg.RequestTimeout,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
	})
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Hotels: hotels, Rooms: rooms})

	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux(), ReadHeaderTimeout: 5 * time.Second}

	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Str("storage", cfg.Storage).Msg("API listening")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
