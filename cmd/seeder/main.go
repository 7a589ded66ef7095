package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"flag"
	"os"
	"sync"
	"sync/atomic"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"hotel_inventory/internal/adapters/observability"
	redisad "hotel_inventory/internal/adapters/redis"
	"hotel_inventory/internal/app"
	"hotel_inventory/internal/domain"
	"hotel_inventory/internal/shared"
	mysqlrepo "hotel_inventory/internal/storage/mysql"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	file := flag.String("file", cfg.SeedFile, "JSON seed file (array of hotels with rooms)")
	workers := flag.Int("workers", cfg.SeedWorkers, "hotels seeded concurrently")
	flag.Parse()

	// 1) initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	if *workers <= 0 {
		*workers = 1
	}
	log.Info().
		Str("file", *file).
		Int("workers", *workers).
		Msg("seeder starting")

	raw, err := os.ReadFile(*file)
	if err != nil {
		log.Fatal().Err(err).Msg("read seed file failed")
	}
	var seeds []app.HotelSeed
	if err := json.Unmarshal(raw, &seeds); err != nil {
		log.Fatal().Err(err).Msg("seed file is not a JSON array of hotels")
	}

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)
	var locker domain.Locker
	if cfg.RedisAddr != "" {
		l := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		defer l.Close()
		locker = l
	}
	seeder := app.NewSeedService(
		app.NewHotelService(repo),
		app.NewRoomService(repo, repo, locker, cfg.LockTTL),
	)

	sem := semaphore.NewWeighted(int64(*workers))
	var wg sync.WaitGroup
	var failed int32

	for _, hs := range seeds {
		hs := hs

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)

			res, err := seeder.SeedHotel(ctx, hs)
			if err != nil {
				atomic.AddInt32(&failed, 1)
				log.Warn().Str("hotel", hs.Name).Int("rooms_created", res.RoomsCreated).Err(err).Msg("seed failed")
				return
			}
			log.Info().
				Int64("id", res.HotelID).
				Str("hotel", res.Name).
				Int("rooms_created", res.RoomsCreated).
				Int("rooms_skipped", res.RoomsSkipped).
				Msg("seed ok")
		}()
	}

	wg.Wait()
	log.Info().Int("hotels", len(seeds)).Int32("failed", failed).Msg("seeding completed")
	if failed > 0 {
		os.Exit(1)
	}
}
