package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv         string
	LogLevel       string
	HTTPAddr       string
	MetricsAddr    string
	Storage        string // mysql|memory
	MySQLDSN       string
	RedisAddr      string
	RedisDB        int
	RedisPass      string
	LockTTL        time.Duration
	RequestTimeout time.Duration
	RateLimitRPS   int
	RateLimitBurst int
	SeedFile       string
	SeedWorkers    int
}

// Load reads the environment, after merging an optional .env file.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg(".env could not be parsed")
	}
	return fromEnv()
}

func fromEnv() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
			log.Warn().Str("key", k).Str("value", v).Msg("not an integer, using default")
		}
		return def
	}
	c := Config{
		AppEnv:         env("APP_ENV", "prod"),
		LogLevel:       env("LOG_LEVEL", "info"),
		HTTPAddr:       env("HTTP_ADDR", ":8080"),
		MetricsAddr:    env("METRICS_ADDR", ""),
		Storage:        env("STORAGE", "mysql"),
		MySQLDSN:       env("MYSQL_DSN", "root:root@tcp(localhost:3306)/hotels?parseTime=true&charset=utf8mb4&loc=UTC"),
		RedisAddr:      env("REDIS_ADDR", ""),
		RedisPass:      env("REDIS_PASSWORD", ""),
		RedisDB:        atoi("REDIS_DB", 0),
		LockTTL:        time.Duration(atoi("LOCK_TTL_SECONDS", 5)) * time.Second,
		RequestTimeout: time.Duration(atoi("REQUEST_TIMEOUT_SECONDS", 15)) * time.Second,
		RateLimitRPS:   atoi("RATE_LIMIT_RPS", 0),
		RateLimitBurst: atoi("RATE_LIMIT_BURST", 0),
		SeedFile:       env("SEED_FILE", "seed/hotels.json"),
		SeedWorkers:    atoi("SEED_WORKERS", 4),
	}
	if c.Storage != "mysql" && c.Storage != "memory" {
		log.Warn().Str("storage", c.Storage).Msg("unknown STORAGE, falling back to mysql")
		c.Storage = "mysql"
	}
	if c.RedisAddr == "" {
		log.Info().Msg("REDIS_ADDR is empty; room guard lock disabled")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
