package main

import (
	"context"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Srijit0/tinylink/internal"
	applog "github.com/Srijit0/tinylink/internal/logger"
)

type Config struct {
	Port          string
	BaseURL       string
	DBURL         string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		slog.Warn(".env file not found, relying on env vars", "err", err)
	}

	applog.InitFromEnv()

	cfg := loadConfig()

	// TranslateError turns the unique-index violation on links.code
	// into gorm.ErrDuplicatedKey, which the store maps to ErrCodeTaken.
	db, err := gorm.Open(postgres.Open(cfg.DBURL), &gorm.Config{
		TranslateError: true,
		Logger:         applog.NewGormLogger(os.Getenv("GORM_LOG_LEVEL")),
	})
	if err != nil {
		slog.Error("Unable to connect to database", "err", err)
		os.Exit(1)
	}

	slog.Info("Running GORM Auto-Migration...")
	if err := db.AutoMigrate(&internal.Link{}); err != nil {
		slog.Error("Failed to auto-migrate database", "err", err)
		os.Exit(1)
	}

	store := internal.NewGormStore(db)

	var cache *internal.TargetCache
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			slog.Error("Unable to connect to Redis", "err", err)
			os.Exit(1)
		}
		cache = internal.NewTargetCache(rdb, cfg.CacheTTL)
		slog.Info("Redirect cache enabled", "addr", cfg.RedisAddr)
	}

	app := internal.NewServer(store, cache, cfg.BaseURL).App()

	slog.Info("Starting API Service", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		slog.Error("API Service failed", "err", err)
		os.Exit(1)
	}
}

func loadConfig() *Config {
	port := getenvDefault("PORT", "3000")

	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))

	cacheTTL := time.Hour
	if v := os.Getenv("CACHE_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cacheTTL = d
		} else {
			slog.Warn("Invalid CACHE_TTL, using default", "value", v)
		}
	}

	return &Config{
		Port:          port,
		BaseURL:       getenvDefault("BASE_URL", "http://localhost:"+port),
		DBURL:         os.Getenv("DB_URL"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       redisDB,
		CacheTTL:      cacheTTL,
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
