package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"samwad/backend/internal/api/handler"
	"samwad/backend/internal/config"
	"samwad/backend/internal/hub"
	"samwad/backend/internal/localization"
	"samwad/backend/internal/notify"
	"samwad/backend/internal/storage"
)

func initLogger(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if cfg.LogFormat != "json" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}

func setupDependencies(cfg *config.Config) (*gorm.DB, *redis.Client) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect PostgreSQL")
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Fatal().Err(err).Msg("failed to connect Redis")
		}
	} else {
		log.Info().Msg("REDIS_ADDR not set, running without Redis")
	}

	return db, rdb
}

func main() {
	cfg := config.Load()
	initLogger(cfg)
	log.Info().Msg("starting Samwad portal backend")

	db, rdb := setupDependencies(cfg)
	s := storage.NewService(db, rdb)
	if err := s.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	localizer, err := localization.NewLocalizer()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load translations")
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatal().Err(err).Str("dir", cfg.UploadDir).Msg("failed to create upload directory")
	}

	h := hub.NewHub(s)
	if cfg.TelegramToken != "" && cfg.TelegramChatID != 0 {
		notifier, err := notify.NewTelegram(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			log.Warn().Err(err).Msg("telegram notifier disabled")
		} else {
			h.Notifier = notifier
		}
	}
	go h.Run()

	// Periodic read-only refresh of queue estimates.
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(config.QueueRefreshSchedule, func() {
		select {
		case h.QueueTickCh <- struct{}{}:
		default:
		}
	}); err != nil {
		log.Fatal().Err(err).Msg("failed to schedule queue refresh")
	}
	scheduler.Start()

	api := handler.NewHandler(h, s, cfg, localizer)

	r := gin.Default()
	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "Samwad API is running")
	})
	r.POST("/api/token", api.IssueToken)
	r.GET("/ws", api.ServeWebSocket)
	r.POST("/api/upload", api.Upload)
	r.POST("/api/grievance", api.SubmitGrievance)
	r.Static("/uploads", cfg.UploadDir)

	server := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Info().Str("port", cfg.Port).Msg("listening")
	log.Fatal().Err(server.ListenAndServe()).Msg("server stopped")
}
