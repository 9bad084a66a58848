package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all runtime configuration for the portal server.
type Config struct {
	Port          string
	DatabaseDSN   string
	RedisAddr     string
	RedisPassword string
	UploadDir     string
	JWTSecret     string
	// OfficialSecret is the shared secret the official must present to
	// obtain an official-role token. A naive stand-in, not real auth.
	OfficialSecret string
	// Telegram operator notifications. Disabled when the token is empty.
	TelegramToken  string
	TelegramChatID int64

	LogLevel  string
	LogFormat string
}

// Load reads configuration from the environment, loading a .env file
// first if one is present. Environment variables take precedence.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found, relying on environment variables")
	}

	cfg := &Config{
		Port:           getenv("PORT", "8080"),
		DatabaseDSN:    getenv("DATABASE_DSN", "host=localhost user=user password=password dbname=samwad port=5432 sslmode=disable"),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		UploadDir:      getenv("UPLOAD_DIR", "./uploads"),
		JWTSecret:      getenv("JWT_SECRET", "dev-only-secret"),
		OfficialSecret: getenv("OFFICIAL_SECRET", "0000"),
		TelegramToken:  os.Getenv("TELEGRAM_BOT_TOKEN"),
		LogLevel:       getenv("LOG_LEVEL", "info"),
		LogFormat:      getenv("LOG_FORMAT", "console"),
	}

	if raw := os.Getenv("TELEGRAM_CHAT_ID"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			log.Warn().Str("value", raw).Msg("invalid TELEGRAM_CHAT_ID, notifications disabled")
		} else {
			cfg.TelegramChatID = id
		}
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
