package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all service configuration. Values come from the environment
// (a .env file is honored when present) and are passed explicitly to
// component constructors; nothing reads ambient state after startup.
type Config struct {
	Port     string
	LogLevel string
	LogDir   string

	NewsAPIKey     string
	NewsAPIBaseURL string

	SummaryAPIKey  string
	SummaryBaseURL string
	SummaryModel   string

	TranslateAPIKey  string
	TranslateBaseURL string
	TranslateModel   string

	CacheTTL  time.Duration
	CacheSize int

	TelegramToken     string
	TelegramChatID    int64
	BroadcastInterval time.Duration
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	// Best effort; the environment itself is authoritative.
	_ = godotenv.Load()

	cfg := &Config{
		Port:     getEnv("PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		LogDir:   getEnv("LOG_DIR", ""),

		NewsAPIKey:     os.Getenv("NEWS_API_KEY"),
		NewsAPIBaseURL: getEnv("NEWS_API_BASE_URL", ""),

		SummaryAPIKey:  os.Getenv("SUMMARY_API_KEY"),
		SummaryBaseURL: getEnv("SUMMARY_API_BASE_URL", ""),
		SummaryModel:   getEnv("SUMMARY_MODEL", "gpt-4o-mini"),

		TranslateAPIKey:  os.Getenv("TRANSLATE_API_KEY"),
		TranslateBaseURL: getEnv("TRANSLATE_API_BASE_URL", ""),
		TranslateModel:   getEnv("TRANSLATE_MODEL", "gpt-4o-mini"),

		CacheTTL:  getEnvAsDuration("CACHE_TTL", 300*time.Second),
		CacheSize: getEnvAsInt("CACHE_SIZE", 128),

		TelegramToken:     getEnv("TELEGRAM_BOT_TOKEN", ""),
		TelegramChatID:    getEnvAsInt64("TELEGRAM_CHAT_ID", 0),
		BroadcastInterval: getEnvAsDuration("BROADCAST_INTERVAL", 24*time.Hour),
	}

	if cfg.NewsAPIKey == "" {
		return nil, fmt.Errorf("NEWS_API_KEY is required")
	}
	if cfg.SummaryAPIKey == "" {
		return nil, fmt.Errorf("SUMMARY_API_KEY is required")
	}
	if cfg.TranslateAPIKey == "" {
		cfg.TranslateAPIKey = cfg.SummaryAPIKey
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges that Load cannot default away.
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("invalid port: %s", c.Port)
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	if c.CacheTTL <= 0 {
		return fmt.Errorf("cache TTL must be positive, got %v", c.CacheTTL)
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("cache size must not be negative, got %d", c.CacheSize)
	}

	if c.TelegramToken != "" && c.TelegramChatID == 0 {
		return fmt.Errorf("TELEGRAM_CHAT_ID is required when TELEGRAM_BOT_TOKEN is set")
	}

	return nil
}

// BroadcastEnabled reports whether the Telegram digest broadcaster is
// configured.
func (c *Config) BroadcastEnabled() bool {
	return c.TelegramToken != "" && c.TelegramChatID != 0
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
