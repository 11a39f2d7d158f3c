package config

import (
	"log"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port                string
	IsProduction        bool
	LogLevel            slog.Level
	CORSAllowedOrigins  []string
	RateLimit           string // ulule/limiter formatted rate, e.g. "100-M"
	DefaultCurrency     string
	DefaultFormatPreset string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("DEFAULT_CURRENCY", "USD")
	v.SetDefault("DEFAULT_FORMAT_PRESET", "summary")

	// Environment variables override defaults and .env values
	v.AutomaticEnv()

	cfg := &Config{
		Port:         v.GetString("PORT"),
		IsProduction: v.GetBool("IS_PRODUCTION"),
		RateLimit:    v.GetString("RATE_LIMIT"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	levelStr := v.GetString("LOG_LEVEL")
	if err := cfg.LogLevel.UnmarshalText([]byte(levelStr)); err != nil {
		cfg.LogLevel = slog.LevelInfo
		log.Printf("Warning: Invalid value for LOG_LEVEL ('%s'). Defaulting to info.\n", levelStr)
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	cfg.DefaultCurrency = strings.ToUpper(strings.TrimSpace(v.GetString("DEFAULT_CURRENCY")))
	if len(cfg.DefaultCurrency) != 3 {
		log.Printf("Warning: Invalid value for DEFAULT_CURRENCY ('%s'). Defaulting to USD.\n", cfg.DefaultCurrency)
		cfg.DefaultCurrency = "USD"
	}

	cfg.DefaultFormatPreset = strings.ToLower(strings.TrimSpace(v.GetString("DEFAULT_FORMAT_PRESET")))
	switch cfg.DefaultFormatPreset {
	case "summary", "code":
	default:
		log.Printf("Warning: Invalid value for DEFAULT_FORMAT_PRESET ('%s'). Defaulting to summary.\n", cfg.DefaultFormatPreset)
		cfg.DefaultFormatPreset = "summary"
	}

	return cfg, nil
}
