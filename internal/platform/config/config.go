package config

import (
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool
	LogLevel     slog.Level

	// Exchange rate API
	ExchangeRateAPIURL      string
	ExchangeRateAPIKey      string
	ExchangeRateHTTPTimeout time.Duration
	RateCacheTTL            time.Duration
	DefaultBaseCurrency     string

	// HTTP surface; RateLimit is ulule formatted, e.g. "120-M"
	RateLimit          string
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("EXCHANGE_RATE_API_URL", "https://v6.exchangerate-api.com/v6")
	viper.SetDefault("EXCHANGE_RATE_API_KEY", "")
	viper.SetDefault("EXCHANGE_RATE_HTTP_TIMEOUT", "10s")
	viper.SetDefault("RATE_CACHE_TTL", "1h")
	viper.SetDefault("DEFAULT_BASE_CURRENCY", "USD")
	viper.SetDefault("RATE_LIMIT", "120-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	logLevelStr := viper.GetString("LOG_LEVEL")
	if err := cfg.LogLevel.UnmarshalText([]byte(logLevelStr)); err != nil {
		cfg.LogLevel = slog.LevelInfo
		log.Printf("Warning: Invalid value for LOG_LEVEL ('%s'). Defaulting to %s.\n", logLevelStr, cfg.LogLevel)
	}

	cfg.ExchangeRateAPIURL = strings.TrimRight(viper.GetString("EXCHANGE_RATE_API_URL"), "/")
	cfg.ExchangeRateAPIKey = viper.GetString("EXCHANGE_RATE_API_KEY")
	if cfg.ExchangeRateAPIKey == "" {
		log.Println("Warning: EXCHANGE_RATE_API_KEY not set. Currency conversions will use static offline rates.")
	}

	cfg.ExchangeRateHTTPTimeout = parseDuration("EXCHANGE_RATE_HTTP_TIMEOUT", 10*time.Second)
	cfg.RateCacheTTL = parseDuration("RATE_CACHE_TTL", time.Hour)

	cfg.DefaultBaseCurrency = strings.ToUpper(viper.GetString("DEFAULT_BASE_CURRENCY"))
	if len(cfg.DefaultBaseCurrency) != 3 {
		log.Printf("Warning: Invalid value for DEFAULT_BASE_CURRENCY ('%s'). Defaulting to USD.\n", cfg.DefaultBaseCurrency)
		cfg.DefaultBaseCurrency = "USD"
	}

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))

	return cfg, nil
}

func parseDuration(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback)
		}
		return fallback
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
