package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Common
	Env      string
	LogLevel string
	// API
	Port        string
	Storage     string
	DatabaseURL string
	// Providers
	Provider     string
	QuoteAPIBase string
	QuoteAPIKey  string
	RateAPIBase  string
	// Snapshot pipeline
	StockSymbol    string
	Currencies     []string
	SnapshotCron   string
	RequestTimeout time.Duration
	// Redis (run deduplication)
	IdempotencyBackend string
	RedisAddr          string
	RedisPassword      string
	RedisDB            int
	RedisTTL           time.Duration
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoiDef(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Load reads environment variables and applies defaults. PORT is the only
// knob that differs between development and production deployments.
func Load() Config {
	return Config{
		Env:                getEnv("ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		Port:               getEnv("PORT", "8080"),
		Storage:            getEnv("STORAGE", "pg"),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		Provider:           getEnv("PROVIDER", "fake"),
		QuoteAPIBase:       getEnv("QUOTE_API_BASE", "https://api.aletheiaapi.com"),
		QuoteAPIKey:        getEnv("QUOTE_API_KEY", ""),
		RateAPIBase:        getEnv("RATE_API_BASE", "https://cdn.jsdelivr.net/gh/fawazahmed0/currency-api@1"),
		StockSymbol:        getEnv("STOCK_SYMBOL", "msft"),
		Currencies:         splitCSV(getEnv("CURRENCIES", "eur,dkk")),
		SnapshotCron:       getEnv("SNAPSHOT_CRON", ""),
		RequestTimeout:     time.Duration(atoiDef(getEnv("REQUEST_TIMEOUT_MS", "3000"), 3000)) * time.Millisecond,
		IdempotencyBackend: getEnv("IDEMPOTENCY_BACKEND", "none"),
		RedisAddr:          getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:      getEnv("REDIS_PASSWORD", ""),
		RedisDB:            atoiDef(getEnv("REDIS_DB", "0"), 0),
		RedisTTL:           time.Duration(atoiDef(getEnv("IDEMPOTENCY_TTL_MS", "86400000"), 86400000)) * time.Millisecond,
	}
}
