package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Server Configuration
	ServerPort string

	// Database Configuration
	DatabasePath string
	SeedDemoData bool

	// Page Cache Configuration (redis-backed, disabled when RedisAddr is empty)
	RedisAddr     string
	RedisPassword string
	PageCacheTTL  time.Duration

	// Query Configuration
	QueryTimeout    time.Duration
	DefaultPageSize int
	MaxPageSize     int
}

var AppConfig *Config

func LoadConfig() *Config {
	AppConfig = &Config{
		ServerPort:      getEnv("PORT", "8080"),
		DatabasePath:    getEnv("DB_PATH", "live.db"),
		SeedDemoData:    getEnvBool("SEED_DEMO_DATA", false),
		RedisAddr:       getEnv("REDIS_ADDR", ""),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		PageCacheTTL:    time.Duration(getEnvInt("PAGE_CACHE_TTL_SECONDS", 3)) * time.Second,
		QueryTimeout:    time.Duration(getEnvInt("QUERY_TIMEOUT_MS", 3000)) * time.Millisecond,
		DefaultPageSize: getEnvInt("DEFAULT_PAGE_SIZE", 10),
		MaxPageSize:     getEnvInt("MAX_PAGE_SIZE", 100),
	}

	return AppConfig
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
