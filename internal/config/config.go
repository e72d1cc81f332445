package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort string

	// Persistence adapter backend: file, memory, mysql or redis.
	StorageBackend string
	DataDir        string
	MySQLDSN       string
	RedisAddr      string
	RedisDB        int
	RedisPass      string

	JWTSecret   string
	SwaggerHost string

	// LatencyFactor scales the simulated per-operation latency.
	// 1.0 reproduces the original delays, 0 disables them.
	LatencyFactor float64

	// Query cache windows and retry policy.
	CacheStaleAfter  time.Duration
	CacheEvictAfter  time.Duration
	CacheMaxAttempts int
	CacheBackoff     time.Duration
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	return &Config{
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		StorageBackend:   getEnv("STORAGE_BACKEND", "file"),
		DataDir:          getEnv("DATA_DIR", "./data"),
		MySQLDSN:         getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/qms?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:          getEnvInt("REDIS_DB", 0),
		RedisPass:        os.Getenv("REDIS_PASSWORD"),
		JWTSecret:        getEnv("JWT_SECRET", "change-me"),
		SwaggerHost:      os.Getenv("SWAGGER_HOST"),
		LatencyFactor:    getEnvFloat("LATENCY_FACTOR", 1.0),
		CacheStaleAfter:  getEnvDuration("CACHE_STALE_AFTER", 2*time.Minute),
		CacheEvictAfter:  getEnvDuration("CACHE_EVICT_AFTER", 5*time.Minute),
		CacheMaxAttempts: getEnvInt("CACHE_MAX_ATTEMPTS", 3),
		CacheBackoff:     getEnvDuration("CACHE_BACKOFF", 500*time.Millisecond),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return def
}
