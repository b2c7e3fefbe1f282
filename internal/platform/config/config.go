package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Server captures process level configuration.
type Server struct {
	Addr        string
	DatabaseURL string
	Redis       RedisConfig
	Coverage    CoverageConfig
	Kafka       KafkaConfig
	Log         LogConfig
}

// RedisConfig configures the shared coverage cache. An empty URL disables Redis.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// CoverageConfig tunes the coverage cache. CacheTTL only bounds how long Redis
// keeps a key; mutations still invalidate explicitly.
type CoverageConfig struct {
	CacheTTL        time.Duration
	BulkConcurrency int
}

// KafkaConfig configures issue publishing. No brokers means no publisher.
type KafkaConfig struct {
	Brokers     []string
	IssuesTopic string
}

type LogConfig struct {
	Level  string
	Format string
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() (Server, error) {
	cfg := Server{
		Addr:        getEnv("LOCAL_COVERAGE_ADDR", ":8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Kafka: KafkaConfig{
			Brokers:     splitList(os.Getenv("KAFKA_BROKERS")),
			IssuesTopic: getEnv("LOCAL_ISSUES_TOPIC", "local-issues"),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	var err error
	if cfg.Redis, err = redisFromEnv(); err != nil {
		return Server{}, err
	}
	if cfg.Coverage.CacheTTL, err = durationEnv("COVERAGE_CACHE_TTL", 24*time.Hour); err != nil {
		return Server{}, err
	}
	if cfg.Coverage.BulkConcurrency, err = intEnv("COVERAGE_BULK_CONCURRENCY", 8); err != nil {
		return Server{}, err
	}
	return cfg, nil
}

func redisFromEnv() (RedisConfig, error) {
	cfg := RedisConfig{URL: os.Getenv("REDIS_URL")}
	var err error
	if cfg.PoolSize, err = intEnv("REDIS_POOL_SIZE", 10); err != nil {
		return cfg, err
	}
	if cfg.MinIdleConns, err = intEnv("REDIS_MIN_IDLE_CONNS", 2); err != nil {
		return cfg, err
	}
	if cfg.DialTimeout, err = durationEnv("REDIS_DIAL_TIMEOUT", 5*time.Second); err != nil {
		return cfg, err
	}
	if cfg.ReadTimeout, err = durationEnv("REDIS_READ_TIMEOUT", 3*time.Second); err != nil {
		return cfg, err
	}
	if cfg.WriteTimeout, err = durationEnv("REDIS_WRITE_TIMEOUT", 3*time.Second); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("invalid %s %q: want a non-negative integer", key, raw)
	}
	return v, nil
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("invalid %s %q: want a non-negative duration", key, raw)
	}
	return v, nil
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
