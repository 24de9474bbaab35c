package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	AllowedOrigins   []string
	RequestTimeout   time.Duration
	ShutdownTimeout  time.Duration
	LogLevel         slog.Level
	LogFormat        string
	VoteEventBuffer  int
	StatsLogInterval time.Duration
}

func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:             getEnv("APP_PORT", "8080"),
		AllowedOrigins:   splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		RequestTimeout:   getDuration("REQUEST_TIMEOUT", 60*time.Second),
		ShutdownTimeout:  getDuration("SHUTDOWN_TIMEOUT", 5*time.Second),
		LogLevel:         getLevel("LOG_LEVEL", slog.LevelInfo),
		LogFormat:        strings.ToLower(getEnv("LOG_FORMAT", "json")),
		VoteEventBuffer:  getInt("VOTE_EVENT_BUFFER", 100),
		StatsLogInterval: getDuration("STATS_LOG_INTERVAL", 30*time.Second),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		slog.Warn("invalid integer config, using default", "key", key, "value", v, "default", def)
		return def
	}
	return n
}

func getDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration config, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

func getLevel(key string, def slog.Level) slog.Level {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(v)); err != nil {
		slog.Warn("invalid log level, using default", "key", key, "value", v, "default", def)
		return def
	}
	return lvl
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
