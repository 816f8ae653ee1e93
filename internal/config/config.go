package config

import (
	"log/slog"
	"os"
	"strconv"
)

type Config struct {
	Env        string
	LogLevel   string
	Length     int
	Type       string
	Count      int
	Complex    bool
	Format     string
	MinEntropy float64
}

func Load() Config {
	return Config{
		Env:        getEnv("ENV", "development"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		Length:     getEnvInt("PASSGEN_LENGTH", 12),
		Type:       getEnv("PASSGEN_TYPE", "standard"),
		Count:      getEnvInt("PASSGEN_COUNT", 1),
		Complex:    getEnvBool("PASSGEN_COMPLEX", true),
		Format:     getEnv("PASSGEN_FORMAT", "text"),
		MinEntropy: getEnvFloat("PASSGEN_MIN_ENTROPY", 0),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("invalid integer in environment, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid boolean in environment, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		slog.Warn("invalid number in environment, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return f
}
