package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	App      *AppConfig      `yaml:"app"`
	Database *DatabaseConfig `yaml:"database"`
	Redis    *RedisConfig    `yaml:"redis"`
}

type AppConfig struct {
	Name               string        `yaml:"name"`
	Version            string        `yaml:"version"`
	Environment        string        `yaml:"environment"`
	Port               int           `yaml:"port"`
	Host               string        `yaml:"host"`
	Debug              bool          `yaml:"debug"`
	LogLevel           string        `yaml:"log_level"`
	LogFormat          string        `yaml:"log_format"`
	RequestTimeout     time.Duration `yaml:"request_timeout"`
	ShutdownTimeout    time.Duration `yaml:"shutdown_timeout"`
	RateLimitPerMinute int           `yaml:"rate_limit_per_minute"`
}

func Load() (*Config, error) {
	config := &Config{
		App:      loadAppConfig(),
		Database: loadDatabaseConfig(),
		Redis:    loadRedisConfig(),
	}

	return config, nil
}

func loadAppConfig() *AppConfig {
	return &AppConfig{
		Name:               getEnv("APP_NAME", "Experio"),
		Version:            getEnv("APP_VERSION", "1.0.0"),
		Environment:        getEnv("APP_ENV", "development"),
		Port:               getEnvAsInt("APP_PORT", 8080),
		Host:               getEnv("APP_HOST", "localhost"),
		Debug:              getEnvAsBool("APP_DEBUG", true),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", "text"),
		RequestTimeout:     getEnvAsDuration("REQUEST_TIMEOUT", 15*time.Second),
		ShutdownTimeout:    getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		RateLimitPerMinute: getEnvAsInt("RATE_LIMIT_PER_MINUTE", 60),
	}
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

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
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
