package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"trendtracker/internal/domain/trend"
)

// Config holds all application configuration
type Config struct {
	Environment string
	Pipeline    PipelineConfig
	Output      OutputConfig
	Server      ServerConfig
	Database    DatabaseConfig
	NATS        NATSConfig
}

// PipelineConfig holds the aggregation and scoring configuration
type PipelineConfig struct {
	Granularity   string
	TopK          int
	GrowthDefault float64
}

// OutputConfig holds file and console output configuration
type OutputConfig struct {
	Prefix string
	Quiet  bool
}

// ServerConfig holds HTTP server configuration for the serve command
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	CorsOrigins     []string
}

// DatabaseConfig holds database configuration. Persistence is enabled only
// when a host is configured and the run command asks for it.
type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Database     string
	MaxOpenConns int
	MaxIdleConns int
	MaxLifetime  time.Duration
	SSLMode      string
}

// NATSConfig holds event publishing configuration. Publishing is enabled
// only when a URL is configured.
type NATSConfig struct {
	URL            string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectTimeout time.Duration
	EventsTopic    string
}

// Load loads configuration from environment variables
func Load() (Config, error) {
	config := Config{
		Environment: getEnv("APP_ENV", "development"),
		Pipeline: PipelineConfig{
			Granularity:   getEnv("TREND_WINDOW", "day"),
			TopK:          getEnvAsInt("TREND_TOP_K", 10),
			GrowthDefault: getEnvAsFloat("TREND_GROWTH_DEFAULT", 0),
		},
		Output: OutputConfig{
			Prefix: getEnv("TREND_OUT_PREFIX", "output"),
			Quiet:  getEnvAsBool("TREND_QUIET", false),
		},
		Server: ServerConfig{
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			Port:            getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:     getEnvAsDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvAsDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
			ShutdownTimeout: getEnvAsDuration("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
			CorsOrigins:     getEnvAsSlice("SERVER_CORS_ORIGINS", []string{"*"}),
		},
		Database: DatabaseConfig{
			Host:         getEnv("DB_HOST", ""),
			Port:         getEnvAsInt("DB_PORT", 5432),
			User:         getEnv("DB_USER", "postgres"),
			Password:     getEnv("DB_PASSWORD", "postgres"),
			Database:     getEnv("DB_NAME", "trendtracker"),
			MaxOpenConns: getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getEnvAsInt("DB_MAX_IDLE_CONNS", 25),
			MaxLifetime:  getEnvAsDuration("DB_MAX_LIFETIME", 5*time.Minute),
			SSLMode:      getEnv("DB_SSL_MODE", "disable"),
		},
		NATS: NATSConfig{
			URL:            getEnv("NATS_URL", ""),
			MaxReconnects:  getEnvAsInt("NATS_MAX_RECONNECTS", 10),
			ReconnectWait:  getEnvAsDuration("NATS_RECONNECT_WAIT", 1*time.Second),
			ConnectTimeout: getEnvAsDuration("NATS_CONNECT_TIMEOUT", 2*time.Second),
			EventsTopic:    getEnv("NATS_EVENTS_TOPIC", "trend"),
		},
	}

	return config, Validate(config)
}

// Validate checks the configuration before any processing starts.
// Configuration errors are fatal, unlike row-level data errors.
func Validate(config Config) error {
	if _, err := trend.ParseGranularity(config.Pipeline.Granularity); err != nil {
		return err
	}
	if config.Pipeline.TopK <= 0 {
		return fmt.Errorf("top_k must be a positive integer, got %d", config.Pipeline.TopK)
	}
	if config.Output.Prefix == "" {
		return fmt.Errorf("output prefix must not be empty")
	}
	return nil
}

// StoreEnabled reports whether database persistence is configured.
func (c DatabaseConfig) StoreEnabled() bool {
	return c.Host != ""
}

// PublishEnabled reports whether event publishing is configured.
func (c NATSConfig) PublishEnabled() bool {
	return c.URL != ""
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	return strings.Split(valueStr, ",")
}
