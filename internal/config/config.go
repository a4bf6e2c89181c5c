package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port string

	// Database configuration
	DBType               string // mysql, mariadb, postgres, sqlite, sqlite-pure, sqlserver
	DBHost               string
	DBPort               string
	DBAppDatabase        string
	DBAppUser            string
	DBAppPassword        string
	DBAppConnectionLimit int

	// Authorizer configuration
	AuthzURL      string
	AuthzClientID string

	// Logging
	LogLevel  string // debug | info | warn | error
	PrettyLog bool

	// Localisation
	Locale   string // BCP 47 tag, eg en-GB
	Timezone string // IANA zone name

	// Blob storage
	BlobBackend   string // db | redis
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Waiting list maintenance jobs
	MaintenanceInterval time.Duration
}

// Load loads configuration from environment variables, after first reading
// ENV_FILE (default .env) into the environment when that file exists.
func Load() (*Config, error) {
	if err := loadEnvFile(getEnv("ENV_FILE", ".env")); err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:                 getEnv("PORT", "3000"),
		DBType:               strings.ToLower(getEnv("DB_TYPE", "mysql")),
		DBHost:               getEnv("DB_HOST", "localhost"),
		DBPort:               getEnv("DB_PORT", "3306"),
		DBAppDatabase:        getEnv("DB_APP_DATABASE", ""),
		DBAppUser:            getEnv("DB_APP_USER", ""),
		DBAppPassword:        getEnv("DB_APP_PASSWORD", ""),
		DBAppConnectionLimit: getEnvAsInt("DB_APP_CONNECTION_LIMIT", 5),
		AuthzURL:             getEnv("AUTHZ_URL", ""),
		AuthzClientID:        getEnv("AUTHZ_CLIENT_ID", ""),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		PrettyLog:            getEnvAsBool("LOG_PRETTY", false),
		Locale:               getEnv("LOCALE", "en-GB"),
		Timezone:             getEnv("TIMEZONE", "UTC"),
		BlobBackend:          strings.ToLower(getEnv("BLOB_BACKEND", "db")),
		RedisAddr:            getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:        getEnv("REDIS_PASSWORD", ""),
		RedisDB:              getEnvAsInt("REDIS_DB", 0),
		MaintenanceInterval:  getEnvAsDuration("MAINTENANCE_INTERVAL", 24*time.Hour),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks required values and enumerations
func (c *Config) Validate() error {
	if c.DBAppDatabase == "" {
		return fmt.Errorf("DB_APP_DATABASE is required")
	}
	if c.DBAppUser == "" && !c.IsSQLite() {
		return fmt.Errorf("DB_APP_USER is required")
	}
	if c.AuthzURL == "" {
		return fmt.Errorf("AUTHZ_URL is required")
	}
	if c.AuthzClientID == "" {
		return fmt.Errorf("AUTHZ_CLIENT_ID is required")
	}

	switch c.BlobBackend {
	case "db", "redis":
	default:
		return fmt.Errorf("unsupported BLOB_BACKEND: %s", c.BlobBackend)
	}

	if c.MaintenanceInterval <= 0 {
		return fmt.Errorf("MAINTENANCE_INTERVAL must be > 0, got %v", c.MaintenanceInterval)
	}

	return nil
}

// IsSQLite reports whether the configured database is a local sqlite file
func (c *Config) IsSQLite() bool {
	return c.DBType == "sqlite" || c.DBType == "sqlite-pure"
}

func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}
