package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	AppEnv  string
	AppHost string
	AppPort int

	// Database configuration
	DBType            string // sqlserver, sqlite, mysql, postgres
	DBServer          string // host, or host\instance for a named SQL Server instance
	DBPort            string // optional; empty selects named pipes for a named instance
	DBDatabase        string
	DBUsername        string
	DBPassword        string
	DBTrustCert       string
	DBEncrypt         string
	DBConnectionLimit int
	DBAutoMigrate     bool

	// Image storage
	ImagesDir string
}

// Load loads configuration from the environment, with .env support
func Load() (*Config, error) {
	// A missing .env file is not an error; the environment may be complete
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:            getEnv("APP_ENV", "dev"),
		AppHost:           getEnv("APP_HOST", "0.0.0.0"),
		AppPort:           getEnvAsInt("APP_PORT", 8000),
		DBType:            getEnv("DB_TYPE", "sqlserver"),
		DBServer:          getEnv("DB_SERVER", ""),
		DBPort:            getEnv("DB_PORT", ""),
		DBDatabase:        getEnv("DB_DATABASE", ""),
		DBUsername:        getEnv("DB_USERNAME", ""),
		DBPassword:        getEnv("DB_PASSWORD", ""),
		DBTrustCert:       getEnv("DB_TRUST_CERT", "yes"),
		DBEncrypt:         getEnv("DB_ENCRYPT", "yes"),
		DBConnectionLimit: getEnvAsInt("DB_CONNECTION_LIMIT", 5),
		DBAutoMigrate:     getEnvAsBool("DB_AUTO_MIGRATE", false),
		ImagesDir:         getEnv("IMAGES_DIR", "assets/images/artigos"),
	}

	// Validate required fields
	if cfg.DBServer == "" {
		return nil, fmt.Errorf("DB_SERVER is required")
	}
	if cfg.DBDatabase == "" {
		return nil, fmt.Errorf("DB_DATABASE is required")
	}
	if cfg.DBUsername == "" {
		return nil, fmt.Errorf("DB_USERNAME is required")
	}
	if cfg.DBPassword == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}

	return cfg, nil
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

// getEnvAsBool gets an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
