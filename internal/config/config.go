package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config chứa toàn bộ application configuration
// Struct này được populate từ environment variables
type Config struct {
	App   AppConfig
	Auth  AuthConfig
	MinIO MinIOConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

// AuthConfig mô tả cách verify identity tokens do provider bên ngoài cấp.
// AdminUserID là user id duy nhất được phép publish recipes.
type AuthConfig struct {
	JWTSecret   string
	AdminUserID string
}

type MinIOConfig struct {
	Endpoint  string // localhost:9000
	AccessKey string // minioadmin
	SecretKey string // minioadmin
	Bucket    string // recipeshare
	UseSSL    bool   // false for local
}

// Load đọc config từ environment variables
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "RecipeShare API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Auth: AuthConfig{
			JWTSecret:   getEnv("AUTH_JWT_SECRET", "your-secret-key-change-in-production"),
			AdminUserID: getEnv("ADMIN_USER_ID", ""),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
			SecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
			Bucket:    getEnv("MINIO_BUCKET", "recipeshare"),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
	}

	// Validate critical config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate kiểm tra config có hợp lệ không
func (c *Config) Validate() error {
	// Production environment phải có JWT secret thật
	if c.App.Environment == "production" {
		if c.Auth.JWTSecret == "your-secret-key-change-in-production" {
			return fmt.Errorf("AUTH_JWT_SECRET must be set in production")
		}
		if c.Auth.AdminUserID == "" {
			fmt.Println("WARNING: ADMIN_USER_ID not set - no user can publish recipes")
		}
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
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
