package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database   DatabaseConfig
	JWT        JWTConfig
	App        AppConfig
	Attendance AttendanceConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// AttendanceConfig holds the engine's tolerance bands. Defaults: 10 min
// entry grace, 15 min exit grace, 10 h idle checkout.
type AttendanceConfig struct {
	EntryGraceMinutes int
	ExitGraceMinutes  int
	IdleCheckoutHours int
}

func Load() (*Config, error) {
	// A missing .env file is fine; explicit env vars win anyway.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "geoattend"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Attendance engine tolerances
	entryGrace, err := strconv.Atoi(getEnv("ENTRY_GRACE_MINUTES", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid ENTRY_GRACE_MINUTES: %w", err)
	}
	exitGrace, err := strconv.Atoi(getEnv("EXIT_GRACE_MINUTES", "15"))
	if err != nil {
		return nil, fmt.Errorf("invalid EXIT_GRACE_MINUTES: %w", err)
	}
	idleHours, err := strconv.Atoi(getEnv("IDLE_CHECKOUT_HOURS", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid IDLE_CHECKOUT_HOURS: %w", err)
	}

	config.Attendance = AttendanceConfig{
		EntryGraceMinutes: entryGrace,
		ExitGraceMinutes:  exitGrace,
		IdleCheckoutHours: idleHours,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Attendance.EntryGraceMinutes < 0 {
		return fmt.Errorf("ENTRY_GRACE_MINUTES must not be negative")
	}
	if c.Attendance.ExitGraceMinutes < 0 {
		return fmt.Errorf("EXIT_GRACE_MINUTES must not be negative")
	}
	if c.Attendance.IdleCheckoutHours <= 0 {
		return fmt.Errorf("IDLE_CHECKOUT_HOURS must be positive")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
