package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("JWT_SECRET_KEY", "test-secret")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "geoattend", cfg.Database.Name)
	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, 10, cfg.Attendance.EntryGraceMinutes)
	assert.Equal(t, 15, cfg.Attendance.ExitGraceMinutes)
	assert.Equal(t, 10, cfg.Attendance.IdleCheckoutHours)
}

func TestLoadOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ENTRY_GRACE_MINUTES", "5")
	t.Setenv("EXIT_GRACE_MINUTES", "20")
	t.Setenv("IDLE_CHECKOUT_HOURS", "12")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Attendance.EntryGraceMinutes)
	assert.Equal(t, 20, cfg.Attendance.ExitGraceMinutes)
	assert.Equal(t, 12, cfg.Attendance.IdleCheckoutHours)
}

func TestLoadRejectsMalformedNumbers(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ENTRY_GRACE_MINUTES", "ten")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidateMissingSecret(t *testing.T) {
	cfg := &Config{}
	cfg.Database.Password = "secret"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET_KEY")
}

func TestValidateNegativeGrace(t *testing.T) {
	cfg := &Config{}
	cfg.Database.Password = "secret"
	cfg.JWT.Secret = "s"
	cfg.Attendance.EntryGraceMinutes = -1
	cfg.Attendance.IdleCheckoutHours = 10

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENTRY_GRACE_MINUTES")
}

func TestDatabaseURL(t *testing.T) {
	cfg := &Config{}
	cfg.Database = DatabaseConfig{
		Host:     "db.internal",
		Port:     5433,
		User:     "app",
		Password: "pw",
		Name:     "geoattend",
		SSLMode:  "require",
	}

	assert.Equal(t, "postgres://app:pw@db.internal:5433/geoattend?sslmode=require", cfg.DatabaseURL())
}
