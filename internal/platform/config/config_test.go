package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 3*time.Second, cfg.StoreTimeout)
	assert.Equal(t, 30, cfg.DefaultHorizonDays)
	assert.Equal(t, 365, cfg.MaxHorizonDays)
	assert.Equal(t, 1, cfg.DefaultLeadDays)
	assert.Empty(t, cfg.DBDSN)
	assert.True(t, cfg.AutoMigrate)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PETCARE_HTTP_PORT", "9090")
	t.Setenv("PETCARE_STORE_TIMEOUT", "750ms")
	t.Setenv("PETCARE_REMINDER_DEFAULT_HORIZON_DAYS", "14")
	t.Setenv("PETCARE_JWT_SECRET", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTPPort)
	assert.Equal(t, 750*time.Millisecond, cfg.StoreTimeout)
	assert.Equal(t, 14, cfg.DefaultHorizonDays)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
}

func TestLoad_RejectsInconsistentValues(t *testing.T) {
	t.Setenv("PETCARE_REMINDER_DEFAULT_HORIZON_DAYS", "400")
	t.Setenv("PETCARE_DEFAULT_LEAD_DAYS", "-1")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REMINDER_DEFAULT_HORIZON_DAYS")
	assert.Contains(t, err.Error(), "DEFAULT_LEAD_DAYS")
}

func TestLoad_BadDuration(t *testing.T) {
	t.Setenv("PETCARE_STORE_TIMEOUT", "soon")

	_, err := Load()
	assert.Error(t, err)
}
