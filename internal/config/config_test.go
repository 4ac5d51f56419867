package config

import (
	"os"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("ENV", EnvLocal)
	t.Setenv("POSTGRES_HOST", "localhost")
	t.Setenv("POSTGRES_USERNAME", "planner")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("POSTGRES_DATABASE", "planner")
	t.Setenv("JWT_SIGNING_KEY", "signing-key")
}

func TestEnvReader_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := NewEnvReader().Read()
	require.NoError(t, err)

	assert.Equal(t, EnvLocal, cfg.Env)
	assert.Equal(t, 5432, cfg.Postgres.Port)
	assert.Equal(t, "disable", cfg.Postgres.SSLMode)
	assert.Equal(t, 10*time.Second, cfg.Postgres.ConnectTimeout)
	assert.True(t, cfg.Postgres.Migrate)
	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTokenTTL)
	assert.Equal(t, "Europe/London", cfg.Planner.Timezone)
	assert.True(t, cfg.Digest.Enabled)
	assert.Equal(t, "0 0 8 * * *", cfg.Digest.Schedule)
}

func TestEnvReader_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PLANNER_TIMEZONE", "America/New_York")
	t.Setenv("DIGEST_ENABLED", "false")
	t.Setenv("HTTP_PORT", "9000")

	cfg, err := NewEnvReader().Read()
	require.NoError(t, err)

	assert.Equal(t, "America/New_York", cfg.Planner.Timezone)
	assert.False(t, cfg.Digest.Enabled)
	assert.Equal(t, "9000", cfg.HTTP.Port)
}

func TestEnvReader_MissingRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("JWT_SIGNING_KEY", "")
	require.NoError(t, os.Unsetenv("JWT_SIGNING_KEY"))

	_, err := NewEnvReader().Read()
	assert.Error(t, err)
}

func TestEnvReader_InvalidTimezone(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PLANNER_TIMEZONE", "Mars/Olympus_Mons")

	_, err := NewEnvReader().Read()
	assert.Error(t, err)
}
