package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validYAML = `
server:
  host: "0.0.0.0"
  port: 8080
smtp:
  host: "smtp.example.com"
  port: 587
  user: "mailer"
  password: "secret"
  from: "noreply@example.com"
jwt:
  secret: "a-very-long-secret-key-for-testing-purposes"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, validYAML))
	require.NoError(t, err)

	assert.Equal(t, "file", cfg.Storage.Type)
	assert.Equal(t, "./state", cfg.Storage.StateDir)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, 60, cfg.JWT.AccessTokenExpiry)

	assert.Equal(t, "Orlando", cfg.Rental.SupportedCity)
	assert.Equal(t, "BG", cfg.Rental.ConfirmationPrefix)
	assert.Equal(t, 60, cfg.Rental.PickupReminderLeadMins)
	require.NotNil(t, cfg.Rental.ReturnReminderHour)
	assert.Equal(t, 9, *cfg.Rental.ReturnReminderHour)
	require.NotNil(t, cfg.Rental.CelebrationDelaySeconds)
	assert.Equal(t, 4, *cfg.Rental.CelebrationDelaySeconds)

	assert.Equal(t, "0 0 8 * * *", cfg.Scheduler.SendPickupReminders)
	assert.Equal(t, "0 0 9 * * *", cfg.Scheduler.SendReturnReminders)
}

func TestLoadRejectsShortJWTSecret(t *testing.T) {
	yaml := `
server:
  port: 8080
smtp:
  host: "smtp.example.com"
  port: 587
jwt:
  secret: "too-short"
`
	_, err := Load(writeConfig(t, yaml))
	assert.ErrorContains(t, err, "JWT secret")
}

func TestLoadRejectsBadConfirmationPrefix(t *testing.T) {
	yaml := validYAML + `
rental:
  confirmation_prefix: "GAME"
`
	_, err := Load(writeConfig(t, yaml))
	assert.ErrorContains(t, err, "confirmation prefix")
}

func TestLoadRequiresDatabaseForPostgresStorage(t *testing.T) {
	yaml := validYAML + `
storage:
  type: "postgres"
`
	_, err := Load(writeConfig(t, yaml))
	assert.ErrorContains(t, err, "database host")
}

func TestLoadRejectsUnknownStorageType(t *testing.T) {
	yaml := validYAML + `
storage:
  type: "redis"
`
	_, err := Load(writeConfig(t, yaml))
	assert.ErrorContains(t, err, "unsupported storage type")
}

func TestZeroRentalValuesAreConfigurable(t *testing.T) {
	yaml := validYAML + `
rental:
  return_reminder_hour: 0
  celebration_delay_seconds: 0
`
	cfg, err := Load(writeConfig(t, yaml))
	require.NoError(t, err)

	// Midnight and no-delay are real settings, not "use the default".
	require.NotNil(t, cfg.Rental.ReturnReminderHour)
	assert.Equal(t, 0, *cfg.Rental.ReturnReminderHour)
	require.NotNil(t, cfg.Rental.CelebrationDelaySeconds)
	assert.Equal(t, 0, *cfg.Rental.CelebrationDelaySeconds)
}

func TestLoadRejectsBadReminderHour(t *testing.T) {
	yaml := validYAML + `
rental:
  return_reminder_hour: 24
`
	_, err := Load(writeConfig(t, yaml))
	assert.ErrorContains(t, err, "return reminder hour")
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9191")
	t.Setenv("JWT_SECRET", "env-provided-secret-that-is-long-enough-too")
	t.Setenv("STORAGE_TYPE", "file")
	t.Setenv("STATE_DIR", "/tmp/gameshelf-state")

	cfg, err := Load(writeConfig(t, validYAML))
	require.NoError(t, err)

	assert.Equal(t, 9191, cfg.Server.Port)
	assert.Equal(t, "env-provided-secret-that-is-long-enough-too", cfg.JWT.Secret)
	assert.Equal(t, "/tmp/gameshelf-state", cfg.Storage.StateDir)
}

func TestGetServerAddress(t *testing.T) {
	cfg := &Config{Server: ServerConfig{Host: "127.0.0.1", Port: 8080}}
	assert.Equal(t, "127.0.0.1:8080", cfg.GetServerAddress())
}

func TestGetDatabaseConnectionString(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		Host: "localhost", Port: 5432, User: "app", Password: "pw",
		Database: "gameshelf", SSLMode: "disable",
	}}
	assert.Equal(t, "postgres://app:pw@localhost:5432/gameshelf?sslmode=disable", cfg.GetDatabaseConnectionString())
}
