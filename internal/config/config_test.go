package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EnvOnlyDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "wellkeeper.db", cfg.Storage.DSN)
	assert.Equal(t, 35.0, cfg.Hydration.MaleMLPerKg)
	assert.Equal(t, 30.0, cfg.Hydration.FemaleMLPerKg)
	assert.Equal(t, 100, cfg.Hydration.MealWaterML)
	assert.Equal(t, "test@test.com", cfg.Auth.DevEmail)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenValidity)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("STORAGE_DSN", ":memory:")
	t.Setenv("HYDRATION_MEAL_WATER_ML", "150")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":memory:", cfg.Storage.DSN)
	assert.Equal(t, 150, cfg.Hydration.MealWaterML)
}

func TestLoad_ExplicitYAMLPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
env: prod
storage:
  dsn: /data/wellkeeper.db
hydration:
  male_ml_per_kg: 40
auth:
  dev_email: dev@example.com
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "/data/wellkeeper.db", cfg.Storage.DSN)
	assert.Equal(t, 40.0, cfg.Hydration.MaleMLPerKg)
	assert.Equal(t, "dev@example.com", cfg.Auth.DevEmail)
	// Unset yaml fields fall back to env defaults.
	assert.Equal(t, 30.0, cfg.Hydration.FemaleMLPerKg)
}

func TestLoad_MissingExplicitFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_ValidationRejectsBadValues(t *testing.T) {
	t.Setenv("HYDRATION_MALE_ML_PER_KG", "-1")
	_, err := Load("")
	assert.Error(t, err)
}

func TestHydrationConfig_Settings(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	s := cfg.Hydration.Settings()
	assert.Equal(t, 35.0, s.MaleMLPerKg)
	assert.Equal(t, 100, s.MealWaterML)
	assert.Equal(t, 3700, s.BaselineMaleML)
}
