// Package config loads runtime settings from YAML and environment
// variables with a predictable priority: explicit path, then CONFIG_PATH,
// then ./local.yaml, then environment only.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/dkrastev/wellkeeper/internal/water"
)

// Config is the root configuration.
type Config struct {
	Env       string          `yaml:"env" env:"ENV" env-default:"local"`
	Storage   StorageConfig   `yaml:"storage"`
	Hydration HydrationConfig `yaml:"hydration"`
	Auth      AuthConfig      `yaml:"auth"`
}

// StorageConfig locates the on-device database.
type StorageConfig struct {
	DSN string `yaml:"dsn" env:"STORAGE_DSN" env-default:"wellkeeper.db"`
}

// HydrationConfig carries the hydration heuristics. Defaults mirror
// water.DefaultSettings.
type HydrationConfig struct {
	MaleMLPerKg            float64 `yaml:"male_ml_per_kg" env:"HYDRATION_MALE_ML_PER_KG" env-default:"35"`
	FemaleMLPerKg          float64 `yaml:"female_ml_per_kg" env:"HYDRATION_FEMALE_ML_PER_KG" env-default:"30"`
	MealWaterML            int     `yaml:"meal_water_ml" env:"HYDRATION_MEAL_WATER_ML" env-default:"100"`
	ExerciseWaterMLPerHour int     `yaml:"exercise_water_ml_per_hour" env:"HYDRATION_EXERCISE_WATER_ML_PER_HOUR" env-default:"500"`
	BaselineMaleML         int     `yaml:"baseline_male_ml" env:"HYDRATION_BASELINE_MALE_ML" env-default:"3700"`
	BaselineFemaleML       int     `yaml:"baseline_female_ml" env:"HYDRATION_BASELINE_FEMALE_ML" env-default:"2700"`
}

// Settings converts the config into water.Settings.
func (h HydrationConfig) Settings() water.Settings {
	return water.Settings{
		MaleMLPerKg:            h.MaleMLPerKg,
		FemaleMLPerKg:          h.FemaleMLPerKg,
		MealWaterML:            h.MealWaterML,
		ExerciseWaterMLPerHour: h.ExerciseWaterMLPerHour,
		BaselineMaleML:         h.BaselineMaleML,
		BaselineFemaleML:       h.BaselineFemaleML,
	}
}

// AuthConfig selects between the stub and a live backend: an empty APIKey
// means the stub.
type AuthConfig struct {
	APIKey        string        `yaml:"api_key" env:"AUTH_API_KEY"`
	DevEmail      string        `yaml:"dev_email" env:"AUTH_DEV_EMAIL" env-default:"test@test.com"`
	DevPassword   string        `yaml:"dev_password" env:"AUTH_DEV_PASSWORD"`
	SecretKey     string        `yaml:"secret_key" env:"AUTH_SECRET_KEY" env-default:"dev-secret"`
	TokenValidity time.Duration `yaml:"token_validity" env:"AUTH_TOKEN_VALIDITY" env-default:"24h"`
	StubDelay     time.Duration `yaml:"stub_delay" env:"AUTH_STUB_DELAY" env-default:"500ms"`
}

// MustLoad wraps Load and panics on error.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load loads configuration with the priority described in the package doc.
func Load(path string) (*Config, error) {
	var cfg Config

	tryRead := func(p string) (*Config, error) {
		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file does not exist: %s", p)
		}
		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := cfg.validate(); err != nil {
			return nil, err
		}
		return &cfg, nil
	}

	if path != "" {
		return tryRead(path)
	}
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		return tryRead(envPath)
	}
	if _, err := os.Stat("local.yaml"); err == nil {
		return tryRead("local.yaml")
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read config from env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Storage.DSN == "" {
		return fmt.Errorf("storage.dsn is required")
	}
	if c.Hydration.MaleMLPerKg <= 0 || c.Hydration.FemaleMLPerKg <= 0 {
		return fmt.Errorf("hydration coefficients must be > 0")
	}
	if c.Hydration.MealWaterML < 0 {
		return fmt.Errorf("hydration.meal_water_ml must be >= 0")
	}
	if c.Auth.SecretKey == "" {
		return fmt.Errorf("auth.secret_key is required")
	}
	if c.Auth.TokenValidity <= 0 {
		return fmt.Errorf("auth.token_validity must be > 0")
	}
	return nil
}
