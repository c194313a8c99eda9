package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/dummygen/dummygen-go/internal/dummy"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// RateLimitConfig configures per-IP throttling of generation requests.
// RPS of zero disables the limiter.
type RateLimitConfig struct {
	RPS   float64 `yaml:"rps" validate:"gte=0"`
	Burst int     `yaml:"burst" validate:"gte=0"`
}

type Config struct {
	Port         string          `yaml:"port" validate:"required,numeric"`
	Env          string          `yaml:"env" validate:"required"`
	LogLevel     string          `yaml:"logLevel" validate:"oneof=debug info warn error"`
	MaxBodyBytes int64           `yaml:"maxBodyBytes" validate:"gt=0"`
	Limits       dummy.Limits    `yaml:"limits"`
	RateLimit    RateLimitConfig `yaml:"rateLimit"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Port:         "8080",
		Env:          "development",
		LogLevel:     "info",
		MaxBodyBytes: 1 << 20, // 1MB
		Limits:       dummy.DefaultLimits(),
		RateLimit:    RateLimitConfig{RPS: 0, Burst: 10},
	}
}

// Load builds the configuration from defaults, then the YAML file named by
// CONFIG_FILE (if any), then individual environment variables.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return cfg, nil
}

// IsProduction reports whether the service runs in the production environment.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("%w: parsing %s: %v", ErrInvalidConfig, path, err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.Env = getEnv("ENV", cfg.Env)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)

	var err error
	if cfg.MaxBodyBytes, err = getEnvInt64("MAX_BODY_BYTES", cfg.MaxBodyBytes); err != nil {
		return err
	}
	if cfg.Limits.MaxFields, err = getEnvInt("MAX_FIELDS", cfg.Limits.MaxFields); err != nil {
		return err
	}
	if cfg.Limits.MaxSubModules, err = getEnvInt("MAX_SUB_MODULES", cfg.Limits.MaxSubModules); err != nil {
		return err
	}
	if cfg.Limits.MaxArraySize, err = getEnvInt("MAX_ARRAY_SIZE", cfg.Limits.MaxArraySize); err != nil {
		return err
	}
	if cfg.Limits.MaxElements, err = getEnvInt("MAX_ELEMENTS", cfg.Limits.MaxElements); err != nil {
		return err
	}
	if cfg.RateLimit.RPS, err = getEnvFloat("RATE_LIMIT_RPS", cfg.RateLimit.RPS); err != nil {
		return err
	}
	if cfg.RateLimit.Burst, err = getEnvInt("RATE_LIMIT_BURST", cfg.RateLimit.Burst); err != nil {
		return err
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, key, v)
	}
	return n, nil
}

func getEnvInt64(key string, fallback int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, key, v)
	}
	return n, nil
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not a number", ErrInvalidConfig, key, v)
	}
	return f, nil
}
