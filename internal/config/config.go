package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Remote API
	APIBaseURL         string `mapstructure:"API_BASE_URL"`
	HTTPTimeoutSeconds int    `mapstructure:"HTTP_TIMEOUT_SECONDS"`

	// Circuit breaker guarding the remote API
	BreakerFailureThreshold int `mapstructure:"BREAKER_FAILURE_THRESHOLD"`
	BreakerSuccessThreshold int `mapstructure:"BREAKER_SUCCESS_THRESHOLD"`
	BreakerOpenSeconds      int `mapstructure:"BREAKER_OPEN_SECONDS"`

	// General
	Env string `mapstructure:"APP_ENV"` // development | production

	// Local mock API (cmd/mockapi)
	MockAPIPort   int    `mapstructure:"MOCKAPI_PORT"`
	MockAPISecret string `mapstructure:"MOCKAPI_JWT_SECRET"`
}

// HTTPTimeout returns the per-request timeout as a duration.
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutSeconds) * time.Second
}

// BreakerOpenTimeout returns how long the breaker stays open before probing.
func (c *Config) BreakerOpenTimeout() time.Duration {
	return time.Duration(c.BreakerOpenSeconds) * time.Second
}

// Load reads configuration from environment variables (and optional .env
// file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("API_BASE_URL", "http://localhost:8000")
	viper.SetDefault("HTTP_TIMEOUT_SECONDS", 15)
	viper.SetDefault("BREAKER_FAILURE_THRESHOLD", 5)
	viper.SetDefault("BREAKER_SUCCESS_THRESHOLD", 2)
	viper.SetDefault("BREAKER_OPEN_SECONDS", 30)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("MOCKAPI_PORT", 8000)
	viper.SetDefault("MOCKAPI_JWT_SECRET", "dev-only-secret")

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
