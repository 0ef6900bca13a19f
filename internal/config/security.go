// Package config loads the application security configuration.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"golang.org/x/crypto/bcrypt"

	pkgconfig "stucode/pkg/config"
)

// AuthConfig holds password hashing settings.
type AuthConfig struct {
	// BcryptCost is the bcrypt work factor used when hashing passwords.
	BcryptCost int `yaml:"bcrypt_cost"`
}

// JWTConfig holds token issuing settings.
type JWTConfig struct {
	// SecretEnv names the environment variable carrying the signing secret.
	// The secret itself never lives in the config file.
	SecretEnv   string `yaml:"secret_env"`
	ExpiryHours int    `yaml:"expiry_hours"`
}

// RateLimitConfig holds request throttling settings for the auth endpoints.
type RateLimitConfig struct {
	Limit  int           `yaml:"limit"`
	Window time.Duration `yaml:"window"`
}

// SecurityConfig represents the security section of the config file.
type SecurityConfig struct {
	Security struct {
		Auth            AuthConfig      `yaml:"auth"`
		JWT             JWTConfig       `yaml:"jwt"`
		RateLimit       RateLimitConfig `yaml:"rate_limit"`
		PublicEndpoints []string        `yaml:"public_endpoints"`
	} `yaml:"security"`
}

// LoadSecurityConfig loads security configuration from a YAML file.
// The path parameter is expected to come from a trusted source (command-line argument or hardcoded default).
func LoadSecurityConfig(path string) (*SecurityConfig, error) {
	// #nosec G304 -- path is provided by trusted source (CLI arg or config), not user input
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config SecurityConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applySecurityDefaults(&config)

	if err := validateSecurityConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func applySecurityDefaults(config *SecurityConfig) {
	if config.Security.Auth.BcryptCost == 0 {
		config.Security.Auth.BcryptCost = bcrypt.DefaultCost
	}
	if config.Security.JWT.SecretEnv == "" {
		config.Security.JWT.SecretEnv = "JWT_SECRET"
	}
	if config.Security.JWT.ExpiryHours == 0 {
		config.Security.JWT.ExpiryHours = 24
	}
	if config.Security.RateLimit.Limit == 0 {
		config.Security.RateLimit.Limit = 100
	}
	if config.Security.RateLimit.Window == 0 {
		config.Security.RateLimit.Window = time.Minute
	}
}

// validateSecurityConfig validates the loaded configuration.
func validateSecurityConfig(config *SecurityConfig) error {
	if config.Security.Auth.BcryptCost < bcrypt.MinCost || config.Security.Auth.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("bcrypt_cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}

	if config.Security.JWT.SecretEnv == "" {
		return fmt.Errorf("jwt secret_env is required")
	}

	if config.Security.JWT.ExpiryHours <= 0 {
		return fmt.Errorf("jwt expiry_hours must be positive")
	}

	if config.Security.RateLimit.Limit < 0 {
		return fmt.Errorf("rate_limit limit must not be negative")
	}

	if err := pkgconfig.ValidatePositiveDuration(config.Security.RateLimit.Window); err != nil {
		return fmt.Errorf("rate_limit window: %w", err)
	}

	return nil
}

// GetBcryptCost returns the bcrypt work factor.
func (c *SecurityConfig) GetBcryptCost() int {
	return c.Security.Auth.BcryptCost
}

// GetPublicEndpoints returns the list of endpoints served without a token.
func (c *SecurityConfig) GetPublicEndpoints() []string {
	return c.Security.PublicEndpoints
}

// GetJWTSecretEnv returns the environment variable name for the JWT secret.
func (c *SecurityConfig) GetJWTSecretEnv() string {
	return c.Security.JWT.SecretEnv
}

// GetJWTExpiry returns the JWT lifetime as a duration.
func (c *SecurityConfig) GetJWTExpiry() time.Duration {
	return time.Duration(c.Security.JWT.ExpiryHours) * time.Hour
}

// GetRateLimit returns the request limit and window for throttled endpoints.
func (c *SecurityConfig) GetRateLimit() (int, time.Duration) {
	return c.Security.RateLimit.Limit, c.Security.RateLimit.Window
}
