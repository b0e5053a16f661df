package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// Create a new instance of the logger
// Configure it to log at the desired level
// and format it as JSON for structured logging
var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	environment := GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(logrus.DebugLevel)
	case "production":
		log.SetLevel(logrus.ErrorLevel)
	default:
		// Default to info level for other environments
		log.SetLevel(logrus.InfoLevel)
	}
}

const (
	defaultSessionSecret = "development-session-secret-change-me"
	minSessionSecretLen  = 16
)

// Config used for the application configuration, loading the input from environment variables
type Config struct {
	// Runtime configuration
	Environment string `json:"environment"`
	LogLevel    string `json:"log_level"`

	// Session configuration
	SessionSecret string        `json:"session_secret"`
	SessionTTL    time.Duration `json:"session_ttl"`

	// Password hashing cost for user accounts
	PasswordCost int `json:"password_cost"`

	// How many times the console asks again for an unresolved ingredient or dish
	SlotRetryLimit int `json:"slot_retry_limit"`
}

// String returns a string representation of Config with sensitive data masked
func (c *Config) String() string {
	return fmt.Sprintf("Config{Environment: %s, LogLevel: %s, SessionSecret: [REDACTED], SessionTTL: %s, PasswordCost: %d, SlotRetryLimit: %d}",
		c.Environment, c.LogLevel, c.SessionTTL, c.PasswordCost, c.SlotRetryLimit)
}

// LoadConfig read the proper configuration from environment variables and returns a Config struct
// Returns an error if any value is present but invalid
func LoadConfig() (*Config, error) {
	log.Info("Loading configuration from environment variables")

	ttlMinutes, err := strconv.Atoi(GetEnvWithDefault("SESSION_TTL_MINUTES", "480"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL_MINUTES: %w", err)
	}
	if ttlMinutes <= 0 {
		return nil, fmt.Errorf("SESSION_TTL_MINUTES must be positive, got %d", ttlMinutes)
	}

	cost, err := strconv.Atoi(GetEnvWithDefault("PASSWORD_COST", strconv.Itoa(bcrypt.DefaultCost)))
	if err != nil {
		return nil, fmt.Errorf("invalid PASSWORD_COST: %w", err)
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("PASSWORD_COST must be between %d and %d, got %d", bcrypt.MinCost, bcrypt.MaxCost, cost)
	}

	secret := GetEnvWithDefault("SESSION_SECRET", defaultSessionSecret)
	if len(secret) < minSessionSecretLen {
		return nil, fmt.Errorf("SESSION_SECRET must be at least %d characters", minSessionSecretLen)
	}

	config := &Config{
		Environment:    GetEnvWithDefault("APP_ENV", "development"),
		LogLevel:       GetEnvWithDefault("LOG_LEVEL", "info"),
		SessionSecret:  secret,
		SessionTTL:     time.Duration(ttlMinutes) * time.Minute,
		PasswordCost:   cost,
		SlotRetryLimit: GetEnvAsType("SLOT_RETRY_LIMIT", 3),
	}
	log.Infof("Configuration loaded: %s", config.String())
	return config, nil
}

// Helper to get environment with default values
func GetEnvWithDefault(key, defaultValue string) string {
	log.Tracef("Getting environment variable: %s", key)
	value := os.Getenv(key)
	if value == "" {
		log.Debugf("Environment variable %s not set, using default value", key)
		return defaultValue
	}
	return value
}

// GetEnvAsType retrieves an environment variable and converts it to the specified type
// using generic type handling.
func GetEnvAsType[T any](key string, defaultValue T) T {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var result T
	switch any(result).(type) {
	case int:
		intValue, err := strconv.Atoi(value)
		if err != nil {
			return defaultValue
		}
		return any(intValue).(T)
	case string:
		return any(value).(T)
	case bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			return defaultValue
		}
		return any(boolValue).(T)
	default:
		return defaultValue // Fallback for unsupported types
	}
}
