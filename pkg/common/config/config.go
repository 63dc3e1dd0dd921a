package config

import (
	"errors"
	"os"
	"time"
)

type Config struct {
	// Assessment API
	BaseURL        string
	APIKey         string
	RequestTimeout time.Duration

	// Scoring
	RiskRulesFile string

	// Logging
	LogLevel string
}

func Load() *Config {
	return &Config{
		BaseURL:        getEnv("ASSESSMENT_BASE_URL", "https://assessment.ksensetech.com/api"),
		APIKey:         getEnv("ASSESSMENT_API_KEY", ""),
		RequestTimeout: getDuration("REQUEST_TIMEOUT", 30*time.Second),

		RiskRulesFile: getEnv("RISK_RULES_FILE", ""),

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

// Validate checks the settings the job cannot run without.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return errors.New("ASSESSMENT_API_KEY is required")
	}
	if c.BaseURL == "" {
		return errors.New("ASSESSMENT_BASE_URL must not be empty")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
