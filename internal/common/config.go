package common

import (
	"os"
	"strconv"
)

// Config holds all pipeline tuning knobs
type Config struct {
	Language LanguageConfig
	Scoring  ValidateConfig
	Debug    bool
}

// LanguageConfig holds language-dispatch configuration
type LanguageConfig struct {
	// MinConfidence is the detection confidence below which the dispatcher
	// selects the generic extractor instead of a locale one.
	MinConfidence float64
}

// ValidateConfig holds validator scoring configuration
type ValidateConfig struct {
	Tolerance       float64
	MinorFloor      float64
	CriticalPenalty int
	HighPenalty     int
	WarningPenalty  int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Language: LanguageConfig{
			MinConfidence: getEnvAsFloat64("LANG_MIN_CONFIDENCE", 0.20),
		},
		Scoring: ValidateConfig{
			Tolerance:       getEnvAsFloat64("VALIDATE_TOLERANCE", 1.00),
			MinorFloor:      getEnvAsFloat64("VALIDATE_MINOR_FLOOR", 0.10),
			CriticalPenalty: getEnvAsInt("VALIDATE_PENALTY_CRITICAL", 40),
			HighPenalty:     getEnvAsInt("VALIDATE_PENALTY_HIGH", 25),
			WarningPenalty:  getEnvAsInt("VALIDATE_PENALTY_WARNING", 10),
		},
		Debug: getEnvAsBool("PIPELINE_DEBUG", false),
	}
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Scoring.Tolerance < 0 {
		return NewAppError("CONFIG_ERROR", "VALIDATE_TOLERANCE must be non-negative", ErrInvalidInput)
	}
	if c.Language.MinConfidence < 0 || c.Language.MinConfidence > 1 {
		return NewAppError("CONFIG_ERROR", "LANG_MIN_CONFIDENCE must be in [0,1]", ErrInvalidInput)
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
