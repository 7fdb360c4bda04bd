// Package config provides configuration for the brand generation service.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the service configuration.
type Config struct {
	// Server settings
	HTTPPort int

	// Database
	DatabaseURL string

	// Provider settings
	OpenAIBaseURL string
	OpenAIAPIKey  string
	TextModel     string
	ImageModel    string

	// Timeouts
	LLMTimeout   time.Duration
	ImageTimeout time.Duration
	ProxyTimeout time.Duration

	// Logging
	LogLevel string
}

// Load loads configuration from environment variables.
func Load() *Config {
	cfg := &Config{
		HTTPPort:      getEnvInt("HTTP_PORT", 8080),
		DatabaseURL:   getEnv("DATABASE_URL", "file:brandforge.db?cache=shared&mode=rwc"),
		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", "https://api.openai.com"),
		OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
		TextModel:     getEnv("TEXT_MODEL", "gpt-4-turbo-preview"),
		ImageModel:    getEnv("IMAGE_MODEL", "dall-e-3"),
		LLMTimeout:    time.Duration(getEnvInt("LLM_TIMEOUT_MS", 60000)) * time.Millisecond,
		ImageTimeout:  time.Duration(getEnvInt("IMAGE_TIMEOUT_MS", 120000)) * time.Millisecond,
		ProxyTimeout:  time.Duration(getEnvInt("PROXY_TIMEOUT_MS", 30000)) * time.Millisecond,
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}
	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}
