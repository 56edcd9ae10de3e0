// Package config handles application configuration.
//
// Configuration comes from environment variables with sensible defaults.
// A local .env file is loaded first if one exists, so development setups
// don't need to export anything by hand.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// Server settings
	Port    string
	GinMode string // "debug", "release", or "test"

	// OpenAI settings. The API key is the single secret this service
	// needs — it backs both Whisper transcription and summarization.
	OpenAIAPIKey string
	OpenAIModel  string // Chat model used for summaries

	// ScratchDir is where fallback audio downloads land. One file per
	// pipeline invocation, removed before the invocation ends.
	ScratchDir string

	// CORS
	AllowedOrigins []string
}

// Load reads configuration from the environment with sensible defaults.
func Load() (*Config, error) {
	// Best effort: a missing .env is fine, the environment wins either way.
	_ = godotenv.Load()

	cfg := &Config{
		Port:    getEnv("PORT", "8080"),
		GinMode: getEnv("GIN_MODE", "debug"),

		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:  getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),

		ScratchDir: getEnv("SCRATCH_DIR", "temp_audio"),

		AllowedOrigins: []string{
			getEnv("CORS_ORIGIN", "http://localhost:5173"),
		},
	}

	// Every summary and every Whisper fallback needs the key, so a release
	// deployment without it could never process a single video.
	if cfg.GinMode == "release" && cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY must be set in production; summarization cannot run without it")
	}

	return cfg, nil
}

// getEnv reads an environment variable with a fallback default.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
