package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultBaseURL is the local development backend.
const DefaultBaseURL = "http://localhost:8080/api"

// DefaultTimeout bounds every API call.
const DefaultTimeout = 30 * time.Second

// Config holds all configuration for the client
type Config struct {
	BaseURL  string
	Timeout  time.Duration
	StateDir string
}

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	baseURL := strings.TrimSpace(getEnv("PENSION_API_URL", DefaultBaseURL))
	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid PENSION_API_URL: '%s'", baseURL)
	}

	timeout := DefaultTimeout
	if raw := getEnv("PENSION_API_TIMEOUT_SECONDS", ""); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			timeout = time.Duration(secs) * time.Second
		}
	}

	stateDir := getEnv("PENSION_STATE_DIR", "")
	if stateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir for state: %w", err)
		}
		stateDir = filepath.Join(home, ".pension-admin")
	}

	return &Config{
		BaseURL:  strings.TrimRight(baseURL, "/"),
		Timeout:  timeout,
		StateDir: stateDir,
	}, nil
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
