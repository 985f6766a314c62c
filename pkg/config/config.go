// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for the server, talk API client, logging and rate limiting

package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Talk contains the talk API client configuration
	Talk TalkConfig

	// Log contains logger configuration
	Log LogConfig

	// RateLimit contains per-client request limits
	RateLimit RateLimitConfig

	// Projects contains project link configuration
	Projects ProjectsConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// ReadTimeout bounds reading a request
	ReadTimeout time.Duration

	// WriteTimeout bounds writing a response
	WriteTimeout time.Duration
}

// TalkConfig holds talk API client configuration
type TalkConfig struct {
	// BaseURL is the talk API root
	BaseURL string

	// PageSize is the default number of discussions per fetch page
	PageSize int

	// RequestTimeout bounds a single discussions request
	RequestTimeout time.Duration

	// MaxPageSpan bounds how many logical pages one search may cover
	MaxPageSpan int
}

// LogConfig holds logger configuration
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string

	// Format is json or text
	Format string

	// File optionally mirrors logs to a rotated file
	File string
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	// Requests is the number of requests allowed per window
	Requests int

	// Window is the refill window
	Window time.Duration
}

// ProjectsConfig holds project link configuration
type ProjectsConfig struct {
	// LinksFile is an optional YAML file replacing the built-in links
	LinksFile string
}

// Load reads an optional .env file and then loads configuration from the environment.
// Variables already set in the environment take precedence over the file.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	return LoadFromEnv()
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnvOrDefault("PORT", "8000"),
			ReadTimeout:  getEnvAsDurationOrDefault("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getEnvAsDurationOrDefault("SERVER_WRITE_TIMEOUT", 60*time.Second),
		},
		Talk: TalkConfig{
			BaseURL:        getEnvOrDefault("TALK_BASE_URL", "https://talk.zooniverse.org"),
			PageSize:       getEnvAsIntOrDefault("TALK_PAGE_SIZE", 100),
			RequestTimeout: getEnvAsDurationOrDefault("TALK_REQUEST_TIMEOUT", 30*time.Second),
			MaxPageSpan:    getEnvAsIntOrDefault("TALK_MAX_PAGE_SPAN", 1000),
		},
		Log: LogConfig{
			Level:  strings.ToLower(getEnvOrDefault("LOG_LEVEL", "info")),
			Format: strings.ToLower(getEnvOrDefault("LOG_FORMAT", "json")),
			File:   getEnvOrDefault("LOG_FILE", ""),
		},
		RateLimit: RateLimitConfig{
			Requests: getEnvAsIntOrDefault("RATE_LIMIT_REQUESTS", 60),
			Window:   getEnvAsDurationOrDefault("RATE_LIMIT_WINDOW", time.Minute),
		},
		Projects: ProjectsConfig{
			LinksFile: getEnvOrDefault("PROJECT_LINKS_FILE", ""),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDurationOrDefault accepts Go durations ("30s") or plain seconds ("30")
func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Talk.BaseURL == "" {
		return errors.New("talk base URL cannot be empty")
	}

	if c.Talk.PageSize < 1 || c.Talk.PageSize > 100 {
		return errors.New("talk page size must be between 1 and 100")
	}

	if c.Talk.RequestTimeout <= 0 {
		return errors.New("talk request timeout must be positive")
	}

	if c.Talk.MaxPageSpan < 1 {
		return errors.New("talk max page span must be at least 1")
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.New("log level must be one of debug, info, warn, error")
	}

	if c.Log.Format != "json" && c.Log.Format != "text" {
		return errors.New("log format must be 'json' or 'text'")
	}

	if c.RateLimit.Requests < 1 {
		return errors.New("rate limit requests must be at least 1")
	}

	if c.RateLimit.Window <= 0 {
		return errors.New("rate limit window must be positive")
	}

	return nil
}
