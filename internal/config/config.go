// Package config provides configuration loading and validation for the CLI
// and the HTTP server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-insight/internal/logger"
)

// Config represents configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided
// via CLI flags. The Gemini API key is usually supplied through the
// GEMINI_API_KEY environment variable instead of the file.
type Config struct {
	// Inputs
	Resume string `json:"resume,omitempty"`  // Path to resume text file
	JobURL string `json:"job_url,omitempty"` // URL to mine target keywords from

	// Scoring
	TargetRole     string   `json:"target_role,omitempty"`     // Role whose keyword dictionary to score against
	TargetKeywords []string `json:"target_keywords,omitempty"` // Explicit keywords, merged with the role dictionary
	UseAI          bool     `json:"use_ai,omitempty"`          // Prefer the LLM scorer when an API key is set

	// Behavior
	APIKey         string `json:"api_key,omitempty"`         // Gemini API key
	UseBrowser     bool   `json:"use_browser,omitempty"`     // Use headless browser for SPA job boards
	TimeoutSeconds int    `json:"timeout_seconds,omitempty"` // Per-request timeout for outbound fetches
	DictionaryPath string `json:"dictionary_path,omitempty"` // JSON file overriding scoring dictionaries

	// Server
	Port           int `json:"port,omitempty"`             // HTTP listen port
	MaxUploadBytes int `json:"max_upload_bytes,omitempty"` // Upload size cap for /extract

	// Logging
	Log logger.Config `json:"log,omitempty"`
}

// Defaults used when neither the file nor flags set a value.
const (
	DefaultPort           = 8080
	DefaultTimeoutSeconds = 30
	DefaultMaxUploadBytes = 5 << 20
)

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Required fields are not checked here; CLI flag validation handles those
// after merging.
func (c *Config) Validate() error {
	if c.Resume != "" && c.JobURL == c.Resume {
		return fmt.Errorf("config error: 'resume' and 'job_url' point at the same value")
	}

	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'timeout_seconds' must be non-negative")
	}
	if c.MaxUploadBytes < 0 {
		return fmt.Errorf("config error: 'max_upload_bytes' must be non-negative")
	}

	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}

	if c.DictionaryPath != "" {
		if _, err := os.Stat(c.DictionaryPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: dictionary file not found: %s", c.DictionaryPath)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.JobURL == "" {
		result.JobURL = defaults.JobURL
	}
	if result.TargetRole == "" {
		result.TargetRole = defaults.TargetRole
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DictionaryPath == "" {
		result.DictionaryPath = defaults.DictionaryPath
	}
	if len(result.TargetKeywords) == 0 {
		result.TargetKeywords = defaults.TargetKeywords
	}

	// Int fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.TimeoutSeconds == 0 {
		result.TimeoutSeconds = defaults.TimeoutSeconds
	}
	if result.MaxUploadBytes == 0 {
		result.MaxUploadBytes = defaults.MaxUploadBytes
	}

	if result.Log.Level == "" {
		result.Log = defaults.Log
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// WithFallbacks fills remaining zero values with compiled-in defaults.
func (c *Config) WithFallbacks() *Config {
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.TimeoutSeconds == 0 {
		c.TimeoutSeconds = DefaultTimeoutSeconds
	}
	if c.MaxUploadBytes == 0 {
		c.MaxUploadBytes = DefaultMaxUploadBytes
	}
	if c.Log.Level == "" {
		c.Log = logger.DefaultConfig()
	}
	return c
}
