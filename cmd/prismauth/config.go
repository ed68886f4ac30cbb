package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Schemes accepted in the password_scheme config field
const (
	SchemePlaintext = "plaintext"
	SchemeUnixCrypt = "unix-crypt"
)

// Config holds the account manager configuration
type Config struct {
	// DataDir holds the persisted directory (accounts.json) and the
	// durable session record (session.json)
	DataDir string `json:"data_dir"`

	// PasswordScheme selects how credentials are stored: "plaintext"
	// (the default, matches existing data files) or "unix-crypt"
	PasswordScheme string `json:"password_scheme,omitempty"`

	// Logging settings
	AppLogPath string `json:"app_log_path,omitempty"` // Optional: path to diagnostic log file
	Debug      bool   `json:"debug,omitempty"`        // Enable debug logging
}

// LoadConfig loads configuration from a JSON file
func LoadConfig(path string, config *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := json.Unmarshal(data, config); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	// Convert relative paths to absolute paths based on config file location
	configDir := filepath.Dir(path)
	if config.DataDir == "" {
		config.DataDir = filepath.Join(configDir, "data")
	} else if !filepath.IsAbs(config.DataDir) {
		config.DataDir = filepath.Join(configDir, config.DataDir)
	}
	if config.AppLogPath != "" && !filepath.IsAbs(config.AppLogPath) {
		config.AppLogPath = filepath.Join(configDir, config.AppLogPath)
	}

	if config.PasswordScheme == "" {
		config.PasswordScheme = SchemePlaintext
	}
	switch config.PasswordScheme {
	case SchemePlaintext, SchemeUnixCrypt:
	default:
		return fmt.Errorf("unknown password_scheme %q", config.PasswordScheme)
	}

	return nil
}

// DirectoryPath returns the path of the persisted account directory
func (c *Config) DirectoryPath() string {
	return filepath.Join(c.DataDir, "accounts.json")
}

// SessionPath returns the path of the durable session record
func (c *Config) SessionPath() string {
	return filepath.Join(c.DataDir, "session.json")
}
