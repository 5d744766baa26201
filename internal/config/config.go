// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// EnvAPIKey is the environment variable carrying the Gemini API key.
const EnvAPIKey = "GEMINI_API_KEY"

// Config is the process configuration loadable from a JSON file. All fields
// are optional; missing values use defaults or come from CLI flags.
type Config struct {
	// Inputs
	Resume   string `json:"resume,omitempty"`   // path to resume text file
	Postings string `json:"postings,omitempty"` // path to postings JSON file

	// Preferences
	PreferredRegions []string `json:"preferred_regions,omitempty"`
	CurrentSalary    int      `json:"current_salary,omitempty"` // 10,000 KRW units

	// Behavior
	APIKey  string `json:"api_key,omitempty"` // Gemini API key; env wins
	Model   string `json:"model,omitempty"`   // Gemini model name
	TopN    int    `json:"top_n,omitempty"`   // result count cap
	Seed    int64  `json:"seed,omitempty"`    // presentation jitter seed
	Verbose bool   `json:"verbose,omitempty"`

	// Server
	ListenAddr string `json:"listen_addr,omitempty"`
}

// LoadConfig loads configuration from a JSON file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

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

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if c.CurrentSalary < 0 {
		return fmt.Errorf("config error: 'current_salary' must be non-negative")
	}
	if c.TopN < 0 {
		return fmt.Errorf("config error: 'top_n' must be non-negative")
	}
	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}
	if c.Postings != "" {
		if _, err := os.Stat(c.Postings); os.IsNotExist(err) {
			return fmt.Errorf("config error: postings file not found: %s", c.Postings)
		}
	}
	return nil
}

// ResolveAPIKey returns the Gemini API key, preferring the environment over
// the config file. A .env file in the working directory is loaded first
// when present; a missing .env is not an error.
func (c *Config) ResolveAPIKey() string {
	_ = godotenv.Load()
	if key := os.Getenv(EnvAPIKey); key != "" {
		return key
	}
	return c.APIKey
}
