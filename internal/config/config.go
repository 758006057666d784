// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config is the application configuration. It can be loaded from a JSON
// file; missing values fall back to environment variables and defaults.
type Config struct {
	// Behavior
	APIKey         string `json:"api_key,omitempty"`         // Gemini API key; empty selects the local embedder
	EmbeddingModel string `json:"embedding_model,omitempty"` // embedding model name
	DatabaseURL    string `json:"database_url,omitempty"`    // PostgreSQL URL for the analysis history (optional)
	Port           int    `json:"port,omitempty"`            // HTTP listen port

	// Scoring
	SemanticWeight float64 `json:"semantic_weight,omitempty"` // share of the overall score from semantic similarity
	SkillWeight    float64 `json:"skill_weight,omitempty"`    // share of the overall score from skill match

	// Data overrides
	SkillsFile string `json:"skills_file,omitempty"` // taxonomy JSON path; empty uses the embedded dataset
	RolesFile  string `json:"roles_file,omitempty"`  // role-profile JSON path; empty uses the embedded dataset

	// Logging
	JSONLogs bool `json:"json_logs,omitempty"`
	Debug    bool `json:"debug,omitempty"`
}

// Defaults returns the built-in configuration values.
func Defaults() Config {
	return Config{
		Port:           8080,
		SemanticWeight: 0.5,
		SkillWeight:    0.5,
	}
}

// Load reads configuration from a JSON file.
func Load(path string) (*Config, error) {
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

// FromEnv fills empty fields from environment variables. Explicit file or
// flag values win over the environment.
func (c *Config) FromEnv() {
	if c.APIKey == "" {
		c.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if c.Port == 0 {
		if p, err := strconv.Atoi(os.Getenv("PORT")); err == nil {
			c.Port = p
		}
	}
}

// MergeWithDefaults returns a copy with zero-valued fields filled from
// defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.EmbeddingModel == "" {
		result.EmbeddingModel = defaults.EmbeddingModel
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.SemanticWeight == 0 && result.SkillWeight == 0 {
		result.SemanticWeight = defaults.SemanticWeight
		result.SkillWeight = defaults.SkillWeight
	}
	if result.SkillsFile == "" {
		result.SkillsFile = defaults.SkillsFile
	}
	if result.RolesFile == "" {
		result.RolesFile = defaults.RolesFile
	}

	return result
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be in [0, 65535], got %d", c.Port)
	}
	if c.SemanticWeight < 0 || c.SemanticWeight > 1 {
		return fmt.Errorf("config error: 'semantic_weight' must be in [0, 1]")
	}
	if c.SkillWeight < 0 || c.SkillWeight > 1 {
		return fmt.Errorf("config error: 'skill_weight' must be in [0, 1]")
	}

	if c.SkillsFile != "" {
		if _, err := os.Stat(c.SkillsFile); os.IsNotExist(err) {
			return fmt.Errorf("config error: skills file not found: %s", c.SkillsFile)
		}
	}
	if c.RolesFile != "" {
		if _, err := os.Stat(c.RolesFile); os.IsNotExist(err) {
			return fmt.Errorf("config error: roles file not found: %s", c.RolesFile)
		}
	}

	return nil
}
