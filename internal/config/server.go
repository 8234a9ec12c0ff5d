// Manages server configuration stored in server_config.yaml.

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ServerConfigFile is the settings file name inside the data directory.
const ServerConfigFile = "server_config.yaml"

// ServerConfig stores server-wide settings.
// Loaded from server_config.yaml, created with defaults if missing.
type ServerConfig struct {
	// MaxRequestBodyBytes limits the size of any single HTTP request body.
	MaxRequestBodyBytes int64 `yaml:"max_request_body_bytes"`

	// MaxPromptBytes caps the data sent to the AI provider. Trailing case
	// studies are dropped to fit. 0 means unbounded.
	MaxPromptBytes int `yaml:"max_prompt_bytes"`

	// HighRelevanceScore is the score above which a recommendation counts as
	// highly relevant.
	HighRelevanceScore float64 `yaml:"high_relevance_score"`
}

// DefaultServerConfig returns the default settings.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		MaxRequestBodyBytes: 1 << 20,
		MaxPromptBytes:      0,
		HighRelevanceScore:  70,
	}
}

// Validate checks that all values are in range.
func (c *ServerConfig) Validate() error {
	if c.MaxRequestBodyBytes < 0 {
		return errors.New("max_request_body_bytes must be non-negative")
	}
	if c.MaxPromptBytes < 0 {
		return errors.New("max_prompt_bytes must be non-negative")
	}
	if c.HighRelevanceScore < 0 || c.HighRelevanceScore > 100 {
		return errors.New("high_relevance_score must be between 0 and 100")
	}
	return nil
}

// LoadServerConfig reads server_config.yaml from dataDir, writing the
// defaults there first if the file does not exist.
func LoadServerConfig(dataDir string) (*ServerConfig, error) {
	path := filepath.Join(dataDir, ServerConfigFile)
	cfg := DefaultServerConfig()
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is constructed from the data-dir flag
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		if err := saveServerConfig(path, cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", path, err)
	}
	return cfg, nil
}

func saveServerConfig(path string, cfg *ServerConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
