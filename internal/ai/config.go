// Package ai forwards assembled prompts to an OpenAI-compatible completion
// API and relays the text answer.
package ai

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds AI provider credentials and request settings.
type Config struct {
	OpenAIAPIKey  string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL"`
	OpenAIModel   string `env:"OPENAI_MODEL"    envDefault:"gpt-4o"`

	AzureAPIKey     string `env:"AZURE_OPENAI_API_KEY"`
	AzureEndpoint   string `env:"AZURE_OPENAI_ENDPOINT"`
	AzureDeployment string `env:"AZURE_OPENAI_DEPLOYMENT_NAME"`
	AzureAPIVersion string `env:"AZURE_OPENAI_API_VERSION" envDefault:"2024-02-15-preview"`

	Temperature float64       `env:"AI_TEMPERATURE" envDefault:"0"`
	MaxTokens   int64         `env:"AI_MAX_TOKENS"  envDefault:"4000"`
	Timeout     time.Duration `env:"AI_TIMEOUT"     envDefault:"60s"`
}

// LoadConfig parses Config from environ. A nil environ reads the process
// environment.
func LoadConfig(environ map[string]string) (Config, error) {
	var cfg Config
	opts := env.Options{}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse AI config: %w", err)
	}
	if cfg.MaxTokens < 0 {
		return Config{}, fmt.Errorf("AI_MAX_TOKENS must be non-negative, got %d", cfg.MaxTokens)
	}
	return cfg, nil
}

// OpenAIConfigured reports whether an OpenAI API key is set.
func (c *Config) OpenAIConfigured() bool {
	return c.OpenAIAPIKey != ""
}

// AzureConfigured reports whether every Azure OpenAI setting is present.
func (c *Config) AzureConfigured() bool {
	return c.AzureAPIKey != "" && c.AzureEndpoint != "" && c.AzureDeployment != ""
}
