package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/azure"
	"github.com/openai/openai-go/option"
)

// Completer sends a system and a user message to a chat model and returns
// the text of the first choice.
type Completer interface {
	// Name identifies the provider in user-visible messages.
	Name() string
	Complete(ctx context.Context, system, user string) (string, error)
}

// StatusError is returned by a Completer when the provider answers with a
// non-success HTTP status.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("status %d: %s", e.StatusCode, e.Message)
}

// chatCompleter calls the chat completions endpoint through openai-go.
type chatCompleter struct {
	name        string
	client      openai.Client
	model       string
	temperature float64
	maxTokens   int64
}

// NewOpenAI returns a Completer for the OpenAI API, or nil when no API key is
// configured. hc may be nil.
func NewOpenAI(cfg *Config, hc *http.Client) Completer {
	if !cfg.OpenAIConfigured() {
		return nil
	}
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.OpenAIAPIKey),
		option.WithMaxRetries(0),
	}
	if cfg.OpenAIBaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.OpenAIBaseURL))
	}
	if hc != nil {
		opts = append(opts, option.WithHTTPClient(hc))
	}
	return &chatCompleter{
		name:        "OpenAI",
		client:      openai.NewClient(opts...),
		model:       cfg.OpenAIModel,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
	}
}

// NewAzure returns a Completer for an Azure OpenAI deployment, or nil when
// the Azure settings are incomplete. hc may be nil.
func NewAzure(cfg *Config, hc *http.Client) Completer {
	if !cfg.AzureConfigured() {
		return nil
	}
	opts := []option.RequestOption{
		azure.WithEndpoint(strings.TrimSuffix(cfg.AzureEndpoint, "/"), cfg.AzureAPIVersion),
		azure.WithAPIKey(cfg.AzureAPIKey),
		option.WithMaxRetries(0),
	}
	if hc != nil {
		opts = append(opts, option.WithHTTPClient(hc))
	}
	return &chatCompleter{
		name:        "Azure OpenAI",
		client:      openai.NewClient(opts...),
		model:       cfg.AzureDeployment,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
	}
}

func (c *chatCompleter) Name() string {
	return c.name
}

func (c *chatCompleter) Complete(ctx context.Context, system, user string) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
		Temperature: openai.Float(c.temperature),
	}
	if c.maxTokens > 0 {
		params.MaxTokens = openai.Int(c.maxTokens)
	}
	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", &StatusError{StatusCode: apiErr.StatusCode, Message: apiErr.Message}
		}
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
