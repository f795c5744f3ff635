package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/asakit/asakit/pkg/constants"
	"github.com/asakit/asakit/pkg/errors"
)

// Providers.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Defaults.
const (
	DefaultOpenAIModel = "gpt-4"
	DefaultGeminiModel = "gemini-2.0-flash"
	DefaultTemperature = 0.1
	DefaultMaxTokens   = 1000
)

// Environment variables holding the API keys.
const (
	EnvOpenAIKey = "OPENAI_API_KEY"
	EnvGeminiKey = "GEMINI_API_KEY"
)

// Config selects and configures a backend.
type Config struct {
	Provider    string
	Model       string
	APIKey      string
	BaseURL     string
	Temperature float32
	MaxTokens   int
	HTTPClient  *http.Client
}

// NewFromConfig builds the backend named by cfg.Provider and wraps it in a Client.
func NewFromConfig(ctx context.Context, cfg Config, opts ...Option) (*Client, error) {
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: constants.LLMTimeout}
	}

	var (
		completer Completer
		err       error
	)
	switch strings.ToLower(cfg.Provider) {
	case "", ProviderOpenAI:
		completer, err = NewOpenAI(OpenAIConfig{
			APIKey:      cfg.APIKey,
			BaseURL:     cfg.BaseURL,
			Model:       cfg.Model,
			Temperature: cfg.Temperature,
			MaxTokens:   cfg.MaxTokens,
			HTTPClient:  cfg.HTTPClient,
		})
	case ProviderGemini, "google":
		completer, err = NewGemini(ctx, GeminiConfig{
			APIKey:      cfg.APIKey,
			BaseURL:     cfg.BaseURL,
			Model:       cfg.Model,
			Temperature: cfg.Temperature,
			MaxTokens:   cfg.MaxTokens,
			HTTPClient:  cfg.HTTPClient,
		})
	default:
		return nil, errors.NewConfigError("llm",
			fmt.Sprintf("unknown provider %q (valid: %s, %s)", cfg.Provider, ProviderOpenAI, ProviderGemini), nil)
	}
	if err != nil {
		return nil, err
	}
	return New(completer, opts...), nil
}
