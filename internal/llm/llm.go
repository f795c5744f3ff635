// Package llm sends role and task prompts to a chat completion backend.
//
// A Client is built once from configuration and passed to the commands that
// need it. Backends implement Completer; OpenAI and Gemini are provided.
package llm

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/asakit/asakit/pkg/errors"
	"github.com/asakit/asakit/pkg/logging"
)

// Completer answers a user message under a system prompt.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
	Name() string
}

// Client dispatches role and task prompts to a Completer.
type Client struct {
	completer Completer
	logger    *zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New returns a Client using completer.
func New(completer Completer, opts ...Option) *Client {
	c := &Client{
		completer: completer,
		logger:    logging.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Process sends text under the prompt built from role, task and params and
// returns the trimmed answer.
func (c *Client) Process(ctx context.Context, text string, role Role, task Task, params TaskParams) (string, error) {
	c.logger.Debug().
		Str("backend", c.completer.Name()).
		Stringer("role", role).
		Stringer("task", task).
		Int("input_len", len(text)).
		Msg("Sending completion request")

	out, err := c.completer.Complete(ctx, SystemPrompt(role, task, params), text)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// Translate translates text into lang as a coin expert.
func (c *Client) Translate(ctx context.Context, text, lang string) (string, error) {
	return c.Process(ctx, text, CoinExpert, Translate, TaskParams{TargetLanguage: lang})
}

// ExtractKeywords asks the model for the keywords in text, one per line, and
// returns the non-empty trimmed lines.
func (c *Client) ExtractKeywords(ctx context.Context, text string) ([]string, error) {
	out, err := c.Process(ctx, text, CoinExpert, ExtractKeywords, TaskParams{})
	if err != nil {
		return nil, err
	}
	return SplitLines(out), nil
}

// SplitLines returns the trimmed non-empty lines of s.
func SplitLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

func emptyResponse(backend string) error {
	return &errors.APIError{Service: backend, Message: "no completion returned", Err: errors.ErrEmptyResponse}
}
