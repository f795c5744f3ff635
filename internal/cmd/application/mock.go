package application

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/asakit/asakit/internal/diandian"
	"github.com/asakit/asakit/internal/llm"
)

// Mock provides a mock implementation of Application for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default/zero value.
//
// Example Usage:
//
//	mock := &application.Mock{
//	    DefaultsFunc: func() application.Defaults {
//	        return application.Defaults{InputDir: dir, OutputDir: dir}
//	    },
//	}
//	cmd := keywords.NewCommand(mock)
//	// ... test command
type Mock struct {
	LoggerFunc       func() *zerolog.Logger
	OutputFormatFunc func() string
	DefaultsFunc     func() Defaults
	LLMFunc          func(ctx context.Context) (*llm.Client, error)
	CampaignsFunc    func() (Campaigns, error)
	PageSourceFunc   func() diandian.PageSource
	VersionFunc      func() string
	CommitFunc       func() string
	DateFunc         func() string
	BuiltByFunc      func() string
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns output format using the mock function or "table".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "table"
}

// Defaults returns defaults using the mock function or input/output dirs.
func (m *Mock) Defaults() Defaults {
	if m.DefaultsFunc != nil {
		return m.DefaultsFunc()
	}
	return Defaults{InputDir: "input", OutputDir: "output"}
}

// LLM returns a client using the mock function or nil.
func (m *Mock) LLM(ctx context.Context) (*llm.Client, error) {
	if m.LLMFunc != nil {
		return m.LLMFunc(ctx)
	}
	return nil, nil
}

// Campaigns returns a campaign client using the mock function or nil.
func (m *Mock) Campaigns() (Campaigns, error) {
	if m.CampaignsFunc != nil {
		return m.CampaignsFunc()
	}
	return nil, nil
}

// PageSource returns a page source using the mock function or nil.
func (m *Mock) PageSource() diandian.PageSource {
	if m.PageSourceFunc != nil {
		return m.PageSourceFunc()
	}
	return nil
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns commit using the mock function or "unknown".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns date using the mock function or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy returns builtBy using the mock function or "test".
func (m *Mock) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "test"
}

// Ensure Mock implements Application at compile time.
var _ Application = (*Mock)(nil)
