// Package application defines the contract between the asakit application and
// its commands. Commands accept an Application rather than the concrete app so
// they can be tested with Mock.
package application

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/asakit/asakit/internal/diandian"
	"github.com/asakit/asakit/internal/llm"
	"github.com/asakit/asakit/internal/searchads"
)

// Campaigns is the part of the Search Ads client the commands use.
type Campaigns interface {
	ListCampaigns(ctx context.Context, limit, offset int) (*searchads.Page, error)
	ListAllCampaigns(ctx context.Context, pageSize int) ([]searchads.Campaign, error)
	GetCampaign(ctx context.Context, id int64) (*searchads.Campaign, error)
}

// Defaults are the configured fallbacks for command flags.
type Defaults struct {
	CampaignID int64
	AdGroupID  int64
	InputDir   string
	OutputDir  string
}

// Application provides what commands need from the running application.
type Application interface {
	// Logger returns the configured logger.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (table, wide, json, yaml).
	OutputFormat() string

	// Defaults returns the configured flag defaults.
	Defaults() Defaults

	// LLM returns the completion client, built on first use.
	// Missing credentials are reported here, not at start-up.
	LLM(ctx context.Context) (*llm.Client, error)

	// Campaigns returns the Search Ads client, built on first use.
	Campaigns() (Campaigns, error)

	// PageSource returns the browser used to load diandian pages.
	PageSource() diandian.PageSource

	Version() string
	Commit() string
	Date() string
	BuiltBy() string
}
