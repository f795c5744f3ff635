// Package constants provides shared constants used throughout asakit.
// This includes timeouts, file permissions, import-file defaults and the
// column names of the Apple Search Ads bulk import schemas.
package constants

import "time"

// Timeout constants
const (
	// DefaultHTTPTimeout is the standard timeout for HTTP requests to remote APIs
	DefaultHTTPTimeout = 30 * time.Second

	// BrowserWaitTimeout bounds how long the browser waits for the rendered keyword table
	BrowserWaitTimeout = 10 * time.Second

	// BrowserFetchTimeout bounds a whole headless browser session
	BrowserFetchTimeout = 60 * time.Second

	// LLMTimeout bounds a single language-model completion
	LLMTimeout = 3 * time.Minute

	// ShutdownTimeout is how long shutdown hooks get after a failed command
	ShutdownTimeout = 5 * time.Second
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Paging
const (
	// DefaultPageSize is the default number of campaigns per request
	DefaultPageSize = 100

	// MaxPageSize is the largest page the campaign API accepts
	MaxPageSize = 1000
)

// Default directories and file names
const (
	DefaultInputDir  = "input"
	DefaultOutputDir = "output"

	// DefaultKeywordExport is the ad group keyword export downloaded from the ASA console
	DefaultKeywordExport = "ad_group_keyword_list.csv"

	// DefaultCandidateList is the hand-maintained comma list of keywords to add
	DefaultCandidateList = "keywords_to_be_added.txt"

	// DefaultFilteredList is where the reconciled keyword list is written
	DefaultFilteredList = "keywords_to_be_added_clean.txt"

	// DefaultCampaignsFile is where fetched campaigns are saved
	DefaultCampaignsFile = "apple_campaigns.json"
)

// Apple Search Ads values
const (
	ActionCreate = "CREATE"
	StatusActive = "ACTIVE"

	MatchTypeBroad = "BROAD"
	MatchTypeExact = "EXACT"

	// ExistingKeywordColumn is the zero-based column of the keyword in the
	// ad group keyword export.
	ExistingKeywordColumn = 2
)
