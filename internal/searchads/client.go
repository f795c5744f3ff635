// Package searchads is a read-only client for the Apple Search Ads campaign API.
//
// Requests authenticate with an OAuth2 client-credentials token that is cached
// and refreshed on expiry, and carry the organization in the X-AP-Context header.
package searchads

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/asakit/asakit/internal/transport"
	"github.com/asakit/asakit/pkg/constants"
	"github.com/asakit/asakit/pkg/errors"
	"github.com/asakit/asakit/pkg/logging"
)

const (
	// DefaultBaseURL is the Apple Search Ads API root.
	DefaultBaseURL = "https://api.searchads.apple.com/api/v4"

	// DefaultScope is the OAuth2 scope requested for the token.
	DefaultScope = "searchads.readonly"

	serviceName = "apple-search-ads"
)

// Environment variables holding the credentials.
const (
	EnvClientID     = "APPLE_ADS_CLIENT_ID"
	EnvClientSecret = "APPLE_ADS_CLIENT_SECRET"
	EnvOrgID        = "APPLE_ADS_ORG_ID"
)

// Config holds the API credentials and endpoints.
type Config struct {
	ClientID     string
	ClientSecret string
	OrgID        string
	BaseURL      string
	TokenURL     string // defaults to BaseURL + "/oauth/token"
	Scope        string
}

// Validate reports every missing credential at once.
func (c Config) Validate() error {
	var missing []string
	if c.ClientID == "" {
		missing = append(missing, EnvClientID)
	}
	if c.ClientSecret == "" {
		missing = append(missing, EnvClientSecret)
	}
	if c.OrgID == "" {
		missing = append(missing, EnvOrgID)
	}
	if len(missing) > 0 {
		return errors.MissingEnvError("apple search ads", missing...)
	}
	return nil
}

// Client calls the campaign endpoints.
type Client struct {
	baseURL string
	http    *transport.Client
	logger  *zerolog.Logger
}

// Option configures a Client.
type Option func(*options)

type options struct {
	httpClient *http.Client
	logger     *zerolog.Logger
}

// WithHTTPClient sets the HTTP client used for both token and API requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) {
		o.httpClient = hc
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// New validates cfg and returns a client. No request is made until the first call.
func New(cfg Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := options{
		httpClient: &http.Client{Timeout: constants.DefaultHTTPTimeout},
		logger:     logging.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	tokenURL := cfg.TokenURL
	if tokenURL == "" {
		tokenURL = baseURL + "/oauth/token"
	}
	scope := cfg.Scope
	if scope == "" {
		scope = DefaultScope
	}

	cc := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     tokenURL,
		Scopes:       []string{scope},
		AuthStyle:    oauth2.AuthStyleInParams,
	}
	tokenCtx := context.WithValue(context.Background(), oauth2.HTTPClient, o.httpClient)

	return &Client{
		baseURL: baseURL,
		logger:  o.logger,
		http: transport.New(&transport.BearerAuth{},
			transport.WithHTTPClient(o.httpClient),
			transport.WithTokenSource(cc.TokenSource(tokenCtx)),
			transport.WithHeader("X-AP-Context", "orgId="+cfg.OrgID),
			transport.WithHeader("Content-Type", "application/json"),
			transport.WithService(serviceName),
		),
	}, nil
}

// ListCampaigns fetches one page of campaigns.
func (c *Client) ListCampaigns(ctx context.Context, limit, offset int) (*Page, error) {
	if limit <= 0 {
		limit = constants.DefaultPageSize
	}
	if limit > constants.MaxPageSize {
		limit = constants.MaxPageSize
	}

	q := url.Values{}
	q.Set("limit", fmt.Sprint(limit))
	q.Set("offset", fmt.Sprint(offset))

	var page Page
	if err := c.http.GetJSON(ctx, c.baseURL+"/campaigns?"+q.Encode(), &page); err != nil {
		return nil, err
	}
	c.logger.Debug().
		Int("limit", limit).
		Int("offset", offset).
		Int("count", len(page.Data)).
		Msg("Fetched campaign page")
	return &page, nil
}

// ListAllCampaigns follows pagination until every campaign has been fetched.
func (c *Client) ListAllCampaigns(ctx context.Context, pageSize int) ([]Campaign, error) {
	var all []Campaign
	offset := 0
	for {
		page, err := c.ListCampaigns(ctx, pageSize, offset)
		if err != nil {
			return nil, err
		}
		all = append(all, page.Data...)
		offset += len(page.Data)

		if len(page.Data) == 0 || page.Pagination == nil || offset >= page.Pagination.TotalResults {
			return all, nil
		}
	}
}

// GetCampaign fetches a single campaign.
func (c *Client) GetCampaign(ctx context.Context, id int64) (*Campaign, error) {
	var resp struct {
		Data *Campaign `json:"data"`
	}
	if err := c.http.GetJSON(ctx, fmt.Sprintf("%s/campaigns/%d", c.baseURL, id), &resp); err != nil {
		if isStatus(err, http.StatusNotFound) {
			return nil, errors.NewNotFoundError("campaign", fmt.Sprint(id))
		}
		return nil, err
	}
	if resp.Data == nil {
		return nil, errors.NewNotFoundError("campaign", fmt.Sprint(id))
	}
	return resp.Data, nil
}

func isStatus(err error, status int) bool {
	var apiErr *errors.APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == status
}
