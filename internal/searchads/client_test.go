package searchads

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asakit/asakit/pkg/errors"
	"github.com/asakit/asakit/pkg/logging"
)

type fakeAPI struct {
	campaigns   []Campaign
	tokenCalls  atomic.Int32
	lastHeaders http.Header
}

func (f *fakeAPI) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		f.tokenCalls.Add(1)
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
		assert.Equal(t, "id", r.PostForm.Get("client_id"))
		assert.Equal(t, "secret", r.PostForm.Get("client_secret"))
		assert.Equal(t, DefaultScope, r.PostForm.Get("scope"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"tok-1","token_type":"Bearer","expires_in":3600}`))
	})
	mux.HandleFunc("/campaigns", func(w http.ResponseWriter, r *http.Request) {
		f.lastHeaders = r.Header.Clone()
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

		end := offset + limit
		if end > len(f.campaigns) {
			end = len(f.campaigns)
		}
		data := []Campaign{}
		if offset < len(f.campaigns) {
			data = f.campaigns[offset:end]
		}
		_ = json.NewEncoder(w).Encode(Page{
			Data:       data,
			Pagination: &Pagination{TotalResults: len(f.campaigns), StartIndex: offset, ItemsPerPage: limit},
		})
	})
	mux.HandleFunc("/campaigns/7", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"id":7,"name":"Coins US","status":"ENABLED","budgetAmount":{"amount":"100","currency":"USD"}}}`))
	})
	mux.HandleFunc("/campaigns/8", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"errors":[{"messageCode":"NOT_FOUND"}]}}`))
	})
	return mux
}

func newTestClient(t *testing.T, f *fakeAPI) *Client {
	t.Helper()
	srv := httptest.NewServer(f.handler(t))
	t.Cleanup(srv.Close)

	c, err := New(Config{
		ClientID:     "id",
		ClientSecret: "secret",
		OrgID:        "42",
		BaseURL:      srv.URL,
	}, WithHTTPClient(srv.Client()), WithLogger(logging.NewNopLogger()))
	require.NoError(t, err)
	return c
}

func campaigns(n int) []Campaign {
	out := make([]Campaign, n)
	for i := range out {
		out[i] = Campaign{ID: int64(i + 1), Name: "c" + strconv.Itoa(i+1), Status: "ENABLED"}
	}
	return out
}

func TestConfigValidate(t *testing.T) {
	err := Config{ClientID: "id"}.Validate()
	require.Error(t, err)
	assert.True(t, errors.IsConfigError(err))
	assert.True(t, errors.IsCredentialsError(err))
	assert.Contains(t, err.Error(), EnvClientSecret)
	assert.Contains(t, err.Error(), EnvOrgID)
	assert.NotContains(t, err.Error(), EnvClientID)

	_, err = New(Config{})
	assert.True(t, errors.IsCredentialsError(err))
}

func TestListCampaigns(t *testing.T) {
	f := &fakeAPI{campaigns: campaigns(3)}
	c := newTestClient(t, f)

	page, err := c.ListCampaigns(context.Background(), 100, 0)
	require.NoError(t, err)
	assert.Len(t, page.Data, 3)
	assert.Equal(t, 3, page.Pagination.TotalResults)

	assert.Equal(t, "Bearer tok-1", f.lastHeaders.Get("Authorization"))
	assert.Equal(t, "orgId=42", f.lastHeaders.Get("X-AP-Context"))
	assert.Equal(t, "application/json", f.lastHeaders.Get("Content-Type"))
}

func TestTokenIsReused(t *testing.T) {
	f := &fakeAPI{campaigns: campaigns(2)}
	c := newTestClient(t, f)

	for i := 0; i < 3; i++ {
		_, err := c.ListCampaigns(context.Background(), 10, 0)
		require.NoError(t, err)
	}
	assert.Equal(t, int32(1), f.tokenCalls.Load())
}

func TestListAllCampaigns(t *testing.T) {
	f := &fakeAPI{campaigns: campaigns(25)}
	c := newTestClient(t, f)

	all, err := c.ListAllCampaigns(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, all, 25)
	assert.Equal(t, int64(25), all[24].ID)
}

func TestListAllCampaignsEmpty(t *testing.T) {
	c := newTestClient(t, &fakeAPI{})
	all, err := c.ListAllCampaigns(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestGetCampaign(t *testing.T) {
	c := newTestClient(t, &fakeAPI{})

	camp, err := c.GetCampaign(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Coins US", camp.Name)
	require.NotNil(t, camp.BudgetAmount)
	assert.Equal(t, "USD", camp.BudgetAmount.Currency)

	_, err = c.GetCampaign(context.Background(), 8)
	assert.True(t, errors.IsNotFound(err))
}

func TestTokenRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid_client"}`))
	}))
	defer srv.Close()

	c, err := New(Config{ClientID: "id", ClientSecret: "bad", OrgID: "1", BaseURL: srv.URL},
		WithHTTPClient(srv.Client()), WithLogger(logging.NewNopLogger()))
	require.NoError(t, err)

	_, err = c.ListCampaigns(context.Background(), 10, 0)
	require.Error(t, err)
	assert.True(t, errors.IsCredentialsError(err))
}

func TestSaveCampaigns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "apple_campaigns.json")
	require.NoError(t, SaveCampaigns(path, campaigns(2)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  {")

	var back []Campaign
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, campaigns(2), back)
}
