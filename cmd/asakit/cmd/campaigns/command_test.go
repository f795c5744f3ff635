package campaigns

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asakit/asakit/internal/cmd/application"
	"github.com/asakit/asakit/internal/searchads"
	"github.com/asakit/asakit/pkg/errors"
)

type fakeCampaigns struct {
	campaigns []searchads.Campaign
	limit     int
	offset    int
	all       bool
}

func (f *fakeCampaigns) ListCampaigns(_ context.Context, limit, offset int) (*searchads.Page, error) {
	f.limit, f.offset = limit, offset
	return &searchads.Page{Data: f.campaigns[:1]}, nil
}

func (f *fakeCampaigns) ListAllCampaigns(_ context.Context, pageSize int) ([]searchads.Campaign, error) {
	f.limit, f.all = pageSize, true
	return f.campaigns, nil
}

func (f *fakeCampaigns) GetCampaign(_ context.Context, id int64) (*searchads.Campaign, error) {
	for i := range f.campaigns {
		if f.campaigns[i].ID == id {
			return &f.campaigns[i], nil
		}
	}
	return nil, errors.NewNotFoundError("campaign", "x")
}

func newMock(fake *fakeCampaigns, format string) *application.Mock {
	return &application.Mock{
		OutputFormatFunc: func() string { return format },
		CampaignsFunc:    func() (application.Campaigns, error) { return fake, nil },
	}
}

var sample = []searchads.Campaign{
	{ID: 1, Name: "Coins US", Status: "ENABLED"},
	{ID: 2, Name: "Coins BR", Status: "PAUSED"},
}

func TestListCommand(t *testing.T) {
	fake := &fakeCampaigns{campaigns: sample}
	save := filepath.Join(t.TempDir(), "campaigns.json")

	var stdout bytes.Buffer
	cmd := NewCommand(newMock(fake, "json"))
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"list", "--limit", "10", "--offset", "5", "--save", save})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, 10, fake.limit)
	assert.Equal(t, 5, fake.offset)
	assert.False(t, fake.all)
	assert.Contains(t, stdout.String(), "Coins US")
	assert.NotContains(t, stdout.String(), "Coins BR")

	data, err := os.ReadFile(save)
	require.NoError(t, err)
	var saved []searchads.Campaign
	require.NoError(t, json.Unmarshal(data, &saved))
	assert.Len(t, saved, 1)
}

func TestListCommandAll(t *testing.T) {
	fake := &fakeCampaigns{campaigns: sample}

	var stdout bytes.Buffer
	cmd := NewCommand(newMock(fake, "table"))
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"list", "--all", "--save", ""})
	require.NoError(t, cmd.Execute())

	assert.True(t, fake.all)
	assert.Contains(t, stdout.String(), "Coins US")
	assert.Contains(t, stdout.String(), "Coins BR")
}

func TestListCommandMissingCredentials(t *testing.T) {
	mock := &application.Mock{
		CampaignsFunc: func() (application.Campaigns, error) {
			return nil, errors.MissingEnvError("apple search ads", searchads.EnvClientID)
		},
	}

	cmd := NewCommand(mock)
	cmd.SetArgs([]string{"list"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.True(t, errors.IsCredentialsError(err))
	assert.Contains(t, err.Error(), searchads.EnvClientID)
}

func TestGetCommand(t *testing.T) {
	fake := &fakeCampaigns{campaigns: sample}

	var stdout bytes.Buffer
	cmd := NewCommand(newMock(fake, "yaml"))
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"get", "2"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), "Coins BR")

	cmd = NewCommand(newMock(fake, "json"))
	cmd.SetArgs([]string{"get", "9"})
	assert.True(t, errors.IsNotFound(cmd.Execute()))

	cmd = NewCommand(newMock(fake, "json"))
	cmd.SetArgs([]string{"get", "abc"})
	assert.True(t, errors.IsValidationError(cmd.Execute()))
}
