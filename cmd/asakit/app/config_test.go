package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asakit/asakit/internal/llm"
	"github.com/asakit/asakit/internal/searchads"
)

// TestLoadConfig verifies the defaults.
func TestLoadConfig(t *testing.T) {
	config, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "table", config.Format)
	assert.Equal(t, searchads.DefaultBaseURL, config.AppleAds.BaseURL)
	assert.Equal(t, searchads.DefaultScope, config.AppleAds.Scope)
	assert.Equal(t, "input", config.InputDir)
	assert.Equal(t, "output", config.OutputDir)
	assert.NotEmpty(t, config.LogFormat)
	assert.Empty(t, config.LogLevel)
}

// TestConfig_EnvironmentVariables verifies environment variable loading.
func TestConfig_EnvironmentVariables(t *testing.T) {
	t.Setenv("APPLE_ADS_CLIENT_ID", "client")
	t.Setenv("APPLE_ADS_CLIENT_SECRET", "secret")
	t.Setenv("APPLE_ADS_ORG_ID", "42")
	t.Setenv("CAMPAIGN_ID", "1715185383")
	t.Setenv("AD_GROUP_ID", "1716434258")
	t.Setenv("OUTPUT_DIR", "out")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	config, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "client", config.AppleAds.ClientID)
	assert.Equal(t, "secret", config.AppleAds.ClientSecret)
	assert.Equal(t, "42", config.AppleAds.OrgID)
	assert.Equal(t, int64(1715185383), config.CampaignID)
	assert.Equal(t, int64(1716434258), config.AdGroupID)
	assert.Equal(t, "out", config.OutputDir)
	assert.Equal(t, "debug", config.EnvLogLevel)
	assert.Equal(t, "sk-test", config.LLM.APIKey)
	assert.Equal(t, llm.DefaultOpenAIModel, config.LLM.Model)
	assert.InDelta(t, 0.1, config.LLM.Temperature, 1e-6)
	assert.Equal(t, llm.DefaultMaxTokens, config.LLM.MaxTokens)
}

// TestConfig_GeminiKey verifies the Gemini key lookup and its fallback.
func TestConfig_GeminiKey(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "gemini")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "google-key")

	config, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "google-key", config.LLM.APIKey)
	assert.Equal(t, llm.DefaultGeminiModel, config.LLM.Model)
}

// TestConfig_File verifies values from an explicit config file.
func TestConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "asakit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
apple_ads:
  org_id: "7"
llm:
  provider: openai
  model: gpt-4o-mini
  max_tokens: 200
campaign_id: 11
input_dir: data
`), 0o644))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, path, config.ConfigFile)
	assert.Equal(t, "7", config.AppleAds.OrgID)
	assert.Equal(t, "gpt-4o-mini", config.LLM.Model)
	assert.Equal(t, 200, config.LLM.MaxTokens)
	assert.Equal(t, int64(11), config.CampaignID)
	assert.Equal(t, "data", config.InputDir)
}

// TestConfig_MissingFile verifies that an explicit but missing file is an error.
func TestConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

// TestConfig_UpdateFromFlags verifies that flags override loaded values.
func TestConfig_UpdateFromFlags(t *testing.T) {
	config := &Config{Format: "table"}

	config.UpdateFromFlags(true, false, true, "json", "warn")
	assert.True(t, config.Verbose)
	assert.True(t, config.NoColor)
	assert.Equal(t, "json", config.Format)
	assert.Equal(t, "warn", config.LogLevel)

	config.UpdateFromFlags(false, false, false, "", "")
	assert.Equal(t, "json", config.Format, "empty format keeps the current value")
}

func TestConfigFlag(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"keywords", "filter"}, ""},
		{[]string{"--config", "a.yaml", "keywords"}, "a.yaml"},
		{[]string{"keywords", "--config=b.yaml"}, "b.yaml"},
		{[]string{"ai", "run", "--", "--config", "c.yaml"}, ""},
		{[]string{"--config"}, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, configFlag(tt.args), "%v", tt.args)
	}
}
