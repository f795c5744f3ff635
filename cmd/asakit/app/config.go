package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/asakit/asakit/internal/llm"
	"github.com/asakit/asakit/internal/searchads"
	"github.com/asakit/asakit/pkg/constants"
)

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Remote services
	AppleAds searchads.Config
	LLM      llm.Config

	// Import defaults
	CampaignID int64
	AdGroupID  int64
	InputDir   string
	OutputDir  string

	// Logging configuration. LogLevel is the --log-level flag, EnvLogLevel
	// is LOG_LEVEL; the flag and the -v/-q shortcuts win over the env.
	LogLevel    string
	EnvLogLevel string
	LogFormat   string
	LogOutput   string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (handled by cobra)
// 2. Environment variables
// 3. .env files
// 4. Config file (configFile, or ~/.asakit.yaml and ./.asakit.yaml)
// 5. Defaults
func LoadConfig(configFile string) (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	bindEnv(v)
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".asakit")

		// Read config file (ignore error if not found)
		_ = v.ReadInConfig()
	}

	config := &Config{
		Verbose: v.GetBool("verbose"),
		Quiet:   v.GetBool("quiet"),
		NoColor: v.GetBool("no_color"),
		Format:  v.GetString("format"),

		ConfigFile: v.ConfigFileUsed(),

		AppleAds: searchads.Config{
			ClientID:     v.GetString("apple_ads.client_id"),
			ClientSecret: v.GetString("apple_ads.client_secret"),
			OrgID:        v.GetString("apple_ads.org_id"),
			BaseURL:      v.GetString("apple_ads.base_url"),
			TokenURL:     v.GetString("apple_ads.token_url"),
			Scope:        v.GetString("apple_ads.scope"),
		},

		LLM: llm.Config{
			Provider:    v.GetString("llm.provider"),
			Model:       v.GetString("llm.model"),
			BaseURL:     v.GetString("llm.base_url"),
			Temperature: float32(v.GetFloat64("llm.temperature")),
			MaxTokens:   v.GetInt("llm.max_tokens"),
		},

		CampaignID: v.GetInt64("campaign_id"),
		AdGroupID:  v.GetInt64("ad_group_id"),
		InputDir:   v.GetString("input_dir"),
		OutputDir:  v.GetString("output_dir"),

		EnvLogLevel: os.Getenv("LOG_LEVEL"),
		LogFormat:   getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput:   getEnvOrDefault("LOG_OUTPUT", "stderr"),
	}

	config.LLM.APIKey = llmAPIKey(v, config.LLM.Provider)
	if config.LLM.Model == "" {
		config.LLM.Model = defaultModel(config.LLM.Provider)
	}

	return config, nil
}

// UpdateFromFlags updates config values from parsed command flags.
// This should be called after cobra parses flags to ensure flag
// values take precedence over config file and env vars.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, format, logLevel string) {
	c.Verbose = verbose
	c.Quiet = quiet
	c.NoColor = noColor
	if format != "" {
		c.Format = format
	}
	c.LogLevel = logLevel
}

// loadEnvFiles loads environment variables from .env files.
func loadEnvFiles() {
	// Load never overrides a variable that is already set, so .env.local
	// goes first to win over .env.
	envFiles := []string{
		".env.local",
		".env",
	}

	for _, envFile := range envFiles {
		_ = godotenv.Load(envFile)
	}
}

// bindEnv binds the keys whose environment variable does not follow the
// dotted key name.
func bindEnv(v *viper.Viper) {
	bindings := map[string][]string{
		"apple_ads.client_id":     {searchads.EnvClientID},
		"apple_ads.client_secret": {searchads.EnvClientSecret},
		"apple_ads.org_id":        {searchads.EnvOrgID},
		"apple_ads.base_url":      {"APPLE_ADS_BASE_URL"},
		"apple_ads.token_url":     {"APPLE_ADS_TOKEN_URL"},
		"apple_ads.scope":         {"APPLE_ADS_SCOPE"},
		"llm.provider":            {"LLM_PROVIDER"},
		"llm.model":               {"LLM_MODEL"},
		"llm.temperature":         {"LLM_TEMPERATURE"},
		"llm.max_tokens":          {"LLM_MAX_TOKENS"},
		"llm.base_url":            {"OPENAI_BASE_URL"},
		"openai_api_key":          {llm.EnvOpenAIKey},
		"gemini_api_key":          {llm.EnvGeminiKey, "GOOGLE_API_KEY"},
	}

	for key, envs := range bindings {
		args := append([]string{key}, envs...)
		if err := v.BindEnv(args...); err != nil {
			// Log warning but continue - this isn't critical
			fmt.Fprintf(os.Stderr, "Warning: failed to bind environment variable %s: %v\n", key, err)
		}
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("format", "table")
	v.SetDefault("apple_ads.base_url", searchads.DefaultBaseURL)
	v.SetDefault("apple_ads.scope", searchads.DefaultScope)
	v.SetDefault("llm.provider", llm.ProviderOpenAI)
	v.SetDefault("llm.temperature", llm.DefaultTemperature)
	v.SetDefault("llm.max_tokens", llm.DefaultMaxTokens)
	v.SetDefault("input_dir", constants.DefaultInputDir)
	v.SetDefault("output_dir", constants.DefaultOutputDir)
}

func llmAPIKey(v *viper.Viper, provider string) string {
	switch strings.ToLower(provider) {
	case llm.ProviderGemini, "google":
		return v.GetString("gemini_api_key")
	default:
		return v.GetString("openai_api_key")
	}
}

func defaultModel(provider string) string {
	switch strings.ToLower(provider) {
	case llm.ProviderGemini, "google":
		return llm.DefaultGeminiModel
	default:
		return llm.DefaultOpenAIModel
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
