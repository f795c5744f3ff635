package generate

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asakit/asakit/internal/cmd/application"
	"github.com/asakit/asakit/internal/llm"
	"github.com/asakit/asakit/pkg/errors"
	"github.com/asakit/asakit/pkg/logging"
)

const export = "Campaign,Ad group,Keyword,Match type,Status,Bid\n" +
	"Coins,Core,coin identifier,Exact,ENABLED,1.00\n" +
	"Coins,Core,rare coin,Broad,PAUSED,0.50\n"

// echoCompleter answers with a fixed reply per user message.
type echoCompleter struct {
	replies map[string]string
	calls   int
}

func (e *echoCompleter) Name() string { return "echo" }

func (e *echoCompleter) Complete(_ context.Context, _, user string) (string, error) {
	e.calls++
	reply, ok := e.replies[user]
	if !ok {
		return "", errors.NewAPIError("echo", 500, "no reply for "+user)
	}
	return reply, nil
}

func setup(t *testing.T, completer llm.Completer) (*application.Mock, *logging.TestLogger, string) {
	t.Helper()
	dir := t.TempDir()
	tl := logging.NewTestLogger(t)
	mock := &application.Mock{
		LoggerFunc: func() *zerolog.Logger { return tl.Logger },
		DefaultsFunc: func() application.Defaults {
			return application.Defaults{CampaignID: 100, AdGroupID: 200, InputDir: dir, OutputDir: dir}
		},
		LLMFunc: func(context.Context) (*llm.Client, error) {
			if completer == nil {
				return nil, errors.MissingEnvError("llm", llm.EnvOpenAIKey)
			}
			return llm.New(completer), nil
		},
	}
	return mock, tl, dir
}

func writeInput(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

func TestUploadCommand(t *testing.T) {
	mock, _, dir := setup(t, nil)
	input := writeInput(t, dir, "export.csv", export)
	out := filepath.Join(dir, "upload.csv")

	cmd := NewCommand(mock)
	cmd.SetArgs([]string{"upload", "--input", input, "--out", out})
	require.NoError(t, cmd.Execute())

	lines := readLines(t, out)
	require.Len(t, lines, 3)
	assert.Equal(t, "Action,Keyword ID,Keyword,Match Type,Status,Bid,Campaign ID,Ad Group ID", lines[0])
	assert.Equal(t, "CREATE,,coin identifier,BROAD,ENABLED,1.5,100,200", lines[1])
	assert.Equal(t, "CREATE,,rare coin,BROAD,PAUSED,1.5,100,200", lines[2])
}

func TestUploadCommandRequiresTarget(t *testing.T) {
	mock := &application.Mock{}
	cmd := NewCommand(mock)
	cmd.SetArgs([]string{"upload"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestNegativeCommand(t *testing.T) {
	mock, _, dir := setup(t, nil)
	input := writeInput(t, dir, "export.csv", export)
	out := filepath.Join(dir, "negative.csv")

	cmd := NewCommand(mock)
	cmd.SetArgs([]string{"negative", "--input", input, "--out", out, "--ad-group-id", "300"})
	require.NoError(t, cmd.Execute())

	lines := readLines(t, out)
	require.Len(t, lines, 3)
	assert.Equal(t, "Action,Keyword ID,Negative Keyword,Match Type,Campaign ID,Ad Group ID", lines[0])
	assert.Equal(t, "CREATE,,coin identifier,EXACT,100,300", lines[1])
}

func TestCampaignCommand(t *testing.T) {
	mock, tl, dir := setup(t, nil)
	input := writeInput(t, dir, "export.csv", export)
	out := filepath.Join(dir, "campaign.csv")

	cmd := NewCommand(mock)
	cmd.SetArgs([]string{"campaign", "--input", input, "--out", out, "--campaign-name", "Coins BR"})
	require.NoError(t, cmd.Execute())

	lines := readLines(t, out)
	require.Len(t, lines, 2)
	assert.Equal(t, "Campaign,Ad group,Keyword,Match type,Bid", lines[0])
	assert.Equal(t, "Coins BR,Core,coin identifier,Exact,0.50", lines[1])
	assert.True(t, tl.Contains("Found active keywords"))
}

func TestCampaignCommandNoActive(t *testing.T) {
	mock, tl, dir := setup(t, nil)
	input := writeInput(t, dir, "export.csv", "Keyword,Status\nrare coin,PAUSED\n")
	out := filepath.Join(dir, "campaign.csv")

	cmd := NewCommand(mock)
	cmd.SetArgs([]string{"campaign", "--input", input, "--out", out})
	require.NoError(t, cmd.Execute())
	assert.NoFileExists(t, out)
	assert.True(t, tl.Contains("No active keywords found"))
}

func TestCampaignCommandMissingInput(t *testing.T) {
	mock, tl, dir := setup(t, nil)

	cmd := NewCommand(mock)
	cmd.SetArgs([]string{"campaign", "--input", filepath.Join(dir, "nope.csv")})
	require.NoError(t, cmd.Execute())
	assert.True(t, tl.Contains("Failed to read keyword export"))
}

func TestSuggestedCommand(t *testing.T) {
	input := "coin identifier 7210\ncoin scanner 12\n"
	completer := &echoCompleter{replies: map[string]string{
		input: "coin identifier\n\ncoin scanner\n",
	}}
	mock, _, dir := setup(t, completer)
	path := writeInput(t, dir, "list.txt", input)
	out := filepath.Join(dir, "suggested.csv")

	cmd := NewCommand(mock)
	cmd.SetArgs([]string{"suggested", "--input", path, "--out", out})
	require.NoError(t, cmd.Execute())

	lines := readLines(t, out)
	require.Len(t, lines, 3)
	assert.Equal(t, "CREATE,,coin identifier,EXACT,ACTIVE,1.0,100,200", lines[1])
	assert.Equal(t, "CREATE,,coin scanner,EXACT,ACTIVE,1.0,100,200", lines[2])
	assert.FileExists(t, filepath.Join(dir, "suggested.xlsx"))
}

func TestSuggestedCommandDefaultName(t *testing.T) {
	completer := &echoCompleter{replies: map[string]string{"x": "coin"}}
	mock, _, dir := setup(t, completer)
	path := writeInput(t, dir, "list.txt", "x")

	cmd := NewCommand(mock)
	cmd.SetArgs([]string{"suggested", "--input", path})
	require.NoError(t, cmd.Execute())
	assert.FileExists(t, filepath.Join(dir, "100_200_suggested_keyword_import.csv"))
	assert.FileExists(t, filepath.Join(dir, "100_200_suggested_keyword_import.xlsx"))
}

func TestSuggestedCommandMissingKey(t *testing.T) {
	mock, _, dir := setup(t, nil)
	path := writeInput(t, dir, "list.txt", "x")

	cmd := NewCommand(mock)
	cmd.SetArgs([]string{"suggested", "--input", path})
	err := cmd.Execute()
	require.Error(t, err)
	assert.True(t, errors.IsCredentialsError(err))
}

func TestTranslateCommand(t *testing.T) {
	completer := &echoCompleter{replies: map[string]string{
		"coin value": "valor da moeda",
		"coin app":   "coin app",
	}}
	mock, tl, dir := setup(t, completer)
	input := writeInput(t, dir, "coins.csv", "Keyword,Status\n"+
		"coin value,ACTIVE\n"+
		"coin value,ACTIVE\n"+
		"coin app,ACTIVE\n"+
		"old coin,PAUSED\n"+
		"broken,ACTIVE\n")
	out := filepath.Join(dir, "translated.csv")

	cmd := NewCommand(mock)
	cmd.SetArgs([]string{"translate", "--input", input, "--out", out})
	require.NoError(t, cmd.Execute())

	lines := readLines(t, out)
	assert.Equal(t, []string{
		"Action,Keyword ID,Keyword,Match Type,Status,Bid,Campaign ID,Ad Group ID",
		"CREATE,,coin value,BROAD,ACTIVE,0.2,100,200",
		"CREATE,,coin app,BROAD,ACTIVE,0.2,100,200",
		"CREATE,,broken,BROAD,ACTIVE,0.2,100,200",
		"CREATE,,valor da moeda,BROAD,ACTIVE,0.2,100,200",
	}, lines)
	assert.Equal(t, 3, completer.calls)
	assert.True(t, tl.Contains("Failed to translate keyword"))
	assert.True(t, tl.Contains("Translation summary"))
}
