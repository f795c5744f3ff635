package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asakit/asakit/pkg/errors"
	"github.com/asakit/asakit/pkg/logging"
)

type fakeCompleter struct {
	answer string
	err    error
	system string
	user   string
}

func (f *fakeCompleter) Name() string { return "fake" }

func (f *fakeCompleter) Complete(_ context.Context, system, user string) (string, error) {
	f.system, f.user = system, user
	return f.answer, f.err
}

func TestSystemPrompt(t *testing.T) {
	got := SystemPrompt(CoinExpert, Translate, TaskParams{TargetLanguage: "PTB"})
	assert.True(t, strings.HasPrefix(got, "Your role:You are a numismatic expert"))
	assert.Contains(t, got, "\n\nYour task:Translate the following text to PTB. Only respond with the translation")
}

func TestTaskInstruction(t *testing.T) {
	assert.Contains(t, Translate.Instruction(TaskParams{}), "to English.")
	assert.Equal(t, "Please process the following input.", Task(99).Instruction(TaskParams{}))
	assert.True(t, strings.HasPrefix(ExtractKeywords.Instruction(TaskParams{}),
		"Extract and clean ASA keywords from the following text. \nReturn only the keywords, one per line."))
}

func TestRoleContextFallback(t *testing.T) {
	assert.Equal(t, PlantExpert.Context(), Role(0).Context())
	assert.NotEqual(t, CoinExpert.Context(), PlantExpert.Context())
	assert.True(t, strings.HasPrefix(CoinExpert.Context(), "You are a numismatic expert"))
}

func TestParseRoleAndTask(t *testing.T) {
	r, err := ParseRole("COIN_EXPERT")
	require.NoError(t, err)
	assert.Equal(t, CoinExpert, r)

	_, err = ParseRole("chef")
	assert.Error(t, err)

	for _, name := range TaskNames() {
		task, err := ParseTask(name)
		require.NoError(t, err)
		assert.Equal(t, name, task.String())
	}
	_, err = ParseTask("dance")
	assert.Error(t, err)
}

func TestProcessTrimsAnswer(t *testing.T) {
	f := &fakeCompleter{answer: "  moeda rara \n"}
	c := New(f, WithLogger(logging.NewNopLogger()))

	out, err := c.Translate(context.Background(), "rare coin", "PTB")
	require.NoError(t, err)
	assert.Equal(t, "moeda rara", out)
	assert.Equal(t, "rare coin", f.user)
	assert.Contains(t, f.system, "to PTB.")
}

func TestProcessError(t *testing.T) {
	c := New(&fakeCompleter{err: fmt.Errorf("boom")}, WithLogger(logging.NewNopLogger()))
	_, err := c.Process(context.Background(), "x", CoinExpert, Explain, TaskParams{})
	assert.EqualError(t, err, "boom")
}

func TestExtractKeywords(t *testing.T) {
	f := &fakeCompleter{answer: "coin\n  rare coin  \n\n\ncoin album\n"}
	c := New(f, WithLogger(logging.NewNopLogger()))

	kws, err := c.ExtractKeywords(context.Background(), "page text")
	require.NoError(t, err)
	assert.Equal(t, []string{"coin", "rare coin", "coin album"}, kws)
	assert.Contains(t, f.system, "Extract and clean ASA keywords")
}

func TestExtractKeywordsEmptyAnswer(t *testing.T) {
	c := New(&fakeCompleter{answer: "  "}, WithLogger(logging.NewNopLogger()))
	kws, err := c.ExtractKeywords(context.Background(), "page text")
	require.NoError(t, err)
	assert.Empty(t, kws)
}

func openAIServer(t *testing.T, status int, answer string) (*httptest.Server, *map[string]any) {
	t.Helper()
	var captured map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			_, _ = w.Write([]byte(`{"error":{"message":"rate limit reached","type":"requests"}}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-1",
			"object":  "chat.completion",
			"model":   "gpt-4",
			"choices": []map[string]any{{"index": 0, "message": map[string]any{"role": "assistant", "content": answer}, "finish_reason": "stop"}},
		})
	}))
	t.Cleanup(srv.Close)
	return srv, &captured
}

func TestOpenAIBackend(t *testing.T) {
	srv, captured := openAIServer(t, http.StatusOK, "moeda\n")

	c, err := NewFromConfig(context.Background(), Config{
		Provider:    ProviderOpenAI,
		APIKey:      "sk-test",
		BaseURL:     srv.URL + "/v1",
		Temperature: DefaultTemperature,
	}, WithLogger(logging.NewNopLogger()))
	require.NoError(t, err)

	out, err := c.Translate(context.Background(), "coin", "PTB")
	require.NoError(t, err)
	assert.Equal(t, "moeda", out)

	req := *captured
	assert.Equal(t, DefaultOpenAIModel, req["model"])
	assert.EqualValues(t, DefaultMaxTokens, req["max_tokens"])
	assert.InDelta(t, 0.1, req["temperature"], 0.0001)
	msgs, ok := req["messages"].([]any)
	require.True(t, ok)
	require.Len(t, msgs, 2)
	assert.Equal(t, "system", msgs[0].(map[string]any)["role"])
	assert.Equal(t, "coin", msgs[1].(map[string]any)["content"])
}

func TestOpenAIBackendRateLimited(t *testing.T) {
	srv, _ := openAIServer(t, http.StatusTooManyRequests, "")

	o, err := NewOpenAI(OpenAIConfig{APIKey: "sk-test", BaseURL: srv.URL + "/v1"})
	require.NoError(t, err)

	_, err = o.Complete(context.Background(), "sys", "user")
	require.Error(t, err)
	assert.True(t, errors.IsRateLimited(err))
}

func TestNewFromConfigErrors(t *testing.T) {
	_, err := NewFromConfig(context.Background(), Config{Provider: ProviderOpenAI})
	assert.True(t, errors.IsCredentialsError(err))
	assert.Contains(t, err.Error(), EnvOpenAIKey)

	_, err = NewFromConfig(context.Background(), Config{Provider: ProviderGemini})
	assert.True(t, errors.IsCredentialsError(err))
	assert.Contains(t, err.Error(), EnvGeminiKey)

	_, err = NewFromConfig(context.Background(), Config{Provider: "mystery", APIKey: "k"})
	assert.True(t, errors.IsConfigError(err))
}

func TestNewGemini(t *testing.T) {
	g, err := NewGemini(context.Background(), GeminiConfig{APIKey: "test-key"})
	require.NoError(t, err)
	assert.Equal(t, "gemini", g.Name())
	assert.Equal(t, DefaultGeminiModel, g.model)
}
