package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"polyhello/src/ai"
	"polyhello/src/config"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chatServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testConfig(groqURL, openaiURL string) *config.Config {
	return &config.Config{
		Groq:    config.ProviderConfig{APIKey: "groq-secret", BaseURL: groqURL},
		OpenAI:  config.ProviderConfig{APIKey: "openai-secret", BaseURL: openaiURL},
		Timeout: 5 * time.Second,
		Format:  "json",
	}
}

func TestRunHello_FallsBackToOpenAI(t *testing.T) {
	groq := chatServer(t, http.StatusUnauthorized, `{"error":"bad key"}`)
	openai := chatServer(t, http.StatusOK, `{"choices":[{"message":{"content":" Hi! "}}]}`)

	var out, logs bytes.Buffer
	err := runHello(context.Background(), testConfig(groq.URL, openai.URL), zerolog.New(&logs), &out)

	require.NoError(t, err)

	var got ai.HelloResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, ai.HelloResult{OK: true, Provider: "opinai", Model: ai.OpenAIModel, Message: "Hi!"}, got)
	assert.True(t, strings.HasPrefix(out.String(), "{\n  \"ok\": true"))

	assert.Equal(t, 1, strings.Count(logs.String(), `"level":"warn"`))
	assert.Contains(t, logs.String(), `"provider":"Groq"`)
	assert.Contains(t, logs.String(), "401")
}

func TestRunHello_AllProvidersFail(t *testing.T) {
	groq := chatServer(t, http.StatusInternalServerError, "down")
	openai := chatServer(t, http.StatusInternalServerError, "down")
	cfg := testConfig(groq.URL, openai.URL)
	cfg.Provider = "gemini"

	var out, logs bytes.Buffer
	err := runHello(context.Background(), cfg, zerolog.New(&logs), &out)

	require.Error(t, err)
	assert.True(t, ai.IsKind(err, ai.KindExhausted))
	assert.Equal(t, "All providers failed. Check API keys and quotas.", err.Error())
	assert.Empty(t, out.String())

	// Gemini has no key, then Groq and OpenAI answer 500.
	assert.Equal(t, 3, strings.Count(logs.String(), `"level":"warn"`))
	assert.Contains(t, logs.String(), "Gemini API key missing")
}

func TestRunHello_ExhaustedLogsAttemptSummary(t *testing.T) {
	groq := chatServer(t, http.StatusServiceUnavailable, "busy")
	openai := chatServer(t, http.StatusServiceUnavailable, "busy")

	var out, logs bytes.Buffer
	logger := zerolog.New(&logs).Level(zerolog.DebugLevel)
	err := runHello(context.Background(), testConfig(groq.URL, openai.URL), logger, &out)

	require.Error(t, err)
	assert.Contains(t, logs.String(), `"message":"all providers failed"`)
	assert.Contains(t, logs.String(), `groq: Groq 503: busy\nopinai: OpenAI 503: busy`)
}

func TestPrintFatal(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = noColor })

	var out bytes.Buffer
	printFatal(&out, &ai.Error{Kind: ai.KindExhausted})

	assert.Equal(t, "All providers failed. Check API keys and quotas.\n", out.String())
}

func TestRunHello_YAMLFormat(t *testing.T) {
	groq := chatServer(t, http.StatusOK, `{"choices":[{"message":{"content":"hey"}}]}`)
	cfg := testConfig(groq.URL, "")
	cfg.Format = "yaml"

	var out bytes.Buffer
	require.NoError(t, runHello(context.Background(), cfg, zerolog.Nop(), &out))

	assert.Equal(t, "ok: true\nprovider: groq\nmodel: llama-3.1-8b-instant\nmessage: hey\n", out.String())
}

func TestListProviders(t *testing.T) {
	color.NoColor = true
	cfg := testConfig("", "")
	cfg.Provider = "GEMINI"

	var out bytes.Buffer
	listProviders(&out, cfg)

	text := out.String()
	assert.NotContains(t, text, "groq-secret")
	assert.NotContains(t, text, "openai-secret")
	assert.Contains(t, text, "gemini  gemini-2.5-flash       attempt #1   key: missing")
	assert.Contains(t, text, "groq    llama-3.1-8b-instant   attempt #2   key: set")
	assert.Contains(t, text, "opinai  gpt-4o-mini            attempt #3   key: set")
}

func TestListProviders_GeminiForcedOnly(t *testing.T) {
	color.NoColor = true

	var out bytes.Buffer
	listProviders(&out, testConfig("", ""))

	assert.Contains(t, out.String(), "forced only")
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.WarnLevel},
		{"chatty", zerolog.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, newLogger(tt.level, io.Discard).GetLevel())
		})
	}
}
