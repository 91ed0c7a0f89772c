package ai

import (
	"time"

	"polyhello/src/config"
)

// Options tunes a provider client. Zero values select the provider defaults.
type Options struct {
	Model   string
	BaseURL string
	Prompt  string
	Timeout time.Duration
}

func orDefault(v, def string) string {
	if v != "" {
		return v
	}
	return def
}

// NewProviders builds one client per supported provider. Missing credentials
// are not checked here; each client reports them when it is attempted.
func NewProviders(cfg *config.Config) []Provider {
	opts := func(pc config.ProviderConfig) Options {
		return Options{Model: pc.Model, BaseURL: pc.BaseURL, Timeout: cfg.Timeout}
	}
	return []Provider{
		NewGoogleProvider(cfg.Gemini.APIKey, opts(cfg.Gemini)),
		NewGroqProvider(cfg.Groq.APIKey, opts(cfg.Groq)),
		NewOpenAIProvider(cfg.OpenAI.APIKey, opts(cfg.OpenAI)),
	}
}

// HasCredential reports whether cfg carries a secret for id.
func HasCredential(cfg *config.Config, id ProviderID) bool {
	switch id {
	case Gemini:
		return cfg.Gemini.APIKey != ""
	case Groq:
		return cfg.Groq.APIKey != ""
	case OpenAI:
		return cfg.OpenAI.APIKey != ""
	default:
		return false
	}
}
