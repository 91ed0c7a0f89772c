package ai

import (
	"context"
	"strings"
)

type ProviderID string

const (
	Gemini ProviderID = "gemini"
	Groq   ProviderID = "groq"
	OpenAI ProviderID = "opinai"
)

// DefaultMessage replaces a missing text field in an otherwise successful response.
const DefaultMessage = "Hello as default"

var SupportedProviders = []ProviderID{Gemini, Groq, OpenAI}

// DefaultFallback never contains Gemini; it is only reached when forced.
var DefaultFallback = []ProviderID{Groq, OpenAI}

// HelloResult is the normalized output of a successful provider call.
type HelloResult struct {
	OK       bool       `json:"ok" yaml:"ok"`
	Provider ProviderID `json:"provider" yaml:"provider"`
	Model    string     `json:"model" yaml:"model"`
	Message  string     `json:"message" yaml:"message"`
}

type Provider interface {
	ID() ProviderID
	Model() string
	Hello(ctx context.Context) (HelloResult, error)
}

// ParseProviderID matches a user supplied name against the known providers.
// The second return value is false for anything unrecognized, which callers
// treat as "no preference".
func ParseProviderID(name string) (ProviderID, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "gemini":
		return Gemini, true
	case "groq", "grok":
		return Groq, true
	case "opinai", "openai":
		return OpenAI, true
	default:
		return "", false
	}
}

func (id ProviderID) DisplayName() string {
	switch id {
	case Gemini:
		return "Gemini"
	case Groq:
		return "Groq"
	case OpenAI:
		return "OpenAI"
	default:
		return string(id)
	}
}

// newResult trims text; a nil text means the field was absent and becomes
// DefaultMessage. A present but empty text stays empty.
func newResult(id ProviderID, model string, text *string) HelloResult {
	message := DefaultMessage
	if text != nil {
		message = *text
	}
	return HelloResult{
		OK:       true,
		Provider: id,
		Model:    model,
		Message:  strings.TrimSpace(message),
	}
}
