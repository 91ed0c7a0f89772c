package ai

import (
	"context"
	"net/http"
	"strings"
)

// OpenAICompatibleProvider speaks the chat-completions dialect shared by
// OpenAI and Groq. Only the endpoint, model and identifier differ.
type OpenAICompatibleProvider struct {
	client  *http.Client
	id      ProviderID
	apiKey  string
	model   string
	baseURL string
	prompt  string
}

type openAICompatRequest struct {
	Model       string                `json:"model"`
	Messages    []openAICompatMessage `json:"messages"`
	Temperature float64               `json:"temperature"`
}

type openAICompatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAICompatResponse struct {
	Choices []struct {
		Message struct {
			Content *string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func NewOpenAICompatibleProvider(id ProviderID, apiKey, modelName, baseURL, prompt string, opts Options) *OpenAICompatibleProvider {
	return &OpenAICompatibleProvider{
		client:  newHTTPClient(opts.Timeout),
		id:      id,
		apiKey:  apiKey,
		model:   orDefault(opts.Model, modelName),
		baseURL: strings.TrimSuffix(orDefault(opts.BaseURL, baseURL), "/"),
		prompt:  orDefault(opts.Prompt, prompt),
	}
}

func (p *OpenAICompatibleProvider) ID() ProviderID { return p.id }

func (p *OpenAICompatibleProvider) Model() string { return p.model }

func (p *OpenAICompatibleProvider) Hello(ctx context.Context) (HelloResult, error) {
	if p.apiKey == "" {
		return HelloResult{}, &Error{Kind: KindMissingCredential, Provider: p.id}
	}

	payload := openAICompatRequest{
		Model: p.model,
		Messages: []openAICompatMessage{
			{Role: "user", Content: p.prompt},
		},
		Temperature: 0,
	}

	headers := map[string]string{"Authorization": "Bearer " + p.apiKey}

	raw, err := postJSON(ctx, p.client, p.id, p.baseURL+"/chat/completions", headers, payload)
	if err != nil {
		return HelloResult{}, err
	}

	var apiResp openAICompatResponse
	if err := decodeJSON(p.id, raw, &apiResp); err != nil {
		return HelloResult{}, err
	}

	var text *string
	if len(apiResp.Choices) > 0 {
		text = apiResp.Choices[0].Message.Content
	}

	return newResult(p.id, p.model, text), nil
}
