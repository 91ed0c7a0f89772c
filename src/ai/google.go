package ai

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

const (
	GoogleBaseURL = "https://generativelanguage.googleapis.com/v1beta/models/"
	GoogleModel   = "gemini-2.5-flash"
	GooglePrompt  = "Say a short hello and who am i ?"
)

type GoogleProvider struct {
	client  *http.Client
	apiKey  string
	model   string
	baseURL string
	prompt  string
}

type googleRESTRequest struct {
	Contents []googleContent `json:"contents"`
}

type googleContent struct {
	Parts []googlePart `json:"parts"`
}

type googlePart struct {
	Text string `json:"text"`
}

type googleRESTResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text *string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// NewGoogleProvider builds a Gemini client. An empty apiKey is accepted here
// and reported by Hello, so that building every provider never fails.
func NewGoogleProvider(apiKey string, opts Options) *GoogleProvider {
	return &GoogleProvider{
		client:  newHTTPClient(opts.Timeout),
		apiKey:  apiKey,
		model:   orDefault(opts.Model, GoogleModel),
		baseURL: orDefault(opts.BaseURL, GoogleBaseURL),
		prompt:  orDefault(opts.Prompt, GooglePrompt),
	}
}

func (p *GoogleProvider) ID() ProviderID { return Gemini }

func (p *GoogleProvider) Model() string { return p.model }

func (p *GoogleProvider) Hello(ctx context.Context) (HelloResult, error) {
	if p.apiKey == "" {
		return HelloResult{}, &Error{Kind: KindMissingCredential, Provider: Gemini}
	}

	payload := googleRESTRequest{
		Contents: []googleContent{
			{Parts: []googlePart{{Text: p.prompt}}},
		},
	}

	endpoint := fmt.Sprintf("%s/%s:generateContent?key=%s",
		strings.TrimSuffix(p.baseURL, "/"), p.model, url.QueryEscape(p.apiKey))

	raw, err := postJSON(ctx, p.client, Gemini, endpoint, nil, payload)
	if err != nil {
		return HelloResult{}, err
	}

	var apiResp googleRESTResponse
	if err := decodeJSON(Gemini, raw, &apiResp); err != nil {
		return HelloResult{}, err
	}

	var text *string
	if len(apiResp.Candidates) > 0 && len(apiResp.Candidates[0].Content.Parts) > 0 {
		text = apiResp.Candidates[0].Content.Parts[0].Text
	}

	return newResult(Gemini, p.model, text), nil
}
