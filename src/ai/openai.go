package ai

const (
	OpenAIBaseURL = "https://api.openai.com/v1"
	OpenAIModel   = "gpt-4o-mini"
	OpenAIPrompt  = "Say a short hello"

	GroqBaseURL = "https://api.groq.com/openai/v1"
	GroqModel   = "llama-3.1-8b-instant"
	GroqPrompt  = "Say a short hello and who are you"
)

func NewOpenAIProvider(apiKey string, opts Options) *OpenAICompatibleProvider {
	return NewOpenAICompatibleProvider(OpenAI, apiKey, OpenAIModel, OpenAIBaseURL, OpenAIPrompt, opts)
}

func NewGroqProvider(apiKey string, opts Options) *OpenAICompatibleProvider {
	return NewOpenAICompatibleProvider(Groq, apiKey, GroqModel, GroqBaseURL, GroqPrompt, opts)
}
