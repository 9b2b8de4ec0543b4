package generator

import "context"

// LLMClient abstracts the text-generation backend so providers can be swapped
// or replaced with the offline fallback.
type LLMClient interface {
	Complete(ctx context.Context, prompt Prompt) (string, error)
}

// LLMSettings carries the provider block from config.json to a concrete client.
type LLMSettings struct {
	Provider string
	Model    string
	APIKey   string
	BaseURL  string
}
