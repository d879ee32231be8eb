package openai

import (
	"github.com/sashabaranov/go-openai"
)

// NewClient builds a client for an OpenAI-compatible endpoint.
// An empty baseURL keeps the library default (api.openai.com).
func NewClient(apiKey, baseURL string) *openai.Client {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return openai.NewClientWithConfig(config)
}
