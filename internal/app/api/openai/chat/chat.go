package chat

import (
	"context"
	"fmt"
	"math"

	"github.com/sashabaranov/go-openai"

	"voice2site/internal/app/errors"
)

// DefaultModel is the instruction model served by the Hugging Face router.
const DefaultModel = "meta-llama/Llama-3.1-8B-Instruct:novita"

// deterministicTemperature stands in for 0, which the client drops from the request body.
const deterministicTemperature = math.SmallestNonzeroFloat32

// Completer issues single-turn chat completions against an OpenAI-compatible endpoint.
type Completer struct {
	client *openai.Client
	model  string
}

// NewCompleter creates a Completer. An empty model selects DefaultModel.
func NewCompleter(client *openai.Client, model string) *Completer {
	if model == "" {
		model = DefaultModel
	}
	return &Completer{client: client, model: model}
}

// Complete sends prompt as the only user message and returns the first choice's content.
func (c *Completer) Complete(ctx context.Context, prompt string) (string, error) {
	request := openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: deterministicTemperature,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	}
	resp, err := c.client.CreateChatCompletion(ctx, request)
	if err != nil {
		return "", fmt.Errorf("createChatCompletion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.ErrEmptyResponse
	}

	return resp.Choices[0].Message.Content, nil
}
