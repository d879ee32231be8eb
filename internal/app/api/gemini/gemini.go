package gemini

import (
	"context"
	"fmt"
	"os"
	"strings"

	"google.golang.org/genai"

	"voice2site/internal/app/errors"
)

const (
	// DefaultModel handles both audio understanding and text completion.
	DefaultModel = "gemini-2.0-flash"

	transcribeInstruction = "Transcribe this audio verbatim. Return only the spoken words as plain text, with no commentary."
	wavMimeType           = "audio/wav"
)

// Config configures the Gemini client
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
}

// Client wraps a genai client and exposes the transcription and completion contracts.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient creates a Gemini API client. The API key is required.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.Wrap(errors.ErrMissingAPIKey, "gemini")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create google genai client: %w", err)
	}
	return &Client{client: client, model: cfg.Model}, nil
}

// Transcriber adapts the client to api.Transcriber
func (c *Client) Transcriber() *Transcriber {
	return &Transcriber{client: c}
}

// Completer adapts the client to api.Completer
func (c *Client) Completer() *Completer {
	return &Completer{client: c}
}

// Transcriber sends WAV audio inline and asks the model for a verbatim transcript.
type Transcriber struct {
	client *Client
}

// Transcript reads the WAV file at inputFilePath and returns its transcript.
func (t *Transcriber) Transcript(ctx context.Context, inputFilePath string) (string, error) {
	data, err := os.ReadFile(inputFilePath)
	if err != nil {
		return "", errors.Wrapf(err, "read audio %s", inputFilePath)
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(transcribeInstruction),
			genai.NewPartFromBytes(data, wavMimeType),
		}, genai.RoleUser),
	}
	return t.client.generate(ctx, contents)
}

// Completer issues single-turn prompts with deterministic sampling.
type Completer struct {
	client *Client
}

// Complete sends prompt as one user turn and returns the concatenated reply text.
func (c *Completer) Complete(ctx context.Context, prompt string) (string, error) {
	return c.client.generate(ctx, genai.Text(prompt))
}

func (c *Client) generate(ctx context.Context, contents []*genai.Content) (string, error) {
	temperature := float32(0)
	config := &genai.GenerateContentConfig{Temperature: &temperature}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("error generating content: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return "", errors.ErrEmptyResponse
	}
	return strings.TrimSpace(resp.Text()), nil
}
