package whisper

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

// RemoteTranscriber implements remote transcription using the OpenAI audio API.
type RemoteTranscriber struct {
	client   *openai.Client
	model    string
	language string
}

// NewRemoteTranscriber creates a new RemoteTranscriber instance.
// An empty model selects whisper-1.
func NewRemoteTranscriber(client *openai.Client, model, language string) *RemoteTranscriber {
	if model == "" {
		model = openai.Whisper1
	}
	return &RemoteTranscriber{client: client, model: model, language: language}
}

// Transcript uploads the file at inputFilePath and returns the recognised text.
func (rt *RemoteTranscriber) Transcript(ctx context.Context, inputFilePath string) (string, error) {
	req := openai.AudioRequest{
		Model:    rt.model,
		FilePath: inputFilePath,
		Language: rt.language,
		Format:   openai.AudioResponseFormatJSON,
	}
	resp, err := rt.client.CreateTranscription(ctx, req)
	if err != nil {
		return "", fmt.Errorf("createTranscription failed: %w", err)
	}

	return resp.Text, nil
}
