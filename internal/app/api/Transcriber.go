package api

import "context"

// Transcriber defines a transcription interface for converting a staged WAV file to text.
type Transcriber interface {
	Transcript(ctx context.Context, inputFilePath string) (string, error)
}
