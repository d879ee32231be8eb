package api

import "context"

// Completer sends a single prompt to a language model and returns the raw completion text.
// Implementations sample deterministically and do not stream.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
