package pipeline

import "fmt"

// Kind classifies a pipeline failure
type Kind string

const (
	KindInvalidInput        Kind = "invalid_input"
	KindTranscriptionFailed Kind = "transcription_failed"
)

// Sentinels for errors.Is; they match any *Error of the same kind
var (
	ErrInvalidInput        = &Error{Kind: KindInvalidInput}
	ErrTranscriptionFailed = &Error{Kind: KindTranscriptionFailed}
)

// Error is returned by GenerateSite for client and upstream failures.
// Extraction and rendering never produce one.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Message == "" && e.Err == nil:
		return string(e.Kind)
	case e.Err == nil:
		return e.Message
	case e.Message == "":
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func invalidInput(message string, err error) *Error {
	return &Error{Kind: KindInvalidInput, Message: message, Err: err}
}

func transcriptionFailed(err error) *Error {
	return &Error{Kind: KindTranscriptionFailed, Message: "transcription failed", Err: err}
}
