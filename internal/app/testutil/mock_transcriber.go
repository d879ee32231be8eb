package testutil

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"
)

// MockTranscriber is a testify mock of api.Transcriber.
// Besides the expectations it remembers the staged paths it was handed and whether each
// file existed at call time, so tests can assert temp-file cleanup.
type MockTranscriber struct {
	mock.Mock
	mu sync.Mutex

	Paths         []string
	ExistedOnCall []bool
}

// NewMockTranscriber creates a MockTranscriber bound to t
func NewMockTranscriber(t *testing.T) *MockTranscriber {
	m := &MockTranscriber{}
	m.Test(t)
	return m
}

// Transcript implements api.Transcriber
func (m *MockTranscriber) Transcript(ctx context.Context, inputFilePath string) (string, error) {
	_, statErr := os.Stat(inputFilePath)

	m.mu.Lock()
	m.Paths = append(m.Paths, inputFilePath)
	m.ExistedOnCall = append(m.ExistedOnCall, statErr == nil)
	m.mu.Unlock()

	args := m.Called(ctx, inputFilePath)
	return args.String(0), args.Error(1)
}
