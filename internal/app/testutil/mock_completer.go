package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
)

// MockCompleter is a testify mock of api.Completer
type MockCompleter struct {
	mock.Mock
}

// NewMockCompleter creates a MockCompleter bound to t
func NewMockCompleter(t *testing.T) *MockCompleter {
	m := &MockCompleter{}
	m.Test(t)
	return m
}

// Complete implements api.Completer
func (m *MockCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}
