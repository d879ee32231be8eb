package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"voice2site/internal/api/v1/dto"
)

// MockServices contains all mock services for testing
type MockServices struct {
	SiteService *MockSiteService
}

// NewMockServices creates a new instance of mock services
func NewMockServices(t *testing.T) *MockServices {
	return &MockServices{
		SiteService: NewMockSiteService(t),
	}
}

// MockSiteService is a mock implementation of services.SiteService
type MockSiteService struct {
	mock.Mock
}

func NewMockSiteService(t *testing.T) *MockSiteService {
	m := &MockSiteService{}
	m.Test(t)
	return m
}

func (m *MockSiteService) GenerateFromAudio(ctx context.Context, filename string, audio []byte) (*dto.SiteResponse, error) {
	args := m.Called(ctx, filename, audio)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SiteResponse), args.Error(1)
}

func (m *MockSiteService) GenerateFromText(ctx context.Context, req *dto.GenerateFromTextRequest) (*dto.SiteResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SiteResponse), args.Error(1)
}
