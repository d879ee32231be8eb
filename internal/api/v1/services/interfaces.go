package services

import (
	"context"

	"voice2site/internal/api/v1/dto"
)

// SiteService generates websites from audio uploads or typed descriptions.
// Errors it returns are *errors.APIError.
type SiteService interface {
	GenerateFromAudio(ctx context.Context, filename string, audio []byte) (*dto.SiteResponse, error)
	GenerateFromText(ctx context.Context, req *dto.GenerateFromTextRequest) (*dto.SiteResponse, error)
}
