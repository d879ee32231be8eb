package services

import (
	"context"
	stderrors "errors"

	"voice2site/internal/api/errors"
	"voice2site/internal/api/v1/dto"
	"voice2site/internal/app/pipeline"
)

// SiteGenerator runs the generation pipeline
type SiteGenerator interface {
	GenerateSite(ctx context.Context, in pipeline.Input) (*pipeline.Result, error)
}

type siteService struct {
	generator SiteGenerator
}

// NewSiteService creates a SiteService on top of generator
func NewSiteService(generator SiteGenerator) SiteService {
	return &siteService{generator: generator}
}

func (s *siteService) GenerateFromAudio(ctx context.Context, filename string, audio []byte) (*dto.SiteResponse, error) {
	return s.generate(ctx, pipeline.Input{Audio: audio, Filename: filename})
}

func (s *siteService) GenerateFromText(ctx context.Context, req *dto.GenerateFromTextRequest) (*dto.SiteResponse, error) {
	return s.generate(ctx, pipeline.Input{Text: req.Text})
}

func (s *siteService) generate(ctx context.Context, in pipeline.Input) (*dto.SiteResponse, error) {
	result, err := s.generator.GenerateSite(ctx, in)
	if err != nil {
		return nil, toAPIError(err)
	}
	return dto.NewSiteResponse(result.Spec, result.HTML, result.Transcript), nil
}

func toAPIError(err error) *errors.APIError {
	var pe *pipeline.Error
	if !stderrors.As(err, &pe) {
		return errors.NewInternalError("Failed to generate site")
	}

	switch pe.Kind {
	case pipeline.KindInvalidInput:
		return errors.NewBadRequestError(pe.Error())
	case pipeline.KindTranscriptionFailed:
		return errors.NewUpstreamError("Transcription failed")
	default:
		return errors.NewInternalError("Failed to generate site")
	}
}
