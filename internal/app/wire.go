//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/google/wire"

	"voice2site/internal/api/server"
	"voice2site/internal/app/pipeline"
	"voice2site/internal/config"
)

var pipelineSet = wire.NewSet(
	provideRegistry,
	provideMetrics,
	provideLogger,
	ProvideBackends,
	provideTranscriber,
	provideCompleter,
	provideExtractor,
	ProvideRenderer,
	providePipeline,
)

// InitializePipeline builds the generation pipeline used by the CLI
func InitializePipeline(ctx context.Context, cfg *config.Config) (*pipeline.Pipeline, error) {
	wire.Build(pipelineSet)
	return &pipeline.Pipeline{}, nil
}

// InitializeServer builds the HTTP server with its pipeline and metrics registry
func InitializeServer(ctx context.Context, cfg *config.Config) (*server.Server, error) {
	wire.Build(
		pipelineSet,
		provideSiteService,
		provideHTTPLogger,
		provideServerConfig,
		provideServer,
	)
	return &server.Server{}, nil
}
