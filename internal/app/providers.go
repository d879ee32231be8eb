package app

import (
	"context"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"voice2site/internal/api/server"
	"voice2site/internal/api/v1/services"
	"voice2site/internal/app/api"
	"voice2site/internal/app/api/gemini"
	openaiclient "voice2site/internal/app/api/openai"
	"voice2site/internal/app/api/openai/chat"
	"voice2site/internal/app/api/openai/whisper"
	"voice2site/internal/app/errors"
	"voice2site/internal/app/extract"
	"voice2site/internal/app/logging"
	"voice2site/internal/app/metrics"
	"voice2site/internal/app/model"
	"voice2site/internal/app/pipeline"
	"voice2site/internal/app/render"
	"voice2site/internal/config"
)

// Backends are the external model services selected by configuration
type Backends struct {
	Transcriber api.Transcriber
	Completer   api.Completer
}

func provideRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func provideMetrics(reg *prometheus.Registry) *metrics.Metrics {
	return metrics.NewMetrics(reg)
}

func provideLogger(cfg *config.Config) (*zap.Logger, error) {
	return logging.NewLogger(cfg.Log.Level, cfg.Log.Development)
}

func provideHTTPLogger(cfg *config.Config) *slog.Logger {
	return logging.NewHTTPLogger(os.Stdout, cfg.Log.Level)
}

// ProvideBackends builds the transcriber and completer for the configured backend
func ProvideBackends(ctx context.Context, cfg *config.Config) (Backends, error) {
	p := cfg.Provider
	switch p.Backend {
	case config.BackendOpenAI:
		llm := openaiclient.NewClient(p.LLM.APIKey, p.LLM.BaseURL)
		stt := openaiclient.NewClient(p.Whisper.APIKey, p.Whisper.BaseURL)
		return Backends{
			Transcriber: whisper.NewRemoteTranscriber(stt, p.Whisper.Model, p.Whisper.Language),
			Completer:   chat.NewCompleter(llm, p.LLM.Model),
		}, nil
	case config.BackendGemini:
		client, err := gemini.NewClient(ctx, gemini.Config{
			APIKey:  p.Gemini.APIKey,
			Model:   p.Gemini.Model,
			BaseURL: p.Gemini.BaseURL,
		})
		if err != nil {
			return Backends{}, err
		}
		return Backends{
			Transcriber: client.Transcriber(),
			Completer:   client.Completer(),
		}, nil
	default:
		return Backends{}, errors.Wrapf(errors.ErrInvalidConfig, "unknown backend %q", p.Backend)
	}
}

func provideTranscriber(b Backends) api.Transcriber {
	return b.Transcriber
}

func provideCompleter(b Backends) api.Completer {
	return b.Completer
}

// ProvideDefaultRecord converts the configured fallback into a WebsiteSpec
func ProvideDefaultRecord(cfg *config.Config) model.WebsiteSpec {
	d := cfg.Site.Default
	return model.WebsiteSpec{
		Name:     d.Name,
		Category: d.Type,
		Style:    d.Style,
		Services: d.Services,
	}.Complete()
}

func provideExtractor(completer api.Completer, cfg *config.Config, logger *zap.Logger, m *metrics.Metrics) *extract.Extractor {
	return extract.NewExtractor(completer, ProvideDefaultRecord(cfg), logger.Named("extract"), m)
}

// ProvideRenderer builds the renderer from site policy
func ProvideRenderer(cfg *config.Config) (*render.Renderer, error) {
	return render.NewRenderer(render.Options{
		Theme:         render.Theme(cfg.Site.Theme),
		EmptyServices: render.EmptyServicesPolicy(cfg.Site.EmptyServices),
		Placeholder:   cfg.Site.Placeholder,
	})
}

func providePipeline(
	transcriber api.Transcriber,
	extractor *extract.Extractor,
	renderer *render.Renderer,
	cfg *config.Config,
	logger *zap.Logger,
	m *metrics.Metrics,
) *pipeline.Pipeline {
	opts := pipeline.Options{
		UploadDir:      cfg.Server.UploadDir,
		MaxUploadBytes: cfg.Server.MaxUploadBytes,
	}
	return pipeline.NewPipeline(transcriber, extractor, renderer, opts, logger.Named("pipeline"), m)
}

func provideSiteService(p *pipeline.Pipeline) services.SiteService {
	return services.NewSiteService(p)
}

func provideServerConfig(cfg *config.Config) server.Config {
	environment := "production"
	if cfg.Log.Development {
		environment = "development"
	}
	return server.Config{
		Port:           cfg.Server.Port,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.WriteTimeout,
		Environment:    environment,
		MaxUploadBytes: cfg.Server.MaxUploadBytes,
		CORSOrigins:    cfg.Server.CORSOrigins,
	}
}

func provideServer(
	serverCfg server.Config,
	siteService services.SiteService,
	m *metrics.Metrics,
	reg *prometheus.Registry,
	logger *slog.Logger,
) *server.Server {
	return server.NewServer(serverCfg, siteService, m, reg, logger)
}
