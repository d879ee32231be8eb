package extract

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"voice2site/internal/app/api"
	"voice2site/internal/app/metrics"
	"voice2site/internal/app/model"
)

// Degradation reasons reported in logs and metrics
const (
	ReasonCompletion = "completion"
	ReasonDecode     = "decode"
)

// DefaultRecord is the record substituted when the model reply cannot be used.
func DefaultRecord() model.WebsiteSpec {
	return model.WebsiteSpec{
		Name:     "My Business",
		Category: "Business",
		Style:    "Modern",
		Services: []string{},
	}
}

// Extractor turns free text into a WebsiteSpec through a language model.
// Extract never fails: unusable replies resolve to the fallback record.
type Extractor struct {
	completer api.Completer
	fallback  model.WebsiteSpec
	logger    *zap.Logger
	metrics   *metrics.Metrics
}

// NewExtractor creates an Extractor. logger and m may be nil.
func NewExtractor(completer api.Completer, fallback model.WebsiteSpec, logger *zap.Logger, m *metrics.Metrics) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{
		completer: completer,
		fallback:  cloneSpec(fallback.Complete()),
		logger:    logger,
		metrics:   m,
	}
}

// Extract asks the model for the structured record described by text.
// Blank text yields an empty record without calling the model.
func (e *Extractor) Extract(ctx context.Context, text string) model.WebsiteSpec {
	if strings.TrimSpace(text) == "" {
		return model.EmptyWebsiteSpec()
	}

	start := time.Now()
	defer func() { e.metrics.ObserveStage(metrics.StageExtract, time.Since(start)) }()

	reply, err := e.completer.Complete(ctx, BuildPrompt(text))
	if err != nil {
		return e.degrade(ReasonCompletion, err)
	}

	spec, err := DecodeWithDefault(reply, e.fallback)
	if err != nil {
		e.logger.Debug("unparsable model reply", zap.String("reply", reply))
		return e.degrade(ReasonDecode, err)
	}

	e.logger.Debug("extracted website spec",
		zap.String("name", spec.Name),
		zap.String("type", spec.Category),
		zap.Int("services", len(spec.Services)),
	)
	return spec
}

func (e *Extractor) degrade(reason string, err error) model.WebsiteSpec {
	e.logger.Warn("extraction degraded, using default record",
		zap.String("reason", reason),
		zap.Error(err),
	)
	e.metrics.RecordDegraded(reason)
	return cloneSpec(e.fallback)
}
