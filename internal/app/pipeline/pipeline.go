package pipeline

import (
	"context"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"voice2site/internal/app/api"
	"voice2site/internal/app/audio"
	apperrors "voice2site/internal/app/errors"
	"voice2site/internal/app/metrics"
	"voice2site/internal/app/model"
)

// Input labels used in metrics and logs
const (
	InputAudio = "audio"
	InputText  = "text"

	outcomeSucceeded = "succeeded"
	outcomeError     = "error"
)

// DefaultMaxUploadBytes caps audio payloads when no limit is configured
const DefaultMaxUploadBytes int64 = 25 << 20

// Input is one generation request. Exactly one of Audio or Text is set.
type Input struct {
	Audio    []byte
	Filename string
	Text     string
}

// Result of a successful run. Transcript is empty for text input.
type Result struct {
	Spec       model.WebsiteSpec
	HTML       string
	Transcript string
}

// Extractor is the structured-extraction stage
type Extractor interface {
	Extract(ctx context.Context, text string) model.WebsiteSpec
}

// Renderer is the document stage
type Renderer interface {
	Render(spec model.WebsiteSpec) string
}

// Options holds the upload policy
type Options struct {
	// UploadDir is where audio is staged; empty means os.TempDir()
	UploadDir      string
	MaxUploadBytes int64
}

// Pipeline runs transcription, extraction and rendering for one request at a time.
// It keeps no per-request state and is safe for concurrent use.
type Pipeline struct {
	transcriber api.Transcriber
	extractor   Extractor
	renderer    Renderer
	opts        Options
	logger      *zap.Logger
	metrics     *metrics.Metrics
}

// NewPipeline wires the stages together. logger and m may be nil.
func NewPipeline(transcriber api.Transcriber, extractor Extractor, renderer Renderer, opts Options, logger *zap.Logger, m *metrics.Metrics) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = DefaultMaxUploadBytes
	}
	return &Pipeline{
		transcriber: transcriber,
		extractor:   extractor,
		renderer:    renderer,
		opts:        opts,
		logger:      logger,
		metrics:     m,
	}
}

// MaxUploadBytes is the effective audio size limit
func (p *Pipeline) MaxUploadBytes() int64 {
	return p.opts.MaxUploadBytes
}

// GenerateSite turns in into a rendered document.
// Returned errors are *Error of kind InvalidInput or TranscriptionFailed, except for
// local I/O failures while staging audio.
func (p *Pipeline) GenerateSite(ctx context.Context, in Input) (*Result, error) {
	kind := inputKind(in)
	start := time.Now()

	result, err := p.run(ctx, in)

	outcome := outcomeSucceeded
	if err != nil {
		outcome = outcomeError
		if pe, ok := err.(*Error); ok {
			outcome = string(pe.Kind)
		}
		p.logger.Warn("site generation failed",
			zap.String("input", kind),
			zap.String("outcome", outcome),
			zap.Error(err),
		)
	} else {
		p.logger.Info("site generated",
			zap.String("input", kind),
			zap.String("name", result.Spec.Name),
			zap.Int("html_bytes", len(result.HTML)),
			zap.Duration("elapsed", time.Since(start)),
		)
	}
	p.metrics.RecordRun(kind, outcome)
	return result, err
}

func (p *Pipeline) run(ctx context.Context, in Input) (*Result, error) {
	hasAudio := len(in.Audio) > 0 || in.Filename != ""
	hasText := in.Text != ""

	switch {
	case hasAudio && hasText:
		return nil, invalidInput("provide either audio or text, not both", nil)
	case !hasAudio && !hasText:
		return nil, invalidInput("audio or text is required", nil)
	}

	text, transcript := in.Text, ""
	if hasAudio {
		var err error
		if transcript, err = p.transcribe(ctx, in.Audio, in.Filename); err != nil {
			return nil, err
		}
		text = transcript
	} else if strings.TrimSpace(text) == "" {
		return nil, invalidInput("text is empty", nil)
	}

	spec := p.extractor.Extract(ctx, text)

	renderStart := time.Now()
	html := p.renderer.Render(spec)
	p.metrics.ObserveStage(metrics.StageRender, time.Since(renderStart))

	return &Result{Spec: spec, HTML: html, Transcript: transcript}, nil
}

func (p *Pipeline) transcribe(ctx context.Context, data []byte, filename string) (string, error) {
	if !audio.HasWAVExtension(filename) {
		return "", invalidInput("only .wav files are supported", nil)
	}
	if int64(len(data)) > p.opts.MaxUploadBytes {
		return "", invalidInput("audio rejected", apperrors.TooLarge("audio", p.opts.MaxUploadBytes))
	}
	info, err := audio.ValidateWAV(data)
	if err != nil {
		return "", invalidInput("invalid WAV audio", err)
	}

	path, err := p.stage(data)
	if err != nil {
		return "", err
	}
	defer func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			p.logger.Warn("failed to remove staged audio", zap.String("path", path), zap.Error(err))
		}
	}()

	p.logger.Debug("transcribing audio",
		zap.String("filename", filename),
		zap.Uint32("sample_rate", info.SampleRate),
		zap.Uint16("channels", info.Channels),
		zap.Float64("duration_seconds", info.Duration),
	)

	start := time.Now()
	transcript, err := p.transcriber.Transcript(ctx, path)
	p.metrics.ObserveStage(metrics.StageTranscribe, time.Since(start))
	if err != nil {
		return "", transcriptionFailed(err)
	}

	transcript = strings.TrimSpace(transcript)
	if transcript == "" {
		return "", transcriptionFailed(apperrors.ErrEmptyTranscript)
	}
	return transcript, nil
}

// stage writes data to a fresh temp file and returns its path
func (p *Pipeline) stage(data []byte) (string, error) {
	f, err := os.CreateTemp(p.opts.UploadDir, "upload-*.wav")
	if err != nil {
		return "", apperrors.Wrap(err, "failed to create upload file")
	}
	path := f.Name()

	_, werr := f.Write(data)
	cerr := f.Close()
	if werr == nil {
		werr = cerr
	}
	if werr != nil {
		_ = os.Remove(path)
		return "", apperrors.Wrap(werr, "failed to write upload file")
	}
	return path, nil
}

func inputKind(in Input) string {
	if len(in.Audio) > 0 || in.Filename != "" {
		return InputAudio
	}
	return InputText
}
