package pipeline

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	apperrors "voice2site/internal/app/errors"
	"voice2site/internal/app/extract"
	"voice2site/internal/app/metrics"
	"voice2site/internal/app/render"
	"voice2site/internal/app/testutil"
)

type fixture struct {
	transcriber *testutil.MockTranscriber
	completer   *testutil.MockCompleter
	metrics     *metrics.Metrics
	logs        *observer.ObservedLogs
	uploadDir   string
	pipeline    *Pipeline
}

func newFixture(t *testing.T, opts Options) *fixture {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)
	m := metrics.NewMetrics(prometheus.NewRegistry())

	if opts.UploadDir == "" {
		opts.UploadDir = t.TempDir()
	}

	transcriber := testutil.NewMockTranscriber(t)
	completer := testutil.NewMockCompleter(t)
	renderer, err := render.NewRenderer(render.DefaultOptions())
	require.NoError(t, err)

	extractor := extract.NewExtractor(completer, extract.DefaultRecord(), logger, m)
	return &fixture{
		transcriber: transcriber,
		completer:   completer,
		metrics:     m,
		logs:        logs,
		uploadDir:   opts.UploadDir,
		pipeline:    NewPipeline(transcriber, extractor, renderer, opts, logger, m),
	}
}

func (f *fixture) assertUploadDirEmpty(t *testing.T) {
	t.Helper()
	entries, err := os.ReadDir(f.uploadDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "staged audio must be removed")
}

func TestGenerateSite_Text(t *testing.T) {
	f := newFixture(t, Options{})
	f.completer.On("Complete", mock.Anything, mock.MatchedBy(func(prompt string) bool {
		return assert.Contains(t, prompt, "Acme does consulting")
	})).Return(testutil.ReplyAcmeInProse, nil).Once()

	result, err := f.pipeline.GenerateSite(context.Background(), Input{Text: "Acme does consulting"})
	require.NoError(t, err)

	assert.Equal(t, testutil.AcmeSpec(), result.Spec)
	assert.Empty(t, result.Transcript)
	assert.Contains(t, result.HTML, "<title>Acme</title>")
	assert.Contains(t, result.HTML, `<li class="service">Consulting</li>`)

	f.transcriber.AssertNotCalled(t, "Transcript", mock.Anything, mock.Anything)
	f.completer.AssertExpectations(t)
	assert.Equal(t, 1.0, promtestutil.ToFloat64(f.metrics.PipelineRuns.WithLabelValues(InputText, outcomeSucceeded)))
}

func TestGenerateSite_Audio(t *testing.T) {
	f := newFixture(t, Options{})
	f.transcriber.On("Transcript", mock.Anything, mock.AnythingOfType("string")).
		Return("  We are Acme, a modern consulting company.\n", nil).Once()
	f.completer.On("Complete", mock.Anything, mock.Anything).Return(testutil.ReplyAcme, nil).Once()

	result, err := f.pipeline.GenerateSite(context.Background(), Input{
		Audio:    testutil.WAVFixture(t),
		Filename: "pitch.WAV",
	})
	require.NoError(t, err)

	assert.Equal(t, "We are Acme, a modern consulting company.", result.Transcript)
	assert.Equal(t, testutil.AcmeSpec(), result.Spec)

	require.Len(t, f.transcriber.Paths, 1)
	assert.True(t, f.transcriber.ExistedOnCall[0], "audio must be staged before transcription")
	assert.NoFileExists(t, f.transcriber.Paths[0])
	f.assertUploadDirEmpty(t)

	f.transcriber.AssertExpectations(t)
	f.completer.AssertExpectations(t)
	assert.Equal(t, 1.0, promtestutil.ToFloat64(f.metrics.PipelineRuns.WithLabelValues(InputAudio, outcomeSucceeded)))
}

func TestGenerateSite_TranscriptionFailure(t *testing.T) {
	tests := []struct {
		name       string
		transcript string
		err        error
		wantCause  error
	}{
		{
			name: "transcriber error",
			err:  errors.New("upstream 503"),
		},
		{
			name:       "blank transcript",
			transcript: " \n\t",
			wantCause:  apperrors.ErrEmptyTranscript,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, Options{})
			f.transcriber.On("Transcript", mock.Anything, mock.Anything).Return(tt.transcript, tt.err).Once()

			result, err := f.pipeline.GenerateSite(context.Background(), Input{
				Audio:    testutil.WAVFixture(t),
				Filename: "pitch.wav",
			})
			require.Error(t, err)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, ErrTranscriptionFailed)
			assert.NotErrorIs(t, err, ErrInvalidInput)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
			}
			if tt.wantCause != nil {
				assert.ErrorIs(t, err, tt.wantCause)
			}

			f.completer.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
			require.Len(t, f.transcriber.Paths, 1)
			assert.NoFileExists(t, f.transcriber.Paths[0])
			f.assertUploadDirEmpty(t)
			assert.Equal(t, 1.0, promtestutil.ToFloat64(
				f.metrics.PipelineRuns.WithLabelValues(InputAudio, string(KindTranscriptionFailed))))
		})
	}
}

func TestGenerateSite_InvalidInput(t *testing.T) {
	notWAV := []byte("ID3\x03\x00\x00\x00\x00\x00\x00 definitely an mp3")

	tests := []struct {
		name  string
		opts  Options
		input func(t *testing.T) Input
	}{
		{
			name:  "nothing given",
			input: func(t *testing.T) Input { return Input{} },
		},
		{
			name: "both given",
			input: func(t *testing.T) Input {
				return Input{Audio: testutil.WAVFixture(t), Filename: "a.wav", Text: "Acme"}
			},
		},
		{
			name:  "whitespace text",
			input: func(t *testing.T) Input { return Input{Text: "   \n\t "} },
		},
		{
			name: "wrong extension",
			input: func(t *testing.T) Input {
				return Input{Audio: testutil.WAVFixture(t), Filename: "pitch.mp3"}
			},
		},
		{
			name:  "not a WAV container",
			input: func(t *testing.T) Input { return Input{Audio: notWAV, Filename: "pitch.wav"} },
		},
		{
			name:  "empty audio",
			input: func(t *testing.T) Input { return Input{Filename: "pitch.wav"} },
		},
		{
			name: "over size limit",
			opts: Options{MaxUploadBytes: 64},
			input: func(t *testing.T) Input {
				return Input{Audio: testutil.WAVFixture(t), Filename: "pitch.wav"}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.opts)

			result, err := f.pipeline.GenerateSite(context.Background(), tt.input(t))
			require.Error(t, err)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, ErrInvalidInput)

			var pe *Error
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, KindInvalidInput, pe.Kind)
			assert.NotEmpty(t, pe.Message)

			f.transcriber.AssertNotCalled(t, "Transcript", mock.Anything, mock.Anything)
			f.completer.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
			f.assertUploadDirEmpty(t)
		})
	}
}

func TestGenerateSite_DegradedExtractionStillSucceeds(t *testing.T) {
	f := newFixture(t, Options{})
	f.completer.On("Complete", mock.Anything, mock.Anything).Return(testutil.ReplyRefusal, nil).Once()

	result, err := f.pipeline.GenerateSite(context.Background(), Input{Text: "a bakery"})
	require.NoError(t, err)

	assert.Equal(t, extract.DefaultRecord(), result.Spec)
	assert.Contains(t, result.HTML, "My Business")
	assert.Equal(t, 1, f.logs.FilterMessage("extraction degraded, using default record").Len())
}

func TestGenerateSite_StagingFailure(t *testing.T) {
	f := newFixture(t, Options{UploadDir: t.TempDir() + "/missing"})

	_, err := f.pipeline.GenerateSite(context.Background(), Input{
		Audio:    testutil.WAVFixture(t),
		Filename: "pitch.wav",
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidInput)
	assert.NotErrorIs(t, err, ErrTranscriptionFailed)
	f.transcriber.AssertNotCalled(t, "Transcript", mock.Anything, mock.Anything)
}

func TestNewPipeline_DefaultUploadLimit(t *testing.T) {
	p := NewPipeline(nil, nil, nil, Options{}, nil, nil)
	assert.Equal(t, DefaultMaxUploadBytes, p.MaxUploadBytes())
}

func TestError(t *testing.T) {
	cause := errors.New("boom")
	err := transcriptionFailed(cause)

	assert.Equal(t, "transcription failed: boom", err.Error())
	assert.ErrorIs(t, err, ErrTranscriptionFailed)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "text is empty", invalidInput("text is empty", nil).Error())
	assert.Equal(t, "invalid_input", ErrInvalidInput.Error())
}

var _ Extractor = (*extract.Extractor)(nil)
var _ Renderer = (*render.Renderer)(nil)
