package pipeline

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"reelscribe/internal/config"
	"reelscribe/internal/logging"
	"reelscribe/internal/media/ffprobe"
	"reelscribe/internal/reelurl"
	"reelscribe/internal/services"
	"reelscribe/internal/services/whisperx"
	"reelscribe/internal/subtitles"
	"reelscribe/internal/transcript"
)

// Fetcher downloads the audio of a canonical reel URL and returns a local
// file path.
type Fetcher interface {
	FetchAudio(ctx context.Context, url, requestCookies string, interactive bool) (string, error)
}

// Transcriber turns an audio file into a transcript result.
type Transcriber interface {
	TranscribeFile(ctx context.Context, source, outputDir, language string) (*transcript.Result, error)
}

// TranscriberSource resolves a transcriber for a model profile. Profile
// construction failures belong to the requesting call only.
type TranscriberSource func(profile whisperx.Config) (Transcriber, error)

// WhisperxSource adapts a whisperx registry to a TranscriberSource.
func WhisperxSource(registry *whisperx.Registry) TranscriberSource {
	return func(profile whisperx.Config) (Transcriber, error) {
		return registry.Get(profile)
	}
}

// Prober reports the duration in seconds of a media file.
type Prober func(ctx context.Context, path string) (float64, bool)

// Options carries per-request overrides for one pipeline run.
type Options struct {
	Language    string
	CookiesPath string
	ModelSize   string
	ComputeType string
	// Interactive marks CLI runs, enabling the browser cookie source.
	Interactive bool
}

// Outcome is the result of processing one URL. Err is nil on success.
type Outcome struct {
	// Input is the URL as supplied by the caller.
	Input string
	// URL is the canonical form, set once normalization succeeds.
	URL string
	// Result and SRTPath are populated on success.
	Result  *transcript.Result
	SRTPath string
	Err     error
}

// Pipeline executes the per-URL transcription flow.
type Pipeline struct {
	cfg     *config.Config
	fetcher Fetcher
	models  TranscriberSource
	probe   Prober
	logger  *slog.Logger
}

// Option customizes pipeline construction.
type Option func(*Pipeline)

// WithProber replaces the duration prober (primarily for tests).
func WithProber(probe Prober) Option {
	return func(p *Pipeline) {
		if probe != nil {
			p.probe = probe
		}
	}
}

// New constructs a pipeline around the given fetcher and transcriber
// source.
func New(cfg *config.Config, fetcher Fetcher, models TranscriberSource, logger *slog.Logger, opts ...Option) *Pipeline {
	p := &Pipeline{
		cfg:     cfg,
		fetcher: fetcher,
		models:  models,
		probe:   ffprobeDuration,
		logger:  logging.NewComponentLogger(logger, "pipeline"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process runs the full flow for one URL.
func (p *Pipeline) Process(ctx context.Context, rawURL string, opts Options) Outcome {
	outcome := Outcome{Input: rawURL}

	requestID := uuid.NewString()
	ctx = services.WithRequestID(ctx, requestID)
	logger := p.logger.With(
		logging.String(logging.FieldRequestID, requestID),
		logging.String(logging.FieldURL, rawURL),
	)

	canonical, err := reelurl.Canonicalize(rawURL)
	if err != nil {
		outcome.Err = services.Wrap(services.ErrInvalidURL, "normalize", rawURL, err)
		return outcome
	}
	outcome.URL = canonical

	transcriber, err := p.models(whisperx.Config{
		ModelSize:   p.override(opts.ModelSize, p.cfg.Whisper.ModelSize),
		ComputeType: p.override(opts.ComputeType, p.cfg.Whisper.ComputeType),
	})
	if err != nil {
		outcome.Err = services.Wrap(services.ErrTranscription, "model", canonical, err)
		return outcome
	}

	logger.Info("downloading audio")
	audioPath, err := p.fetcher.FetchAudio(ctx, canonical, opts.CookiesPath, opts.Interactive)
	if err != nil {
		outcome.Err = services.Wrap(services.ErrFetch, "download", canonical, err)
		return outcome
	}
	logger.Info("audio saved", logging.String("path", audioPath))

	language := p.override(opts.Language, p.cfg.Whisper.DefaultLanguage)
	logger.Info("transcribing")
	result, err := transcriber.TranscribeFile(ctx, audioPath, filepath.Dir(audioPath), language)
	if err != nil {
		outcome.Err = services.Wrap(services.ErrTranscription, "transcribe", canonical, err)
		return outcome
	}

	if seconds, ok := p.probe(ctx, audioPath); ok {
		result.Duration = &seconds
	}

	srtPath := strings.TrimSuffix(audioPath, filepath.Ext(audioPath)) + ".srt"
	if _, err := subtitles.Write(result.Segments, srtPath); err != nil {
		outcome.Err = services.Wrap(services.ErrSubtitleWrite, "subtitles", srtPath, err)
		return outcome
	}
	logger.Info("subtitles written", logging.String("path", srtPath))

	outcome.Result = result
	outcome.SRTPath = srtPath
	return outcome
}

// ProcessAll runs URLs sequentially, each with an independent outcome; a
// failure never aborts the remaining URLs.
func (p *Pipeline) ProcessAll(ctx context.Context, urls []string, opts Options) []Outcome {
	outcomes := make([]Outcome, 0, len(urls))
	for _, url := range urls {
		if err := ctx.Err(); err != nil {
			outcomes = append(outcomes, Outcome{Input: url, Err: err})
			continue
		}
		outcomes = append(outcomes, p.Process(ctx, url, opts))
	}
	return outcomes
}

func (p *Pipeline) override(value, fallback string) string {
	if value = strings.TrimSpace(value); value != "" {
		return value
	}
	return fallback
}

// ffprobeDuration probes the media duration, best effort.
func ffprobeDuration(ctx context.Context, path string) (float64, bool) {
	result, err := ffprobe.Inspect(ctx, "", path)
	if err != nil {
		return 0, false
	}
	return result.DurationSeconds()
}
