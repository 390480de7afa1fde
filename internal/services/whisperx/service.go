package whisperx

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	langpkg "reelscribe/internal/language"
	"reelscribe/internal/transcript"
)

// Service transcribes audio files with a fixed model profile.
type Service struct {
	cfg           Config
	commandRunner func(ctx context.Context, name string, args ...string) error
}

// NewService creates a transcription service for the given canonical
// profile. Callers normally obtain services through a Registry.
func NewService(cfg Config) *Service {
	return &Service{cfg: cfg}
}

// WithCommandRunner sets a custom command runner (for testing).
func (s *Service) WithCommandRunner(runner func(ctx context.Context, name string, args ...string) error) {
	s.commandRunner = runner
}

// Profile returns the service's model profile.
func (s *Service) Profile() Config {
	return s.cfg
}

// TranscribeFile transcribes an audio file, writing WhisperX output files
// into outputDir, and returns the parsed result. The language hint may be
// empty for autodetection.
func (s *Service) TranscribeFile(ctx context.Context, source, outputDir, language string) (*transcript.Result, error) {
	if source == "" {
		return nil, fmt.Errorf("transcribe: source path required")
	}
	if outputDir == "" {
		outputDir = filepath.Dir(source)
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("transcribe: ensure output dir: %w", err)
	}

	args := s.buildArgs(source, outputDir, language)
	if err := s.run(ctx, UVXCommand, args...); err != nil {
		return nil, fmt.Errorf("whisperx: %w", err)
	}

	baseName := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	jsonPath := filepath.Join(outputDir, baseName+".json")
	result, err := LoadResult(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("whisperx output: %w", err)
	}
	if result.Language == "" {
		result.Language = langpkg.ToISO2(language)
	}
	return result, nil
}

// buildArgs constructs the uvx command arguments for WhisperX.
func (s *Service) buildArgs(source, outputDir, language string) []string {
	args := []string{
		"--index-url", PypiIndexURL,
		"whisperx",
		source,
		"--model", s.cfg.ModelSize,
		"--batch_size", BatchSize,
		"--output_dir", outputDir,
		"--output_format", OutputFormat,
		"--device", CPUDevice,
		"--compute_type", s.cfg.ComputeType,
	}
	if lang := langpkg.ToISO2(language); lang != "" {
		args = append(args, "--language", lang)
	}
	return args
}

func (s *Service) run(ctx context.Context, name string, args ...string) error {
	if s.commandRunner != nil {
		return s.commandRunner(ctx, name, args...)
	}
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s: %w: %s", name, err, tail(string(output)))
	}
	return nil
}

// payload is the JSON structure WhisperX writes.
type payload struct {
	Language string `json:"language"`
	Segments []struct {
		Start float64 `json:"start"`
		End   float64 `json:"end"`
		Text  string  `json:"text"`
	} `json:"segments"`
}

// LoadResult parses a WhisperX JSON file into a transcript result. Segment
// IDs are assigned sequentially from zero and texts are trimmed.
func LoadResult(jsonPath string) (*transcript.Result, error) {
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, err
	}
	var parsed payload
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parse whisperx json: %w", err)
	}

	segments := make([]transcript.Segment, 0, len(parsed.Segments))
	for _, segment := range parsed.Segments {
		segments = append(segments, transcript.Segment{
			ID:    len(segments),
			Start: segment.Start,
			End:   segment.End,
			Text:  strings.TrimSpace(segment.Text),
		})
	}
	return &transcript.Result{
		Language: langpkg.ToISO2(parsed.Language),
		Segments: segments,
		Text:     transcript.JoinSegments(segments),
	}, nil
}

// tail trims command output to its last few lines for error messages.
func tail(output string) string {
	output = strings.TrimSpace(output)
	lines := strings.Split(output, "\n")
	if len(lines) > 5 {
		lines = lines[len(lines)-5:]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
