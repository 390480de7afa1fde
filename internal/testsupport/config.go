// Package testsupport provides shared helpers for package tests.
package testsupport

import (
	"path/filepath"
	"testing"

	"reelscribe/internal/config"
)

// ConfigOption allows callers to customize the generated test
// configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test
// and a loopback bind address, then applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.StagingDir = filepath.Join(base, "staging")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.APIBind = "127.0.0.1:0"
	cfg.Whisper.ModelSize = "small"
	cfg.Whisper.ComputeType = "int8"

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithWhisperProfile overrides the default model profile.
func WithWhisperProfile(modelSize, computeType string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Whisper.ModelSize = modelSize
		cfg.Whisper.ComputeType = computeType
	}
}

// WithDefaultLanguage sets the configured language hint.
func WithDefaultLanguage(code string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Whisper.DefaultLanguage = code
	}
}
