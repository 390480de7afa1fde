package whisperx

import (
	"fmt"
	"strings"
)

// Config captures the model profile for a transcription run.
type Config struct {
	// ModelSize is the Whisper model capacity (tiny ... large-v3).
	ModelSize string
	// ComputeType is the numeric precision mode (int8 ... float32).
	ComputeType string
}

// Profile defaults and invocation constants.
const (
	DefaultModelSize   = "small"
	DefaultComputeType = "int8"
	PypiIndexURL       = "https://pypi.org/simple"
	BatchSize          = "4"
	OutputFormat       = "json"
	CPUDevice          = "cpu"
	UVXCommand         = "uvx"
)

var modelSizes = map[string]string{
	"tiny":          "tiny",
	"base":          "base",
	"small":         "small",
	"medium":        "medium",
	"large":         "large-v3",
	"large-v2":      "large-v2",
	"large-v3":      "large-v3",
	"large-variant": "large-v3",
}

var computeTypes = map[string]string{
	"int8":          "int8",
	"8-bit":         "int8",
	"int8_float16":  "int8_float16",
	"16-bit-mixed":  "int8_float16",
	"float16":       "float16",
	"16-bit":        "float16",
	"float32":       "float32",
	"32-bit":        "float32",
}

// NormalizeModelSize maps a user-supplied model size (including the generic
// "large" alias) to its canonical name. Empty input yields the default.
func NormalizeModelSize(value string) (string, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return DefaultModelSize, nil
	}
	if canonical, ok := modelSizes[value]; ok {
		return canonical, nil
	}
	return "", fmt.Errorf("unrecognized model size %q", value)
}

// NormalizeComputeType maps a user-supplied precision mode, including the
// 8-bit/16-bit-mixed/32-bit spellings, to its canonical name. Empty input
// yields the default.
func NormalizeComputeType(value string) (string, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return DefaultComputeType, nil
	}
	if canonical, ok := computeTypes[value]; ok {
		return canonical, nil
	}
	return "", fmt.Errorf("unrecognized compute type %q", value)
}

// Normalize validates the profile and fills defaults, returning the
// canonical form.
func (c Config) Normalize() (Config, error) {
	size, err := NormalizeModelSize(c.ModelSize)
	if err != nil {
		return Config{}, err
	}
	compute, err := NormalizeComputeType(c.ComputeType)
	if err != nil {
		return Config{}, err
	}
	return Config{ModelSize: size, ComputeType: compute}, nil
}
