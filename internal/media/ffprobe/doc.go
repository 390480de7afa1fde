// Package ffprobe provides a typed wrapper around ffprobe JSON output.
//
// The pipeline uses it to read the duration of fetched audio before
// transcription. Inspect executes ffprobe; helper methods on Result expose
// duration and stream counts.
package ffprobe
