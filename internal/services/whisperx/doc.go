// Package whisperx adapts WhisperX speech recognition for the pipeline.
//
// Transcription runs out of process via uvx, which resolves and caches the
// WhisperX distribution on first use. The package parses the JSON payload
// WhisperX writes next to its output into transcript segments.
//
// Registry hands out one Service per (model size, compute type) profile,
// guarded by a mutex so concurrent first requests construct it only once.
package whisperx
