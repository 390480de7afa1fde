// Package pipeline composes the per-URL transcription flow shared by the
// CLI and the HTTP server: canonicalize the reel URL, fetch its audio,
// probe the duration, transcribe, and write the SRT file beside the media.
//
// Failures are tagged with the services error taxonomy so handler
// boundaries can classify them without string matching. Batch processing is
// sequential; every URL gets an independent outcome.
package pipeline
