// Package transcript defines the transcription data model shared by the
// transcriber adapter, the subtitle writer, and the API layer.
package transcript

import "strings"

// Segment is a single timestamped span of transcribed speech. IDs are
// sequential and zero-based; Text is stored trimmed. Segments are never
// mutated after creation.
type Segment struct {
	ID    int     `json:"id"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Result is the outcome of transcribing one audio file.
type Result struct {
	// Duration is the source audio length in seconds, nil when unknown.
	Duration *float64
	// Language is the detected or requested language code.
	Language string
	// Segments are ordered by start time.
	Segments []Segment
	// Text is the space-joined concatenation of non-empty segment texts.
	Text string
}

// JoinSegments concatenates the non-empty segment texts in order, separated
// by single spaces.
func JoinSegments(segments []Segment) string {
	parts := make([]string, 0, len(segments))
	for _, segment := range segments {
		if text := strings.TrimSpace(segment.Text); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " ")
}
