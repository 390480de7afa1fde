package api

import (
	"reelscribe/internal/pipeline"
	"reelscribe/internal/transcript"
)

// FromOutcome converts a successful pipeline outcome to its wire form.
func FromOutcome(outcome pipeline.Outcome) TranscribeResult {
	result := TranscribeResult{
		URL:     outcome.URL,
		SRTPath: outcome.SRTPath,
	}
	if outcome.Result != nil {
		result.Duration = outcome.Result.Duration
		result.Language = outcome.Result.Language
		result.Text = outcome.Result.Text
		result.Segments = fromSegments(outcome.Result.Segments)
	}
	return result
}

func fromSegments(segments []transcript.Segment) []Segment {
	out := make([]Segment, 0, len(segments))
	for _, segment := range segments {
		out = append(out, Segment{
			ID:    segment.ID,
			Start: segment.Start,
			End:   segment.End,
			Text:  segment.Text,
		})
	}
	return out
}
