package subtitles

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"reelscribe/internal/transcript"
)

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "00:00:00,000"},
		{61.5, "00:01:01,500"},
		{63.25, "00:01:03,250"},
		{3599.999, "00:59:59,999"},
		{3600, "01:00:00,000"},
		{61.9995, "00:01:02,000"},
		{-1, "00:00:00,000"},
	}
	for _, tc := range tests {
		if got := FormatTimestamp(tc.seconds); got != tc.want {
			t.Errorf("FormatTimestamp(%v) = %q, want %q", tc.seconds, got, tc.want)
		}
	}
}

func TestWriteRendersCues(t *testing.T) {
	segments := []transcript.Segment{
		{ID: 0, Start: 61.5, End: 63.25, Text: "Hello"},
		{ID: 1, Start: 63.25, End: 65, Text: "world"},
	}
	path := filepath.Join(t.TempDir(), "out.srt")
	returned, err := Write(segments, path)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if returned != path {
		t.Errorf("Write returned %q, want %q", returned, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	want := "1\n00:01:01,500 --> 00:01:03,250\nHello\n\n2\n00:01:03,250 --> 00:01:05,000\nworld\n\n"
	if string(data) != want {
		t.Errorf("Write output:\n%q\nwant:\n%q", string(data), want)
	}
}

func TestWriteOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.srt")
	if err := os.WriteFile(path, []byte("stale content"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}
	if _, err := Write([]transcript.Segment{{Text: "fresh", End: 1}}, path); err != nil {
		t.Fatalf("Write: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if strings.Contains(string(data), "stale") {
		t.Error("existing file content not overwritten")
	}
}

func TestWriteUnwritableDestination(t *testing.T) {
	if _, err := Write(nil, filepath.Join(t.TempDir(), "missing", "out.srt")); err == nil {
		t.Fatal("expected error for unwritable destination")
	}
}

func TestRoundTrip(t *testing.T) {
	segments := []transcript.Segment{
		{ID: 0, Start: 0, End: 1.04, Text: "Hi"},
		{ID: 1, Start: 1.04, End: 2.5, Text: "there, friend"},
		{ID: 2, Start: 2.5, End: 3661.275, Text: "multi word line"},
	}
	path := filepath.Join(t.TempDir(), "roundtrip.srt")
	if _, err := Write(segments, path); err != nil {
		t.Fatalf("Write: %v", err)
	}

	parsed, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(parsed) != len(segments) {
		t.Fatalf("parsed %d segments, want %d", len(parsed), len(segments))
	}
	for i, segment := range segments {
		got := parsed[i]
		if got.ID != segment.ID {
			t.Errorf("segment %d: id = %d, want %d", i, got.ID, segment.ID)
		}
		if math.Abs(got.Start-segment.Start) > 0.0005 {
			t.Errorf("segment %d: start = %v, want %v", i, got.Start, segment.Start)
		}
		if math.Abs(got.End-segment.End) > 0.0005 {
			t.Errorf("segment %d: end = %v, want %v", i, got.End, segment.End)
		}
		if got.Text != segment.Text {
			t.Errorf("segment %d: text = %q, want %q", i, got.Text, segment.Text)
		}
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.srt")
	if err := os.WriteFile(path, []byte("1\nnot a timing line\ntext\n\n"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}
	if _, err := Parse(path); err == nil {
		t.Fatal("expected parse error for malformed timing line")
	}
}

func TestParseTimestamp(t *testing.T) {
	got, err := ParseTimestamp("00:05:46,345")
	if err != nil {
		t.Fatalf("ParseTimestamp: %v", err)
	}
	if math.Abs(got-346.345) > 0.0005 {
		t.Errorf("ParseTimestamp = %v, want 346.345", got)
	}
	if _, err := ParseTimestamp("12:34"); err == nil {
		t.Error("expected error for truncated timestamp")
	}
}
