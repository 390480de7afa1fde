package subtitles

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"reelscribe/internal/transcript"
)

// Write serializes segments to an SRT file at path, overwriting any existing
// file. Cues are numbered from 1 in input order; callers are expected to
// provide segments already sorted and non-overlapping, as produced by the
// transcriber. Returns the destination path.
func Write(segments []transcript.Segment, path string) (string, error) {
	var builder strings.Builder
	for i, segment := range segments {
		fmt.Fprintf(&builder, "%d\n%s --> %s\n%s\n\n",
			i+1,
			FormatTimestamp(segment.Start),
			FormatTimestamp(segment.End),
			segment.Text,
		)
	}
	if err := os.WriteFile(path, []byte(builder.String()), 0o644); err != nil {
		return "", fmt.Errorf("write srt: %w", err)
	}
	return path, nil
}

// FormatTimestamp renders seconds as an SRT timestamp (HH:MM:SS,mmm).
// The value is rounded to whole milliseconds before splitting so the
// millisecond field never overflows.
func FormatTimestamp(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	totalMillis := int64(math.Round(seconds * 1000))
	hours := totalMillis / 3_600_000
	minutes := (totalMillis % 3_600_000) / 60_000
	secs := (totalMillis % 60_000) / 1000
	millis := totalMillis % 1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, secs, millis)
}

// Parse reads an SRT file and returns its cues as transcript segments with
// sequential zero-based IDs.
func Parse(path string) ([]transcript.Segment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read srt: %w", err)
	}
	content := strings.TrimSpace(strings.ReplaceAll(string(data), "\r\n", "\n"))
	if content == "" {
		return nil, nil
	}

	var segments []transcript.Segment
	for _, block := range strings.Split(content, "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		lines := strings.Split(block, "\n")
		if len(lines) < 2 {
			return nil, fmt.Errorf("parse srt: malformed cue %q", block)
		}
		if _, err := strconv.Atoi(strings.TrimSpace(lines[0])); err != nil {
			return nil, fmt.Errorf("parse srt: invalid cue index %q", lines[0])
		}
		start, end, err := parseTimingLine(lines[1])
		if err != nil {
			return nil, fmt.Errorf("parse srt: %w", err)
		}
		text := ""
		if len(lines) > 2 {
			text = strings.TrimSpace(strings.Join(lines[2:], "\n"))
		}
		segments = append(segments, transcript.Segment{
			ID:    len(segments),
			Start: start,
			End:   end,
			Text:  text,
		})
	}
	return segments, nil
}

func parseTimingLine(line string) (float64, float64, error) {
	parts := strings.Split(line, "-->")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid timing line %q", line)
	}
	start, err := ParseTimestamp(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, err
	}
	end, err := ParseTimestamp(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

// ParseTimestamp converts an SRT timestamp to seconds. A period is accepted
// in place of the standard comma before the millisecond field.
func ParseTimestamp(value string) (float64, error) {
	value = strings.TrimSpace(strings.ReplaceAll(value, ".", ","))
	if value == "" {
		return 0, fmt.Errorf("empty timestamp")
	}
	timeParts := strings.Split(value, ",")
	if len(timeParts) != 2 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	hms := strings.Split(timeParts[0], ":")
	if len(hms) != 3 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	hours, errH := strconv.Atoi(hms[0])
	minutes, errM := strconv.Atoi(hms[1])
	seconds, errS := strconv.Atoi(hms[2])
	millis, errMS := strconv.Atoi(timeParts[1])
	if errH != nil || errM != nil || errS != nil || errMS != nil {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	return float64(hours*3600+minutes*60+seconds) + float64(millis)/1000, nil
}
