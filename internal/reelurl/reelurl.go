package reelurl

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// Defaults applied when the input omits a scheme or host.
const (
	DefaultScheme = "https"
	DefaultHost   = "www.instagram.com"
)

// ErrInvalid marks inputs that do not resolve to a supported reel URL.
var ErrInvalid = errors.New("invalid reel url")

var canonicalPattern = regexp.MustCompile(`(?i)^https?://(www\.)?instagram\.com/reels?/[A-Za-z0-9_-]+/?$`)

// Canonicalize rebuilds a reel URL into its canonical form: scheme and host
// normalized, path reduced to /reel/<id>, query and fragment dropped. It
// returns an error wrapping ErrInvalid when the input does not contain a
// reel identifier or the rebuilt URL fails validation.
func Canonicalize(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", fmt.Errorf("%w: empty input", ErrInvalid)
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	id, err := reelID(parsed.EscapedPath())
	if err != nil {
		return "", err
	}

	scheme := parsed.Scheme
	if scheme == "" {
		scheme = DefaultScheme
	}
	host := parsed.Host
	if host == "" {
		host = DefaultHost
	}

	rebuilt := fmt.Sprintf("%s://%s/reel/%s", scheme, host, id)
	// Re-validate the rebuilt form. This rejects foreign hosts, non-HTTP
	// schemes, and identifiers containing characters the platform never
	// issues.
	if !canonicalPattern.MatchString(rebuilt) {
		return "", fmt.Errorf("%w: %s", ErrInvalid, rebuilt)
	}
	return rebuilt, nil
}

// Valid reports whether raw already matches the accepted reel URL pattern.
func Valid(raw string) bool {
	return canonicalPattern.MatchString(strings.TrimSpace(raw))
}

// reelID locates the identifier segment following the first "reel" (or,
// failing that, "reels") path segment.
func reelID(path string) (string, error) {
	var segments []string
	for _, part := range strings.Split(path, "/") {
		if part != "" {
			segments = append(segments, part)
		}
	}

	idx := -1
	for i, segment := range segments {
		if segment == "reel" {
			idx = i
			break
		}
	}
	if idx == -1 {
		for i, segment := range segments {
			if segment == "reels" {
				idx = i
				break
			}
		}
	}
	if idx == -1 {
		return "", fmt.Errorf("%w: no reel segment in path %q", ErrInvalid, path)
	}
	if idx+1 >= len(segments) {
		return "", fmt.Errorf("%w: missing reel identifier in path %q", ErrInvalid, path)
	}
	return segments[idx+1], nil
}
