package services

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Sentinel errors classifying every failure the per-URL pipeline can hit.
var (
	ErrInvalidURL    = errors.New("invalid url")
	ErrFetch         = errors.New("fetch failure")
	ErrTranscription = errors.New("transcription failure")
	ErrSubtitleWrite = errors.New("subtitle write failure")
	ErrConfiguration = errors.New("configuration error")
)

// Wrap builds an error message that includes operation context while tagging
// it with the provided marker for classification at the handler boundary.
// The marker should be one of the exported sentinel errors above.
func Wrap(marker error, operation, message string, err error) error {
	detail := buildDetail(operation, message)
	if marker == nil {
		marker = ErrConfiguration
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// HTTPStatus maps a pipeline error to the response status the API surface
// should use. Every classified failure is a caller-visible 400; anything
// unclassified is treated as a server fault.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrInvalidURL),
		errors.Is(err, ErrFetch),
		errors.Is(err, ErrTranscription),
		errors.Is(err, ErrSubtitleWrite):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func buildDetail(operation, message string) string {
	parts := make([]string, 0, 2)
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
