// Package deps reports availability of the external tools the transcription
// flow shells out to.
package deps

import (
	"fmt"
	"os/exec"
	"strings"
)

// Requirement defines an external binary the pipeline depends on.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of one requirement.
type Status struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Available   bool
	Detail      string
}

// Requirements returns the binaries a full transcription run touches.
func Requirements() []Requirement {
	return []Requirement{
		{
			Name:        "uvx",
			Command:     "uvx",
			Description: "runs WhisperX for transcription",
		},
		{
			Name:        "yt-dlp",
			Command:     "yt-dlp",
			Description: "downloads reel audio",
		},
		{
			Name:        "ffprobe",
			Command:     "ffprobe",
			Description: "reads media duration",
			Optional:    true,
		},
		{
			Name:        "ffmpeg",
			Command:     "ffmpeg",
			Description: "audio extraction backend for yt-dlp",
			Optional:    true,
		},
	}
}

// Check evaluates the requirements against PATH.
func Check(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
			Optional:    req.Optional,
		}
		if cmd == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		if _, err := exec.LookPath(cmd); err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Available = true
		results = append(results, status)
	}
	return results
}

// MissingRequired returns the names of unavailable non-optional tools.
func MissingRequired(statuses []Status) []string {
	var missing []string
	for _, status := range statuses {
		if !status.Available && !status.Optional {
			missing = append(missing, status.Name)
		}
	}
	return missing
}
