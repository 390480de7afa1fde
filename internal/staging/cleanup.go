// Package staging manages the working directory where downloaded audio and
// generated subtitles live. Each fetch creates an isolated subdirectory;
// finished runs leave their artifacts behind for the caller, so the
// directory grows until pruned.
package staging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"reelscribe/internal/logging"
)

// DirInfo describes one work directory under the staging root.
type DirInfo struct {
	Name    string
	Path    string
	ModTime time.Time
	Size    int64
}

// CleanupError pairs a path with the error that prevented its removal.
type CleanupError struct {
	Path  string
	Error error
}

// CleanResult reports what a cleanup pass removed and what it could not.
type CleanResult struct {
	Removed []string
	Errors  []CleanupError
}

// CleanStale removes work directories whose last modification is older than
// maxAge. Files directly under the staging root are left alone.
func CleanStale(stagingDir string, maxAge time.Duration, logger *slog.Logger) CleanResult {
	var result CleanResult

	stagingDir = strings.TrimSpace(stagingDir)
	if stagingDir == "" {
		return result
	}

	entries, err := os.ReadDir(stagingDir)
	if err != nil {
		if !os.IsNotExist(err) {
			result.Errors = append(result.Errors, CleanupError{Path: stagingDir, Error: err})
		}
		return result
	}

	cutoff := time.Now().Add(-maxAge)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dirPath := filepath.Join(stagingDir, entry.Name())
		info, err := entry.Info()
		if err != nil {
			result.Errors = append(result.Errors, CleanupError{Path: dirPath, Error: err})
			continue
		}
		if !info.ModTime().Before(cutoff) {
			continue
		}
		if err := os.RemoveAll(dirPath); err != nil {
			result.Errors = append(result.Errors, CleanupError{Path: dirPath, Error: err})
			if logger != nil {
				logger.Warn("failed to remove stale work directory",
					logging.String("path", dirPath),
					logging.Error(err))
			}
			continue
		}
		result.Removed = append(result.Removed, dirPath)
		if logger != nil {
			logger.Info("removed stale work directory",
				logging.String("path", dirPath),
				logging.Duration("age", time.Since(info.ModTime())))
		}
	}
	return result
}

// ListDirectories returns the work directories under the staging root with
// their recursive sizes.
func ListDirectories(stagingDir string) ([]DirInfo, error) {
	stagingDir = strings.TrimSpace(stagingDir)
	if stagingDir == "" {
		return nil, nil
	}

	entries, err := os.ReadDir(stagingDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var dirs []DirInfo
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		dirPath := filepath.Join(stagingDir, entry.Name())
		size, _ := dirSize(dirPath)
		dirs = append(dirs, DirInfo{
			Name:    entry.Name(),
			Path:    dirPath,
			ModTime: info.ModTime(),
			Size:    size,
		})
	}
	return dirs, nil
}

func dirSize(path string) (int64, error) {
	var size int64
	err := filepath.Walk(path, func(_ string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if !info.IsDir() {
			size += info.Size()
		}
		return nil
	})
	return size, err
}
