package ytdlp

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"reelscribe/internal/logging"
)

func TestFetchAudioReturnsDownloadedPath(t *testing.T) {
	staging := t.TempDir()
	client, err := NewClient(staging, nil, logging.NewNop(), WithDownloadFunc(
		func(ctx context.Context, url, workDir string, creds Credentials) (string, error) {
			path := filepath.Join(workDir, "ABC123.m4a")
			if err := os.WriteFile(path, []byte("audio"), 0o644); err != nil {
				return "", err
			}
			return path, nil
		},
	))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	path, err := client.FetchAudio(context.Background(), "https://www.instagram.com/reel/ABC123", "", true)
	if err != nil {
		t.Fatalf("FetchAudio: %v", err)
	}
	if !strings.HasPrefix(path, staging) {
		t.Errorf("download path %q not under staging dir %q", path, staging)
	}
	if !strings.Contains(path, "reel-") {
		t.Errorf("download path %q missing temp dir prefix", path)
	}
}

func TestFetchAudioIsolatedWorkDirs(t *testing.T) {
	staging := t.TempDir()
	var dirs []string
	client, err := NewClient(staging, nil, logging.NewNop(), WithDownloadFunc(
		func(ctx context.Context, url, workDir string, creds Credentials) (string, error) {
			dirs = append(dirs, workDir)
			path := filepath.Join(workDir, "clip.m4a")
			return path, os.WriteFile(path, []byte("audio"), 0o644)
		},
	))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	for i := 0; i < 2; i++ {
		if _, err := client.FetchAudio(context.Background(), "https://www.instagram.com/reel/x", "", false); err != nil {
			t.Fatalf("FetchAudio: %v", err)
		}
	}
	if len(dirs) != 2 || dirs[0] == dirs[1] {
		t.Errorf("fetches shared a work dir: %v", dirs)
	}
}

func TestFetchAudioPropagatesFailure(t *testing.T) {
	client, err := NewClient(t.TempDir(), nil, logging.NewNop(), WithDownloadFunc(
		func(ctx context.Context, url, workDir string, creds Credentials) (string, error) {
			return "", errors.New("HTTP Error 403: Forbidden")
		},
	))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if _, err := client.FetchAudio(context.Background(), "https://www.instagram.com/reel/x", "", false); err == nil {
		t.Fatal("expected fetch failure")
	}
}

func TestFetchAudioRejectsMissingFile(t *testing.T) {
	client, err := NewClient(t.TempDir(), nil, logging.NewNop(), WithDownloadFunc(
		func(ctx context.Context, url, workDir string, creds Credentials) (string, error) {
			return filepath.Join(workDir, "never-written.m4a"), nil
		},
	))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if _, err := client.FetchAudio(context.Background(), "https://www.instagram.com/reel/x", "", false); err == nil {
		t.Fatal("expected error for missing download")
	}
}

func TestNewClientRequiresStagingDir(t *testing.T) {
	if _, err := NewClient("  ", nil, nil); err == nil {
		t.Fatal("expected error for empty staging dir")
	}
}

func TestLastLine(t *testing.T) {
	if got := lastLine("a\nb\n\n"); got != "b" {
		t.Errorf("lastLine = %q, want b", got)
	}
	if got := lastLine(""); got != "" {
		t.Errorf("lastLine empty = %q", got)
	}
}
