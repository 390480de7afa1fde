package ytdlp

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCookieFile(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("# Netscape HTTP Cookie File\n"), 0o600); err != nil {
		t.Fatalf("write cookie file: %v", err)
	}
	return path
}

func TestResolveRequestPathWins(t *testing.T) {
	requestPath := writeCookieFile(t, "request.txt")
	configured := writeCookieFile(t, "configured.txt")
	source := NewCookieSource(configured, "inline", "firefox")

	creds, err := source.Resolve(requestPath, true)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if creds.FilePath != requestPath {
		t.Errorf("FilePath = %q, want request path %q", creds.FilePath, requestPath)
	}
}

func TestResolveMissingRequestPathFallsThrough(t *testing.T) {
	configured := writeCookieFile(t, "configured.txt")
	source := NewCookieSource(configured, "", "")

	creds, err := source.Resolve(filepath.Join(t.TempDir(), "nope.txt"), false)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if creds.FilePath != configured {
		t.Errorf("FilePath = %q, want configured path %q", creds.FilePath, configured)
	}
}

func TestResolveInlineMaterializedOnce(t *testing.T) {
	source := NewCookieSource("", "cookie-text", "")

	first, err := source.Resolve("", false)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	second, err := source.Resolve("", false)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if first.FilePath == "" || first.FilePath != second.FilePath {
		t.Errorf("inline cookies not materialized once: %q vs %q", first.FilePath, second.FilePath)
	}
	t.Cleanup(func() { os.Remove(first.FilePath) })

	data, err := os.ReadFile(first.FilePath)
	if err != nil {
		t.Fatalf("read materialized file: %v", err)
	}
	if string(data) != "cookie-text" {
		t.Errorf("materialized content = %q", string(data))
	}
}

func TestResolveBrowserOnlyInteractive(t *testing.T) {
	source := NewCookieSource("", "", "firefox")

	creds, err := source.Resolve("", true)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if creds.Browser != "firefox" {
		t.Errorf("Browser = %q, want firefox", creds.Browser)
	}

	creds, err = source.Resolve("", false)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if creds.Browser != "" || creds.FilePath != "" {
		t.Errorf("served mode should resolve no credentials, got %+v", creds)
	}
}

func TestResolveNilSource(t *testing.T) {
	var source *CookieSource
	creds, err := source.Resolve("", true)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if creds != (Credentials{}) {
		t.Errorf("nil source should yield empty credentials, got %+v", creds)
	}
}
