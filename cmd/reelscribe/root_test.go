package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTestConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	content := "[paths]\n" +
		"staging_dir = \"" + filepath.Join(dir, "staging") + "\"\n" +
		"log_dir = \"" + filepath.Join(dir, "logs") + "\"\n" +
		"api_bind = \"127.0.0.1:0\"\n"
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestRootCommandFlags(t *testing.T) {
	cmd := newRootCommand()
	for _, name := range []string{"language", "cookies", "model-size", "compute-type", "serve", "host", "port"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("flag --%s not registered", name)
		}
	}
	if cmd.PersistentFlags().Lookup("config") == nil {
		t.Error("persistent flag --config not registered")
	}
	if flag := cmd.Flags().Lookup("language"); flag != nil && flag.Shorthand != "l" {
		t.Errorf("language shorthand = %q, want l", flag.Shorthand)
	}
}

func TestRootCommandRequiresURLs(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetArgs([]string{"--config", writeTestConfig(t)})
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))

	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "at least one reel url") {
		t.Fatalf("err = %v, want url requirement", err)
	}
}

func TestRootCommandReportsInvalidURL(t *testing.T) {
	cmd := newRootCommand()
	out := new(bytes.Buffer)
	cmd.SetArgs([]string{"--config", writeTestConfig(t), "https://example.com/watch"})
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))

	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "1 of 1 urls failed") {
		t.Fatalf("err = %v, want failure summary", err)
	}
	if !strings.Contains(out.String(), "[ERROR] https://example.com/watch:") {
		t.Errorf("error line missing:\n%s", out.String())
	}
}

func TestConfigInitWritesSample(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")
	cmd := newRootCommand()
	out := new(bytes.Buffer)
	cmd.SetArgs([]string{"config", "init", "--path", target})
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))

	if err := cmd.Execute(); err != nil {
		t.Fatalf("config init: %v", err)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "[whisper]") {
		t.Errorf("sample missing whisper section:\n%s", data)
	}

	cmd = newRootCommand()
	cmd.SetArgs([]string{"config", "init", "--path", target})
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	if err := cmd.Execute(); err == nil {
		t.Fatal("second init without --overwrite should fail")
	}
}
