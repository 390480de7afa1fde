package ytdlp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/lrstanley/go-ytdlp"

	"reelscribe/internal/logging"
)

// OutputTemplate names downloaded files by media ID inside the work dir.
const OutputTemplate = "%(id)s.%(ext)s"

// downloadFunc runs one download and returns the local file path.
type downloadFunc func(ctx context.Context, url, workDir string, creds Credentials) (string, error)

// Option configures the client.
type Option func(*Client)

// WithDownloadFunc injects a custom downloader (primarily for tests).
func WithDownloadFunc(fn downloadFunc) Option {
	return func(c *Client) {
		if fn != nil {
			c.download = fn
		}
	}
}

// Client fetches reel audio through yt-dlp.
type Client struct {
	stagingDir string
	cookies    *CookieSource
	logger     *slog.Logger
	download   downloadFunc
}

// NewClient constructs a fetcher rooted at stagingDir. The cookie source may
// be nil when no credentials are configured.
func NewClient(stagingDir string, cookies *CookieSource, logger *slog.Logger, opts ...Option) (*Client, error) {
	stagingDir = strings.TrimSpace(stagingDir)
	if stagingDir == "" {
		return nil, errors.New("staging directory required")
	}
	client := &Client{
		stagingDir: stagingDir,
		cookies:    cookies,
		logger:     logging.NewComponentLogger(logger, "ytdlp"),
		download:   runDownload,
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// FetchAudio downloads the audio track of a canonical reel URL into a fresh
// temporary directory under the staging dir and returns the local file
// path. requestCookies optionally names a per-request cookie file;
// interactive enables the browser cookie store as a fallback source.
func (c *Client) FetchAudio(ctx context.Context, url, requestCookies string, interactive bool) (string, error) {
	creds, err := c.cookies.Resolve(requestCookies, interactive)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(c.stagingDir, 0o755); err != nil {
		return "", fmt.Errorf("ensure staging dir: %w", err)
	}
	workDir, err := os.MkdirTemp(c.stagingDir, "reel-")
	if err != nil {
		return "", fmt.Errorf("create work dir: %w", err)
	}

	c.logger.Debug("downloading audio",
		logging.String(logging.FieldURL, url),
		logging.String("work_dir", workDir),
		logging.Bool("cookies", creds.FilePath != "" || creds.Browser != ""),
	)

	path, err := c.download(ctx, url, workDir, creds)
	if err != nil {
		return "", err
	}
	if info, statErr := os.Stat(path); statErr != nil || info.IsDir() {
		return "", fmt.Errorf("downloaded file missing at %s", path)
	}
	return path, nil
}

// runDownload executes yt-dlp and extracts the final file path from its
// printed output.
func runDownload(ctx context.Context, url, workDir string, creds Credentials) (string, error) {
	dl := ytdlp.New().
		Format("bestaudio/best").
		NoPlaylist().
		NoCheckCertificates().
		Quiet().
		NoProgress().
		Print("after_move:filepath").
		Output(filepath.Join(workDir, OutputTemplate))
	if creds.FilePath != "" {
		dl = dl.Cookies(creds.FilePath)
	} else if creds.Browser != "" {
		dl = dl.CookiesFromBrowser(creds.Browser)
	}

	result, err := dl.Run(ctx, url)
	if err != nil {
		detail := err.Error()
		if result != nil {
			if stderr := tail(result.Stderr); stderr != "" {
				detail = stderr
			}
		}
		return "", fmt.Errorf("yt-dlp: %s", detail)
	}

	path := lastLine(result.Stdout)
	if path == "" {
		return "", errors.New("yt-dlp reported no output file")
	}
	return path, nil
}

func lastLine(output string) string {
	lines := strings.Split(strings.TrimSpace(output), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}

func tail(output string) string {
	output = strings.TrimSpace(output)
	if output == "" {
		return ""
	}
	lines := strings.Split(output, "\n")
	if len(lines) > 4 {
		lines = lines[len(lines)-4:]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
