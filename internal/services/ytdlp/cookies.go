package ytdlp

import (
	"fmt"
	"os"
	"strings"
	"sync"
)

// Credentials is a resolved cookie selection for one fetch. At most one of
// FilePath and Browser is set.
type Credentials struct {
	FilePath string
	Browser  string
}

// CookieSource resolves cookie credentials for fetches. It is constructed
// once at startup from configuration; inline cookie text is materialized to
// a temp file at most once per process.
type CookieSource struct {
	filePath string
	inline   string
	browser  string

	once         sync.Once
	materialized string
	materialize  error
}

// NewCookieSource builds a source from the configured cookie file path,
// inline cookie text, and browser name. Any of the three may be empty.
func NewCookieSource(filePath, inline, browser string) *CookieSource {
	return &CookieSource{
		filePath: strings.TrimSpace(filePath),
		inline:   inline,
		browser:  strings.TrimSpace(browser),
	}
}

// Resolve picks the first available credential source. Order: explicit
// per-request path, configured file, materialized inline text, then the
// configured browser store. The browser store is consulted only for
// interactive runs, since it is meaningless under a server. A missing
// cookie file makes that source unavailable rather than an error; a failed
// materialization is an error because the caller explicitly configured the
// inline text.
func (s *CookieSource) Resolve(requestPath string, interactive bool) (Credentials, error) {
	if path := strings.TrimSpace(requestPath); path != "" && fileExists(path) {
		return Credentials{FilePath: path}, nil
	}
	if s == nil {
		return Credentials{}, nil
	}
	if s.filePath != "" && fileExists(s.filePath) {
		return Credentials{FilePath: s.filePath}, nil
	}
	if strings.TrimSpace(s.inline) != "" {
		path, err := s.materializeInline()
		if err != nil {
			return Credentials{}, fmt.Errorf("materialize inline cookies: %w", err)
		}
		return Credentials{FilePath: path}, nil
	}
	if interactive && s.browser != "" {
		return Credentials{Browser: s.browser}, nil
	}
	return Credentials{}, nil
}

func (s *CookieSource) materializeInline() (string, error) {
	s.once.Do(func() {
		file, err := os.CreateTemp("", "reelscribe-cookies-*.txt")
		if err != nil {
			s.materialize = err
			return
		}
		defer file.Close()
		if _, err := file.WriteString(s.inline); err != nil {
			s.materialize = err
			return
		}
		s.materialized = file.Name()
	})
	return s.materialized, s.materialize
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
