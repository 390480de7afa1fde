package config

import (
	"fmt"
	"os"
	"strings"

	"reelscribe/internal/services/whisperx"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeDownloader(); err != nil {
		return err
	}
	if err := c.normalizeWhisper(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.StagingDir, err = ExpandPath(c.Paths.StagingDir); err != nil {
		return fmt.Errorf("paths.staging_dir: %w", err)
	}
	if c.Paths.LogDir, err = ExpandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	c.Paths.APIBind = strings.TrimSpace(c.Paths.APIBind)
	if c.Paths.APIBind == "" {
		c.Paths.APIBind = defaultAPIBind
	}
	return nil
}

func (c *Config) normalizeDownloader() error {
	c.Downloader.CookiesFile = strings.TrimSpace(c.Downloader.CookiesFile)
	if c.Downloader.CookiesFile != "" {
		expanded, err := ExpandPath(c.Downloader.CookiesFile)
		if err != nil {
			return fmt.Errorf("downloader.cookies_file: %w", err)
		}
		c.Downloader.CookiesFile = expanded
	}
	c.Downloader.CookiesFromBrowser = strings.ToLower(strings.TrimSpace(c.Downloader.CookiesFromBrowser))
	return nil
}

func (c *Config) normalizeWhisper() error {
	size := strings.TrimSpace(c.Whisper.ModelSize)
	if size == "" {
		size = strings.TrimSpace(os.Getenv("MODEL_SIZE"))
	}
	compute := strings.TrimSpace(c.Whisper.ComputeType)
	if compute == "" {
		compute = strings.TrimSpace(os.Getenv("COMPUTE_TYPE"))
	}

	profile, err := (whisperx.Config{ModelSize: size, ComputeType: compute}).Normalize()
	if err != nil {
		return fmt.Errorf("whisper: %w", err)
	}
	c.Whisper.ModelSize = profile.ModelSize
	c.Whisper.ComputeType = profile.ComputeType
	c.Whisper.DefaultLanguage = strings.TrimSpace(c.Whisper.DefaultLanguage)
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
