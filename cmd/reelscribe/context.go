package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"reelscribe/internal/config"
	"reelscribe/internal/pipeline"
	"reelscribe/internal/services/whisperx"
	"reelscribe/internal/services/ytdlp"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// buildPipeline wires the fetcher and transcriber registry into a pipeline.
func (c *commandContext) buildPipeline(cfg *config.Config, logger *slog.Logger) (*pipeline.Pipeline, error) {
	cookies := ytdlp.NewCookieSource(
		cfg.Downloader.CookiesFile,
		cfg.Downloader.CookiesInline,
		cfg.Downloader.CookiesFromBrowser,
	)
	fetcher, err := ytdlp.NewClient(cfg.Paths.StagingDir, cookies, logger)
	if err != nil {
		return nil, err
	}
	registry := whisperx.NewRegistry()
	return pipeline.New(cfg, fetcher, pipeline.WhisperxSource(registry), logger), nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
