package main

import (
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"reelscribe/internal/logging"
	"reelscribe/internal/staging"
)

func newCleanCommand(ctx *commandContext) *cobra.Command {
	var maxAge time.Duration
	var list bool

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove stale work directories from the staging area",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if list {
				dirs, err := staging.ListDirectories(cfg.Paths.StagingDir)
				if err != nil {
					return fmt.Errorf("list staging directories: %w", err)
				}
				if len(dirs) == 0 {
					fmt.Fprintln(out, "Staging area is empty")
					return nil
				}
				tw := table.NewWriter()
				tw.SetStyle(table.StyleRounded)
				tw.AppendHeader(table.Row{"Directory", "Modified", "Size"})
				for _, dir := range dirs {
					tw.AppendRow(table.Row{
						dir.Name,
						dir.ModTime.Format(time.RFC3339),
						formatSize(dir.Size),
					})
				}
				fmt.Fprintln(out, tw.Render())
				return nil
			}

			logger, err := logging.New(logging.Options{
				Level:  cfg.Logging.Level,
				Format: cfg.Logging.Format,
			})
			if err != nil {
				return err
			}
			result := staging.CleanStale(cfg.Paths.StagingDir, maxAge, logger)
			fmt.Fprintf(out, "Removed %d stale work directories\n", len(result.Removed))
			if len(result.Errors) > 0 {
				for _, failure := range result.Errors {
					fmt.Fprintf(out, "could not remove %s: %v\n", failure.Path, failure.Error)
				}
				return fmt.Errorf("%d directories could not be removed", len(result.Errors))
			}
			return nil
		},
	}

	cmd.Flags().DurationVar(&maxAge, "max-age", 24*time.Hour, "Remove work directories older than this")
	cmd.Flags().BoolVar(&list, "list", false, "List staging directories instead of removing them")
	return cmd
}

func formatSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(size)/float64(div), "KMGTPE"[exp])
}
