package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"reelscribe/internal/language"
	"reelscribe/internal/pipeline"
	"reelscribe/internal/subtitles"
)

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// printOutcomes writes per-url results and returns the failure count.
// Failures are reported inline and never stop the remaining output.
func printOutcomes(out io.Writer, outcomes []pipeline.Outcome, pretty bool) int {
	failures := 0
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			failures++
			fmt.Fprintf(out, "[ERROR] %s: %v\n", outcome.Input, outcome.Err)
			continue
		}
		printOutcome(out, outcome, pretty)
	}
	return failures
}

func printOutcome(out io.Writer, outcome pipeline.Outcome, pretty bool) {
	fmt.Fprintf(out, "== %s\n", outcome.URL)
	if outcome.Result == nil {
		return
	}

	if summary := describeResult(outcome); summary != "" {
		fmt.Fprintln(out, summary)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, outcome.Result.Text)
	fmt.Fprintln(out)

	if pretty && len(outcome.Result.Segments) > 0 {
		fmt.Fprintln(out, renderSegmentTable(outcome))
	}
	fmt.Fprintf(out, "SRT saved to: %s\n", outcome.SRTPath)
}

func describeResult(outcome pipeline.Outcome) string {
	result := outcome.Result
	parts := ""
	if name := language.DisplayName(result.Language); name != "" {
		parts = "Language: " + name
	}
	if result.Duration != nil {
		if parts != "" {
			parts += "  "
		}
		parts += "Duration: " + subtitles.FormatTimestamp(*result.Duration)
	}
	return parts
}

func renderSegmentTable(outcome pipeline.Outcome) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Start", "End", "Text"})
	for _, segment := range outcome.Result.Segments {
		tw.AppendRow(table.Row{
			strconv.Itoa(segment.ID + 1),
			subtitles.FormatTimestamp(segment.Start),
			subtitles.FormatTimestamp(segment.End),
			segment.Text,
		})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 4, WidthMax: 60},
	})
	return tw.Render()
}
