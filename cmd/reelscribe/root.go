package main

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"reelscribe/internal/logging"
	"reelscribe/internal/pipeline"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var languageFlag string
	var cookiesFlag string
	var modelSizeFlag string
	var computeTypeFlag string
	var serveFlag bool
	var hostFlag string
	var portFlag int

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:           "reelscribe [urls...]",
		Short:         "Transcribe Instagram reels to text and SRT subtitles",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if serveFlag {
				if cmd.Flags().Changed("host") || cmd.Flags().Changed("port") {
					cfg.Paths.APIBind = net.JoinHostPort(hostFlag, strconv.Itoa(portFlag))
				}
				return runServe(runCtx, ctx, cfg)
			}

			if len(args) == 0 {
				return fmt.Errorf("at least one reel url is required (or --serve)")
			}

			logger, err := logging.NewWithFile(logging.Options{
				Level:  cfg.Logging.Level,
				Format: cfg.Logging.Format,
			}, cfg.Paths.LogDir)
			if err != nil {
				return err
			}
			p, err := ctx.buildPipeline(cfg, logger)
			if err != nil {
				return err
			}

			opts := pipeline.Options{
				Language:    languageFlag,
				CookiesPath: cookiesFlag,
				ModelSize:   modelSizeFlag,
				ComputeType: computeTypeFlag,
				Interactive: true,
			}
			outcomes := p.ProcessAll(runCtx, args, opts)
			failures := printOutcomes(cmd.OutOrStdout(), outcomes, stdoutIsTerminal())
			if failures > 0 {
				return fmt.Errorf("%d of %d urls failed", failures, len(outcomes))
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.Flags().StringVarP(&languageFlag, "language", "l", "", "Spoken language hint (ISO code or English name)")
	rootCmd.Flags().StringVar(&cookiesFlag, "cookies", "", "Netscape-format cookie file for this run")
	rootCmd.Flags().StringVar(&modelSizeFlag, "model-size", "", "Whisper model size override")
	rootCmd.Flags().StringVar(&computeTypeFlag, "compute-type", "", "Whisper compute type override")
	rootCmd.Flags().BoolVar(&serveFlag, "serve", false, "Run the HTTP server instead of transcribing urls")
	rootCmd.Flags().StringVar(&hostFlag, "host", "0.0.0.0", "Bind host for --serve")
	rootCmd.Flags().IntVar(&portFlag, "port", 8000, "Bind port for --serve")

	rootCmd.AddCommand(newServeCommand(ctx))
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newCleanCommand(ctx))

	return rootCmd
}
