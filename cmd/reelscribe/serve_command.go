package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"reelscribe/internal/config"
	"reelscribe/internal/deps"
	"reelscribe/internal/logging"
	"reelscribe/internal/server"
)

func newServeCommand(cmdCtx *commandContext) *cobra.Command {
	var hostFlag string
	var portFlag int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP transcription server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cmdCtx.ensureConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("host") || cmd.Flags().Changed("port") {
				cfg.Paths.APIBind = net.JoinHostPort(hostFlag, strconv.Itoa(portFlag))
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(runCtx, cmdCtx, cfg)
		},
	}

	cmd.Flags().StringVar(&hostFlag, "host", "0.0.0.0", "Bind host")
	cmd.Flags().IntVar(&portFlag, "port", 8000, "Bind port")
	return cmd
}

// runServe builds the pipeline and serves until ctx is cancelled.
func runServe(ctx context.Context, cmdCtx *commandContext, cfg *config.Config) error {
	logger, err := logging.NewWithFile(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	}, cfg.Paths.LogDir)
	if err != nil {
		return err
	}
	if missing := deps.MissingRequired(deps.Check(deps.Requirements())); len(missing) > 0 {
		logger.Warn("required tools missing; requests will fail",
			logging.String("tools", strings.Join(missing, ", ")))
	}
	p, err := cmdCtx.buildPipeline(cfg, logger)
	if err != nil {
		return err
	}
	return server.New(cfg, p, logger).Run(ctx)
}
