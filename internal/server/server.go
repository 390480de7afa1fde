package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"reelscribe/internal/config"
	"reelscribe/internal/logging"
	"reelscribe/internal/pipeline"
)

const (
	lockFileName    = "reelscribed.lock"
	shutdownTimeout = 5 * time.Second
)

// Processor runs the transcription flow for a single URL.
type Processor interface {
	Process(ctx context.Context, url string, opts pipeline.Options) pipeline.Outcome
}

// Server is the HTTP front end for the transcription pipeline.
type Server struct {
	cfg       *config.Config
	processor Processor
	logger    *slog.Logger
	handler   http.Handler
}

// New constructs a server around the given processor.
func New(cfg *config.Config, processor Processor, logger *slog.Logger) *Server {
	s := &Server{
		cfg:       cfg,
		processor: processor,
		logger:    logging.NewComponentLogger(logger, "server"),
	}
	s.handler = s.routes()
	return s
}

// Handler returns the route table, exposed for tests.
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /submit", s.handleSubmit)
	mux.HandleFunc("POST /transcribe", s.handleTranscribe)
	return mux
}

// Run serves until ctx is cancelled. A staging-directory file lock
// guarantees a single serving instance per staging directory.
func (s *Server) Run(ctx context.Context) error {
	lockPath := filepath.Join(s.cfg.Paths.StagingDir, lockFileName)
	lock := flock.New(lockPath)
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire server lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("another instance is already serving (lock %s)", lockPath)
	}
	defer lock.Unlock()

	listener, err := net.Listen("tcp", s.cfg.Paths.APIBind)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.cfg.Paths.APIBind, err)
	}

	httpServer := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- httpServer.Serve(listener)
	}()
	s.logger.Info("listening", logging.String("addr", listener.Addr().String()))

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
