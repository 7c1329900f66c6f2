package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/guttosm/portfolio-service/internal/logger"
)

const (
	readTimeout  = 15 * time.Second
	idleTimeout  = 60 * time.Second
	drainTimeout = 10 * time.Second
	// writeSlack lets the timeout middleware answer before the connection is cut.
	writeSlack = 5 * time.Second
)

// Server serves the portfolio API and drains in-flight requests when stopped.
type Server struct {
	srv   *http.Server
	grace time.Duration
}

// NewServer builds a Server on the given port.
func NewServer(handler http.Handler, port string, requestTimeout time.Duration) *Server {
	return &Server{
		srv: &http.Server{
			Addr:              ":" + port,
			Handler:           handler,
			ReadTimeout:       readTimeout,
			ReadHeaderTimeout: readTimeout,
			WriteTimeout:      max(readTimeout, requestTimeout+writeSlack),
			IdleTimeout:       idleTimeout,
			MaxHeaderBytes:    1 << 20,
		},
		grace: drainTimeout,
	}
}

// Run serves until ctx ends or the process receives SIGINT or SIGTERM.
func (s *Server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	l := logger.Logger()
	served := make(chan error, 1)
	go func() {
		l.Info().Str("addr", s.srv.Addr).Msg("Portfolio API listening")
		served <- s.srv.ListenAndServe()
	}()

	select {
	case err := <-served:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen on %s: %w", s.srv.Addr, err)
	case <-ctx.Done():
		l.Info().Msg("Stopping portfolio API")
	}
	return s.Shutdown()
}

// Shutdown waits up to the grace period for open requests to finish.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.grace)
	defer cancel()

	l := logger.Logger()
	if err := s.srv.Shutdown(ctx); err != nil {
		l.Error().Err(err).Dur("grace", s.grace).Msg("Requests still open after grace period")
		return fmt.Errorf("drain server: %w", err)
	}
	l.Info().Msg("Portfolio API stopped")
	return nil
}
