package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// Start runs the HTTP server and blocks until an interrupt or terminate
// signal arrives, then shuts down gracefully.
func (s *Server) Start(addr string) error {
	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "addr", addr)
		if err := s.E.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server with a timeout.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	var startErr error
	select {
	case <-quit:
	case startErr = <-errCh:
		slog.Error("Server stopped unexpectedly", "error", startErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return errors.Join(startErr, s.Shutdown(ctx))
}

// Shutdown stops the HTTP server, the modules and the pub/sub bus.
func (s *Server) Shutdown(ctx context.Context) error {
	var errs []error

	if err := s.E.Shutdown(ctx); err != nil {
		errs = append(errs, err)
	}

	for _, m := range s.modules {
		if err := m.Shutdown(ctx); err != nil {
			slog.Error("Module shutdown failed", "module", m.Name(), "error", err)
			errs = append(errs, err)
		}
	}

	if s.cancel != nil {
		s.cancel()
	}

	if err := s.Deps.Bus.Close(); err != nil {
		errs = append(errs, err)
	}
	if err := s.Deps.Tracing.Shutdown(ctx); err != nil {
		errs = append(errs, err)
	}

	slog.Info("Server stopped")
	return errors.Join(errs...)
}
