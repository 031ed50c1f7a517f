package http

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

type HTTPServer struct {
	server *http.Server
}

func New(addr string, handler http.Handler) *HTTPServer {
	return &HTTPServer{
		server: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Start serves until ctx is done or the process gets an interruption signal,
// then shuts the server down gracefully. ready, when not nil, receives the
// listening address once the listener is open.
func (s *HTTPServer) Start(ctx context.Context, ready func(addr string)) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGTERM, os.Interrupt)
	defer cancel()

	listener, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("error while listening on %s: %w", s.server.Addr, err)
	}
	if ready != nil {
		ready(listener.Addr().String())
	}

	serveErr := make(chan error, 1)
	go func() {
		err := s.server.Serve(listener)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			zap.L().Error("fatal error while serving", zap.Error(err))
			return fmt.Errorf("error while serving: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	zap.L().Info("Got interruption signal. Shutting down HTTP server gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	err = s.server.Shutdown(shutdownCtx)
	if err != nil {
		zap.L().Error("error while shutting down server", zap.Error(err))
		return fmt.Errorf("error while shutting down server: %w", err)
	}

	return nil
}
