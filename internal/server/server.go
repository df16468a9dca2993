package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/pageza/recipe-share/backend/internal/logger"
)

// Flusher persists in-memory state before the process exits
type Flusher interface {
	Flush(ctx context.Context) error
}

// Server represents the HTTP server
type Server struct {
	http  *http.Server
	repo  Flusher
	log   logger.Logger
	onEnd []func() error
}

// New creates a server for handler. repo is flushed on Shutdown.
func New(addr string, handler http.Handler, repo Flusher, log logger.Logger) *Server {
	if log == nil {
		log = logger.NewNop()
	}
	return &Server{
		http: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		repo: repo,
		log:  log,
	}
}

// OnShutdown registers a cleanup that runs after the final flush, in order
func (s *Server) OnShutdown(fn func() error) {
	s.onEnd = append(s.onEnd, fn)
}

// Start listens on the configured address and blocks until Shutdown
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.http.Addr, err)
	}
	return s.Serve(ln)
}

// Serve accepts connections on ln and blocks until Shutdown
func (s *Server) Serve(ln net.Listener) error {
	s.log.Info("server listening", logger.String("addr", ln.Addr().String()))
	if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests, waits for in-flight ones, flushes the
// repository and runs the registered cleanups. All errors are returned joined.
func (s *Server) Shutdown(ctx context.Context) error {
	var errs []error
	if err := s.http.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("http shutdown: %w", err))
	}
	if s.repo != nil {
		if err := s.repo.Flush(ctx); err != nil {
			errs = append(errs, fmt.Errorf("flush recipes: %w", err))
		} else {
			s.log.Info("recipes flushed")
		}
	}
	for _, fn := range s.onEnd {
		if err := fn(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
