package server

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"
)

// Server owns the lifecycle of one http.Server: it opens the listener,
// serves until the context is canceled or Stop is called, and drains
// connections within the shutdown timeout. Configure it at construction
// time; options are not applied once serving has begun.
type Server struct {
	addr string
	log  *slog.Logger

	readTimeout     time.Duration
	writeTimeout    time.Duration
	idleTimeout     time.Duration
	shutdownTimeout time.Duration
	maxHeaderBytes  int
	tlsConfig       *tls.Config

	mu     sync.Mutex
	active *http.Server
}

// New creates a Server for the given listen address.
func New(addr string, opts ...Option) *Server {
	s := &Server{
		addr:            addr,
		log:             slog.New(slog.NewTextHandler(io.Discard, nil)),
		readTimeout:     DefaultReadTimeout,
		writeTimeout:    DefaultWriteTimeout,
		idleTimeout:     DefaultIdleTimeout,
		shutdownTimeout: DefaultShutdownTimeout,
		maxHeaderBytes:  DefaultMaxHeaderBytes,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start opens the listener and serves until ctx is canceled or serving
// fails. It returns ctx.Err() on cancellation; pair it with Stop to
// drain in-flight requests.
func (s *Server) Start(ctx context.Context, handler http.Handler) error {
	srv := &http.Server{
		Handler:        handler,
		ReadTimeout:    s.readTimeout,
		WriteTimeout:   s.writeTimeout,
		IdleTimeout:    s.idleTimeout,
		MaxHeaderBytes: s.maxHeaderBytes,
		TLSConfig:      s.tlsConfig,
	}

	s.mu.Lock()
	if s.active != nil {
		s.mu.Unlock()
		return ErrServerAlreadyRunning
	}
	s.active = srv
	s.mu.Unlock()

	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		s.release(srv)
		return fmt.Errorf("listen on %s: %w", s.addr, err)
	}

	s.log.InfoContext(ctx, "server listening", slog.String("addr", ln.Addr().String()))

	serveErr := make(chan error, 1)
	go func() {
		if srv.TLSConfig != nil {
			serveErr <- srv.ServeTLS(ln, "", "")
		} else {
			serveErr <- srv.Serve(ln)
		}
	}()

	select {
	case err := <-serveErr:
		s.release(srv)
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop drains the running server within the shutdown timeout. Calling
// it on a stopped server is a no-op.
func (s *Server) Stop() error {
	s.mu.Lock()
	srv := s.active
	s.active = nil
	s.mu.Unlock()

	if srv == nil {
		return nil
	}

	s.log.Info("server draining", slog.Duration("timeout", s.shutdownTimeout))

	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// Run adapts the lifecycle to errgroup-style supervision: the returned
// closure starts the server, waits for the context, and drains before
// returning. Cancellation is a clean exit, not an error.
func (s *Server) Run(ctx context.Context, handler http.Handler) func() error {
	return func() error {
		done := make(chan error, 1)
		go func() {
			done <- s.Start(ctx, handler)
		}()

		select {
		case <-ctx.Done():
			err := s.Stop()
			<-done
			return err
		case err := <-done:
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return err
		}
	}
}

// release clears the active server only if it is still srv, so a
// concurrent Stop followed by a new Start is not clobbered.
func (s *Server) release(srv *http.Server) {
	s.mu.Lock()
	if s.active == srv {
		s.active = nil
	}
	s.mu.Unlock()
}
