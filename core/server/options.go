package server

import (
	"crypto/tls"
	"log/slog"
	"time"
)

// Option tweaks a Server at construction time.
type Option func(*Server)

// WithTLS serves HTTPS with the given TLS configuration.
func WithTLS(cfg *tls.Config) Option {
	return func(s *Server) { s.tlsConfig = cfg }
}

// WithLogger routes lifecycle logs to the given logger. A nil logger
// keeps the default discarding one.
func WithLogger(log *slog.Logger) Option {
	return func(s *Server) {
		if log != nil {
			s.log = log
		}
	}
}

// WithShutdownTimeout bounds how long Stop waits for in-flight requests.
func WithShutdownTimeout(d time.Duration) Option {
	return func(s *Server) { s.shutdownTimeout = d }
}

// WithReadTimeout bounds reading the full request, including the body.
func WithReadTimeout(d time.Duration) Option {
	return func(s *Server) { s.readTimeout = d }
}

// WithWriteTimeout bounds writing the response.
func WithWriteTimeout(d time.Duration) Option {
	return func(s *Server) { s.writeTimeout = d }
}

// WithIdleTimeout bounds how long keep-alive connections sit idle.
func WithIdleTimeout(d time.Duration) Option {
	return func(s *Server) { s.idleTimeout = d }
}

// WithMaxHeaderBytes caps the size of request headers.
func WithMaxHeaderBytes(n int) Option {
	return func(s *Server) { s.maxHeaderBytes = n }
}
