package server

import (
	"crypto/tls"
	"fmt"
	"time"
)

// Config is the environment-variable surface of the server. Load it
// with core/config and hand it to NewFromConfig.
type Config struct {
	Addr string `env:"SERVER_ADDR" envDefault:":8080"`

	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"15s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"30s"`

	MaxHeaderBytes int `env:"SERVER_MAX_HEADER_BYTES" envDefault:"1048576"`

	// TLS is enabled when both files are set.
	TLSCertFile string `env:"SERVER_TLS_CERT_FILE" envDefault:""`
	TLSKeyFile  string `env:"SERVER_TLS_KEY_FILE" envDefault:""`
}

// DefaultConfig mirrors the env defaults for callers that skip the
// environment entirely.
func DefaultConfig() Config {
	return Config{
		Addr:            ":8080",
		ReadTimeout:     DefaultReadTimeout,
		WriteTimeout:    DefaultWriteTimeout,
		IdleTimeout:     DefaultIdleTimeout,
		ShutdownTimeout: DefaultShutdownTimeout,
		MaxHeaderBytes:  DefaultMaxHeaderBytes,
	}
}

// NewFromConfig builds a Server from cfg. Options run last and win
// over config values.
func NewFromConfig(cfg Config, opts ...Option) (*Server, error) {
	if cfg.Addr == "" {
		return nil, ErrMissingAddress
	}

	s := New(cfg.Addr)
	if cfg.ReadTimeout > 0 {
		s.readTimeout = cfg.ReadTimeout
	}
	if cfg.WriteTimeout > 0 {
		s.writeTimeout = cfg.WriteTimeout
	}
	if cfg.IdleTimeout > 0 {
		s.idleTimeout = cfg.IdleTimeout
	}
	if cfg.ShutdownTimeout > 0 {
		s.shutdownTimeout = cfg.ShutdownTimeout
	}
	if cfg.MaxHeaderBytes > 0 {
		s.maxHeaderBytes = cfg.MaxHeaderBytes
	}

	if cfg.TLSCertFile != "" && cfg.TLSKeyFile != "" {
		cert, err := tls.LoadX509KeyPair(cfg.TLSCertFile, cfg.TLSKeyFile)
		if err != nil {
			return nil, fmt.Errorf("TLS configuration from %s and %s: %w", cfg.TLSCertFile, cfg.TLSKeyFile, err)
		}
		s.tlsConfig = &tls.Config{
			Certificates: []tls.Certificate{cert},
			MinVersion:   tls.VersionTLS12,
		}
	}

	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}
