package logger

import (
	"io"
	"log/slog"
	"os"
)

type config struct {
	w     io.Writer
	level slog.Level
	json  bool
	attrs []slog.Attr
}

// Option configures the logger factory.
type Option func(*config)

// WithLevel sets the minimum log level.
func WithLevel(level slog.Level) Option {
	return func(c *config) {
		c.level = level
	}
}

// WithOutput redirects log output. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.w = w
		}
	}
}

// WithJSONFormatter switches output to JSON, the format for production use.
func WithJSONFormatter() Option {
	return func(c *config) {
		c.json = true
	}
}

// WithAttrs attaches attributes to every record produced by the logger.
func WithAttrs(attrs ...slog.Attr) Option {
	return func(c *config) {
		c.attrs = append(c.attrs, attrs...)
	}
}

// New creates a configured slog.Logger. Without options it logs text
// at info level to stdout.
func New(opts ...Option) *slog.Logger {
	cfg := config{
		w:     os.Stdout,
		level: slog.LevelInfo,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	handlerOpts := &slog.HandlerOptions{Level: cfg.level}

	var h slog.Handler
	if cfg.json {
		h = slog.NewJSONHandler(cfg.w, handlerOpts)
	} else {
		h = slog.NewTextHandler(cfg.w, handlerOpts)
	}
	if len(cfg.attrs) > 0 {
		h = h.WithAttrs(cfg.attrs)
	}

	return slog.New(h)
}
