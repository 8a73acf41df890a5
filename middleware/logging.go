package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/resmux/core/handler"
	"github.com/dmitrymomot/resmux/core/logger"
	"github.com/dmitrymomot/resmux/core/router"
)

// LoggingConfig configures the request/response logging middleware.
type LoggingConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx handler.Context) bool

	// Logger is the slog logger to use (default: slog.Default())
	Logger *slog.Logger

	// LogLevel for request logging (default: slog.LevelInfo)
	LogLevel slog.Level

	// SlowRequestThreshold marks requests slower than this as slow (default: 5s)
	SlowRequestThreshold time.Duration

	// Component identifies the logging component (default: "http")
	Component string
}

// Logging creates a request/response logging middleware with default configuration.
// It logs basic request and response information at info level.
func Logging[C handler.Context]() handler.Middleware[C] {
	return LoggingWithConfig[C](LoggingConfig{})
}

// LoggingWithLogger creates a logging middleware with a custom logger.
func LoggingWithLogger[C handler.Context](log *slog.Logger) handler.Middleware[C] {
	return LoggingWithConfig[C](LoggingConfig{Logger: log})
}

// LoggingWithConfig creates a request/response logging middleware with
// custom configuration. Requests to nested resources additionally carry
// the parent resource name and identifier captured by the router.
func LoggingWithConfig[C handler.Context](cfg LoggingConfig) handler.Middleware[C] {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.LogLevel == 0 {
		cfg.LogLevel = slog.LevelInfo
	}
	if cfg.SlowRequestThreshold <= 0 {
		cfg.SlowRequestThreshold = 5 * time.Second
	}
	if cfg.Component == "" {
		cfg.Component = "http"
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			start := time.Now()
			req := ctx.Request()

			attrs := []slog.Attr{
				logger.Component(cfg.Component),
				logger.Method(req.Method),
				logger.Path(req.URL.Path),
			}

			if requestID, ok := GetRequestID(ctx); ok {
				attrs = append(attrs, logger.RequestID(requestID))
			}
			if parent := ctx.Param(router.ParamParent); parent != "" {
				attrs = append(attrs,
					slog.String("parent", parent),
					slog.String("parent_id", ctx.Param(router.ParamParentID)),
				)
			}

			cfg.Logger.LogAttrs(req.Context(), cfg.LogLevel, "request started", attrs...)

			response := next(ctx)

			return func(w http.ResponseWriter, r *http.Request) error {
				err := response(w, r)

				// The router's writer reports what actually went out,
				// so there is no need to wrap w a second time here.
				status := http.StatusOK
				var bytesOut int
				if state, ok := w.(router.ResponseState); ok {
					if state.Written() {
						status = state.Status()
					}
					bytesOut = state.BytesWritten()
				}

				duration := time.Since(start)
				respAttrs := append(attrs,
					logger.StatusCode(status),
					slog.Int("bytes_out", bytesOut),
					logger.Duration(duration),
				)

				level := cfg.LogLevel
				switch {
				case status >= 500:
					level = slog.LevelError
					respAttrs = append(respAttrs, logger.Error(err))
				case status >= 400:
					level = slog.LevelWarn
				case duration > cfg.SlowRequestThreshold:
					level = slog.LevelWarn
					respAttrs = append(respAttrs, slog.Bool("slow_request", true))
				}

				cfg.Logger.LogAttrs(req.Context(), level, "request completed", respAttrs...)
				return err
			}
		}
	}
}
