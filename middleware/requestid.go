package middleware

import (
	"github.com/google/uuid"

	"github.com/dmitrymomot/resmux/core/handler"
)

// requestIDKey carries the resolved request ID in the per-request values.
type requestIDKey struct{}

// RequestIDConfig configures request ID assignment.
type RequestIDConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx handler.Context) bool

	// Generator produces a fresh ID when none is reused (default: UUID v4)
	Generator func() string

	// HeaderName is the request/response header carrying the ID
	// (default: "X-Request-ID")
	HeaderName string

	// UseExisting reuses the ID from the incoming request header when
	// present instead of generating a new one
	UseExisting bool
}

// RequestID assigns a UUID to every request. The ID is stored in the
// per-request values and set on the response header before the handler
// runs, so both the handler and the client see the same ID.
func RequestID[C handler.Context]() handler.Middleware[C] {
	return RequestIDWithConfig[C](RequestIDConfig{})
}

// RequestIDWithConfig is RequestID with custom configuration.
func RequestIDWithConfig[C handler.Context](cfg RequestIDConfig) handler.Middleware[C] {
	if cfg.HeaderName == "" {
		cfg.HeaderName = "X-Request-ID"
	}
	if cfg.Generator == nil {
		cfg.Generator = uuid.NewString
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			id := resolveRequestID(ctx, cfg)
			ctx.SetValue(requestIDKey{}, id)

			// Set on the live writer up front; the header map is sent
			// with the first WriteHeader, whoever triggers it.
			ctx.ResponseWriter().Header().Set(cfg.HeaderName, id)

			return next(ctx)
		}
	}
}

func resolveRequestID(ctx handler.Context, cfg RequestIDConfig) string {
	if cfg.UseExisting {
		if id := ctx.Request().Header.Get(cfg.HeaderName); id != "" {
			return id
		}
	}
	return cfg.Generator()
}

// GetRequestID returns the ID assigned by RequestID, if any.
func GetRequestID(ctx handler.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok
}
