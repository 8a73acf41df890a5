package middleware

import (
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/dmitrymomot/resmux/core/handler"
)

// CORSConfig configures cross-origin resource sharing.
type CORSConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx handler.Context) bool

	// AllowOrigins lists permitted origins. An empty list or a "*"
	// entry permits every origin.
	AllowOrigins []string

	// AllowOrigin overrides AllowOrigins with custom validation. It
	// returns the Access-Control-Allow-Origin value and whether the
	// origin is permitted.
	AllowOrigin func(origin string) (string, bool)

	// AllowMethods lists permitted methods
	// (default: GET, HEAD, PUT, PATCH, POST, DELETE)
	AllowMethods []string

	// AllowHeaders lists permitted request headers
	// (default: common request headers)
	AllowHeaders []string

	// ExposeHeaders lists response headers readable by the client
	ExposeHeaders []string

	// AllowCredentials permits cookies and authorization headers.
	// Never combined with a wildcard origin.
	AllowCredentials bool

	// MaxAge is the preflight cache lifetime in seconds
	MaxAge int
}

// CORS permits cross-origin requests from any origin. Use
// CORSWithConfig to restrict origins in production.
func CORS[C handler.Context]() handler.Middleware[C] {
	return CORSWithConfig[C](CORSConfig{})
}

// CORSWithConfig handles preflight OPTIONS requests itself and decorates
// matched responses with the CORS headers. A disallowed preflight gets
// 403; a disallowed simple request passes through without CORS headers,
// leaving the browser to block it.
func CORSWithConfig[C handler.Context](cfg CORSConfig) handler.Middleware[C] {
	if len(cfg.AllowMethods) == 0 {
		cfg.AllowMethods = []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPut,
			http.MethodPatch,
			http.MethodPost,
			http.MethodDelete,
		}
	}
	if len(cfg.AllowHeaders) == 0 {
		cfg.AllowHeaders = []string{
			"Accept",
			"Accept-Language",
			"Content-Language",
			"Content-Type",
			"Origin",
			"Authorization",
			"X-Request-ID",
		}
	}

	allowAll := len(cfg.AllowOrigins) == 0 || slices.Contains(cfg.AllowOrigins, "*")
	allowMethods := strings.Join(cfg.AllowMethods, ",")
	allowHeaders := strings.Join(cfg.AllowHeaders, ",")
	exposeHeaders := strings.Join(cfg.ExposeHeaders, ",")

	originFor := func(origin string) (string, bool) {
		switch {
		case cfg.AllowOrigin != nil:
			return cfg.AllowOrigin(origin)
		case allowAll:
			return "*", true
		case slices.Contains(cfg.AllowOrigins, origin):
			return origin, true
		}
		return "", false
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			req := ctx.Request()
			allowedOrigin, allowed := originFor(req.Header.Get("Origin"))

			requestMethod := req.Header.Get("Access-Control-Request-Method")
			if req.Method == http.MethodOptions && requestMethod != "" {
				if !allowed || !slices.Contains(cfg.AllowMethods, requestMethod) {
					return func(w http.ResponseWriter, r *http.Request) error {
						w.WriteHeader(http.StatusForbidden)
						return nil
					}
				}

				return func(w http.ResponseWriter, r *http.Request) error {
					h := w.Header()
					h.Set("Access-Control-Allow-Origin", allowedOrigin)
					h.Set("Access-Control-Allow-Methods", allowMethods)
					if r.Header.Get("Access-Control-Request-Headers") != "" {
						h.Set("Access-Control-Allow-Headers", allowHeaders)
					}
					if cfg.AllowCredentials && allowedOrigin != "*" {
						h.Set("Access-Control-Allow-Credentials", "true")
					}
					if cfg.MaxAge > 0 {
						h.Set("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
					}
					h.Add("Vary", "Origin")
					h.Add("Vary", "Access-Control-Request-Method")
					h.Add("Vary", "Access-Control-Request-Headers")
					w.WriteHeader(http.StatusNoContent)
					return nil
				}
			}

			response := next(ctx)
			if !allowed {
				return response
			}

			return func(w http.ResponseWriter, r *http.Request) error {
				h := w.Header()
				h.Set("Access-Control-Allow-Origin", allowedOrigin)
				if cfg.AllowCredentials && allowedOrigin != "*" {
					h.Set("Access-Control-Allow-Credentials", "true")
				}
				if exposeHeaders != "" {
					h.Set("Access-Control-Expose-Headers", exposeHeaders)
				}
				h.Add("Vary", "Origin")
				return response(w, r)
			}
		}
	}
}
