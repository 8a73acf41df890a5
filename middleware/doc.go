// Package middleware provides cross-cutting request handlers for the
// router: request ID assignment, structured request/response logging,
// CORS, and client rate limiting.
//
// Every middleware follows the same shape: a zero-config constructor and
// a WithConfig variant whose Config struct supports skipping individual
// requests:
//
//	r.Use(
//		middleware.RequestID[*router.Context](),
//		middleware.LoggingWithConfig[*router.Context](middleware.LoggingConfig{
//			Logger: log,
//			Skip: func(ctx handler.Context) bool {
//				return ctx.Request().URL.Path == "/health"
//			},
//		}),
//	)
package middleware
