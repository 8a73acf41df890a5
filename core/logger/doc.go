// Package logger provides structured logging utilities built on Go's
// standard slog package: a small factory for configured loggers and
// nil-safe attribute helpers for common logging patterns.
//
//	log := logger.New(logger.WithJSONFormatter(), logger.WithLevel(slog.LevelDebug))
//
//	log.Info("dispatched",
//		logger.Component("router"),
//		logger.Path(r.URL.Path),
//		logger.Error(err), // empty attr when err is nil
//	)
package logger
