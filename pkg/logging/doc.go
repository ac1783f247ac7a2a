// Package logging provides structured logging utilities shared by all
// cloudbind components.
//
// It wraps the standard library slog package with project defaults: JSON
// output to stderr, environment-based level configuration (LOG_LEVEL),
// module/version context injection, and source location tracking for debug
// logs.
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("cloudbind", version)
//
//	    slog.Info("resolving bindings", "source", "env")
//	    slog.Debug("detailed state", "count", n)
//	}
//
// The LOG_LEVEL environment variable controls verbosity (DEBUG, INFO, WARN,
// ERROR; case-insensitive). If unset, INFO is used.
package logging
