// Package catalog maintains the process-wide mapping from service id to its
// typed credential descriptor.
//
// The catalog is built lazily on first access from a raw binding source and
// is read-only afterwards. Initialization is single-flighted: concurrent
// first callers share exactly one fetch-and-parse pass and observe the same
// completed catalog or the same failure. A build either completes fully or
// fails with CATALOG_UNAVAILABLE; no partial catalog is ever exposed, and a
// failed refresh keeps the previous catalog.
//
// The malformed-entry policy is configurable: by default one malformed
// binding aborts the whole build, WithSkipMalformed(true) drops such entries
// with a warning instead.
package catalog
