// Package errors provides structured error types for the binding-resolution
// taxonomy: malformed credentials, unknown services, unavailable catalogs and
// sources, and registration rejections.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.CodeSourceUnavailable,
//	    "failed to fetch platform bindings",
//	    cause,
//	    map[string]any{
//	        "source": "kubernetes",
//	        "namespace": ns,
//	    },
//	)
package errors
