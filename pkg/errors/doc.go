// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Codes map onto HTTP statuses in pkg/server, so a handler can return a
// StructuredError and let the server render the response.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeUnavailable,
//	    "failed to read configuration",
//	    cause,
//	    map[string]any{
//	        "source": "cm://tars/recommender-config",
//	    },
//	)
package errors
