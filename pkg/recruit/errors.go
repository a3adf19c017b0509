package recruit

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	result, err := synchronizer.Sync(ctx, path)
//	if errors.Is(err, recruit.ErrMalformedInput) {
//	    // Fix the CSV and run again
//	}
var (
	// ErrUsage indicates the command line was invalid (arguments or flags).
	ErrUsage = errors.New("invalid usage")

	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrConnectionFailed indicates database connection failed.
	ErrConnectionFailed = errors.New("connection failed")

	// ErrInputNotFound indicates the input file does not exist or cannot be opened.
	ErrInputNotFound = errors.New("input file not found")

	// ErrMalformedInput indicates the input file could not be parsed.
	ErrMalformedInput = errors.New("malformed input")

	// ErrExecutionFailed indicates a SQL statement or the commit failed.
	ErrExecutionFailed = errors.New("execution failed")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrUsage):
		return ExitUsageError
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrConnectionFailed):
		return ExitConnectionError
	case errors.Is(err, ErrInputNotFound), errors.Is(err, ErrMalformedInput):
		return ExitInputError
	case errors.Is(err, ErrExecutionFailed):
		return ExitExecutionFailed
	}

	// Check for common connection error patterns
	errStr := err.Error()
	if strings.Contains(errStr, "failed to connect") ||
		strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "no such host") {
		return ExitConnectionError
	}

	return ExitGeneralError
}
