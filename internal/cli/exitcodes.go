package cli

import (
	"errors"
	"fmt"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: unreadable cards files, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: wrong argument counts or invalid flag combinations.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: card not found.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: cards files that fail to parse.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: unknown stage names.
	ExitValidation = 5
)

// CodedError carries the process exit code for an error that has already
// been reported to the user
type CodedError struct {
	Code int
	Err  error
}

func (e *CodedError) Error() string {
	return fmt.Sprintf("exit %d: %v", e.Code, e.Err)
}

func (e *CodedError) Unwrap() error {
	return e.Err
}

// Exit wraps err with an exit code
func Exit(code int, err error) error {
	return &CodedError{Code: code, Err: err}
}

// ExitCode returns the exit code for err: ExitSuccess for nil, the carried
// code for a CodedError, ExitError otherwise
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *CodedError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitError
}

// Reported reports whether err was already printed by a formatter
func Reported(err error) bool {
	var exitErr *CodedError
	return errors.As(err, &exitErr)
}
