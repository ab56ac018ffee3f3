// Package refmterrors provides structured error types for refmt.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between fatal configuration
// errors and recoverable per-file failures.
//
// # Error Categories
//
//   - ConfigError: Invalid options detected before any file is touched
//   - FileError: A failure while reading, transforming, or writing one file
//
// # Usage with errors.As
//
//	conv, err := converter.New(cfg)
//	if err != nil {
//	    var cfgErr *refmterrors.ConfigError
//	    if errors.As(err, &cfgErr) {
//	        // Report the offending option to the user
//	    }
//	}
package refmterrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")

	// ErrFile indicates a per-file processing failure.
	ErrFile = errors.New("file error")

	// ErrInvalidStyle indicates an unrecognized case style name.
	ErrInvalidStyle = errors.New("invalid case style")

	// ErrNotUTF8 indicates file content that is not valid UTF-8.
	ErrNotUTF8 = errors.New("content is not valid UTF-8")

	// ErrTargetExists indicates a rename target that already exists.
	ErrTargetExists = errors.New("target file already exists")
)

// ConfigError represents an invalid configuration or input.
// This includes unknown case styles, replacement options missing their
// counterpart, and filter patterns that do not compile. Configuration
// errors are always raised before any file is read or written.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// FileError represents a failure while processing a single file.
// Depending on the operation, callers either report it and continue
// (identifier conversion) or abort the run (renaming, cleaning).
type FileError struct {
	// Path is the file the failure occurred on
	Path string
	// Op is the operation that failed: "read", "write", "rename", or "decode"
	Op string
	// Err is the underlying error, if any
	Err error
}

// Error returns a human-readable error message.
func (e *FileError) Error() string {
	msg := "file error"
	if e.Op != "" {
		msg = e.Op + " failed"
	}
	if e.Path != "" {
		msg += " for " + e.Path
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *FileError) Unwrap() error {
	return e.Err
}

// Is reports whether target matches this error type.
func (e *FileError) Is(target error) bool {
	return target == ErrFile
}
