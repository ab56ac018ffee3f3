// Package refmterrors provides structured error types for the refmt library.
//
// Import path: github.com/erraggy/refmt/refmterrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between fatal configuration errors and
// recoverable per-file failures.
//
// # Error Types
//
// The package provides two core error types:
//
//   - [ConfigError]: Invalid options, unknown case styles, patterns that do not compile
//   - [FileError]: Failures while reading, transforming, writing, or renaming one file
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is(),
// plus sentinels for specific conditions that surface through the error chain:
//
//   - [ErrConfig]: Matches any [ConfigError]
//   - [ErrFile]: Matches any [FileError]
//   - [ErrInvalidStyle]: Unrecognized case style name
//   - [ErrNotUTF8]: File content that is not valid UTF-8
//   - [ErrTargetExists]: Rename target that already exists
//
// # Usage Examples
//
// Check error category with errors.Is():
//
//	conv, err := converter.New(cfg)
//	if errors.Is(err, refmterrors.ErrConfig) {
//	    // Invalid options; nothing was touched
//	}
//
// Extract error details with errors.As():
//
//	var fileErr *refmterrors.FileError
//	if errors.As(err, &fileErr) {
//	    fmt.Printf("failed on %s during %s\n", fileErr.Path, fileErr.Op)
//	}
//
// Check for specific conditions:
//
//	if errors.Is(err, refmterrors.ErrTargetExists) {
//	    // Rename collision - pick a different transform
//	}
//	if errors.Is(err, refmterrors.ErrNotUTF8) {
//	    // Binary or mis-encoded file - safe to skip
//	}
//
// # Error Chaining
//
// Both error types support error chaining via their cause field and Unwrap()
// method. This allows finding root causes through the standard error chain:
//
//	var fileErr *refmterrors.FileError
//	if errors.As(err, &fileErr) {
//	    if errors.Is(fileErr.Err, os.ErrPermission) {
//	        // The file is not writable
//	    }
//	}
package refmterrors
