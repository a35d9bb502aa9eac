package errors

import "errors"

// Sentinel errors for the failure classes of an initialization run.
var (
	// ErrAlreadyInitialized indicates the catalog directory already exists.
	ErrAlreadyInitialized = errors.New("already initialized")

	// ErrSubprocess indicates a package manager command failed to start or exited non-zero.
	ErrSubprocess = errors.New("subprocess failed")

	// ErrFilesystem indicates a read, write, copy or manifest parse failure.
	ErrFilesystem = errors.New("filesystem error")
)
