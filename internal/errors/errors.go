// Package errors provides the error taxonomy for create-catalog.
package errors

import (
	"fmt"
	"sort"
	"strings"
)

// DetailError captures structured error information.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file or directory the error refers to (optional).
	Location string

	// Context contains additional key-value context (optional).
	Context map[string]string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	if e.Hint == "" {
		return e.Body()
	}
	return e.Body() + "\nHint: " + e.Hint + "\n"
}

// Body renders everything but the hint.
func (e *DetailError) Body() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}
	keys := make([]string, 0, len(e.Context))
	for k := range e.Context {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(e.Context[k])
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewAlreadyInitializedError reports an existing catalog directory.
func NewAlreadyInitializedError(dir, hint string) error {
	return &DetailError{
		Type:     "already initialized",
		Message:  fmt.Sprintf("the directory %q already exists", dir),
		Location: dir,
		Hint:     hint,
		Cause:    ErrAlreadyInitialized,
	}
}

// NewFilesystemError wraps a filesystem failure at location.
func NewFilesystemError(message, location, hint string, cause error) *DetailError {
	return &DetailError{
		Type:     "filesystem error",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    &wrapped{sentinel: ErrFilesystem, err: cause},
	}
}

// SubprocessError describes a package manager command that failed.
type SubprocessError struct {
	// Command is the command line that was executed.
	Command string

	// Dir is the working directory of the command.
	Dir string

	// ExitCode is the process exit code, or -1 if it never started.
	ExitCode int

	// Output is the combined stdout and stderr, trimmed.
	Output string

	// Err is the error returned by the process.
	Err error
}

// Error implements the error interface.
func (e *SubprocessError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "command %q failed", e.Command)
	if e.ExitCode >= 0 {
		fmt.Fprintf(&b, " with exit code %d", e.ExitCode)
	} else if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	if e.Output != "" {
		b.WriteString("\n")
		b.WriteString(e.Output)
	}
	return b.String()
}

// Is reports ErrSubprocess so callers can classify with errors.Is.
func (e *SubprocessError) Is(target error) bool {
	return target == ErrSubprocess
}

// Unwrap returns the process error.
func (e *SubprocessError) Unwrap() error {
	return e.Err
}

// wrapped attaches a sentinel to an arbitrary cause without losing either.
type wrapped struct {
	sentinel error
	err      error
}

func (w *wrapped) Error() string {
	if w.err == nil {
		return w.sentinel.Error()
	}
	return w.err.Error()
}

func (w *wrapped) Unwrap() []error {
	if w.err == nil {
		return []error{w.sentinel}
	}
	return []error{w.sentinel, w.err}
}
