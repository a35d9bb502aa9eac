// Package output provides terminal output utilities for create-catalog.
package output

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// logger is the package-level logger instance.
var logger *log.Logger

// logOutput is where logger writes; kept across SetupLogging calls.
var logOutput io.Writer = os.Stderr

func init() {
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	})
}

// LogConfig controls logger setup.
type LogConfig struct {
	// Verbose enables debug level, caller reporting and timestamps.
	Verbose bool

	// Timestamps overrides timestamp reporting. nil means enabled.
	Timestamps *bool
}

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool {
	return &b
}

// SetupLogging configures the logger based on cfg.
func SetupLogging(cfg LogConfig) {
	level := log.InfoLevel
	if cfg.Verbose {
		level = log.DebugLevel
	}

	timestamps := true
	if cfg.Timestamps != nil {
		timestamps = *cfg.Timestamps
	}
	if cfg.Verbose {
		timestamps = true
	}

	logger = log.NewWithOptions(logOutput, log.Options{
		Level:           level,
		ReportTimestamp: timestamps,
		ReportCaller:    cfg.Verbose,
		TimeFormat:      time.Kitchen,
	})
}

// SetLogOutput redirects log output, mostly for tests.
func SetLogOutput(w io.Writer) {
	logOutput = w
	logger.SetOutput(w)
}

// Debug logs a debug message.
func Debug(msg string, keyvals ...interface{}) {
	logger.Debug(msg, keyvals...)
}

// Info logs an info message.
func Info(msg string, keyvals ...interface{}) {
	logger.Info(msg, keyvals...)
}

// Warn logs a warning message.
func Warn(msg string, keyvals ...interface{}) {
	logger.Warn(msg, keyvals...)
}

// Error logs an error message.
func Error(msg string, keyvals ...interface{}) {
	logger.Error(msg, keyvals...)
}

// stdout is where Print and Println write; swapped in tests.
var stdout io.Writer = os.Stdout

// SetOutput redirects Print and Println, returning the previous writer.
func SetOutput(w io.Writer) io.Writer {
	prev := stdout
	stdout = w
	return prev
}

// Print prints a message to stdout without any formatting.
func Print(msg string) {
	fmt.Fprint(stdout, msg)
}

// Println prints a message to stdout with a newline.
func Println(msg string) {
	fmt.Fprintln(stdout, msg)
}

// stderr is where PrintError writes; swapped in tests.
var stderr io.Writer = os.Stderr

// SetErrOutput redirects PrintError, returning the previous writer.
func SetErrOutput(w io.Writer) io.Writer {
	prev := stderr
	stderr = w
	return prev
}

// PrintError prints a message to stderr with a newline.
func PrintError(msg string) {
	fmt.Fprintln(stderr, msg)
}
