package output

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh/spinner"
)

// SpinnerOption configures a spinner.
type SpinnerOption func(*spinnerConfig)

type spinnerConfig struct {
	title string
}

// WithTitle sets the spinner title.
func WithTitle(title string) SpinnerOption {
	return func(c *spinnerConfig) {
		c.title = title
	}
}

// RunWithSpinner executes an action with a spinner and returns the
// action's error. Without a TTY the action runs directly.
func RunWithSpinner(ctx context.Context, action func() error, opts ...SpinnerOption) error {
	cfg := &spinnerConfig{
		title: "Working...",
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if !IsTTY() {
		return action()
	}

	done := make(chan struct{})
	var actionErr error

	go func() {
		defer close(done)
		actionErr = action()
	}()

	s := spinner.New().Title(cfg.title)

	spinnerErr := s.Action(func() {
		select {
		case <-ctx.Done():
		case <-done:
		}
	}).Run()

	// The action owns the terminal output once the spinner stops; wait for it.
	<-done

	if actionErr != nil {
		return actionErr
	}
	if spinnerErr != nil {
		return fmt.Errorf("spinner error: %w", spinnerErr)
	}
	return ctx.Err()
}

// Steps reports named steps of a sequential flow, ora style: a spinner
// while the step runs followed by a checkmark or a cross.
type Steps struct{}

// Step runs fn under a spinner titled title.
func (Steps) Step(ctx context.Context, title string, fn func() error) error {
	if !IsTTY() {
		Info(title)
	}

	err := RunWithSpinner(ctx, fn, WithTitle(title))
	if err != nil {
		if IsTTY() {
			Println(FormatCross(title))
		}
		return err
	}

	if IsTTY() {
		Println(FormatCheckmark(title))
	}
	return nil
}
