package output

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSemanticStyles(t *testing.T) {
	assert.Equal(t, ColorCyan, StyleNoun.GetForeground())
	assert.Equal(t, ColorGreen, StyleHeadline.GetForeground())
	assert.Equal(t, ColorYellow, StyleCommand.GetForeground())
	assert.Equal(t, ColorRed, StyleError.GetForeground())
	assert.True(t, StyleDim.GetFaint())
}

func TestFormatCheckmark(t *testing.T) {
	out := FormatCheckmark("Creating Catalog files")
	assert.Contains(t, out, "✔")
	assert.Contains(t, out, "Creating Catalog files")
}

func TestFormatCross(t *testing.T) {
	out := FormatCross("Installing dependencies")
	assert.Contains(t, out, "✖")
	assert.Contains(t, out, "Installing dependencies")
}

func TestFormatError(t *testing.T) {
	assert.Contains(t, FormatError("boom"), "boom")
}

// Tests run without a terminal on stdout, so spinners are bypassed.
func TestRunWithSpinner_NoTTYRunsAction(t *testing.T) {
	called := false
	err := RunWithSpinner(context.Background(), func() error {
		called = true
		return nil
	}, WithTitle("work"))

	assert.NoError(t, err)
	assert.True(t, called)
}

func TestSteps_PropagatesError(t *testing.T) {
	var buf bytes.Buffer
	SetupLogging(LogConfig{})
	SetLogOutput(&buf)

	want := errors.New("install failed")
	err := Steps{}.Step(context.Background(), "Installing react", func() error {
		return want
	})

	assert.ErrorIs(t, err, want)
	assert.Contains(t, buf.String(), "Installing react")
}
