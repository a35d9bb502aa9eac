package pkgmanager

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	oerrors "github.com/interactivethings/create-catalog/internal/errors"
	"github.com/interactivethings/create-catalog/internal/output"
)

// Runner runs an external command to completion.
type Runner interface {
	// Run executes name with args in dir. An empty dir means the current
	// working directory.
	Run(ctx context.Context, dir, name string, args ...string) error
}

// ExecRunner runs commands as subprocesses, capturing their combined output.
// Failures are returned as *errors.SubprocessError.
type ExecRunner struct{}

// Run implements Runner.
func (ExecRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	commandLine := strings.Join(append([]string{name}, args...), " ")

	path, err := exec.LookPath(name)
	if err != nil {
		return &oerrors.SubprocessError{
			Command:  commandLine,
			Dir:      dir,
			ExitCode: -1,
			Err:      err,
		}
	}

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Dir = dir

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	output.Debug("running command", "command", commandLine, "dir", dir)

	if err := cmd.Run(); err != nil {
		code := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code = exitErr.ExitCode()
		}
		return &oerrors.SubprocessError{
			Command:  commandLine,
			Dir:      dir,
			ExitCode: code,
			Output:   strings.TrimSpace(out.String()),
			Err:      err,
		}
	}

	output.Debug("command finished", "command", commandLine)
	return nil
}
