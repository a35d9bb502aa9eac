// Package pkgmanager detects the package manager to use for a project and
// builds the commands create-catalog runs through it.
package pkgmanager

import (
	"context"
	"fmt"
	"strings"

	"github.com/interactivethings/create-catalog/internal/output"
)

// Manager identifies a supported package manager.
type Manager string

const (
	// Yarn is preferred whenever `yarnpkg` is on PATH.
	Yarn Manager = "yarn"

	// NPM is the fallback.
	NPM Manager = "npm"

	// Auto asks for detection. It is never returned by Detect.
	Auto Manager = "auto"
)

// ValidManagers returns the accepted configuration values.
func ValidManagers() []string {
	return []string{string(Auto), string(Yarn), string(NPM)}
}

// ParseManager parses a configured package manager name. The empty string
// means Auto.
func ParseManager(s string) (Manager, error) {
	switch Manager(strings.ToLower(strings.TrimSpace(s))) {
	case "", Auto:
		return Auto, nil
	case Yarn:
		return Yarn, nil
	case NPM:
		return NPM, nil
	default:
		return "", fmt.Errorf("unknown package manager %q (valid: %s)", s, strings.Join(ValidManagers(), ", "))
	}
}

// String returns the command name of the manager.
func (m Manager) String() string {
	return string(m)
}

// Detect picks yarn when `yarnpkg --version` runs successfully and npm
// otherwise. The probe runs once; callers keep the result for the rest of
// the invocation.
func Detect(ctx context.Context, runner Runner) Manager {
	if err := runner.Run(ctx, "", "yarnpkg", "--version"); err != nil {
		output.Debug("yarn not available, falling back to npm", "error", err)
		return NPM
	}
	output.Debug("using yarn")
	return Yarn
}

// Resolve returns m unless it is Auto, in which case it detects.
func Resolve(ctx context.Context, m Manager, runner Runner) Manager {
	if m == Auto || m == "" {
		return Detect(ctx, runner)
	}
	return m
}

// AddArgs returns the command that adds specs to the project dependencies.
func (m Manager) AddArgs(specs []string) []string {
	if m == Yarn {
		return append([]string{"yarn", "add"}, specs...)
	}
	return append([]string{"npm", "install", "--save"}, specs...)
}

// InstallAllArgs returns the command that installs every declared dependency.
func (m Manager) InstallAllArgs() []string {
	return []string{m.String(), "install"}
}

// RunScriptCommand returns the command line a user types to run script.
func (m Manager) RunScriptCommand(script string) string {
	return fmt.Sprintf("%s run %s", m, script)
}
