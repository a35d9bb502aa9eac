package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	oerrors "github.com/interactivethings/create-catalog/internal/errors"
	"github.com/interactivethings/create-catalog/internal/output"
	"github.com/interactivethings/create-catalog/internal/pkgmanager"
	"github.com/interactivethings/create-catalog/internal/scaffold"
)

// runner spawns package manager commands; replaced in tests.
var runner pkgmanager.Runner = pkgmanager.ExecRunner{}

func runCreate(c *cobra.Command, dir string, opts *rootOptions) error {
	ctx := c.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if strings.TrimSpace(opts.catalogDir) == "" {
		return fail(&oerrors.DetailError{
			Type:    "invalid flag",
			Message: "--catalog-dir must not be empty",
			Hint:    fmt.Sprintf("Leave out --catalog-dir to use %q.", scaffold.DefaultCatalogDir),
		})
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fail(fmt.Errorf("getting working directory: %w", err))
	}

	manager := pkgmanager.Resolve(ctx, opts.resolved.PackageManager, runner)

	initializer := &scaffold.Initializer{
		Fs:             afero.NewOsFs(),
		Runner:         runner,
		Manager:        manager,
		Reporter:       progress{},
		WorkingDir:     cwd,
		CatalogVersion: opts.resolved.CatalogVersion,
	}

	result, err := initializer.Run(ctx, dir, scaffold.Options{CatalogDir: opts.catalogDir})
	if err != nil {
		return fail(err)
	}

	if opts.verbose {
		output.Println("\n" + result.Details())
	}
	output.Println("\n" + result.Summary() + "\n")
	return nil
}

// fail prints err and marks it as reported.
func fail(err error) error {
	printError(err)
	return &oerrors.ExitError{Code: oerrors.ExitGeneralError, Err: err, Printed: true}
}

// printError writes err to stderr in red. A hint goes after the red block
// so the commands styled inside it keep their own colors.
func printError(err error) {
	var detail *oerrors.DetailError
	if errors.As(err, &detail) && detail.Hint != "" {
		output.PrintError(output.FormatError(detail.Body()))
		output.PrintError("Hint: " + detail.Hint)
		return
	}
	output.PrintError(output.FormatError(err.Error()))
}

// progress prints the headline and renders each step with a spinner.
type progress struct {
	output.Steps
}

func (progress) Start(l *scaffold.Layout) {
	output.Println("\n" + scaffold.Headline(l) + "\n")
}
