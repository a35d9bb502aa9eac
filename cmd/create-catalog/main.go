// Package main is the entry point for create-catalog.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/interactivethings/create-catalog/internal/cmd"
	oerrors "github.com/interactivethings/create-catalog/internal/errors"
	"github.com/interactivethings/create-catalog/internal/output"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cmd.NewRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		// Only print if the command layer hasn't already printed it
		var exitErr *oerrors.ExitError
		if !errors.As(err, &exitErr) || !exitErr.Printed {
			output.PrintError(output.FormatError(err.Error()))
		}
		os.Exit(oerrors.ExitCodeFromError(err))
	}
}
