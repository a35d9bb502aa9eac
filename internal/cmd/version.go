package cmd

import (
	"github.com/spf13/cobra"

	"github.com/interactivethings/create-catalog/internal/output"
	"github.com/interactivethings/create-catalog/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show create-catalog version information.

Displays the version, commit, build date and Go version.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			output.Println(version.Get().String())
			return nil
		},
	}
}
