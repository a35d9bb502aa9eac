package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/interactivethings/create-catalog/internal/config"
	"github.com/interactivethings/create-catalog/internal/output"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd(opts *rootOptions) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage create-catalog configuration",
		Long: `Manage the create-catalog configuration file.

The configuration file lives at ~/.create-catalog/config.yaml unless
--config or CREATE_CATALOG_CONFIG points elsewhere.`,
	}

	configCmd.AddCommand(newConfigInitCmd(opts), newConfigShowCmd(opts))
	return configCmd
}

func newConfigInitCmd(opts *rootOptions) *cobra.Command {
	var force bool

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create a configuration file with default values",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			path, err := config.ExpandPath(opts.resolved.ConfigPath.Value)
			if err != nil {
				return fmt.Errorf("expanding config path: %w", err)
			}
			if err := config.WriteDefault(afero.NewOsFs(), path, force); err != nil {
				return err
			}
			fmt.Fprintf(c.OutOrStdout(), "Config file created: %s\n", path)
			return nil
		},
	}

	initCmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config file")
	return initCmd
}

func newConfigShowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration and where each value came from",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			tbl := output.NewTable("KEY", "VALUE", "SOURCE")
			for _, v := range opts.resolved.Values {
				tbl.Row(v.Key, v.Value, string(v.Source))
			}
			fmt.Fprintln(c.OutOrStdout(), tbl.String())
			return nil
		},
	}
}
