// Package cmd provides the create-catalog command.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/interactivethings/create-catalog/internal/config"
	"github.com/interactivethings/create-catalog/internal/output"
	"github.com/interactivethings/create-catalog/internal/scaffold"
)

// rootOptions holds flag values and the configuration resolved from them.
type rootOptions struct {
	catalogDir     string
	configFile     string
	packageManager string
	verbose        bool
	timestamps     bool

	// Resolved configuration (loaded during PersistentPreRunE)
	resolved *config.ResolvedConfig
}

// NewRootCmd creates the root command for create-catalog.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "create-catalog [<app directory>]",
		Short: "Set up Catalog in a project",
		Long: `Set up Catalog in a new or existing project.

create-catalog creates or updates package.json, installs catalog, react and
react-dom with yarn (or npm when yarn is not available), adds the
catalog-start and catalog-build scripts and copies the Catalog setup
template into the catalog directory.

Examples:
  # Set up Catalog in the current project
  create-catalog

  # Create a new project in ./my-docs
  create-catalog my-docs

  # Put the Catalog files into ./docs instead of ./catalog
  create-catalog --catalog-dir docs

  # "config" and "version" name subcommands; to set up a project in a
  # directory with one of those names, give it a path
  create-catalog ./config`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			return initializeGlobals(c, opts)
		},
		RunE: func(c *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return runCreate(c, dir, opts)
		},
	}

	rootCmd.Flags().StringVarP(&opts.catalogDir, "catalog-dir", "d", scaffold.DefaultCatalogDir,
		"Catalog directory within <app directory>")

	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "Path to config file (env: CREATE_CATALOG_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&opts.packageManager, "package-manager", "",
		"Package manager: auto, yarn, npm (env: CREATE_CATALOG_PACKAGE_MANAGER)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&opts.timestamps, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(NewVersionCmd(), NewConfigCmd(opts))

	return rootCmd
}

// initializeGlobals loads configuration and sets up logging.
func initializeGlobals(c *cobra.Command, opts *rootOptions) error {
	cfg, err := config.NewLoader().Load(opts.configFile)
	if err != nil {
		return err
	}

	resolved, err := config.ResolveAll(config.ResolveAllOptions{
		ConfigFlag:         opts.configFile,
		PackageManagerFlag: opts.packageManager,
		Config:             cfg,
	})
	if err != nil {
		return err
	}
	opts.resolved = resolved

	// Resolve timestamps: flag (if explicitly set) > config > default (nil = true)
	logCfg := output.LogConfig{Verbose: opts.verbose}
	if c.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(opts.timestamps)
	} else if cfg.Log.Timestamps != nil {
		logCfg.Timestamps = cfg.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	config.LogResolvedValues(resolved.Values)
	return nil
}
