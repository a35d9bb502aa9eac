// Package config provides configuration loading and management.
package config

// DefaultCatalogVersion is the version range of the catalog package
// installed into projects.
const DefaultCatalogVersion = "^3.0.0-rc.4"

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// Config represents the create-catalog configuration file.
// Loaded from ~/.create-catalog/config.yaml.
type Config struct {
	// PackageManager forces yarn or npm instead of detection.
	// Env: CREATE_CATALOG_PACKAGE_MANAGER, Default: auto
	PackageManager string `mapstructure:"packageManager" yaml:"packageManager,omitempty"`

	// CatalogVersion is the semver range used when adding catalog.
	// Env: CREATE_CATALOG_CATALOG_VERSION, Default: ^3.0.0-rc.4
	CatalogVersion string `mapstructure:"catalogVersion" yaml:"catalogVersion,omitempty"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" yaml:"log"`
}

// DefaultConfig returns a Config with all default values populated.
func DefaultConfig() *Config {
	return &Config{
		PackageManager: "auto",
		CatalogVersion: DefaultCatalogVersion,
	}
}

// WithDefaults fills empty fields from DefaultConfig.
func (c *Config) WithDefaults() *Config {
	out := *c
	defaults := DefaultConfig()
	if out.PackageManager == "" {
		out.PackageManager = defaults.PackageManager
	}
	if out.CatalogVersion == "" {
		out.CatalogVersion = defaults.CatalogVersion
	}
	return &out
}
