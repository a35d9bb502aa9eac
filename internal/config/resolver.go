package config

import (
	"fmt"
	"os"

	"github.com/Masterminds/semver/v3"

	"github.com/interactivethings/create-catalog/internal/output"
	"github.com/interactivethings/create-catalog/internal/pkgmanager"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue is a configuration value together with its origin.
type ResolvedValue struct {
	Key    string
	Value  string
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// ResolveOptions contains the raw inputs of a single resolution.
type ResolveOptions struct {
	Key          string
	FlagValue    string
	EnvVar       string
	ConfigValue  string
	DefaultValue string
}

// Resolve applies precedence flag > env > config > default.
func Resolve(opts ResolveOptions) ResolvedValue {
	result := ResolvedValue{
		Key:      opts.Key,
		Shadowed: make(map[ConfigSource]string),
	}

	candidates := []struct {
		source ConfigSource
		value  string
	}{
		{SourceFlag, opts.FlagValue},
		{SourceEnv, os.Getenv(opts.EnvVar)},
		{SourceConfig, opts.ConfigValue},
		{SourceDefault, opts.DefaultValue},
	}

	for _, c := range candidates {
		if c.value == "" {
			continue
		}
		if result.Source == "" {
			result.Value = c.value
			result.Source = c.source
			continue
		}
		if c.source != SourceDefault {
			result.Shadowed[c.source] = c.value
		}
	}

	return result
}

// ResolveAllOptions contains flag values and the loaded config file.
type ResolveAllOptions struct {
	ConfigFlag         string
	PackageManagerFlag string
	Config             *Config
}

// ResolvedConfig is the effective configuration of an invocation.
type ResolvedConfig struct {
	ConfigPath     ResolvedValue
	PackageManager pkgmanager.Manager
	CatalogVersion string
	Values         []ResolvedValue
}

// ResolveAll resolves and validates every configuration value.
func ResolveAll(opts ResolveAllOptions) (*ResolvedConfig, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = &Config{}
	}
	defaults := DefaultConfig()

	defaultPath := ""
	if paths, err := DefaultPaths(); err == nil {
		defaultPath = paths.ConfigFile
	}
	configPath := Resolve(ResolveOptions{
		Key:          "config",
		FlagValue:    opts.ConfigFlag,
		EnvVar:       EnvConfig,
		DefaultValue: defaultPath,
	})

	pm := Resolve(ResolveOptions{
		Key:          "packageManager",
		FlagValue:    opts.PackageManagerFlag,
		EnvVar:       EnvPackageManager,
		ConfigValue:  cfg.PackageManager,
		DefaultValue: defaults.PackageManager,
	})
	manager, err := pkgmanager.ParseManager(pm.Value)
	if err != nil {
		return nil, fmt.Errorf("resolving packageManager from %s: %w", pm.Source, err)
	}

	version := Resolve(ResolveOptions{
		Key:          "catalogVersion",
		EnvVar:       EnvCatalogVersion,
		ConfigValue:  cfg.CatalogVersion,
		DefaultValue: defaults.CatalogVersion,
	})
	if err := ValidateVersionRange(version.Value); err != nil {
		return nil, fmt.Errorf("resolving catalogVersion from %s: %w", version.Source, err)
	}

	return &ResolvedConfig{
		ConfigPath:     configPath,
		PackageManager: manager,
		CatalogVersion: version.Value,
		Values:         []ResolvedValue{configPath, pm, version},
	}, nil
}

// ValidateVersionRange checks that r is a semver constraint a package
// manager understands, such as "^3.0.0-rc.4" or ">=3 <4".
func ValidateVersionRange(r string) error {
	if _, err := semver.NewConstraint(r); err != nil {
		return fmt.Errorf("invalid version range %q: %w", r, err)
	}
	return nil
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
