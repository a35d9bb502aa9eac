package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	oerrors "github.com/interactivethings/create-catalog/internal/errors"
)

const fileHeader = `# create-catalog configuration
# Precedence: flag > env (CREATE_CATALOG_*) > this file > default

`

// WriteDefault writes a config file holding every default value to path.
// An existing file is only replaced when force is set.
func WriteDefault(fs afero.Fs, path string, force bool) error {
	exists, err := afero.Exists(fs, path)
	if err != nil {
		return oerrors.NewFilesystemError("checking config file", path, "", err)
	}
	if exists && !force {
		return &oerrors.DetailError{
			Type:     "config file already exists",
			Message:  "refusing to overwrite the existing configuration",
			Location: path,
			Hint:     "Use --force to overwrite it.",
		}
	}

	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return oerrors.NewFilesystemError("creating config directory", filepath.Dir(path), "", err)
	}

	cfg := DefaultConfig()
	timestamps := true
	cfg.Log.Timestamps = &timestamps

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	data = append([]byte(fileHeader), data...)

	if err := afero.WriteFile(fs, path, data, 0o644); err != nil {
		return oerrors.NewFilesystemError("writing config file", path, "", err)
	}
	return nil
}
