package manifest

import (
	"fmt"

	"github.com/spf13/afero"
)

// Read reads and parses the manifest at path.
func Read(fsys afero.Fs, path string) (*Manifest, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Parse(data)
}

// Write encodes m and writes it to path.
func (m *Manifest) Write(fsys afero.Fs, path string) error {
	data, err := m.Marshal()
	if err != nil {
		return err
	}
	if err := afero.WriteFile(fsys, path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Exists reports whether a manifest file is present at path.
func Exists(fsys afero.Fs, path string) (bool, error) {
	return afero.Exists(fsys, path)
}
