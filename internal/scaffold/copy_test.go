package scaffold

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingFs fails to create any file whose name contains failOn.
type failingFs struct {
	afero.Fs
	failOn string
}

func (f failingFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if strings.Contains(name, f.failOn) && flag&os.O_CREATE != 0 {
		return nil, errors.New("disk full")
	}
	return f.Fs.OpenFile(name, flag, perm)
}

func seedTemplate(t *testing.T, fsys afero.Fs, root string) {
	t.Helper()
	for rel, content := range templateFiles {
		writeFile(t, fsys, filepath.Join(root, filepath.FromSlash(rel)), content)
	}
}

func TestCopyTree(t *testing.T) {
	fsys := afero.NewMemMapFs()
	seedTemplate(t, fsys, "/src")

	files, err := CopyTree(fsys, "/src", "/dst/catalog")
	require.NoError(t, err)

	assert.Equal(t, sortedTemplateFiles(), files)
	for rel, content := range templateFiles {
		data, err := afero.ReadFile(fsys, filepath.Join("/dst/catalog", filepath.FromSlash(rel)))
		require.NoError(t, err, rel)
		assert.Equal(t, content, string(data), rel)
	}

	staged, err := afero.Exists(fsys, "/dst/.catalog.partial")
	require.NoError(t, err)
	assert.False(t, staged, "staging directory is gone after success")
}

func TestCopyTree_FailureLeavesNothing(t *testing.T) {
	base := afero.NewMemMapFs()
	seedTemplate(t, base, "/src")
	fsys := failingFs{Fs: base, failOn: "logo.svg"}

	_, err := CopyTree(fsys, "/src", "/dst/catalog")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")

	for _, p := range []string{"/dst/catalog", "/dst/.catalog.partial"} {
		exists, err := afero.Exists(base, p)
		require.NoError(t, err)
		assert.False(t, exists, p)
	}
}

func TestCopyTree_RemovesStaleStaging(t *testing.T) {
	fsys := afero.NewMemMapFs()
	seedTemplate(t, fsys, "/src")
	writeFile(t, fsys, "/dst/.catalog.partial/leftover.txt", "old")

	_, err := CopyTree(fsys, "/src", "/dst/catalog")
	require.NoError(t, err)

	exists, err := afero.Exists(fsys, "/dst/catalog/leftover.txt")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCopyTree_SourceErrors(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "/file", "not a dir")

	_, err := CopyTree(fsys, "/missing", "/dst")
	assert.Error(t, err)

	_, err = CopyTree(fsys, "/file", "/dst")
	assert.Error(t, err)
}

func TestCopyTree_OsFsKeepsModes(t *testing.T) {
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "nested", "catalog")
	require.NoError(t, os.WriteFile(filepath.Join(src, "run.sh"), []byte("#!/bin/sh\n"), 0o755))
	require.NoError(t, os.Symlink(filepath.Join(src, "run.sh"), filepath.Join(src, "link.sh")))

	files, err := CopyTree(afero.NewOsFs(), src, dst)
	require.NoError(t, err)
	assert.Equal(t, []string{"link.sh", "run.sh"}, files)

	info, err := os.Stat(filepath.Join(dst, "run.sh"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm()&0o755)

	linked, err := os.Lstat(filepath.Join(dst, "link.sh"))
	require.NoError(t, err)
	assert.True(t, linked.Mode().IsRegular(), "symlinks are copied as the files they point to")
}
