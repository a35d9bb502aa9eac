package scaffold

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// CopyTree copies the directory tree at src to dst and returns the copied
// file paths relative to src. The tree is staged in a hidden sibling of dst
// and renamed into place once every file is written, so dst either appears
// complete or not at all.
func CopyTree(fsys afero.Fs, src, dst string) ([]string, error) {
	info, err := fsys.Stat(src)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", src)
	}

	if err := fsys.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return nil, fmt.Errorf("creating parent of %s: %w", dst, err)
	}

	staging := filepath.Join(filepath.Dir(dst), "."+filepath.Base(dst)+".partial")
	if err := fsys.RemoveAll(staging); err != nil {
		return nil, fmt.Errorf("removing stale %s: %w", staging, err)
	}

	files, err := copyInto(fsys, src, staging)
	if err != nil {
		_ = fsys.RemoveAll(staging)
		return nil, err
	}

	if err := fsys.Rename(staging, dst); err != nil {
		_ = fsys.RemoveAll(staging)
		return nil, fmt.Errorf("moving %s into place: %w", dst, err)
	}

	return files, nil
}

func copyInto(fsys afero.Fs, src, dst string) ([]string, error) {
	var files []string

	err := afero.Walk(fsys, src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		if info.Mode()&os.ModeSymlink != 0 {
			resolved, err := fsys.Stat(path)
			if err != nil {
				return fmt.Errorf("resolving %s: %w", path, err)
			}
			if resolved.IsDir() {
				linked, err := copyInto(fsys, path+string(filepath.Separator), target)
				for _, f := range linked {
					files = append(files, filepath.ToSlash(filepath.Join(rel, f)))
				}
				return err
			}
			info = resolved
		}

		if info.IsDir() {
			return fsys.MkdirAll(target, dirMode(info))
		}

		if err := copyFile(fsys, path, target, info.Mode().Perm()); err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})

	return files, err
}

// copyFile copies src to dst, following symlinks.
func copyFile(fsys afero.Fs, src, dst string, perm os.FileMode) error {
	in, err := fsys.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	if perm == 0 {
		perm = 0o644
	}
	out, err := fsys.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copying %s: %w", src, err)
	}
	return out.Close()
}

func dirMode(info os.FileInfo) os.FileMode {
	// Directories must stay writable so the copy can fill them.
	return info.Mode().Perm() | 0o700
}
