package scaffold

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/interactivethings/create-catalog/internal/manifest"
	"github.com/interactivethings/create-catalog/internal/pkgmanager"
)

const (
	workDir     = "/work"
	testVersion = "^3.0.0-rc.4"
)

// templateFiles is the setup template the fake catalog package ships.
var templateFiles = map[string]string{
	"index.html":          "<div id=\"catalog\"></div>",
	"static/logo.svg":     "<svg/>",
	"pages/intro.md":      "# Hello",
	"pages/nested/get.md": "# Nested",
}

// fakePackageManager mimics yarn/npm on an in-memory filesystem: adding
// dependencies records them in package.json and populates node_modules.
type fakePackageManager struct {
	fs    afero.Fs
	calls []string

	// fail makes every command fail with this error.
	fail error
	// noTemplate installs catalog without a setup template.
	noTemplate bool
	// skipModules adds dependencies without creating node_modules.
	skipModules bool
	// onAdd runs after a successful add, to simulate external edits.
	onAdd func(root string)
}

func (f *fakePackageManager) Run(_ context.Context, dir, name string, args ...string) error {
	f.calls = append(f.calls, strings.Join(append([]string{name}, args...), " "))
	if f.fail != nil {
		return f.fail
	}

	switch {
	case name == "yarn" && len(args) > 0 && args[0] == "add":
		return f.add(dir, args[1:])
	case name == "npm" && len(args) > 1 && args[0] == "install" && args[1] == "--save":
		return f.add(dir, args[2:])
	case len(args) == 1 && args[0] == "install":
		return f.installModules(dir)
	default:
		return errors.New("unexpected command")
	}
}

func (f *fakePackageManager) add(dir string, specs []string) error {
	path := filepath.Join(dir, manifest.FileName)
	data, err := afero.ReadFile(f.fs, path)
	if err != nil {
		return err
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	deps, _ := doc["dependencies"].(map[string]any)
	if deps == nil {
		deps = map[string]any{}
	}
	for _, spec := range specs {
		name, version, found := strings.Cut(spec, "@")
		if !found {
			version = "^18.3.1"
		}
		deps[name] = version
	}
	doc["dependencies"] = deps

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	if err := afero.WriteFile(f.fs, path, out, 0o644); err != nil {
		return err
	}

	if !f.skipModules {
		if err := f.installModules(dir); err != nil {
			return err
		}
	}
	if f.onAdd != nil {
		f.onAdd(dir)
	}
	return nil
}

func (f *fakePackageManager) installModules(dir string) error {
	modules := filepath.Join(dir, "node_modules")
	if err := f.fs.MkdirAll(filepath.Join(modules, "react"), 0o755); err != nil {
		return err
	}
	if f.noTemplate {
		return f.fs.MkdirAll(filepath.Join(modules, "catalog", "dist"), 0o755)
	}
	template := filepath.Join(modules, "catalog", "dist", "setup-template")
	for rel, content := range templateFiles {
		p := filepath.Join(template, filepath.FromSlash(rel))
		if err := f.fs.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			return err
		}
		if err := afero.WriteFile(f.fs, p, []byte(content), 0o644); err != nil {
			return err
		}
	}
	return nil
}

// recordingReporter captures step titles.
type recordingReporter struct {
	started bool
	steps   []string
}

func (r *recordingReporter) Start(*Layout) {
	r.started = true
}

func (r *recordingReporter) Step(_ context.Context, title string, fn func() error) error {
	r.steps = append(r.steps, title)
	return fn()
}

func newInitializer(fsys afero.Fs, runner pkgmanager.Runner, reporter Reporter) *Initializer {
	return &Initializer{
		Fs:             fsys,
		Runner:         runner,
		Manager:        pkgmanager.Yarn,
		Reporter:       reporter,
		WorkingDir:     workDir,
		CatalogVersion: testVersion,
	}
}

func writeFile(t *testing.T, fsys afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, fsys.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, afero.WriteFile(fsys, path, []byte(content), 0o644))
}

func readManifest(t *testing.T, fsys afero.Fs, root string) *manifest.Manifest {
	t.Helper()
	m, err := manifest.Read(fsys, filepath.Join(root, manifest.FileName))
	require.NoError(t, err)
	return m
}

// snapshot returns every path below root with file contents, for comparing
// filesystem states.
func snapshot(t *testing.T, fsys afero.Fs, root string) map[string]string {
	t.Helper()
	out := map[string]string{}
	err := afero.Walk(fsys, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			out[path] = "<dir>"
			return nil
		}
		data, err := afero.ReadFile(fsys, path)
		if err != nil {
			return err
		}
		out[path] = string(data)
		return nil
	})
	require.NoError(t, err)
	return out
}

func sortedTemplateFiles() []string {
	files := make([]string, 0, len(templateFiles))
	for f := range templateFiles {
		files = append(files, f)
	}
	sort.Strings(files)
	return files
}
