// Package scaffold sets up Catalog inside a project directory.
//
// The Initializer is strictly sequential: every filesystem check, manifest
// write and package manager invocation completes before the next one starts.
// Nothing is retried and nothing is rolled back; the first failure ends the
// run. Re-running is blocked once the catalog directory exists.
package scaffold

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/afero"

	oerrors "github.com/interactivethings/create-catalog/internal/errors"
	"github.com/interactivethings/create-catalog/internal/manifest"
	"github.com/interactivethings/create-catalog/internal/output"
	"github.com/interactivethings/create-catalog/internal/pkgmanager"
)

// Reporter shows the progress of a run.
type Reporter interface {
	// Start is called once the preconditions hold, before any mutation.
	Start(l *Layout)

	// Step runs fn as a named step and returns its error.
	Step(ctx context.Context, title string, fn func() error) error
}

// Options configures a single run.
type Options struct {
	// CatalogDir is the catalog sub-directory inside the app directory.
	CatalogDir string
}

// Result describes what a successful run did.
type Result struct {
	Layout  *Layout
	Manager pkgmanager.Manager

	// ProjectName is the package name recorded in package.json.
	ProjectName string

	// CreatedManifest is true when no package.json existed before the run.
	CreatedManifest bool

	// Kept lists required dependencies that were already declared.
	Kept []manifest.Entry

	// Installed lists the specifiers passed to the add command.
	Installed []string

	// InstalledAll is true when a full install was needed for node_modules.
	InstalledAll bool

	// ScriptsAdded is true when the convenience scripts were written.
	ScriptsAdded bool

	// ReplacedScripts lists scripts of the same name that were overwritten,
	// with their previous command.
	ReplacedScripts []manifest.Entry

	// Files lists the template files copied, relative to the catalog directory.
	Files []string
}

// Initializer sets up Catalog in a project.
type Initializer struct {
	// Fs is used for every filesystem access.
	Fs afero.Fs

	// Runner spawns package manager commands.
	Runner pkgmanager.Runner

	// Manager is the package manager, resolved once per invocation.
	Manager pkgmanager.Manager

	// Reporter receives progress. Nil discards it.
	Reporter Reporter

	// WorkingDir resolves relative app directories.
	WorkingDir string

	// CatalogVersion is the version range the catalog package is added with.
	CatalogVersion string
}

// Run sets up Catalog in dir.
//
// Failures are classified by errors.Is against errors.ErrAlreadyInitialized,
// errors.ErrSubprocess and errors.ErrFilesystem. An AlreadyInitialized
// failure happens before anything is written.
func (i *Initializer) Run(ctx context.Context, dir string, opts Options) (*Result, error) {
	if opts.CatalogDir == "" {
		opts.CatalogDir = DefaultCatalogDir
	}

	layout, err := NewLayout(dir, opts.CatalogDir, i.WorkingDir)
	if err != nil {
		return nil, err
	}

	exists, err := afero.Exists(i.Fs, layout.CatalogRoot)
	if err != nil {
		return nil, fsError("checking catalog directory", layout.CatalogRoot, err)
	}
	if exists {
		return nil, oerrors.NewAlreadyInitializedError(layout.CatalogPath, AlreadyInitializedHint(layout))
	}

	reporter := i.reporter()
	reporter.Start(layout)

	output.Debug("initializing project",
		"root", layout.ProjectRoot,
		"catalogDir", layout.CatalogDir,
		"packageManager", i.Manager,
	)

	if err := i.Fs.MkdirAll(layout.ProjectRoot, 0o755); err != nil {
		return nil, fsError("creating project directory", layout.ProjectRoot, err)
	}

	result := &Result{Layout: layout, Manager: i.Manager}

	hasManifest, err := manifest.Exists(i.Fs, layout.ManifestPath)
	if err != nil {
		return nil, fsError("checking manifest", layout.ManifestPath, err)
	}

	if hasManifest {
		err = i.updateManifest(ctx, reporter, layout, result)
	} else {
		err = i.createManifest(ctx, reporter, layout, result)
	}
	if err != nil {
		return nil, err
	}

	hasModules, err := afero.DirExists(i.Fs, layout.NodeModules)
	if err != nil {
		return nil, fsError("checking node_modules", layout.NodeModules, err)
	}
	if !hasModules {
		err := reporter.Step(ctx, "Installing dependencies", func() error {
			return i.run(ctx, layout, i.Manager.InstallAllArgs())
		})
		if err != nil {
			return nil, err
		}
		result.InstalledAll = true
	}

	err = reporter.Step(ctx, "Creating Catalog files", func() error {
		files, err := i.copyTemplate(layout)
		result.Files = files
		return err
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// updateManifest installs missing dependencies of an existing project and
// adds the convenience scripts if either is absent.
func (i *Initializer) updateManifest(ctx context.Context, reporter Reporter, layout *Layout, result *Result) error {
	var (
		current *manifest.Manifest
		missing []Requirement
	)

	err := reporter.Step(ctx, "Checking dependencies", func() error {
		m, err := i.readManifest(layout)
		if err != nil {
			return err
		}
		current = m
		reqs := Requirements(i.CatalogVersion)
		missing = MissingDependencies(m, reqs)
		result.ProjectName = m.Name()
		result.Kept = declared(m, reqs)
		return nil
	})
	if err != nil {
		return err
	}

	if len(missing) > 0 {
		if err := i.install(ctx, reporter, layout, missing); err != nil {
			return err
		}
		result.Installed = Specs(missing)
	}

	if hasScripts(current) {
		return nil
	}

	err = reporter.Step(ctx, "Adding Catalog scripts", func() error {
		// The install step may have rewritten package.json; start from what is on disk now.
		m, err := i.readManifest(layout)
		if err != nil {
			return err
		}
		scripts := Scripts(layout.CatalogDir)
		result.ReplacedScripts = replaced(m, scripts)
		for _, r := range result.ReplacedScripts {
			output.Warn("replacing script", "name", r.Name, "previous", r.Value)
		}
		if err := m.SetScripts(scripts); err != nil {
			return fsError("updating scripts", layout.ManifestPath, err)
		}
		if err := m.Write(i.Fs, layout.ManifestPath); err != nil {
			return fsError("writing manifest", layout.ManifestPath, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	result.ScriptsAdded = true
	return nil
}

// createManifest writes a fresh package.json and installs every requirement.
func (i *Initializer) createManifest(ctx context.Context, reporter Reporter, layout *Layout, result *Result) error {
	err := reporter.Step(ctx, "Creating "+manifest.FileName, func() error {
		m, err := manifest.New(layout.ProjectName, Scripts(layout.CatalogDir))
		if err != nil {
			return fsError("rendering manifest", layout.ManifestPath, err)
		}
		if err := m.Write(i.Fs, layout.ManifestPath); err != nil {
			return fsError("writing manifest", layout.ManifestPath, err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	result.ProjectName = layout.ProjectName
	result.CreatedManifest = true
	result.ScriptsAdded = true

	reqs := Requirements(i.CatalogVersion)
	if err := i.install(ctx, reporter, layout, reqs); err != nil {
		return err
	}
	result.Installed = Specs(reqs)
	return nil
}

func (i *Initializer) install(ctx context.Context, reporter Reporter, layout *Layout, reqs []Requirement) error {
	return reporter.Step(ctx, "Installing "+names(reqs), func() error {
		return i.run(ctx, layout, i.Manager.AddArgs(Specs(reqs)))
	})
}

// run executes a package manager command inside the project root. Errors
// that do not already carry a subprocess classification get one.
func (i *Initializer) run(ctx context.Context, layout *Layout, args []string) error {
	err := i.Runner.Run(ctx, layout.ProjectRoot, args[0], args[1:]...)
	if err == nil {
		return nil
	}
	if errors.Is(err, oerrors.ErrSubprocess) {
		return err
	}
	return &oerrors.SubprocessError{
		Command:  strings.Join(args, " "),
		Dir:      layout.ProjectRoot,
		ExitCode: -1,
		Err:      err,
	}
}

func (i *Initializer) readManifest(layout *Layout) (*manifest.Manifest, error) {
	m, err := manifest.Read(i.Fs, layout.ManifestPath)
	if err != nil {
		return nil, oerrors.NewFilesystemError(
			fmt.Sprintf("cannot load %s", manifest.FileName),
			layout.ManifestPath,
			"Make sure package.json is readable and contains a valid JSON object.",
			err,
		)
	}
	return m, nil
}

func (i *Initializer) copyTemplate(layout *Layout) ([]string, error) {
	ok, err := afero.DirExists(i.Fs, layout.TemplateDir)
	if err != nil {
		return nil, fsError("checking setup template", layout.TemplateDir, err)
	}
	if !ok {
		spec := Requirements(i.CatalogVersion)[0].Spec
		detail := oerrors.NewFilesystemError(
			"the installed catalog package has no setup template",
			layout.TemplateDir,
			fmt.Sprintf("Check that %s installed correctly into node_modules.", spec),
			nil,
		)
		detail.Context = map[string]string{
			"Package":         spec,
			"Package manager": i.Manager.String(),
		}
		return nil, detail
	}

	files, err := CopyTree(i.Fs, layout.TemplateDir, layout.CatalogRoot)
	if err != nil {
		return nil, fsError("copying setup template", layout.CatalogRoot, err)
	}
	output.Debug("copied setup template", "files", len(files), "dest", layout.CatalogRoot)
	return files, nil
}

func (i *Initializer) reporter() Reporter {
	if i.Reporter == nil {
		return nopReporter{}
	}
	return i.Reporter
}

func fsError(message, location string, err error) error {
	return oerrors.NewFilesystemError(message, location, "", err)
}

type nopReporter struct{}

func (nopReporter) Start(*Layout) {}

func (nopReporter) Step(_ context.Context, _ string, fn func() error) error {
	return fn()
}
