package scaffold

import (
	"errors"
	"path/filepath"

	"github.com/interactivethings/create-catalog/internal/manifest"
)

// DefaultCatalogDir is the catalog sub-directory used when none is given.
const DefaultCatalogDir = "catalog"

// Layout holds the resolved paths of one initialization run.
type Layout struct {
	// Dir is the app directory as given by the user.
	Dir string

	// ProjectRoot is the absolute app directory.
	ProjectRoot string

	// ProjectName is the base name of ProjectRoot.
	ProjectName string

	// CatalogDir is the catalog sub-directory as given by the user.
	CatalogDir string

	// CatalogPath is Dir joined with CatalogDir, used in messages.
	CatalogPath string

	// CatalogRoot is the absolute catalog sub-directory.
	CatalogRoot string

	// ManifestPath is the absolute path of package.json.
	ManifestPath string

	// NodeModules is the absolute path of the local dependency cache.
	NodeModules string

	// TemplateDir is the setup template shipped inside the catalog package.
	TemplateDir string

	// IsWorkingDir is true when ProjectRoot is the caller's working directory.
	IsWorkingDir bool
}

// NewLayout resolves dir and catalogDir against the working directory cwd.
func NewLayout(dir, catalogDir, cwd string) (*Layout, error) {
	if catalogDir == "" {
		return nil, errors.New("catalog directory must not be empty")
	}
	if dir == "" {
		dir = "."
	}

	root := dir
	if !filepath.IsAbs(root) {
		root = filepath.Join(cwd, root)
	}
	root = filepath.Clean(root)

	catalogPath := filepath.Join(dir, catalogDir)
	nodeModules := filepath.Join(root, "node_modules")

	return &Layout{
		Dir:          dir,
		ProjectRoot:  root,
		ProjectName:  filepath.Base(root),
		CatalogDir:   catalogDir,
		CatalogPath:  catalogPath,
		CatalogRoot:  filepath.Join(root, catalogDir),
		ManifestPath: filepath.Join(root, manifest.FileName),
		NodeModules:  nodeModules,
		TemplateDir:  filepath.Join(nodeModules, "catalog", "dist", "setup-template"),
		IsWorkingDir: root == filepath.Clean(cwd),
	}, nil
}
