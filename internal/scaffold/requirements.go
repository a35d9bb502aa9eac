package scaffold

import (
	"strings"

	"github.com/interactivethings/create-catalog/internal/manifest"
)

// Requirement is a dependency every Catalog project needs.
type Requirement struct {
	// Name is the dependency key in package.json.
	Name string

	// Spec is what gets passed to the package manager, e.g. "catalog@^3.0.0-rc.4".
	Spec string
}

// Requirements returns the required dependencies in install order. The
// catalog package is pinned to versionRange; react and react-dom float.
func Requirements(versionRange string) []Requirement {
	catalog := Requirement{Name: "catalog", Spec: "catalog"}
	if versionRange != "" {
		catalog.Spec = "catalog@" + versionRange
	}
	return []Requirement{
		catalog,
		{Name: "react", Spec: "react"},
		{Name: "react-dom", Spec: "react-dom"},
	}
}

// MissingDependencies returns the requirements m does not declare, in the
// order of reqs. Without a dependency mapping every requirement is missing.
// Each requirement appears at most once.
func MissingDependencies(m *manifest.Manifest, reqs []Requirement) []Requirement {
	if !m.HasDependencies() {
		return append([]Requirement(nil), reqs...)
	}

	var missing []Requirement
	for _, r := range reqs {
		if !m.HasDependency(r.Name) {
			missing = append(missing, r)
		}
	}
	return missing
}

// declared returns the requirements m already declares, with their
// declared versions, in the order of reqs.
func declared(m *manifest.Manifest, reqs []Requirement) []manifest.Entry {
	versions := make(map[string]string)
	for _, d := range m.Dependencies() {
		versions[d.Name] = d.Value
	}

	var out []manifest.Entry
	for _, r := range reqs {
		if m.HasDependency(r.Name) {
			out = append(out, manifest.Entry{Name: r.Name, Value: versions[r.Name]})
		}
	}
	return out
}

// Specs returns the package manager specifiers of reqs.
func Specs(reqs []Requirement) []string {
	specs := make([]string, len(reqs))
	for i, r := range reqs {
		specs[i] = r.Spec
	}
	return specs
}

// names joins the dependency names of reqs for progress messages.
func names(reqs []Requirement) string {
	n := make([]string, len(reqs))
	for i, r := range reqs {
		n[i] = r.Name
	}
	return strings.Join(n, ", ")
}
