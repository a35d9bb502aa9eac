package scaffold

import (
	"github.com/interactivethings/create-catalog/internal/manifest"
)

// Script names injected into package.json.
const (
	ScriptStart = "catalog-start"
	ScriptBuild = "catalog-build"
)

// Scripts returns the convenience scripts for catalogDir. The directory is
// only appended when it differs from DefaultCatalogDir, which the catalog
// CLI uses on its own.
func Scripts(catalogDir string) []manifest.Entry {
	suffix := ""
	if catalogDir != DefaultCatalogDir {
		suffix = " " + catalogDir
	}
	return []manifest.Entry{
		{Name: ScriptStart, Value: "catalog start" + suffix},
		{Name: ScriptBuild, Value: "catalog build" + suffix},
	}
}

// hasScripts reports whether m declares both convenience scripts.
func hasScripts(m *manifest.Manifest) bool {
	return m.HasScript(ScriptStart) && m.HasScript(ScriptBuild)
}

// replaced returns the scripts of m that setting scripts would overwrite
// with a different command.
func replaced(m *manifest.Manifest, scripts []manifest.Entry) []manifest.Entry {
	next := make(map[string]string, len(scripts))
	for _, s := range scripts {
		next[s.Name] = s.Value
	}

	var out []manifest.Entry
	for _, s := range m.Scripts() {
		if value, ok := next[s.Name]; ok && s.Value != "" && s.Value != value {
			out = append(out, s)
		}
	}
	return out
}
