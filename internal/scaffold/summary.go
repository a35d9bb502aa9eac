package scaffold

import (
	"fmt"
	"strings"

	"github.com/interactivethings/create-catalog/internal/manifest"
	"github.com/interactivethings/create-catalog/internal/output"
)

// AlreadyInitializedHint lists what a user can do when the catalog
// directory of layout already exists.
func AlreadyInitializedHint(layout *Layout) string {
	var b strings.Builder
	b.WriteString("Some suggestions:\n\n")
	fmt.Fprintf(&b, "  - Maybe Catalog is already installed? Try starting it with %s\n",
		output.StyleCommand.Render("catalog start"))
	fmt.Fprintf(&b, "  - Install Catalog in another directory using the %s option.\n",
		output.StyleCommand.Render("--catalog-dir"))
	fmt.Fprintf(&b, "  - Delete %q and try again.\n\n", layout.CatalogPath)
	fmt.Fprintf(&b, "For available options run %s.", output.StyleCommand.Render("create-catalog --help"))
	return b.String()
}

// Headline is the line printed before a run starts mutating anything.
func Headline(layout *Layout) string {
	return output.StyleHeadline.Render("Setting up Catalog in") + " " + output.StyleNoun.Render(layout.CatalogPath)
}

// Summary tells the user how to start Catalog after a successful run.
// When the project is the working directory there is nowhere to navigate to.
func (r *Result) Summary() string {
	start := output.StyleCommand.Render(r.Manager.RunScriptCommand(ScriptStart))

	var b strings.Builder
	b.WriteString(output.StyleHeadline.Render("Catalog is ready to go! 🙌"))
	b.WriteString("\n\n")
	if r.Layout.IsWorkingDir {
		fmt.Fprintf(&b, "Run %s to get started.", start)
	} else {
		fmt.Fprintf(&b, "Go to %s and run %s to get started.", output.StyleCommand.Render(r.Layout.Dir), start)
	}
	return b.String()
}

// Details renders what the run changed as a table, for verbose output.
func (r *Result) Details() string {
	manifestState := "updated"
	switch {
	case r.CreatedManifest:
		manifestState = "created"
	case len(r.Installed) == 0 && !r.ScriptsAdded:
		manifestState = "unchanged"
	}

	installed := "-"
	if len(r.Installed) > 0 {
		installed = strings.Join(r.Installed, " ")
	}

	fullInstall := "no"
	if r.InstalledAll {
		fullInstall = "yes"
	}

	kept := "-"
	if len(r.Kept) > 0 {
		kept = joinEntries(r.Kept, "@")
	}

	scripts := "present"
	if r.ScriptsAdded {
		scripts = "added"
	}
	if len(r.ReplacedScripts) > 0 {
		names := make([]string, len(r.ReplacedScripts))
		for i, s := range r.ReplacedScripts {
			names[i] = s.Name
		}
		scripts += " (replaced " + strings.Join(names, ", ") + ")"
	}

	project := r.ProjectName
	if project == "" {
		project = "-"
	}

	return output.NewTable("STEP", "RESULT").
		Row("project", project).
		Row("package manager", r.Manager.String()).
		Row(manifest.FileName, manifestState).
		Row("installed", installed).
		Row("already declared", kept).
		Row("full install", fullInstall).
		Row("scripts", scripts).
		Row("catalog files", fmt.Sprintf("%d in %s", len(r.Files), r.Layout.CatalogDir)).
		String()
}

func joinEntries(entries []manifest.Entry, sep string) string {
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = e.Name + sep + e.Value
	}
	return strings.Join(parts, " ")
}
