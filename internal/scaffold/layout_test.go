package scaffold

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLayout(t *testing.T) {
	l, err := NewLayout("my-app", "docs", "/home/me")
	require.NoError(t, err)

	assert.Equal(t, "my-app", l.Dir)
	assert.Equal(t, "/home/me/my-app", l.ProjectRoot)
	assert.Equal(t, "my-app", l.ProjectName)
	assert.Equal(t, "my-app/docs", l.CatalogPath)
	assert.Equal(t, "/home/me/my-app/docs", l.CatalogRoot)
	assert.Equal(t, "/home/me/my-app/package.json", l.ManifestPath)
	assert.Equal(t, "/home/me/my-app/node_modules", l.NodeModules)
	assert.Equal(t, "/home/me/my-app/node_modules/catalog/dist/setup-template", l.TemplateDir)
	assert.False(t, l.IsWorkingDir)
}

func TestNewLayout_WorkingDirectory(t *testing.T) {
	for _, dir := range []string{".", "", "./", "/home/me"} {
		l, err := NewLayout(dir, DefaultCatalogDir, "/home/me")
		require.NoError(t, err)
		assert.True(t, l.IsWorkingDir, "dir %q", dir)
		assert.Equal(t, "me", l.ProjectName)
		assert.Equal(t, "/home/me/catalog", l.CatalogRoot)
	}
}

func TestNewLayout_AbsoluteDir(t *testing.T) {
	l, err := NewLayout("/srv/site/../site", "catalog", "/home/me")
	require.NoError(t, err)

	assert.Equal(t, "/srv/site", l.ProjectRoot)
	assert.Equal(t, "site", l.ProjectName)
}

func TestNewLayout_EmptyCatalogDir(t *testing.T) {
	_, err := NewLayout("app", "", "/home/me")
	assert.Error(t, err)
}
