package scaffold

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interactivethings/create-catalog/internal/manifest"
)

func TestRequirements(t *testing.T) {
	reqs := Requirements("^3.0.0-rc.4")

	assert.Equal(t, []string{"catalog@^3.0.0-rc.4", "react", "react-dom"}, Specs(reqs))
	assert.Equal(t, "catalog, react, react-dom", names(reqs))
}

func TestRequirements_NoVersion(t *testing.T) {
	assert.Equal(t, "catalog", Requirements("")[0].Spec)
}

func TestMissingDependencies(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
		want     []string
	}{
		{
			name:     "no dependency mapping",
			manifest: `{"name":"app"}`,
			want:     []string{"catalog@^3.0.0-rc.4", "react", "react-dom"},
		},
		{
			name:     "null dependency mapping",
			manifest: `{"dependencies":null}`,
			want:     []string{"catalog@^3.0.0-rc.4", "react", "react-dom"},
		},
		{
			name:     "empty dependency mapping",
			manifest: `{"dependencies":{}}`,
			want:     []string{"catalog@^3.0.0-rc.4", "react", "react-dom"},
		},
		{
			name:     "only react-dom missing",
			manifest: `{"dependencies":{"catalog":"^3","react":"^16","lodash":"4"}}`,
			want:     []string{"react-dom"},
		},
		{
			name:     "catalog missing",
			manifest: `{"dependencies":{"react":"^16","react-dom":"^16"}}`,
			want:     []string{"catalog@^3.0.0-rc.4"},
		},
		{
			name:     "complete",
			manifest: `{"dependencies":{"catalog":"^3","react":"^16","react-dom":"^16"}}`,
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := manifest.Parse([]byte(tt.manifest))
			require.NoError(t, err)

			got := Specs(MissingDependencies(m, Requirements("^3.0.0-rc.4")))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMissingDependencies_DoesNotAliasRequirements(t *testing.T) {
	m, err := manifest.Parse([]byte(`{}`))
	require.NoError(t, err)

	reqs := Requirements("^3")
	missing := MissingDependencies(m, reqs)
	missing[0].Spec = "changed"

	assert.Equal(t, "catalog@^3", reqs[0].Spec)
}

func TestDeclared(t *testing.T) {
	m, err := manifest.Parse([]byte(`{"dependencies":{"lodash":"^4","react-dom":"^18.2.0","catalog":"","react":"^18.2.0"}}`))
	require.NoError(t, err)

	got := declared(m, Requirements("^3"))

	assert.Equal(t, []manifest.Entry{
		{Name: "react", Value: "^18.2.0"},
		{Name: "react-dom", Value: "^18.2.0"},
	}, got)
}

func TestDeclared_NoMapping(t *testing.T) {
	m, err := manifest.Parse([]byte(`{}`))
	require.NoError(t, err)

	assert.Empty(t, declared(m, Requirements("^3")))
}
