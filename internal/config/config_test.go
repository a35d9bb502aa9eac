package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "auto", cfg.PackageManager)
	assert.Equal(t, "^3.0.0-rc.4", cfg.CatalogVersion)
	assert.Nil(t, cfg.Log.Timestamps)
}

func TestWithDefaults(t *testing.T) {
	cfg := (&Config{PackageManager: "npm"}).WithDefaults()

	assert.Equal(t, "npm", cfg.PackageManager, "set values are kept")
	assert.Equal(t, DefaultCatalogVersion, cfg.CatalogVersion, "empty values are filled")
}

func TestWithDefaults_DoesNotMutate(t *testing.T) {
	cfg := &Config{}
	_ = cfg.WithDefaults()

	assert.Empty(t, cfg.PackageManager)
}
