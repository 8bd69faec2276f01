package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/shapes"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shapes.toml")
	data := `
width = 1024
shapes = ["cube", "polygon"]

[polygon]
sides = 7
indexed = true
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1024, cfg.Width)
	assert.Equal(t, 600, cfg.Height)
	assert.Equal(t, []string{"cube", "polygon"}, cfg.Shapes)
	assert.Equal(t, 7, cfg.Polygon.Sides)
	assert.Equal(t, float32(1), cfg.Polygon.Radius)
	assert.True(t, cfg.Polygon.Indexed)
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("colour = \"red\"\n"), Default())
	assert.Error(t, err)
}

func TestParseRejectsInvalidValues(t *testing.T) {
	for name, data := range map[string]string{
		"shape":  `shapes = ["hexahedron"]`,
		"sides":  "[polygon]\nsides = 2",
		"radius": "[polygon]\nradius = -1.0",
		"size":   "width = 0",
	} {
		t.Run(name, func(t *testing.T) {
			cfg, err := Parse([]byte(data), Default())
			assert.Error(t, err)
			assert.Equal(t, Default(), cfg)
		})
	}
}

func TestOptionsPerKind(t *testing.T) {
	cfg := Default()
	cfg.Strict = true
	assert.Len(t, cfg.Options(shapes.KindTriangle), 1)
	assert.Len(t, cfg.Options(shapes.KindPolygon), 4)
}

func TestParseRejectsOversizedIndexedPolygon(t *testing.T) {
	_, err := Parse([]byte("[polygon]\nsides = 70000\nindexed = true\n"), Default())
	assert.Error(t, err)

	cfg, err := Parse([]byte("[polygon]\nsides = 70000\n"), Default())
	assert.NoError(t, err)
	assert.Equal(t, 70000, cfg.Polygon.Sides)
}
