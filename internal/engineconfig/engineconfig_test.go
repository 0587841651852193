package engineconfig

import (
	"os"
	"path/filepath"
	"testing"

	"solar-raster/internal/camera"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMatchesCamera(t *testing.T) {
	assert.Equal(t, camera.DefaultConfig(), Default().Camera())
}

func TestLoadFileMissing(t *testing.T) {
	p, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
}

func TestLoadFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))
	p, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
}

func TestLoadFileKeepsMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"width": 640, "collision_margin": 10, "show_fps": true}`), 0644))
	p, err := LoadFile(path)
	require.NoError(t, err)

	want := Default()
	want.Width = 640
	want.CollisionMargin = 10
	want.ShowFPS = true
	assert.Equal(t, want, p)
	assert.Equal(t, float32(10), p.Camera().Margin)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "engine.json")
	p := Default()
	p.Glow = true
	p.SceneFile = "scenes/custom.yaml"
	p.Workers = 4
	require.NoError(t, SaveFile(path, p))

	got, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestSanitize(t *testing.T) {
	p := EnginePrefs{FOVDegrees: 200, NearPlane: -1, Workers: -3, StarCount: -9}
	s := p.Sanitize()
	d := Default()
	assert.Equal(t, d.Width, s.Width)
	assert.Equal(t, d.Height, s.Height)
	assert.Equal(t, d.FOVDegrees, s.FOVDegrees)
	assert.Equal(t, d.NearPlane, s.NearPlane)
	assert.Equal(t, 1, s.Workers)
	assert.Equal(t, 0, s.StarCount)
}
