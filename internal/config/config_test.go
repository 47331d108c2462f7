package config

import (
	"os"
	"path/filepath"
	"testing"

	"planar-mirror/internal/reflection"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mirror.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
window:
  width: 1280
fps_limit: 60
mirror:
  axis: Forward
  reflection_mask: 0x0F
  clip_plane_offset: 0.05
  render_texture_scale: 0.5
  show_hidden_camera: true
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height, "unset field keeps default")
	assert.Equal(t, 60, cfg.FPSLimit)
	assert.Equal(t, reflection.AxisForward, cfg.Mirror.Axis)
	assert.Equal(t, uint32(0x0F), cfg.Mirror.ReflectionMask)
	assert.InDelta(t, 0.05, cfg.Mirror.ClipPlaneOffset, 1e-6)
	assert.InDelta(t, 0.5, cfg.Mirror.RenderTextureScale, 1e-6)
	assert.InDelta(t, 1, cfg.Mirror.FarScale, 1e-6)
	assert.True(t, cfg.Mirror.ShowHiddenCamera)
	assert.Equal(t, DefaultTextureSlot, cfg.Mirror.TextureSlot)
}

func TestLoadClampsRanges(t *testing.T) {
	path := writeConfig(t, `
fps_limit: -5
mouse_sensitivity: 3
mirror:
  clip_plane_offset: -100
  far_scale: 0
  render_texture_scale: 7
  texture_slot: ""
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.FPSLimit)
	assert.Equal(t, float32(1), cfg.MouseSensitivity)
	assert.Equal(t, float32(-MaxClipPlaneOffset), cfg.Mirror.ClipPlaneOffset)
	assert.Equal(t, float32(MinFarScale), cfg.Mirror.FarScale)
	assert.Equal(t, float32(1), cfg.Mirror.RenderTextureScale)
	assert.Equal(t, DefaultTextureSlot, cfg.Mirror.TextureSlot)
}

func TestLoadRejectsUnknownAxis(t *testing.T) {
	path := writeConfig(t, "mirror:\n  axis: sideways\n")
	_, err := Load(path)
	assert.ErrorIs(t, err, reflection.ErrUnknownAxis)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadMalformed(t *testing.T) {
	_, err := Load(writeConfig(t, "window: [1, 2"))
	assert.ErrorContains(t, err, "config: parse")
}

func TestMirrorValidateAxis(t *testing.T) {
	m := DefaultMirror()
	m.Axis = reflection.Axis(17)
	assert.ErrorIs(t, m.Validate(), reflection.ErrUnknownAxis)
}

func TestMirrorSolver(t *testing.T) {
	m := DefaultMirror()
	m.Axis = reflection.AxisBack
	m.ClipPlaneOffset = 0.2
	m.FarScale = 0.25
	m.ReflectionMask = 3

	s := m.Solver()
	assert.Equal(t, reflection.AxisBack, s.Axis)
	assert.Equal(t, float32(0.2), s.ClipPlaneOffset)
	assert.Equal(t, float32(0.25), s.FarScale)
	assert.Equal(t, uint32(3), s.ReflectionMask)
}

func TestRuntimeSettings(t *testing.T) {
	defer ApplyRuntime(Default())

	SetFPSLimit(5000)
	assert.Equal(t, MaxFPSLimit, GetFPSLimit())
	SetFPSLimit(-1)
	assert.Equal(t, 0, GetFPSLimit())

	SetMouseSensitivity(-2)
	assert.Equal(t, float32(0), GetMouseSensitivity())

	cfg := Default()
	cfg.Mirror.ShowHiddenCamera = true
	cfg.FPSLimit = 30
	ApplyRuntime(cfg)
	assert.True(t, GetShowHiddenCamera())
	assert.Equal(t, 30, GetFPSLimit())
}
