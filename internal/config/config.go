package config

import (
	"fmt"
	"os"

	"planar-mirror/internal/reflection"
	"planar-mirror/internal/rendertarget"

	"gopkg.in/yaml.v3"
)

const (
	DefaultTextureSlot      = "_ReflectionTex"
	DefaultFPSLimit         = 144
	DefaultMouseSensitivity = 0.5
	MaxFPSLimit             = 1000

	// MaxClipPlaneOffset bounds the clip plane bias. Large offsets move the
	// oblique near plane close to the eye and the projection degenerates.
	MaxClipPlaneOffset = 10.0

	MinFarScale = 0.01
	MaxFarScale = 1.0
)

// Mirror holds the static settings of one planar reflection.
type Mirror struct {
	Axis               reflection.Axis `yaml:"axis"`
	ReflectionMask     uint32          `yaml:"reflection_mask"`
	ClipPlaneOffset    float32         `yaml:"clip_plane_offset"`
	FarScale           float32         `yaml:"far_scale"`
	RenderTextureScale float32         `yaml:"render_texture_scale"`
	ShowHiddenCamera   bool            `yaml:"show_hidden_camera"`
	TextureSlot        string          `yaml:"texture_slot"`
}

// Window holds the host window settings.
type Window struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	Fullscreen bool   `yaml:"fullscreen"`
}

// Config is the full application configuration.
type Config struct {
	Window           Window  `yaml:"window"`
	FPSLimit         int     `yaml:"fps_limit"`
	MouseSensitivity float32 `yaml:"mouse_sensitivity"`
	CaptureDir       string  `yaml:"capture_dir"`
	TextureDir       string  `yaml:"texture_dir"`
	Mirror           Mirror  `yaml:"mirror"`
}

// DefaultMirror reflects across the surface's up axis at full resolution.
func DefaultMirror() Mirror {
	return Mirror{
		Axis:               reflection.AxisUp,
		ReflectionMask:     reflection.AllLayers,
		FarScale:           1,
		RenderTextureScale: 1,
		TextureSlot:        DefaultTextureSlot,
	}
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Window: Window{
			Width:  900,
			Height: 600,
			Title:  "planar-mirror",
		},
		FPSLimit:         DefaultFPSLimit,
		MouseSensitivity: DefaultMouseSensitivity,
		CaptureDir:       "captures",
		TextureDir:       "assets/textures",
		Mirror:           DefaultMirror(),
	}
}

// Load reads a YAML config file on top of Default and validates it.
// Fields not set in the file keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate clamps numeric ranges in place. An unknown axis is an error.
func (c *Config) Validate() error {
	if c.Window.Width < 1 {
		c.Window.Width = 1
	}
	if c.Window.Height < 1 {
		c.Window.Height = 1
	}
	if c.FPSLimit < 0 {
		c.FPSLimit = 0
	}
	if c.FPSLimit > MaxFPSLimit {
		c.FPSLimit = MaxFPSLimit
	}
	c.MouseSensitivity = clamp(c.MouseSensitivity, 0, 1)
	return c.Mirror.Validate()
}

// Validate clamps the mirror settings in place. An unknown axis is an error.
func (m *Mirror) Validate() error {
	if !m.Axis.Valid() {
		return fmt.Errorf("mirror axis: %w: %d", reflection.ErrUnknownAxis, int(m.Axis))
	}
	m.ClipPlaneOffset = clamp(m.ClipPlaneOffset, -MaxClipPlaneOffset, MaxClipPlaneOffset)
	m.FarScale = clamp(m.FarScale, MinFarScale, MaxFarScale)
	m.RenderTextureScale = rendertarget.ClampScale(m.RenderTextureScale)
	if m.TextureSlot == "" {
		m.TextureSlot = DefaultTextureSlot
	}
	return nil
}

// Solver returns the subset of settings used by the reflection solve.
func (m Mirror) Solver() reflection.Settings {
	return reflection.Settings{
		Axis:            m.Axis,
		ReflectionMask:  m.ReflectionMask,
		ClipPlaneOffset: m.ClipPlaneOffset,
		FarScale:        m.FarScale,
	}
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
