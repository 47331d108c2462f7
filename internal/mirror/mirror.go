// Package mirror drives a planar reflection once per frame: it keeps the
// render target sized to the screen, solves the mirrored camera, renders it
// with inverted culling and binds the result to the surface material.
package mirror

import (
	"fmt"
	"log"

	"planar-mirror/internal/config"
	"planar-mirror/internal/profiling"
	"planar-mirror/internal/reflection"
	"planar-mirror/internal/rendertarget"
)

// Stats counts what LateUpdate did since Initialize.
type Stats struct {
	Rendered      int
	Skipped       int
	Reallocations int
}

// Mirror is one reflecting surface. All methods run on the render thread.
type Mirror struct {
	name     string
	host     Host
	settings config.Mirror
	targets  *rendertarget.Manager

	initialized bool
	enabled     bool
	bindable    bool
	warnedFlat  bool

	last    reflection.VirtualCamera
	hasLast bool
	stats   Stats
}

// New creates a mirror for the named surface. Nothing is allocated until Initialize.
func New(name string, host Host) *Mirror {
	return &Mirror{
		name:    name,
		host:    host,
		enabled: true,
	}
}

// TargetName is the debug label of the render target.
func (m *Mirror) TargetName() string {
	return "PlanarReflectionCamera-" + m.name
}

// Initialize applies settings, checks the material contract and allocates the target.
// A material without the texture slot is reported and the mirror keeps running
// without visual output.
func (m *Mirror) Initialize(settings config.Mirror) error {
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("mirror %s: %w", m.name, err)
	}
	m.settings = settings

	if m.targets == nil {
		m.targets = rendertarget.NewManager(m.host.Allocator, m.TargetName(), settings.RenderTextureScale)
	} else {
		m.targets.SetScale(settings.RenderTextureScale)
	}

	m.bindable = m.host.Material != nil && m.host.Material.HasTextureSlot(settings.TextureSlot)
	if !m.bindable {
		log.Printf("mirror %s: material does not have %s texture slot, add it to the shader", m.name, settings.TextureSlot)
	}

	m.initialized = true
	m.warnedFlat = false
	m.stats = Stats{}

	w, h := m.host.Screen.Size()
	resized, err := m.ensureTarget(w, h)
	if err != nil {
		return err
	}
	if !resized {
		m.bind()
	}
	return nil
}

// OnResize reallocates the target for a new screen size. No-op if the scaled size is unchanged.
func (m *Mirror) OnResize(width, height int) error {
	if !m.initialized {
		return nil
	}
	_, err := m.ensureTarget(width, height)
	return err
}

// OnSceneSave re-runs initialization with the current settings.
func (m *Mirror) OnSceneSave() error {
	if !m.initialized {
		return nil
	}
	return m.Initialize(m.settings)
}

// Shutdown releases the render target. Later frames are skipped.
func (m *Mirror) Shutdown() {
	if m.targets != nil {
		m.targets.Release()
	}
	m.initialized = false
	m.hasLast = false
}

// SetEnabled pauses or resumes per-frame updates.
func (m *Mirror) SetEnabled(enabled bool) {
	m.enabled = enabled
}

func (m *Mirror) Enabled() bool {
	return m.enabled
}

func (m *Mirror) Settings() config.Mirror {
	return m.settings
}

// Target returns the current render target or nil.
func (m *Mirror) Target() rendertarget.Target {
	if m.targets == nil {
		return nil
	}
	return m.targets.Target()
}

// VirtualCamera returns the camera rendered by the last successful frame.
func (m *Mirror) VirtualCamera() (reflection.VirtualCamera, bool) {
	return m.last, m.hasLast
}

func (m *Mirror) Stats() Stats {
	return m.stats
}

// LateUpdate runs after the main camera moved and before the final composite.
// A missing camera or target skips the frame without error. An unknown axis
// aborts the frame with reflection.ErrUnknownAxis.
func (m *Mirror) LateUpdate() error {
	defer profiling.Track("mirror.LateUpdate")()

	if !m.initialized || !m.enabled {
		m.stats.Skipped++
		return nil
	}

	w, h := m.host.Screen.Size()
	if _, err := m.ensureTarget(w, h); err != nil {
		return err
	}
	target := m.targets.Target()
	if target == nil {
		m.stats.Skipped++
		return nil
	}

	src, ok := m.host.Camera.MainCamera()
	if !ok {
		m.stats.Skipped++
		return nil
	}

	vc, err := reflection.Solve(src, m.host.Surface.SurfaceTransform(), m.settings.Solver())
	if err != nil {
		return fmt.Errorf("mirror %s: %w", m.name, err)
	}
	if !vc.Oblique && !m.warnedFlat {
		log.Printf("mirror %s: clip plane too close to the eye, rendering without oblique near plane", m.name)
		m.warnedFlat = true
	}
	m.last = vc
	m.hasLast = true

	if err := m.render(vc, target); err != nil {
		return fmt.Errorf("mirror %s: render: %w", m.name, err)
	}
	m.stats.Rendered++
	return nil
}

// render keeps culling inverted for exactly the virtual camera's pass.
func (m *Mirror) render(vc reflection.VirtualCamera, target rendertarget.Target) error {
	restore := m.host.Culling.Invert()
	defer restore()
	return m.host.Renderer.RenderCamera(vc, target)
}

func (m *Mirror) ensureTarget(width, height int) (bool, error) {
	resized, err := m.targets.Ensure(width, height)
	if err != nil {
		return false, fmt.Errorf("mirror %s: %w", m.name, err)
	}
	if resized {
		m.stats.Reallocations++
		m.bind()
	}
	return resized, nil
}

func (m *Mirror) bind() {
	target := m.targets.Target()
	if !m.bindable || target == nil {
		return
	}
	if err := m.host.Material.BindTexture(m.settings.TextureSlot, target); err != nil {
		log.Printf("mirror %s: bind %s: %v", m.name, m.settings.TextureSlot, err)
	}
}
