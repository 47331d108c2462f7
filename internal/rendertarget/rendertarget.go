// Package rendertarget keeps an off-screen buffer sized to a fraction of the screen.
package rendertarget

import (
	"fmt"
	"math"
)

const (
	MinScale = 0.01
	MaxScale = 1.0

	defaultDepthBits = 16
)

// Filter is the sampling filter of the target's colour texture.
type Filter int

const (
	FilterBilinear Filter = iota
	FilterNearest
)

// Wrap is the addressing mode outside [0,1].
type Wrap int

const (
	WrapRepeat Wrap = iota
	WrapClamp
)

// Spec describes the buffer an Allocator must create.
type Spec struct {
	Name      string
	Width     int
	Height    int
	DepthBits int
	Filter    Filter
	Wrap      Wrap
	Mipmaps   bool
}

// Target is a host-owned colour+depth buffer.
type Target interface {
	Width() int
	Height() int
	Release()
}

// Allocator creates targets on the host (GPU) side.
type Allocator interface {
	Allocate(spec Spec) (Target, error)
}

// ScaledSize returns max(1, floor(dim*scale)) for both axes.
func ScaledSize(width, height int, scale float32) (int, int) {
	return scaledDim(width, scale), scaledDim(height, scale)
}

func scaledDim(dim int, scale float32) int {
	v := int(math.Floor(float64(float32(dim) * scale)))
	if v < 1 {
		return 1
	}
	return v
}

// ClampScale limits scale to [MinScale, MaxScale].
func ClampScale(scale float32) float32 {
	if scale < MinScale {
		return MinScale
	}
	if scale > MaxScale {
		return MaxScale
	}
	return scale
}

// Manager owns one Target and reallocates it when the scaled screen size changes.
// Not safe for concurrent use; it runs on the render thread.
type Manager struct {
	alloc  Allocator
	name   string
	scale  float32
	target Target

	allocations int
}

// NewManager returns a Manager without a target. The first Ensure allocates it.
func NewManager(alloc Allocator, name string, scale float32) *Manager {
	return &Manager{
		alloc: alloc,
		name:  name,
		scale: ClampScale(scale),
	}
}

// Target returns the current buffer or nil.
func (m *Manager) Target() Target {
	return m.target
}

func (m *Manager) Scale() float32 {
	return m.scale
}

// SetScale changes the resolution scale. The next Ensure applies it.
func (m *Manager) SetScale(scale float32) {
	m.scale = ClampScale(scale)
}

// Allocations counts successful allocations over the manager's lifetime.
func (m *Manager) Allocations() int {
	return m.allocations
}

// NeedsResize reports whether Ensure would allocate for the given screen size.
func (m *Manager) NeedsResize(screenWidth, screenHeight int) bool {
	if m.target == nil {
		return true
	}
	w, h := ScaledSize(screenWidth, screenHeight, m.scale)
	return m.target.Width() != w || m.target.Height() != h
}

// Ensure makes the target match the screen size times scale.
// It returns true when a new target was allocated. The old target is released
// before the new one is created. Calling it again with the same size is a no-op.
func (m *Manager) Ensure(screenWidth, screenHeight int) (bool, error) {
	if !m.NeedsResize(screenWidth, screenHeight) {
		return false, nil
	}
	w, h := ScaledSize(screenWidth, screenHeight, m.scale)

	m.Release()

	t, err := m.alloc.Allocate(Spec{
		Name:      m.name,
		Width:     w,
		Height:    h,
		DepthBits: defaultDepthBits,
		Filter:    FilterBilinear,
		Wrap:      WrapRepeat,
	})
	if err != nil {
		return false, fmt.Errorf("rendertarget: allocate %dx%d: %w", w, h, err)
	}
	m.target = t
	m.allocations++
	return true, nil
}

// Release frees the current target. Safe to call repeatedly.
func (m *Manager) Release() {
	if m.target != nil {
		m.target.Release()
		m.target = nil
	}
}
