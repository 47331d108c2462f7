package mirror

import (
	"planar-mirror/internal/reflection"
	"planar-mirror/internal/rendertarget"
)

// Screen reports the current display size in pixels.
type Screen interface {
	Size() (width, height int)
}

// CameraSource exposes the main camera. ok is false while no camera exists.
type CameraSource interface {
	MainCamera() (cam reflection.CameraParams, ok bool)
}

// SurfaceSource exposes the world transform of the reflecting surface.
type SurfaceSource interface {
	SurfaceTransform() reflection.Transform
}

// Renderer draws the scene from cam into target.
type Renderer interface {
	RenderCamera(cam reflection.VirtualCamera, target rendertarget.Target) error
}

// CullingScope flips front face winding until restore is called.
type CullingScope interface {
	Invert() (restore func())
}

// Material is the surface material that displays the reflection.
type Material interface {
	HasTextureSlot(name string) bool
	BindTexture(name string, target rendertarget.Target) error
}

// Host bundles everything the mirror consumes from the engine.
type Host struct {
	Screen    Screen
	Camera    CameraSource
	Surface   SurfaceSource
	Renderer  Renderer
	Culling   CullingScope
	Material  Material
	Allocator rendertarget.Allocator
}
