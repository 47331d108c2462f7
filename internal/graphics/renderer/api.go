package renderer

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Pass tells renderables which camera is drawing
type Pass int

const (
	PassMain Pass = iota
	PassReflection
)

func (p Pass) String() string {
	if p == PassReflection {
		return "reflection"
	}
	return "main"
}

// RenderContext provides shared context for all renderables
type RenderContext struct {
	Pass Pass
	DT   float64
	View mgl32.Mat4
	Proj mgl32.Mat4
	Eye  mgl32.Vec3
	// Mask is the culling mask of the camera drawing this pass
	Mask uint32

	// size of the surface being drawn to, in pixels
	Width       int
	Height      int
	AspectRatio float32

	// ScreenWidth/ScreenHeight are the window framebuffer size
	ScreenWidth  int
	ScreenHeight int
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}
