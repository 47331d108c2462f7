package reflection

import "github.com/go-gl/mathgl/mgl32"

// ClearFlags controls what a camera clears before drawing.
type ClearFlags int

const (
	ClearSkybox ClearFlags = iota
	ClearSolidColor
	ClearDepthOnly
	ClearNothing
)

// AllLayers is a culling mask with every layer enabled.
const AllLayers uint32 = 0xFFFFFFFF

// CameraParams describes a camera for one frame.
type CameraParams struct {
	View     mgl32.Mat4 // world to camera
	Position mgl32.Vec3

	FOV              float32 // vertical, degrees
	Aspect           float32
	Near             float32
	Far              float32
	Orthographic     bool
	OrthographicSize float32 // half height of the view volume

	CullingMask uint32
	ClearFlags  ClearFlags
	Background  mgl32.Vec4

	HDR               bool
	MSAA              bool
	DynamicResolution bool
}

// Projection builds the OpenGL style projection matrix for the camera.
func (c CameraParams) Projection() mgl32.Mat4 {
	if c.Orthographic {
		h := c.OrthographicSize
		w := h * c.Aspect
		return mgl32.Ortho(-w, w, -h, h, c.Near, c.Far)
	}
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.Aspect, c.Near, c.Far)
}

// VirtualCamera is the mirrored camera produced by Solve.
type VirtualCamera struct {
	CameraParams

	Proj mgl32.Mat4

	// Oblique is false when the near plane could not be aligned to the mirror
	// and Proj is the plain projection.
	Oblique bool

	// Plane is the reflection plane in world space.
	Plane Plane
}

// ViewProj returns Proj·View.
func (v VirtualCamera) ViewProj() mgl32.Mat4 {
	return v.Proj.Mul4(v.View)
}
