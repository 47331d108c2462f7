package graphics

import (
	"planar-mirror/internal/reflection"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera holds the projection settings of the main view
type Camera struct {
	AspectRatio float32
	FOV         float32
	NearPlane   float32
	FarPlane    float32

	CullingMask uint32
	Background  mgl32.Vec4
}

func NewCamera(width, height int) *Camera {
	c := &Camera{
		FOV:         60.0,
		NearPlane:   0.1,
		FarPlane:    1000.0,
		CullingMask: reflection.AllLayers,
		Background:  mgl32.Vec4{0.53, 0.81, 0.92, 1.0},
	}
	c.SetViewport(width, height)
	return c
}

// SetViewport updates the aspect ratio, ignoring a minimized window
func (c *Camera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.AspectRatio = float32(width) / float32(height)
}

func (c *Camera) GetProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}

// Params describes the camera for a view matrix and eye position
func (c *Camera) Params(view mgl32.Mat4, eye mgl32.Vec3) reflection.CameraParams {
	return reflection.CameraParams{
		View:        view,
		Position:    eye,
		FOV:         c.FOV,
		Aspect:      c.AspectRatio,
		Near:        c.NearPlane,
		Far:         c.FarPlane,
		CullingMask: c.CullingMask,
		ClearFlags:  reflection.ClearSolidColor,
		Background:  c.Background,
		MSAA:        true,
	}
}
