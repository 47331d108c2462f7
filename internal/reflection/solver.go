// Package reflection derives a mirrored camera from a source camera and a
// reflecting plane: the reflected view matrix, a projection whose near plane
// lies on the mirror, and the copied camera parameters.
package reflection

import "github.com/go-gl/mathgl/mgl32"

// Settings are the per-mirror parameters of the solve.
type Settings struct {
	Axis           Axis
	ReflectionMask uint32
	// ClipPlaneOffset moves the clip plane along the normal to hide seams at the surface.
	ClipPlaneOffset float32
	// FarScale multiplies the source far clip distance.
	FarScale float32
}

// DefaultSettings mirrors across the surface's up axis with all layers.
func DefaultSettings() Settings {
	return Settings{
		Axis:           AxisUp,
		ReflectionMask: AllLayers,
		FarScale:       1,
	}
}

// Solve computes the virtual camera for src mirrored across the surface.
// The only error is ErrUnknownAxis.
func Solve(src CameraParams, surface Transform, s Settings) (VirtualCamera, error) {
	normal, err := s.Axis.Normal(surface)
	if err != nil {
		return VirtualCamera{}, err
	}
	return SolvePlane(src, normal, surface.Position, s), nil
}

// SolvePlane is Solve for an explicit plane normal and point.
func SolvePlane(src CameraParams, normal, point mgl32.Vec3, s Settings) VirtualCamera {
	out := VirtualCamera{CameraParams: src}
	out.CullingMask = src.CullingMask & s.ReflectionMask
	out.Far = src.Far * s.FarScale

	plane := NewPlane(normal, point)
	reflection := ReflectionMatrix(plane)

	out.Plane = plane
	out.Position = mgl32.TransformCoordinate(src.Position, reflection)
	out.View = FlipX.Mul4(src.View).Mul4(reflection)

	clip := CameraSpacePlane(out.View, point, normal, s.ClipPlaneOffset)
	proj, ok := ObliqueNearClip(out.CameraParams.Projection(), clip)
	out.Proj = FlipX.Mul4(proj)
	out.Oblique = ok
	return out
}
