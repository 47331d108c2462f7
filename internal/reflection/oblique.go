package reflection

import (
	"github.com/go-gl/mathgl/mgl32"
)

// obliqueEpsilon bounds the denominator of the near plane rescale.
const obliqueEpsilon = 1e-6

// FlipX is diag(-1, 1, 1, 1). Mirroring swaps handedness and this puts it back.
var FlipX = mgl32.Scale3D(-1, 1, 1)

// CameraSpacePlane returns the clip plane, in the space of view, through
// point+normal*offset. The normal is negated so that with the reversed
// Up/Down axes the kept half space is the one in front of the mirror.
func CameraSpacePlane(view mgl32.Mat4, point, normal mgl32.Vec3, offset float32) mgl32.Vec4 {
	offsetPos := point.Add(normal.Mul(offset))
	cpos := mgl32.TransformCoordinate(offsetPos, view)
	cnormal := view.Mul4x1(normal.Vec4(0)).Vec3().Normalize().Mul(-1)
	return cnormal.Vec4(-cpos.Dot(cnormal))
}

// ObliqueNearClip replaces the near plane of proj with the camera space plane clip
// (Lengyel, "Oblique View Frustum Depth Projection and Clipping").
// Points on clip land on NDC z = -1. The far plane and field of view are kept.
// When the plane is degenerate for this projection, proj is returned unchanged
// together with false.
func ObliqueNearClip(proj mgl32.Mat4, clip mgl32.Vec4) (mgl32.Mat4, bool) {
	if proj.Det() == 0 {
		return proj, false
	}
	q := proj.Inv().Mul4x1(mgl32.Vec4{sign(clip.X()), sign(clip.Y()), 1, 1})
	dot := clip.Dot(q)
	if mgl32.Abs(dot) < obliqueEpsilon {
		return proj, false
	}
	c := clip.Mul(2 / dot)
	proj.SetRow(2, c.Sub(proj.Row(3)))
	return proj, true
}

func sign(f float32) float32 {
	if f < 0 {
		return -1
	}
	return 1
}
