package reflection

import "github.com/go-gl/mathgl/mgl32"

// Plane is n·x + D = 0 with a unit normal N.
type Plane struct {
	N mgl32.Vec3
	D float32
}

// NewPlane builds the plane through point with the given unit normal.
func NewPlane(normal, point mgl32.Vec3) Plane {
	return Plane{N: normal, D: -normal.Dot(point)}
}

// Vec4 returns the plane coefficients (nx, ny, nz, d).
func (p Plane) Vec4() mgl32.Vec4 {
	return p.N.Vec4(p.D)
}

// SignedDistance is positive on the side the normal points to.
func (p Plane) SignedDistance(q mgl32.Vec3) float32 {
	return p.N.Dot(q) + p.D
}

// ReflectionMatrix returns the affine matrix mirroring points and vectors across p.
// It is its own inverse.
func ReflectionMatrix(p Plane) mgl32.Mat4 {
	n := p.N
	var m mgl32.Mat4
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v := -2 * n[i] * n[j]
			if i == j {
				v += 1
			}
			m.Set(i, j, v)
		}
		m.Set(i, 3, -2*p.D*n[i])
	}
	m.Set(3, 3, 1)
	return m
}

// Reflect mirrors the point q across p.
func (p Plane) Reflect(q mgl32.Vec3) mgl32.Vec3 {
	return q.Sub(p.N.Mul(2 * p.SignedDistance(q)))
}
