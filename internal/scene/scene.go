// Package scene holds the demo world that the mirror reflects: a reflecting
// floor, a ring of pillars and a few floating props, each on a culling layer.
package scene

import (
	"math"

	"planar-mirror/internal/reflection"

	"github.com/go-gl/mathgl/mgl32"
)

// Layer is a culling layer index in [0,31]
type Layer uint8

const (
	LayerDefault Layer = 0
	LayerProps   Layer = 1
	LayerMirror  Layer = 4
	LayerDebug   Layer = 5
)

// Mask returns the culling mask bit for l
func (l Layer) Mask() uint32 {
	return 1 << (l & 31)
}

// Object is a drawable instance
type Object struct {
	Name     string
	Layer    Layer
	Mesh     MeshKind
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
	Color    mgl32.Vec4
	Textured bool
	Spin     float32 // radians per second around Y
}

// Model returns translate * rotate * scale
func (o Object) Model() mgl32.Mat4 {
	return mgl32.Translate3D(o.Position[0], o.Position[1], o.Position[2]).
		Mul4(o.Rotation.Mat4()).
		Mul4(mgl32.Scale3D(o.Scale[0], o.Scale[1], o.Scale[2]))
}

// Visible reports whether the object's layer is in mask
func (o Object) Visible(mask uint32) bool {
	return mask&o.Layer.Mask() != 0
}

// Scene is a flat list of objects plus the reflecting surface
type Scene struct {
	Objects []Object
	Surface Object
}

// Demo builds the manual test scene
func Demo() *Scene {
	s := &Scene{
		Surface: Object{
			Name:     "floor",
			Layer:    LayerMirror,
			Mesh:     MeshQuad,
			Rotation: mgl32.QuatIdent(),
			Scale:    mgl32.Vec3{16, 1, 16},
			Color:    mgl32.Vec4{0.8, 0.85, 0.9, 1},
		},
	}

	const pillars = 8
	for i := 0; i < pillars; i++ {
		a := float64(i) / pillars * 2 * math.Pi
		s.Objects = append(s.Objects, Object{
			Name:     "pillar",
			Layer:    LayerDefault,
			Mesh:     MeshCube,
			Position: mgl32.Vec3{float32(math.Cos(a)) * 6, 1.5, float32(math.Sin(a)) * 6},
			Rotation: mgl32.QuatIdent(),
			Scale:    mgl32.Vec3{0.6, 3, 0.6},
			Color:    mgl32.Vec4{0.9, 0.9, 0.85, 1},
			Textured: true,
		})
	}

	colors := []mgl32.Vec4{
		{0.9, 0.3, 0.2, 1},
		{0.2, 0.7, 0.3, 1},
		{0.2, 0.4, 0.9, 1},
	}
	for i, c := range colors {
		s.Objects = append(s.Objects, Object{
			Name:     "prop",
			Layer:    LayerProps,
			Mesh:     MeshCube,
			Position: mgl32.Vec3{float32(i-1) * 2.5, 1.2 + float32(i)*0.4, -1},
			Rotation: mgl32.QuatRotate(float32(i)*0.6, mgl32.Vec3{0, 1, 0}),
			Scale:    mgl32.Vec3{1, 1, 1},
			Color:    c,
			Spin:     0.5 + float32(i)*0.25,
		})
	}
	return s
}

// Update advances spinning objects by dt seconds
func (s *Scene) Update(dt float64) {
	for i := range s.Objects {
		o := &s.Objects[i]
		if o.Spin == 0 {
			continue
		}
		step := mgl32.QuatRotate(o.Spin*float32(dt), mgl32.Vec3{0, 1, 0})
		o.Rotation = step.Mul(o.Rotation).Normalize()
	}
}

// Visible returns the objects whose layer is in mask, the surface included
func (s *Scene) Visible(mask uint32) []Object {
	out := make([]Object, 0, len(s.Objects)+1)
	for _, o := range s.Objects {
		if o.Visible(mask) {
			out = append(out, o)
		}
	}
	if s.Surface.Visible(mask) {
		out = append(out, s.Surface)
	}
	return out
}

// SurfaceTransform implements mirror.SurfaceSource
func (s *Scene) SurfaceTransform() reflection.Transform {
	return reflection.Transform{Position: s.Surface.Position, Rotation: s.Surface.Rotation}
}
