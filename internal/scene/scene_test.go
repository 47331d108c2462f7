package scene

import (
	"testing"

	"planar-mirror/internal/reflection"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vertexAt(data []float32, i int) (pos, normal mgl32.Vec3) {
	o := i * FloatsPerVertex
	return mgl32.Vec3{data[o], data[o+1], data[o+2]}, mgl32.Vec3{data[o+3], data[o+4], data[o+5]}
}

func TestMeshWindingIsCCW(t *testing.T) {
	for _, kind := range []MeshKind{MeshCube, MeshQuad} {
		data := kind.Vertices()
		require.Zero(t, len(data)%(3*FloatsPerVertex))
		for tri := 0; tri < len(data)/FloatsPerVertex; tri += 3 {
			a, n := vertexAt(data, tri)
			b, _ := vertexAt(data, tri+1)
			c, _ := vertexAt(data, tri+2)
			face := b.Sub(a).Cross(c.Sub(a))
			assert.Greaterf(t, face.Dot(n), float32(0), "mesh %d triangle %d", kind, tri/3)
		}
	}
}

func TestCubeIsUnit(t *testing.T) {
	data := MeshCube.Vertices()
	assert.Len(t, data, 36*FloatsPerVertex)
	for i := 0; i < 36; i++ {
		p, n := vertexAt(data, i)
		for k := 0; k < 3; k++ {
			assert.InDelta(t, 0.5, mgl32.Abs(p[k]), 1e-6)
		}
		// vertex lies on its face
		assert.InDelta(t, 0.5, p.Dot(n), 1e-6)
	}
}

func TestLayerVisibility(t *testing.T) {
	o := Object{Layer: LayerProps}
	assert.True(t, o.Visible(reflection.AllLayers))
	assert.True(t, o.Visible(LayerProps.Mask()))
	assert.False(t, o.Visible(LayerDefault.Mask()|LayerMirror.Mask()))
	assert.Equal(t, uint32(1<<4), LayerMirror.Mask())
}

func TestDemoVisibleHonoursMask(t *testing.T) {
	s := Demo()
	all := s.Visible(reflection.AllLayers)
	assert.Len(t, all, len(s.Objects)+1)

	noMirror := s.Visible(reflection.AllLayers &^ LayerMirror.Mask())
	assert.Len(t, noMirror, len(s.Objects))
	for _, o := range noMirror {
		assert.NotEqual(t, LayerMirror, o.Layer)
	}

	props := s.Visible(LayerProps.Mask())
	assert.Len(t, props, 3)
}

func TestSurfaceTransformFacesUp(t *testing.T) {
	s := Demo()
	tr := s.SurfaceTransform()
	n, err := reflection.AxisUp.Normal(tr)
	require.NoError(t, err)
	assert.True(t, n.ApproxEqualThreshold(mgl32.Vec3{0, -1, 0}, 1e-6))
}

func TestModelAndUpdate(t *testing.T) {
	o := Object{
		Position: mgl32.Vec3{1, 2, 3},
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{2, 2, 2},
	}
	p := mgl32.TransformCoordinate(mgl32.Vec3{0.5, 0, 0}, o.Model())
	assert.True(t, p.ApproxEqualThreshold(mgl32.Vec3{2, 2, 3}, 1e-6))

	s := &Scene{Objects: []Object{{Rotation: mgl32.QuatIdent(), Spin: 1}, {Rotation: mgl32.QuatIdent()}}}
	s.Update(0.5)
	assert.NotEqual(t, mgl32.QuatIdent(), s.Objects[0].Rotation)
	assert.Equal(t, mgl32.QuatIdent(), s.Objects[1].Rotation)
}
