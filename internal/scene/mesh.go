package scene

// MeshKind selects one of the built-in meshes
type MeshKind int

const (
	MeshCube MeshKind = iota
	MeshQuad
)

// FloatsPerVertex is position(3) + normal(3) + uv(2)
const FloatsPerVertex = 8

// Vertices returns the interleaved triangle list for k. Front faces are CCW.
func (k MeshKind) Vertices() []float32 {
	switch k {
	case MeshQuad:
		return quadVertices
	default:
		return cubeVertices
	}
}

// unit quad in the XZ plane facing +Y
var quadVertices = []float32{
	-0.5, 0, -0.5, 0, 1, 0, 0, 0,
	-0.5, 0, 0.5, 0, 1, 0, 0, 1,
	0.5, 0, 0.5, 0, 1, 0, 1, 1,

	-0.5, 0, -0.5, 0, 1, 0, 0, 0,
	0.5, 0, 0.5, 0, 1, 0, 1, 1,
	0.5, 0, -0.5, 0, 1, 0, 1, 0,
}

var cubeVertices = buildCube()

func buildCube() []float32 {
	type face struct {
		n, u, v [3]float32
	}
	// u x v == n keeps every face CCW from outside
	faces := []face{
		{n: [3]float32{0, 0, 1}, u: [3]float32{1, 0, 0}, v: [3]float32{0, 1, 0}},
		{n: [3]float32{0, 0, -1}, u: [3]float32{-1, 0, 0}, v: [3]float32{0, 1, 0}},
		{n: [3]float32{1, 0, 0}, u: [3]float32{0, 0, -1}, v: [3]float32{0, 1, 0}},
		{n: [3]float32{-1, 0, 0}, u: [3]float32{0, 0, 1}, v: [3]float32{0, 1, 0}},
		{n: [3]float32{0, 1, 0}, u: [3]float32{1, 0, 0}, v: [3]float32{0, 0, -1}},
		{n: [3]float32{0, -1, 0}, u: [3]float32{1, 0, 0}, v: [3]float32{0, 0, 1}},
	}
	corners := [6][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, -1}, {1, 1}, {-1, 1}}

	out := make([]float32, 0, 36*FloatsPerVertex)
	for _, f := range faces {
		for _, c := range corners {
			for i := 0; i < 3; i++ {
				out = append(out, 0.5*(f.n[i]+c[0]*f.u[i]+c[1]*f.v[i]))
			}
			out = append(out, f.n[0], f.n[1], f.n[2])
			out = append(out, (c[0]+1)/2, (c[1]+1)/2)
		}
	}
	return out
}
