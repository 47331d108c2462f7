package graphics

import "github.com/go-gl/gl/v4.1-core/gl"

// Culling flips the front face winding for mirrored passes.
// Mirroring reverses triangle winding, so CCW front faces become CW.
type Culling struct{}

// Invert switches the front face and returns the function restoring the previous one.
// Callers defer the restore so it runs even if the pass fails.
func (Culling) Invert() func() {
	var prev int32
	gl.GetIntegerv(gl.FRONT_FACE, &prev)
	next := uint32(gl.CW)
	if uint32(prev) == gl.CW {
		next = gl.CCW
	}
	gl.FrontFace(next)
	return func() {
		gl.FrontFace(uint32(prev))
	}
}
