package renderer

import (
	"testing"

	"planar-mirror/internal/reflection"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/stretchr/testify/assert"
)

func TestClearBuffers(t *testing.T) {
	both := uint32(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	assert.Equal(t, both, clearBuffers(reflection.ClearSolidColor))
	assert.Equal(t, both, clearBuffers(reflection.ClearSkybox))
	assert.Equal(t, uint32(gl.DEPTH_BUFFER_BIT), clearBuffers(reflection.ClearDepthOnly))
	assert.Zero(t, clearBuffers(reflection.ClearNothing))
}

func TestRenderCameraRejectsForeignTarget(t *testing.T) {
	r := &Renderer{}
	err := r.RenderCamera(reflection.VirtualCamera{}, fakeTarget{})
	assert.ErrorContains(t, err, "unsupported render target")
}

func TestPassString(t *testing.T) {
	assert.Equal(t, "main", PassMain.String())
	assert.Equal(t, "reflection", PassReflection.String())
}

type fakeTarget struct{}

func (fakeTarget) Width() int { return 1 }
func (fakeTarget) Height() int { return 1 }
func (fakeTarget) Release() {}
