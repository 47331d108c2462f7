package wireframe

import (
	"path/filepath"

	"planar-mirror/internal/config"
	"planar-mirror/internal/graphics"
	renderer "planar-mirror/internal/graphics/renderer"
	"planar-mirror/internal/profiling"
	"planar-mirror/internal/reflection"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	ShadersDir = "assets/shaders/wireframe"

	// frustum lines are cut at this distance so a scaled far plane stays readable
	maxFrustumDepth = 20
)

var (
	WireframeVertShader = filepath.Join(ShadersDir, "wireframe.vert")
	WireframeFragShader = filepath.Join(ShadersDir, "wireframe.frag")
)

// CubeEdges are the 12 edges of a unit cube centred on the origin
var CubeEdges = []float32{
	// Front face
	-0.5, -0.5, 0.5, 0.5, -0.5, 0.5,
	0.5, -0.5, 0.5, 0.5, 0.5, 0.5,
	0.5, 0.5, 0.5, -0.5, 0.5, 0.5,
	-0.5, 0.5, 0.5, -0.5, -0.5, 0.5,

	// Back face
	-0.5, -0.5, -0.5, 0.5, -0.5, -0.5,
	0.5, -0.5, -0.5, 0.5, 0.5, -0.5,
	0.5, 0.5, -0.5, -0.5, 0.5, -0.5,
	-0.5, 0.5, -0.5, -0.5, -0.5, -0.5,

	// Connecting edges
	-0.5, -0.5, 0.5, -0.5, -0.5, -0.5,
	0.5, -0.5, 0.5, 0.5, -0.5, -0.5,
	0.5, 0.5, 0.5, 0.5, 0.5, -0.5,
	-0.5, 0.5, 0.5, -0.5, 0.5, -0.5,
}

// CameraSource returns the virtual camera of the last rendered frame
type CameraSource func() (reflection.VirtualCamera, bool)

// Wireframe outlines the hidden reflection camera: a box at its eye and its
// view frustum. Drawn on the main pass while show_hidden_camera is on.
type Wireframe struct {
	source CameraSource
	shader *graphics.Shader
	vao    uint32
	vbo    uint32
}

// NewWireframe creates a new wireframe renderable
func NewWireframe(source CameraSource) *Wireframe {
	return &Wireframe{source: source}
}

// Init initializes the wireframe rendering system
func (w *Wireframe) Init() error {
	var err error
	w.shader, err = graphics.NewShader(WireframeVertShader, WireframeFragShader)
	if err != nil {
		return err
	}
	w.setupWireframeVAO()
	return nil
}

// Render draws the marker when enabled and a virtual camera exists
func (w *Wireframe) Render(ctx renderer.RenderContext) {
	if ctx.Pass != renderer.PassMain || !config.GetShowHiddenCamera() {
		return
	}
	vc, ok := w.source()
	if !ok {
		return
	}
	defer profiling.Track("renderer.renderHiddenCamera")()

	w.shader.Use()
	w.shader.SetMat4("proj", ctx.Proj)
	w.shader.SetMat4("view", ctx.View)
	gl.BindVertexArray(w.vao)
	gl.LineWidth(1.0)

	w.shader.SetMat4("model", EyeBox(vc))
	w.shader.SetBool("unproject", false)
	w.shader.SetVec3("color", mgl32.Vec3{1, 0.8, 0})
	gl.DrawArrays(gl.LINES, 0, 24)

	if inv, ok := FrustumMatrix(vc); ok {
		w.shader.SetMat4("model", inv)
		w.shader.SetBool("unproject", true)
		w.shader.SetVec3("color", mgl32.Vec3{1, 0.4, 0})
		gl.DrawArrays(gl.LINES, 0, 24)
	}
	gl.BindVertexArray(0)
}

// EyeBox places a small cube at the virtual eye
func EyeBox(vc reflection.VirtualCamera) mgl32.Mat4 {
	p := vc.Position
	return mgl32.Translate3D(p[0], p[1], p[2]).Mul4(mgl32.Scale3D(0.3, 0.3, 0.3))
}

// FrustumMatrix maps the doubled unit cube (the NDC cube) back to world space.
// The shader divides by w after applying it. The far plane is pulled in to
// maxFrustumDepth first. ok is false for a singular view-projection.
func FrustumMatrix(vc reflection.VirtualCamera) (mgl32.Mat4, bool) {
	params := vc.CameraParams
	if params.Far > maxFrustumDepth {
		params.Far = maxFrustumDepth
	}
	if params.Near >= params.Far {
		return mgl32.Ident4(), false
	}
	vp := reflection.FlipX.Mul4(params.Projection()).Mul4(vc.View)
	if vp.Det() == 0 {
		return mgl32.Ident4(), false
	}
	return vp.Inv().Mul4(mgl32.Scale3D(2, 2, 2)), true
}

// Dispose cleans up OpenGL resources
func (w *Wireframe) Dispose() {
	if w.vao != 0 {
		gl.DeleteVertexArrays(1, &w.vao)
	}
	if w.vbo != 0 {
		gl.DeleteBuffers(1, &w.vbo)
	}
	if w.shader != nil {
		w.shader.Delete()
	}
}

func (w *Wireframe) SetViewport(width, height int) {}

func (w *Wireframe) setupWireframeVAO() {
	gl.GenVertexArrays(1, &w.vao)
	gl.BindVertexArray(w.vao)

	gl.GenBuffers(1, &w.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, w.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(CubeEdges)*4, gl.Ptr(CubeEdges), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
}
