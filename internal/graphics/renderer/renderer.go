package renderer

import (
	"fmt"

	"planar-mirror/internal/graphics"
	"planar-mirror/internal/profiling"
	"planar-mirror/internal/reflection"
	"planar-mirror/internal/rendertarget"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Renderer orchestrates rendering via renderable features. It draws the main
// camera to the window and any virtual camera into an off-screen target.
type Renderer struct {
	renderables []Renderable
	camera      *graphics.Camera

	width  int
	height int
	dt     float64
}

// NewRenderer creates a new renderer with the given renderables
func NewRenderer(width, height int, rs ...Renderable) (*Renderer, error) {
	// Configure OpenGL
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)

	renderer := &Renderer{
		renderables: rs,
		camera:      graphics.NewCamera(width, height),
		width:       width,
		height:      height,
	}

	// Initialize all renderables
	for _, r := range rs {
		if err := r.Init(); err != nil {
			return nil, err
		}
		r.SetViewport(width, height)
	}

	return renderer, nil
}

// BeginFrame records the frame delta passed to every pass of this frame
func (r *Renderer) BeginFrame(dt float64) {
	r.dt = dt
}

// Render draws the main camera into the default framebuffer
func (r *Renderer) Render(view mgl32.Mat4, eye mgl32.Vec3) {
	defer profiling.Track("renderer.Render")()

	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(0, 0, int32(r.width), int32(r.height))
	clearTarget(reflection.ClearSolidColor, r.camera.Background)

	r.draw(RenderContext{
		Pass:         PassMain,
		DT:           r.dt,
		View:         view,
		Proj:         r.camera.GetProjectionMatrix(),
		Eye:          eye,
		Mask:         r.camera.CullingMask,
		Width:        r.width,
		Height:       r.height,
		AspectRatio:  r.camera.AspectRatio,
		ScreenWidth:  r.width,
		ScreenHeight: r.height,
	})
}

// RenderCamera implements mirror.Renderer. target must be a *graphics.Framebuffer.
func (r *Renderer) RenderCamera(cam reflection.VirtualCamera, target rendertarget.Target) error {
	defer profiling.Track("renderer.RenderCamera")()

	fb, ok := target.(*graphics.Framebuffer)
	if !ok {
		return fmt.Errorf("unsupported render target %T", target)
	}
	fb.Bind()
	defer func() {
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
		gl.Viewport(0, 0, int32(r.width), int32(r.height))
	}()

	clearTarget(cam.ClearFlags, cam.Background)

	r.draw(RenderContext{
		Pass:         PassReflection,
		DT:           r.dt,
		View:         cam.View,
		Proj:         cam.Proj,
		Eye:          cam.Position,
		Mask:         cam.CullingMask,
		Width:        fb.Width(),
		Height:       fb.Height(),
		AspectRatio:  cam.Aspect,
		ScreenWidth:  r.width,
		ScreenHeight: r.height,
	})
	return nil
}

func (r *Renderer) draw(ctx RenderContext) {
	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	// Dispose in reverse order
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
}

// GetCamera returns the camera instance
func (r *Renderer) GetCamera() *graphics.Camera {
	return r.camera
}

// UpdateViewport updates the camera and every renderable for a new window size
func (r *Renderer) UpdateViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.width, r.height = width, height
	r.camera.SetViewport(width, height)
	for _, renderable := range r.renderables {
		renderable.SetViewport(width, height)
	}
}

// clearBuffers maps clear flags to the GL buffers they reset. Skybox has no
// sky pass here and falls back to the background colour.
func clearBuffers(flags reflection.ClearFlags) uint32 {
	switch flags {
	case reflection.ClearSkybox, reflection.ClearSolidColor:
		return gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT
	case reflection.ClearDepthOnly:
		return gl.DEPTH_BUFFER_BIT
	default:
		return 0
	}
}

func clearTarget(flags reflection.ClearFlags, background mgl32.Vec4) {
	mask := clearBuffers(flags)
	if mask == 0 {
		return
	}
	if mask&gl.COLOR_BUFFER_BIT != 0 {
		gl.ClearColor(background[0], background[1], background[2], background[3])
	}
	gl.Clear(mask)
}
