// Package surface draws the reflecting floor, sampling the reflection texture
// in screen space so the off-screen image lines up with the main view.
package surface

import (
	"path/filepath"

	"planar-mirror/internal/graphics"
	renderer "planar-mirror/internal/graphics/renderer"
	"planar-mirror/internal/profiling"
	"planar-mirror/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	ShadersDir = "assets/shaders/mirror"
)

var (
	VertShader = filepath.Join(ShadersDir, "mirror.vert")
	FragShader = filepath.Join(ShadersDir, "mirror.frag")
)

// Surface renders the mirror object with its material
type Surface struct {
	scene       *scene.Scene
	textureSlot string

	material *graphics.Material
	mesh     *graphics.Mesh
	screen   mgl32.Vec2
}

// NewSurface creates the renderable. textureSlot is the sampler that receives the reflection.
func NewSurface(s *scene.Scene, textureSlot string) *Surface {
	return &Surface{scene: s, textureSlot: textureSlot}
}

// Init compiles the mirror shader and creates its material
func (s *Surface) Init() error {
	shader, err := graphics.NewShader(VertShader, FragShader)
	if err != nil {
		return err
	}
	s.material = graphics.NewMaterial(shader, s.textureSlot)
	s.mesh = graphics.NewMesh(s.scene.Surface.Mesh.Vertices())
	return nil
}

// Material is handed to the mirror so it can bind the reflection texture
func (s *Surface) Material() *graphics.Material {
	return s.material
}

// Render draws the surface on the main pass. The reflection pass never sees
// it since the surface would sample the texture being written.
func (s *Surface) Render(ctx renderer.RenderContext) {
	if ctx.Pass != renderer.PassMain || !s.scene.Surface.Visible(ctx.Mask) {
		return
	}
	defer profiling.Track("renderer.renderSurface")()

	_, bound := s.material.Texture(s.textureSlot)

	s.material.Use()
	sh := s.material.Shader
	sh.SetMat4("model", s.scene.Surface.Model())
	sh.SetMat4("view", ctx.View)
	sh.SetMat4("proj", ctx.Proj)
	sh.SetVec4("tint", s.scene.Surface.Color)
	sh.SetVec2("screenSize", s.screen)
	sh.SetBool("hasReflection", bound)

	s.mesh.Draw()
	gl.BindVertexArray(0)
}

// Dispose cleans up OpenGL resources
func (s *Surface) Dispose() {
	if s.mesh != nil {
		s.mesh.Delete()
	}
	if s.material != nil {
		s.material.Shader.Delete()
	}
}

// SetViewport records the window size used to turn fragment coordinates into UVs
func (s *Surface) SetViewport(width, height int) {
	s.screen = mgl32.Vec2{float32(width), float32(height)}
}
