package objects

import (
	"log"
	"path/filepath"

	"planar-mirror/internal/graphics"
	renderer "planar-mirror/internal/graphics/renderer"
	"planar-mirror/internal/profiling"
	"planar-mirror/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	ShadersDir = "assets/shaders/scene"

	// PillarTexture is looked up in the configured texture directory
	PillarTexture = "pillar.tga"
)

var (
	VertShader = filepath.Join(ShadersDir, "scene.vert")
	FragShader = filepath.Join(ShadersDir, "scene.frag")

	lightDir = mgl32.Vec3{-0.4, -1, -0.3}.Normalize()
)

// Objects draws every non-surface object of the scene allowed by the pass mask
type Objects struct {
	scene      *scene.Scene
	textureDir string

	shader  *graphics.Shader
	meshes  map[scene.MeshKind]*graphics.Mesh
	texture uint32
	// owned is set when the texture was generated here rather than cached
	owned bool
}

// NewObjects creates the scene object renderable
func NewObjects(s *scene.Scene, textureDir string) *Objects {
	return &Objects{scene: s, textureDir: textureDir}
}

// Init compiles the shader and uploads meshes and the pillar texture
func (o *Objects) Init() error {
	var err error
	o.shader, err = graphics.NewShader(VertShader, FragShader)
	if err != nil {
		return err
	}

	o.meshes = map[scene.MeshKind]*graphics.Mesh{
		scene.MeshCube: graphics.NewMesh(scene.MeshCube.Vertices()),
		scene.MeshQuad: graphics.NewMesh(scene.MeshQuad.Vertices()),
	}

	path := filepath.Join(o.textureDir, PillarTexture)
	o.texture, err = graphics.GetTexture(path)
	if err != nil {
		log.Printf("texture %s unavailable, using checkerboard: %v", path, err)
		o.texture = graphics.UploadTexture(graphics.Checkerboard(64, 8,
			[4]uint8{235, 235, 225, 255}, [4]uint8{150, 150, 140, 255}))
		o.owned = true
	}
	return nil
}

// Render draws the visible objects for this pass
func (o *Objects) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.renderObjects." + ctx.Pass.String())()

	o.shader.Use()
	o.shader.SetMat4("view", ctx.View)
	o.shader.SetMat4("proj", ctx.Proj)
	o.shader.SetVec3("lightDir", lightDir)
	o.shader.SetVec3("eye", ctx.Eye)
	o.shader.SetInt("albedo", 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, o.texture)

	for _, obj := range o.scene.Objects {
		if !obj.Visible(ctx.Mask) {
			continue
		}
		mesh, ok := o.meshes[obj.Mesh]
		if !ok {
			continue
		}
		o.shader.SetMat4("model", obj.Model())
		o.shader.SetVec4("color", obj.Color)
		o.shader.SetBool("textured", obj.Textured)
		mesh.Draw()
	}
	gl.BindVertexArray(0)
}

// Dispose cleans up OpenGL resources
func (o *Objects) Dispose() {
	for _, m := range o.meshes {
		m.Delete()
	}
	if o.owned && o.texture != 0 {
		gl.DeleteTextures(1, &o.texture)
	}
	if o.shader != nil {
		o.shader.Delete()
	}
}

func (o *Objects) SetViewport(width, height int) {}
