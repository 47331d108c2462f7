package graphics

import (
	"fmt"

	"planar-mirror/internal/rendertarget"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Material is a shader plus its sampler slots.
// The slot set is fixed when the material is created: a slot exists only if the
// program has an active sampler uniform of that name.
type Material struct {
	Shader *Shader

	slots    map[string]int32 // slot name -> texture unit
	textures map[string]uint32
}

// NewMaterial probes the shader once for each declared texture slot.
func NewMaterial(shader *Shader, slots ...string) *Material {
	m := &Material{
		Shader:   shader,
		slots:    make(map[string]int32),
		textures: make(map[string]uint32),
	}
	var unit int32
	for _, name := range slots {
		if !shader.HasUniform(name) {
			continue
		}
		m.slots[name] = unit
		unit++
	}
	return m
}

// HasTextureSlot implements mirror.Material
func (m *Material) HasTextureSlot(name string) bool {
	_, ok := m.slots[name]
	return ok
}

// BindTexture implements mirror.Material. The target must be a *Framebuffer.
func (m *Material) BindTexture(name string, target rendertarget.Target) error {
	if !m.HasTextureSlot(name) {
		return fmt.Errorf("material has no texture slot %s", name)
	}
	fb, ok := target.(*Framebuffer)
	if !ok {
		return fmt.Errorf("texture slot %s: unsupported target %T", name, target)
	}
	m.textures[name] = fb.Texture
	return nil
}

// SetTexture assigns a plain GL texture to a slot
func (m *Material) SetTexture(name string, texture uint32) error {
	if !m.HasTextureSlot(name) {
		return fmt.Errorf("material has no texture slot %s", name)
	}
	m.textures[name] = texture
	return nil
}

// Texture returns the GL texture currently assigned to name
func (m *Material) Texture(name string) (uint32, bool) {
	tex, ok := m.textures[name]
	return tex, ok && tex != 0
}

// Use activates the program and binds every assigned texture to its unit
func (m *Material) Use() {
	m.Shader.Use()
	for name, unit := range m.slots {
		tex := m.textures[name]
		gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
		gl.BindTexture(gl.TEXTURE_2D, tex)
		m.Shader.SetInt(name, unit)
	}
	gl.ActiveTexture(gl.TEXTURE0)
}
