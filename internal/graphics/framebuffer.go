package graphics

import (
	"fmt"
	"log"

	"planar-mirror/internal/rendertarget"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Framebuffer is an off-screen colour texture plus depth renderbuffer
type Framebuffer struct {
	Name    string
	FBO     uint32
	Texture uint32
	Depth   uint32

	width  int
	height int
}

func (f *Framebuffer) Width() int { return f.width }
func (f *Framebuffer) Height() int { return f.height }

// Bind makes the framebuffer the draw target and sets the viewport to cover it
func (f *Framebuffer) Bind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, f.FBO)
	gl.Viewport(0, 0, int32(f.width), int32(f.height))
}

// Release deletes the GL objects. Safe to call twice.
func (f *Framebuffer) Release() {
	if f.FBO != 0 {
		gl.DeleteFramebuffers(1, &f.FBO)
		f.FBO = 0
	}
	if f.Texture != 0 {
		gl.DeleteTextures(1, &f.Texture)
		f.Texture = 0
	}
	if f.Depth != 0 {
		gl.DeleteRenderbuffers(1, &f.Depth)
		f.Depth = 0
	}
}

// FramebufferAllocator creates Framebuffers for rendertarget.Manager
type FramebufferAllocator struct{}

// Allocate implements rendertarget.Allocator
func (FramebufferAllocator) Allocate(spec rendertarget.Spec) (rendertarget.Target, error) {
	f := &Framebuffer{Name: spec.Name, width: spec.Width, height: spec.Height}

	gl.GenTextures(1, &f.Texture)
	gl.BindTexture(gl.TEXTURE_2D, f.Texture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(spec.Width), int32(spec.Height), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)

	filter := int32(gl.LINEAR)
	if spec.Filter == rendertarget.FilterNearest {
		filter = gl.NEAREST
	}
	minFilter := filter
	if spec.Mipmaps {
		minFilter = gl.LINEAR_MIPMAP_LINEAR
	}
	wrap := int32(gl.REPEAT)
	if spec.Wrap == rendertarget.WrapClamp {
		wrap = gl.CLAMP_TO_EDGE
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, minFilter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrap)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.GenRenderbuffers(1, &f.Depth)
	gl.BindRenderbuffer(gl.RENDERBUFFER, f.Depth)
	gl.RenderbufferStorage(gl.RENDERBUFFER, depthFormat(spec.DepthBits), int32(spec.Width), int32(spec.Height))
	gl.BindRenderbuffer(gl.RENDERBUFFER, 0)

	gl.GenFramebuffers(1, &f.FBO)
	gl.BindFramebuffer(gl.FRAMEBUFFER, f.FBO)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, f.Texture, 0)
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, f.Depth)
	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)

	if status != gl.FRAMEBUFFER_COMPLETE {
		f.Release()
		return nil, fmt.Errorf("framebuffer %s incomplete: 0x%x", spec.Name, status)
	}
	log.Printf("render target %s allocated %dx%d", spec.Name, spec.Width, spec.Height)
	return f, nil
}

func depthFormat(bits int) uint32 {
	switch {
	case bits <= 16:
		return gl.DEPTH_COMPONENT16
	case bits <= 24:
		return gl.DEPTH_COMPONENT24
	default:
		return gl.DEPTH_COMPONENT32F
	}
}
