package graphics

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/HugoSmits86/nativewebp"
	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/draw"
)

// ReadFramebuffer reads the colour attachment of f into an image with the top row first
func ReadFramebuffer(f *Framebuffer) *image.NRGBA {
	w, h := f.Width(), f.Height()
	pix := make([]byte, w*h*4)

	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, f.FBO)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)

	return FlipRows(pix, w, h)
}

// FlipRows builds an image from bottom-up GL pixel rows
func FlipRows(pix []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	stride := w * 4
	for y := 0; y < h; y++ {
		src := pix[(h-1-y)*stride : (h-y)*stride]
		copy(img.Pix[y*img.Stride:y*img.Stride+stride], src)
	}
	return img
}

// Upscale resizes img to w x h with bilinear filtering, matching how the
// reflection texture is sampled on screen. Returns img when the size already matches.
func Upscale(img *image.NRGBA, w, h int) *image.NRGBA {
	if img.Rect.Dx() == w && img.Rect.Dy() == h {
		return img
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.BiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// WriteWebP encodes img losslessly to path, creating parent directories
func WriteWebP(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := nativewebp.Encode(f, img, nil); err != nil {
		f.Close()
		return fmt.Errorf("webp encode %s: %w", path, err)
	}
	return f.Close()
}

// Capturer writes numbered reflection snapshots into a directory
type Capturer struct {
	Dir  string
	next int
}

// NextPath returns the file name of the next capture
func (c *Capturer) NextPath() string {
	c.next++
	return filepath.Join(c.Dir, fmt.Sprintf("reflection-%03d.webp", c.next))
}

// Capture saves f scaled to the screen size and returns the written path
func (c *Capturer) Capture(f *Framebuffer, screenWidth, screenHeight int) (string, error) {
	img := Upscale(ReadFramebuffer(f), screenWidth, screenHeight)
	path := c.NextPath()
	if err := WriteWebP(path, img); err != nil {
		return "", err
	}
	return path, nil
}
