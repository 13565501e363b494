package renderer

import (
	"image"

	"github.com/df07/go-box-raycaster/pkg/core"
)

// Framebuffer holds one color per pixel. Workers write disjoint pixels, so it needs no locking.
type Framebuffer struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major: Pixels[y*Width + x]
}

// NewFramebuffer creates a black framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// Set stores the color of pixel (x, y)
func (fb *Framebuffer) Set(x, y int, color core.Vec3) {
	fb.Pixels[y*fb.Width+x] = color
}

// At returns the color of pixel (x, y)
func (fb *Framebuffer) At(x, y int) core.Vec3 {
	return fb.Pixels[y*fb.Width+x]
}

// ToImage converts the framebuffer to an 8-bit image, clamping each channel
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			img.SetRGBA(x, y, core.ToRGBA(fb.At(x, y)))
		}
	}
	return img
}
