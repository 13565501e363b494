package material

import (
	"math"

	"github.com/df07/go-box-raycaster/pkg/core"
)

// ImageTexture provides color from a 2D image. It is loaded once by the scene builder
// and shared read-only between materials.
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major: Pixels[y*Width + x]
}

// NewImageTexture creates a new image texture
func NewImageTexture(width, height int, pixels []core.Vec3) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// At returns the texel at pixel coordinates (x, y), with y=0 the top row
func (t *ImageTexture) At(x, y int) (core.Vec3, bool) {
	if t == nil || x < 0 || y < 0 || x >= t.Width || y >= t.Height {
		return core.Vec3{}, false
	}
	idx := y*t.Width + x
	if idx >= len(t.Pixels) {
		return core.Vec3{}, false
	}
	return t.Pixels[idx], true
}

// Sample looks up the nearest texel for surface coordinates (u, v) without filtering.
// V is flipped so v=1 maps to the top image row. Coordinates outside the image report false.
func (t *ImageTexture) Sample(u, v float64) (core.Vec3, bool) {
	if t == nil || t.Width <= 0 || t.Height <= 0 {
		return core.Vec3{}, false
	}

	fx := math.Floor(u * float64(t.Width-1))
	fy := math.Floor((1.0 - v) * float64(t.Height-1))
	if math.IsNaN(fx) || math.IsNaN(fy) {
		return core.Vec3{}, false
	}

	return t.At(int(fx), int(fy))
}
