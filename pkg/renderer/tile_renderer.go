package renderer

import (
	"github.com/df07/go-box-raycaster/pkg/geometry"
)

// TileRenderer casts the primary rays for individual tiles
type TileRenderer struct {
	raytracer *Raytracer
	camera    *geometry.Camera
}

// NewTileRenderer creates a new tile renderer for the given raytracer and camera
func NewTileRenderer(raytracer *Raytracer, camera *geometry.Camera) *TileRenderer {
	return &TileRenderer{
		raytracer: raytracer,
		camera:    camera,
	}
}

// RenderTile fills the tile's pixels in fb. Tiles have non-overlapping bounds,
// so concurrent calls for different tiles never write the same slot.
func (tr *TileRenderer) RenderTile(tile *Tile, fb *Framebuffer) {
	for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
		for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
			ray := tr.camera.GetRay(x, y)
			fb.Set(x, y, tr.raytracer.CastRay(ray.Origin, ray.Direction, 0))
		}
	}
}
