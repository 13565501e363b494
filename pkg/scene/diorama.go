package scene

import (
	"github.com/df07/go-box-raycaster/pkg/core"
	"github.com/df07/go-box-raycaster/pkg/geometry"
	"github.com/df07/go-box-raycaster/pkg/material"
)

// Texture names looked up by NewDioramaScene
const (
	TextureDirt      = "dirt"
	TextureWater     = "water"
	TextureGlass     = "glass"
	TextureLava      = "lava"
	TextureWood      = "wood"
	TextureBookshelf = "bookshelf"
	TextureFurnace   = "furnace"
	TextureLog       = "log"
	TextureLeaves    = "leaves"
)

// TextureNames lists every texture the diorama can use
var TextureNames = []string{
	TextureDirt, TextureWater, TextureGlass, TextureLava, TextureWood,
	TextureBookshelf, TextureFurnace, TextureLog, TextureLeaves,
}

// TextureSet maps texture names to images loaded by the caller
type TextureSet map[string]*material.ImageTexture

// Get returns the named texture, or nil when it was not loaded
func (ts TextureSet) Get(name string) *material.ImageTexture {
	if ts == nil {
		return nil
	}
	return ts[name]
}

// textured builds a material that falls back to a representative solid color
// when its texture is missing
func textured(texture *material.ImageTexture, fallback core.Vec3, shininess float64, albedo material.Albedo, refractiveIndex float64) *material.Material {
	return &material.Material{
		Appearance:      material.Textured{Texture: texture, Fallback: fallback},
		Shininess:       shininess,
		Albedo:          albedo,
		RefractiveIndex: refractiveIndex,
	}
}

// NewDioramaScene builds a small block world: a 6x6 ground of dirt with a lava pool
// and a pond, a tree, and a wall with a furnace, a bookshelf and glass windows.
// Light 0 is the sun and can be moved with OrbitSun.
func NewDioramaScene(textures TextureSet, cameraOverrides ...geometry.CameraConfig) *Scene {
	cameraConfig := mergeCamera(geometry.CameraConfig{
		Eye:    core.NewVec3(5, 5, 5),
		Center: core.NewVec3(0, 0, 0),
		Up:     core.NewVec3(0, 1, 0),
		Width:  800,
		Height: 600,
	}, cameraOverrides)

	s := newScene(cameraConfig)

	solid := material.Albedo{0.9, 0.1, 0, 0}
	dirt := textured(textures.Get(TextureDirt), core.RGB(121, 85, 58), 1, solid, 0)
	water := textured(textures.Get(TextureWater), core.RGB(40, 90, 200), 50, material.Albedo{0.8, 0.2, 0.1, 0.3}, 1.33)
	wood := textured(textures.Get(TextureWood), core.RGB(160, 120, 70), 1, solid, 0)
	glass := textured(textures.Get(TextureGlass), core.RGB(200, 230, 240), 0, material.Albedo{0.8, 0.2, 0.1, 0.6}, 1.5)
	bookshelf := textured(textures.Get(TextureBookshelf), core.RGB(140, 90, 50), 1, solid, 0)
	furnace := textured(textures.Get(TextureFurnace), core.RGB(110, 110, 110), 1, solid, 0)
	trunk := textured(textures.Get(TextureLog), core.RGB(100, 75, 45), 1, solid, 0)
	leaves := textured(textures.Get(TextureLeaves), core.RGB(60, 140, 50), 1, material.Albedo{0.9, 0.1, 0, 0.1}, 1.0)
	lava := material.NewEmissiveTexture(textures.Get(TextureLava), 1, solid, 0, core.RGB(238, 120, 40), 0.3)

	// The sun comes first so OrbitSun can find it
	s.AddLight(core.NewVec3(1, 4, 10), core.NewVec3(1, 1, 1), 1)
	s.SunIndex = 0

	const size = 0.5
	lavaLight := core.RGB(238, 163, 79)
	furnaceLight := core.RGB(234, 210, 75)

	// Ground
	for row := -3; row < 3; row++ {
		for col := -3; col < 3; col++ {
			lo := core.NewVec3(float64(col)*size, 0, float64(row)*size)
			hi := core.NewVec3(float64(col+1)*size, size, float64(row+1)*size)

			switch {
			case row == 0 && (col == 0 || col == 1):
				s.AddBox(geometry.NewAxisAlignedBox(lo, hi, lava))
				s.AddLight(core.NewVec3((float64(col)+0.5)*size, size+0.5, (float64(row)+0.5)*size), lavaLight, 0.6)
			case (row == -2 && col == -1) || (row == -1 && col == -1) || (row == -2 && col == 0):
				s.AddBox(geometry.NewAxisAlignedBox(lo, hi, water))
			default:
				s.AddBox(geometry.NewAxisAlignedBox(lo, hi, dirt))
			}
		}
	}

	// Tree: a log column with a crown of leaves
	for height := 1; height < 5; height++ {
		for row := -4; row < -1; row++ {
			lo := core.NewVec3(float64(row)*size, float64(height)*size, -1.5)
			hi := core.NewVec3(float64(row+1)*size, float64(height+1)*size, size-1.5)

			switch {
			case (row == -4 && height == 3) || (row == -2 && height == 3) || (height == 4 && row != -2):
				s.AddBox(geometry.NewAxisAlignedBox(lo, hi, leaves))
			case row == -3:
				s.AddBox(geometry.NewAxisAlignedBox(lo, hi, trunk))
			}
		}
	}
	s.AddBox(geometry.NewAxisAlignedBox(core.NewVec3(-3*size, 3*size, -0.5), core.NewVec3(-2*size, 4*size, -1.0), leaves))
	s.AddBox(geometry.NewAxisAlignedBox(core.NewVec3(-3*size, 3*size, -2.0), core.NewVec3(-2*size, 4*size, -1.5), leaves))

	// Wall with a stepped edge, a furnace, a bookshelf and two glass panes
	for height := 1; height < 5; height++ {
		for row := -3; row < 3; row++ {
			lo := core.NewVec3(float64(row)*size, float64(height)*size, 1.0)
			hi := core.NewVec3(float64(row+1)*size, float64(height+1)*size, size+1.0)

			switch {
			case row == 1 && height >= 2 && height <= 3:
				s.AddBox(geometry.NewAxisAlignedBox(lo, hi, glass)).WithoutShadow()
			case (row == -3 && height >= 2) || (row == -2 && height >= 3) || (row == -1 && height >= 4):
				// open sky
			case row == -2 && height == 1:
				s.AddBox(geometry.NewAxisAlignedBox(lo, hi, furnace))
				s.AddLight(core.NewVec3((float64(row)+0.5)*size, size+0.2, (float64(height)+0.5)*size), furnaceLight, 0.5)
			case row == -1 && height == 1:
				s.AddBox(geometry.NewAxisAlignedBox(lo, hi, bookshelf))
			default:
				s.AddBox(geometry.NewAxisAlignedBox(lo, hi, wood))
			}
		}
	}

	return s
}
