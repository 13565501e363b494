package material

import (
	"github.com/df07/go-box-raycaster/pkg/core"
)

// Appearance selects where a surface takes its colors from.
// It is one of Solid, Textured or Emissive, chosen when the material is built.
type Appearance interface {
	diffuse(u, v float64) core.Vec3
	emission(u, v float64) (core.Vec3, bool)
	normalMap() *ImageTexture
}

// Solid provides a uniform diffuse color
type Solid struct {
	Color core.Vec3
}

func (s Solid) diffuse(u, v float64) core.Vec3 {
	return s.Color
}

func (s Solid) emission(u, v float64) (core.Vec3, bool) {
	return core.Vec3{}, false
}

func (s Solid) normalMap() *ImageTexture {
	return nil
}

// Textured samples the diffuse color from an image, falling back to Fallback
// when no texture is attached or (u, v) lands outside it
type Textured struct {
	Texture   *ImageTexture
	Fallback  core.Vec3
	NormalMap *ImageTexture // optional
}

func (t Textured) diffuse(u, v float64) core.Vec3 {
	if c, ok := t.Texture.Sample(u, v); ok {
		return c
	}
	return t.Fallback
}

func (t Textured) emission(u, v float64) (core.Vec3, bool) {
	return core.Vec3{}, false
}

func (t Textured) normalMap() *ImageTexture {
	return t.NormalMap
}

// Emissive surfaces glow independently of lighting. With a texture attached the
// emitted color is the texel scaled by Strength; otherwise it is Color.
type Emissive struct {
	Texture  *ImageTexture // optional
	Fallback core.Vec3     // diffuse color when no texel is available
	Color    core.Vec3
	Strength float64
}

func (e Emissive) diffuse(u, v float64) core.Vec3 {
	if c, ok := e.Texture.Sample(u, v); ok {
		return c
	}
	return e.Fallback
}

func (e Emissive) emission(u, v float64) (core.Vec3, bool) {
	if c, ok := e.Texture.Sample(u, v); ok {
		// 8-bit emission saturates
		return c.Multiply(e.Strength).Clamp(0, 1), true
	}
	return e.Color, true
}

func (e Emissive) normalMap() *ImageTexture {
	return nil
}
